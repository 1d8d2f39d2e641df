package model

// Queue identifies a destination queue by name. Rows sent to the same queue
// name are retrieved together by the polling consumer.
type Queue struct {
	Name string `json:"name"`
}

// NewQueue creates a queue destination with the given name.
func NewQueue(name string) Queue {
	return Queue{Name: name}
}
