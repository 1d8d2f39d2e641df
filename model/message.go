package model

import "encoding/json"

// Attributes represents a map of key-value pairs attached to a message.
// Message headers and properties are both Attributes and are serialized
// to independent JSON text columns on the queue row.
type Attributes map[string]string

// Encode serializes the attributes to their JSON text form.
// A nil map encodes as an empty object so the stored column is always
// decodable.
func (a Attributes) Encode() (string, error) {
	if a == nil {
		a = Attributes{}
	}
	b, err := json.Marshal(a)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeAttributes parses the JSON text form produced by Encode.
func DecodeAttributes(s string) (Attributes, error) {
	a := Attributes{}
	if err := json.Unmarshal([]byte(s), &a); err != nil {
		return nil, err
	}
	return a, nil
}

// Message is the caller-owned input to a send. It is transient: constructed
// by the caller, consumed by exactly one send (successful or failing), and
// never reused by this library.
//
// Priority, DeliveryDelay, TimeToLive and PublishedAt are optional; nil
// means "not set" and lets the producer-level default (if any) apply.
// The body is opaque and never interpreted.
type Message struct {
	Body          string     `json:"body"`          // Opaque payload
	Headers       Attributes `json:"headers"`       // Transport-level metadata
	Properties    Attributes `json:"properties"`    // Application-level metadata
	Priority      *int       `json:"priority"`      // Optional priority
	DeliveryDelay *int64     `json:"deliveryDelay"` // Optional delay in milliseconds
	TimeToLive    *int64     `json:"timeToLive"`    // Optional TTL in milliseconds
	PublishedAt   *int64     `json:"publishedAt"`   // Optional ordering timestamp
}

// NewMessage creates a message with the given body and empty headers and
// properties.
func NewMessage(body string) *Message {
	return &Message{
		Body:       body,
		Headers:    Attributes{},
		Properties: Attributes{},
	}
}

// SetHeader sets a single transport-level header.
func (m *Message) SetHeader(key, value string) {
	if m.Headers == nil {
		m.Headers = Attributes{}
	}
	m.Headers[key] = value
}

// SetProperty sets a single application-level property.
func (m *Message) SetProperty(key, value string) {
	if m.Properties == nil {
		m.Properties = Attributes{}
	}
	m.Properties[key] = value
}
