package enqueue

import "github.com/google/uuid"

// IdentifierGenerator produces unique, time-ordered message identifiers.
// It is the sole mechanism providing global uniqueness and ordering across
// producer instances and processes — no sequence counter or locking is used.
//
// The generator is injectable so tests can substitute a deterministic
// implementation.
type IdentifierGenerator interface {
	// NextID returns a new identifier. For any two calls ordered by
	// wall-clock time, byte-wise comparison of the results follows
	// creation order.
	NextID() (uuid.UUID, error)
}

// TimeOrderedGenerator is the default IdentifierGenerator. It produces
// version 6 UUIDs: a 60-bit timestamp, a clock sequence, and a
// spatially-unique node id, laid out so byte-wise comparison matches
// creation time.
type TimeOrderedGenerator struct{}

// NextID implements IdentifierGenerator.
func (TimeOrderedGenerator) NextID() (uuid.UUID, error) {
	return uuid.NewV6()
}
