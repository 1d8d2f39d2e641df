package model

import "database/sql"

// QueueRow is the persisted form of one sent message — a single row in the
// queue table. It is built once by the producer, inserted once, and from
// then on owned by the out-of-scope consumer (read, mark-processed, delete).
//
// Invariants a correct consumer depends on:
//   - ID is unique across all rows ever inserted, by any producer process.
//   - PublishedAt is non-decreasing for rows inserted in increasing
//     wall-clock order from the same producer.
//   - DelayedUntil and TimeToLive, when set, are absolute epoch-second
//     deadlines strictly in the future at insertion time.
type QueueRow struct {
	ID           []byte        `json:"id" db:"id"`                     // 16-byte time-ordered identifier
	HumanID      string        `json:"humanID" db:"human_id"`          // Canonical string form of ID
	PublishedAt  int64         `json:"publishedAt" db:"published_at"`  // Ordering timestamp (100µs units)
	Body         string        `json:"body" db:"body"`                 // Payload, copied verbatim
	Headers      string        `json:"headers" db:"headers"`           // JSON-encoded Attributes
	Properties   string        `json:"properties" db:"properties"`     // JSON-encoded Attributes
	Priority     sql.NullInt32 `json:"priority" db:"priority"`         // Nullable priority
	Queue        string        `json:"queue" db:"queue"`               // Destination queue name
	DelayedUntil sql.NullInt64 `json:"delayedUntil" db:"delayed_until"` // Visible-after deadline (epoch seconds)
	TimeToLive   sql.NullInt64 `json:"timeToLive" db:"time_to_live"`   // Expires-at deadline (epoch seconds)
}

// TableName returns the database table name for QueueRow.
func (t QueueRow) TableName() string {
	return tablePrefix + "message"
}
