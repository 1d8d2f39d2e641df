package enqueue

import (
	"context"

	"github.com/jeff1985/enqueue-dev/model"
)

// QueueRowRepository defines the persistence interface for queue rows.
// It is the insert gateway the producer writes through: one call per send,
// one row per call.
//
// Implementations must be safe for concurrent use. The producer performs no
// retries, batching, or transaction management of its own; if the caller
// wraps sends in a surrounding transaction, Insert participates in it.
type QueueRowRepository interface {
	// Insert durably persists one queue row.
	// Any error it returns is wrapped by the producer and never surfaced
	// to callers in its native form.
	Insert(ctx context.Context, row *model.QueueRow) error
}
