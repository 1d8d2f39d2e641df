package relica

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/coregx/relica"

	"github.com/jeff1985/enqueue-dev/model"
)

// QueueRowRepository implements enqueue.QueueRowRepository using Relica.
type QueueRowRepository struct {
	db          *relica.DB
	tablePrefix string
}

// NewQueueRowRepository creates a new QueueRowRepository with default table prefix.
func NewQueueRowRepository(sqlDB *sql.DB, driverName string) *QueueRowRepository {
	return &QueueRowRepository{db: relica.WrapDB(sqlDB, driverName), tablePrefix: "enqueue_"}
}

// NewQueueRowRepositoryWithPrefix creates a new QueueRowRepository with custom table prefix.
func NewQueueRowRepositoryWithPrefix(sqlDB *sql.DB, driverName, prefix string) *QueueRowRepository {
	return &QueueRowRepository{db: relica.WrapDB(sqlDB, driverName), tablePrefix: prefix}
}

func (r *QueueRowRepository) tableName() string {
	return r.tablePrefix + "message"
}

// Insert persists one queue row. The storage error is returned as-is; the
// producer owns the translation into its error taxonomy.
func (r *QueueRowRepository) Insert(ctx context.Context, row *model.QueueRow) error {
	if err := r.db.WithContext(ctx).Model(row).Table(r.tableName()).Insert(); err != nil {
		return fmt.Errorf("insert queue row: %w", err)
	}
	return nil
}
