// Package relica provides the queue row repository implementation using the
// Relica query builder.
//
// Relica (github.com/coregx/relica) is a lightweight, type-safe database
// query builder for Go with zero production dependencies. This package is
// the production insert gateway behind enqueue.QueueRowRepository.
//
// Example usage:
//
//	import (
//	    "database/sql"
//	    enqueue "github.com/jeff1985/enqueue-dev"
//	    "github.com/jeff1985/enqueue-dev/adapters/relica"
//	    _ "github.com/go-sql-driver/mysql"
//	)
//
//	db, err := sql.Open("mysql", "user:pass@tcp(localhost:3306)/queue?parseTime=true")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// driverName should be "mysql", "postgres", or "sqlite3"
//	rows := relica.NewQueueRowRepository(db, "mysql")
//
//	producer, err := enqueue.NewProducer(
//	    enqueue.WithProducerRepository(rows),
//	    enqueue.WithProducerLogger(logger),
//	)
package relica
