// Package enqueue provides the producing side of a message queue backed by
// an ordinary relational table instead of a dedicated broker.
//
// A Producer turns an in-memory message and a destination queue into exactly
// one durable table row, carrying everything a polling consumer needs to
// retrieve it correctly: a time-ordered identifier, a high-resolution
// ordering timestamp, serialized headers and properties, a nullable
// priority, and optional delayed-until / expires-at deadlines.
//
// # Features
//
//   - Time-ordered, collision-free identifiers (version 6 UUIDs) — ordering
//     and uniqueness without sequences or locks, across processes
//   - Producer-level defaults for priority, delivery delay and time to live,
//     never overriding values a message sets explicitly
//   - Delay/TTL validation and conversion to absolute epoch-second deadlines
//   - Categorized errors: validation failures before any insert, gateway
//     failures always wrapped (never leaked in their native form)
//   - Options Pattern for service construction
//   - Pluggable Logger and injectable identifier generator / time source
//   - Multi-database support: MySQL, PostgreSQL, SQLite via the Relica adapter
//   - Embedded migration for the queue table
//
// # Quick Start
//
// Apply the embedded migration, then wire a producer:
//
//	import (
//	    "database/sql"
//	    enqueue "github.com/jeff1985/enqueue-dev"
//	    "github.com/jeff1985/enqueue-dev/adapters/relica"
//	    "github.com/jeff1985/enqueue-dev/model"
//	    _ "github.com/go-sql-driver/mysql"
//	)
//
//	db, _ := sql.Open("mysql", "user:pass@tcp(localhost:3306)/queue?parseTime=true")
//
//	producer, _ := enqueue.NewProducer(
//	    enqueue.WithProducerRepository(relica.NewQueueRowRepository(db, "mysql")),
//	    enqueue.WithProducerLogger(logger),
//	    enqueue.WithDefaultTimeToLive(60_000), // optional
//	)
//
//	msg := model.NewMessage(`{"orderId": 42}`)
//	msg.SetHeader("content-type", "application/json")
//	result, err := producer.Send(ctx, model.NewQueue("orders"), msg)
//
// # Scope
//
// The library does not guarantee delivery, does not retry failed inserts,
// and does not interpret the message body. The polling consumer — reading
// rows in order, honoring delayed_until, discarding expired rows — is a
// separate component operating on the same table.
//
// # Table Schema
//
// One table holds all queued messages (default name "enqueue_message",
// prefix customizable):
//
//	id            16-byte time-ordered identifier (unique)
//	human_id      canonical string form of id
//	published_at  ordering timestamp, 100-microsecond units
//	body          payload, verbatim
//	headers       JSON text
//	properties    JSON text
//	priority      nullable small integer
//	queue         destination queue name
//	delayed_until nullable epoch seconds
//	time_to_live  nullable epoch seconds
package enqueue
