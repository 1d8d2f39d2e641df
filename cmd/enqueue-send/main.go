// Package main provides the enqueue-send executable: a one-shot CLI that
// sends a single message into the queue table.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"strings"

	enqueue "github.com/jeff1985/enqueue-dev"
	"github.com/jeff1985/enqueue-dev/adapters/relica"
	"github.com/jeff1985/enqueue-dev/cmd/enqueue-send/internal/config"
	"github.com/jeff1985/enqueue-dev/model"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// SimpleLogger implements enqueue.Logger for standard logging.
type SimpleLogger struct{}

func (l *SimpleLogger) Debugf(format string, args ...interface{}) {
	log.Printf("[DEBUG] "+format, args...)
}
func (l *SimpleLogger) Infof(format string, args ...interface{}) {
	log.Printf("[INFO] "+format, args...)
}
func (l *SimpleLogger) Warnf(format string, args ...interface{}) {
	log.Printf("[WARN] "+format, args...)
}
func (l *SimpleLogger) Errorf(format string, args ...interface{}) {
	log.Printf("[ERROR] "+format, args...)
}
func (l *SimpleLogger) Info(message string) {
	log.Printf("[INFO] %s", message)
}

func main() {
	var (
		queue    = flag.String("queue", "", "destination queue name (required)")
		body     = flag.String("body", "", "message body")
		headers  = flag.String("headers", "", "comma-separated key=value header pairs")
		priority = flag.Int("priority", 0, "message priority (0 = use producer default)")
		delay    = flag.Int64("delay", 0, "delivery delay in milliseconds (0 = none)")
		ttl      = flag.Int64("ttl", 0, "time to live in milliseconds (0 = none)")
	)
	flag.Parse()

	if *queue == "" {
		log.Fatal("-queue is required")
	}

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := sql.Open(cfg.Database.Driver, cfg.Database.GetDSN())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Printf("Failed to close database: %v", closeErr)
		}
	}()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	rows := relica.NewQueueRowRepositoryWithPrefix(db, cfg.Database.Driver, cfg.Database.Prefix)

	opts := []enqueue.ProducerOption{
		enqueue.WithProducerRepository(rows),
		enqueue.WithProducerLogger(&SimpleLogger{}),
	}
	if cfg.Producer.Priority != 0 {
		opts = append(opts, enqueue.WithDefaultPriority(cfg.Producer.Priority))
	}
	if cfg.Producer.DeliveryDelay != 0 {
		opts = append(opts, enqueue.WithDefaultDeliveryDelay(cfg.Producer.DeliveryDelay))
	}
	if cfg.Producer.TimeToLive != 0 {
		opts = append(opts, enqueue.WithDefaultTimeToLive(cfg.Producer.TimeToLive))
	}

	producer, err := enqueue.NewProducer(opts...)
	if err != nil {
		log.Fatalf("Failed to create producer: %v", err)
	}

	msg := model.NewMessage(*body)
	for _, pair := range strings.Split(*headers, ",") {
		if key, value, ok := strings.Cut(pair, "="); ok {
			msg.SetHeader(key, value)
		}
	}
	if *priority != 0 {
		msg.Priority = priority
	}
	if *delay != 0 {
		msg.DeliveryDelay = delay
	}
	if *ttl != 0 {
		msg.TimeToLive = ttl
	}

	result, err := producer.Send(context.Background(), model.NewQueue(*queue), msg)
	if err != nil {
		log.Fatalf("Send failed: %v", err)
	}

	log.Printf("Sent message %s to queue %s (publishedAt=%d)",
		result.MessageID, result.Queue, result.PublishedAt)
}
