package enqueue

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/jeff1985/enqueue-dev/model"
)

// Producer writes messages into the queue table. Each send is a one-shot
// pipeline — validate, resolve defaults, schedule, encode, insert — with no
// state retained between calls except the producer defaults.
//
// Send may be called concurrently. The default setters are not synchronized;
// configure defaults before concurrent sends begin.
type Producer struct {
	rows     QueueRowRepository
	logger   Logger
	ids      IdentifierGenerator
	now      func() time.Time
	defaults Defaults
}

// ProducerOption configures a Producer.
type ProducerOption func(*Producer) error

// NewProducer creates a new Producer with the provided options.
//
// Required options:
//   - WithProducerRepository: queue row persistence (the insert gateway)
//   - WithProducerLogger: logger instance
//
// Example:
//
//	producer, err := enqueue.NewProducer(
//	    enqueue.WithProducerRepository(rowRepo),
//	    enqueue.WithProducerLogger(logger),
//	)
func NewProducer(opts ...ProducerOption) (*Producer, error) {
	p := &Producer{
		ids: TimeOrderedGenerator{},
		now: time.Now,
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, NewErrorWithCause(ErrCodeConfiguration, "failed to apply producer option", err)
		}
	}

	// Validate required dependencies
	if p.rows == nil {
		return nil, NewError(ErrCodeConfiguration, "QueueRowRepository is required (use WithProducerRepository)")
	}
	if p.logger == nil {
		return nil, NewError(ErrCodeConfiguration, "Logger is required (use WithProducerLogger)")
	}

	return p, nil
}

// WithProducerRepository sets the queue row repository the producer inserts
// through. Required.
func WithProducerRepository(rows QueueRowRepository) ProducerOption {
	return func(p *Producer) error {
		if rows == nil {
			return fmt.Errorf("rows cannot be nil")
		}
		p.rows = rows
		return nil
	}
}

// WithProducerLogger sets the logger instance. Required.
func WithProducerLogger(logger Logger) ProducerOption {
	return func(p *Producer) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		p.logger = logger
		return nil
	}
}

// WithIdentifierGenerator replaces the default time-ordered UUID generator.
// Optional; useful for deterministic identifiers in tests.
func WithIdentifierGenerator(ids IdentifierGenerator) ProducerOption {
	return func(p *Producer) error {
		if ids == nil {
			return fmt.Errorf("identifier generator cannot be nil")
		}
		p.ids = ids
		return nil
	}
}

// WithTimeSource replaces the wall clock used for ordering timestamps and
// deadline arithmetic. Optional; useful for fixing "now" in tests.
func WithTimeSource(now func() time.Time) ProducerOption {
	return func(p *Producer) error {
		if now == nil {
			return fmt.Errorf("time source cannot be nil")
		}
		p.now = now
		return nil
	}
}

// WithDefaultPriority sets the producer-level default priority applied to
// messages that carry none. Optional.
func WithDefaultPriority(priority int) ProducerOption {
	return func(p *Producer) error {
		p.defaults.Priority = &priority
		return nil
	}
}

// WithDefaultDeliveryDelay sets the producer-level default delivery delay in
// milliseconds. Optional.
func WithDefaultDeliveryDelay(ms int64) ProducerOption {
	return func(p *Producer) error {
		p.defaults.DeliveryDelay = &ms
		return nil
	}
}

// WithDefaultTimeToLive sets the producer-level default time to live in
// milliseconds. Optional.
func WithDefaultTimeToLive(ms int64) ProducerOption {
	return func(p *Producer) error {
		p.defaults.TimeToLive = &ms
		return nil
	}
}

// SetPriority sets the default priority. Pass nil to clear it.
// Not synchronized; call before concurrent sends begin.
func (p *Producer) SetPriority(priority *int) {
	p.defaults.Priority = priority
}

// Priority returns the default priority, or nil if none is set.
func (p *Producer) Priority() *int {
	return p.defaults.Priority
}

// SetDeliveryDelay sets the default delivery delay in milliseconds.
// Pass nil to clear it. Not synchronized; call before concurrent sends begin.
func (p *Producer) SetDeliveryDelay(ms *int64) {
	p.defaults.DeliveryDelay = ms
}

// DeliveryDelay returns the default delivery delay in milliseconds, or nil
// if none is set.
func (p *Producer) DeliveryDelay() *int64 {
	return p.defaults.DeliveryDelay
}

// SetTimeToLive sets the default time to live in milliseconds.
// Pass nil to clear it. Not synchronized; call before concurrent sends begin.
func (p *Producer) SetTimeToLive(ms *int64) {
	p.defaults.TimeToLive = ms
}

// TimeToLive returns the default time to live in milliseconds, or nil if
// none is set.
func (p *Producer) TimeToLive() *int64 {
	return p.defaults.TimeToLive
}

// SendResult represents the result of a send operation.
type SendResult struct {
	MessageID   string // Human-readable identifier of the inserted row
	Queue       string // Destination queue name
	PublishedAt int64  // Ordering timestamp recorded on the row
}

// Send persists one message as one queue row.
//
// The process:
//  1. Validate the destination and message
//  2. Resolve producer defaults onto the message (pure, no mutation)
//  3. Generate the time-ordered identifier and ordering timestamp
//  4. Validate and convert delay/TTL into absolute deadlines
//  5. Encode the row and insert it through the gateway
//
// Either exactly one row is inserted and a SendResult returned, or no row is
// inserted and an error raised. Gateway failures are wrapped with code
// SEND_ERROR; the native storage error is available via errors.Unwrap.
func (p *Producer) Send(ctx context.Context, dest model.Queue, msg *model.Message) (*SendResult, error) {
	if err := validation.Validate(dest.Name, validation.Required, validation.Length(1, 255)); err != nil {
		return nil, NewErrorWithCause(ErrCodeValidation, "queue name is required", err)
	}
	if msg == nil {
		return nil, NewError(ErrCodeValidation, "message is required")
	}

	resolved := ResolveDefaults(p.defaults, msg)

	id, err := p.ids.NextID()
	if err != nil {
		return nil, NewErrorWithCause(ErrCodeInternal, "failed to generate message identifier", err)
	}

	now := p.now()

	publishedAt := orderingTimestamp(now)
	if resolved.PublishedAt != nil {
		publishedAt = *resolved.PublishedAt
	}

	delayedUntil, err := deadlineFrom(now, resolved.DeliveryDelay, "delivery delay")
	if err != nil {
		return nil, err
	}

	expiresAt, err := deadlineFrom(now, resolved.TimeToLive, "time to live")
	if err != nil {
		return nil, err
	}

	row, err := encodeRow(resolved, dest, id, publishedAt, delayedUntil, expiresAt)
	if err != nil {
		return nil, err
	}

	if err := p.rows.Insert(ctx, row); err != nil {
		return nil, NewErrorWithCause(ErrCodeSend,
			fmt.Sprintf("failed to insert message into queue %s", dest.Name), err)
	}

	p.logger.Infof("Message sent: id=%s, queue=%s, publishedAt=%d", row.HumanID, dest.Name, publishedAt)

	return &SendResult{
		MessageID:   row.HumanID,
		Queue:       dest.Name,
		PublishedAt: publishedAt,
	}, nil
}

// encodeRow assembles the final queue row from a resolved message. The body
// is copied verbatim; headers and properties are serialized independently.
// Deadlines are included only when computed. The returned row is complete
// and ready for insertion.
func encodeRow(
	m ResolvedMessage,
	dest model.Queue,
	id uuid.UUID,
	publishedAt int64,
	delayedUntil, expiresAt sql.NullInt64,
) (*model.QueueRow, error) {
	headers, err := m.Headers.Encode()
	if err != nil {
		return nil, NewErrorWithCause(ErrCodeValidation, "failed to encode message headers", err)
	}

	properties, err := m.Properties.Encode()
	if err != nil {
		return nil, NewErrorWithCause(ErrCodeValidation, "failed to encode message properties", err)
	}

	return &model.QueueRow{
		ID:           id[:],
		HumanID:      id.String(),
		PublishedAt:  publishedAt,
		Body:         m.Body,
		Headers:      headers,
		Properties:   properties,
		Priority:     nullInt32(m.Priority),
		Queue:        dest.Name,
		DelayedUntil: delayedUntil,
		TimeToLive:   expiresAt,
	}, nil
}

func nullInt32(p *int) sql.NullInt32 {
	if p == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*p), Valid: true}
}
