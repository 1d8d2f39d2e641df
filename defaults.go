package enqueue

import "github.com/jeff1985/enqueue-dev/model"

// Defaults holds producer-level fallback values applied to messages that do
// not set their own. A nil field means no default.
type Defaults struct {
	Priority      *int
	DeliveryDelay *int64 // milliseconds
	TimeToLive    *int64 // milliseconds
}

// ResolvedMessage is a message after default resolution: for each of
// priority, delivery delay and time to live the value is the message's own
// if set, else the producer default, else absent. Delay and TTL collapse to
// plain milliseconds where 0 means "none".
type ResolvedMessage struct {
	Body          string
	Headers       model.Attributes
	Properties    model.Attributes
	Priority      *int
	DeliveryDelay int64  // milliseconds, 0 = no delay
	TimeToLive    int64  // milliseconds, 0 = no expiry
	PublishedAt   *int64 // nil = compute at send time
}

// ResolveDefaults merges producer defaults into a message without mutating
// it. A value the message sets explicitly is never overridden.
func ResolveDefaults(d Defaults, m *model.Message) ResolvedMessage {
	r := ResolvedMessage{
		Body:        m.Body,
		Headers:     m.Headers,
		Properties:  m.Properties,
		PublishedAt: copyInt64(m.PublishedAt),
	}

	switch {
	case m.Priority != nil:
		r.Priority = copyInt(m.Priority)
	case d.Priority != nil:
		r.Priority = copyInt(d.Priority)
	}

	switch {
	case m.DeliveryDelay != nil:
		r.DeliveryDelay = *m.DeliveryDelay
	case d.DeliveryDelay != nil:
		r.DeliveryDelay = *d.DeliveryDelay
	}

	switch {
	case m.TimeToLive != nil:
		r.TimeToLive = *m.TimeToLive
	case d.TimeToLive != nil:
		r.TimeToLive = *d.TimeToLive
	}

	return r
}

func copyInt(p *int) *int {
	v := *p
	return &v
}

func copyInt64(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
