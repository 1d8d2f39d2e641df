package enqueue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeff1985/enqueue-dev/model"
)

// fakeRowRepository records inserted rows and optionally fails.
type fakeRowRepository struct {
	rows []*model.QueueRow
	err  error
}

func (f *fakeRowRepository) Insert(_ context.Context, row *model.QueueRow) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, row)
	return nil
}

// fixedIDGenerator always returns the same identifier.
type fixedIDGenerator struct {
	id  uuid.UUID
	err error
}

func (f fixedIDGenerator) NextID() (uuid.UUID, error) {
	return f.id, f.err
}

var testID = uuid.MustParse("1ec9414c-232a-6b00-b3c8-9f6bdeced846")

// testNow is the fixed send instant used across producer tests.
var testNow = time.Unix(1700000000, 0)

func newTestProducer(t *testing.T, repo QueueRowRepository, extra ...ProducerOption) *Producer {
	t.Helper()

	opts := append([]ProducerOption{
		WithProducerRepository(repo),
		WithProducerLogger(&NoopLogger{}),
		WithIdentifierGenerator(fixedIDGenerator{id: testID}),
		WithTimeSource(func() time.Time { return testNow }),
	}, extra...)

	p, err := NewProducer(opts...)
	require.NoError(t, err)
	return p
}

func TestNewProducer_RequiresDependencies(t *testing.T) {
	_, err := NewProducer(WithProducerLogger(&NoopLogger{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrCodeConfiguration)

	_, err = NewProducer(WithProducerRepository(&fakeRowRepository{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrCodeConfiguration)
}

func TestNewProducer_RejectsNilOptionValues(t *testing.T) {
	_, err := NewProducer(
		WithProducerRepository(nil),
		WithProducerLogger(&NoopLogger{}),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrCodeConfiguration)
}

func TestProducer_Send_EncodesRow(t *testing.T) {
	repo := &fakeRowRepository{}
	p := newTestProducer(t, repo)

	msg := model.NewMessage(`{"orderId": 42}`)
	msg.SetHeader("a", "b")
	msg.SetProperty("source", "test")

	result, err := p.Send(context.Background(), model.NewQueue("orders"), msg)
	require.NoError(t, err)
	require.Len(t, repo.rows, 1)

	row := repo.rows[0]
	assert.Equal(t, testID[:], row.ID)
	assert.Equal(t, testID.String(), row.HumanID)
	assert.Equal(t, int64(17000000000000), row.PublishedAt)
	assert.Equal(t, `{"orderId": 42}`, row.Body)
	assert.Equal(t, "orders", row.Queue)
	assert.False(t, row.Priority.Valid)
	assert.False(t, row.DelayedUntil.Valid)
	assert.False(t, row.TimeToLive.Valid)

	headers, err := model.DecodeAttributes(row.Headers)
	require.NoError(t, err)
	assert.Equal(t, model.Attributes{"a": "b"}, headers)

	properties, err := model.DecodeAttributes(row.Properties)
	require.NoError(t, err)
	assert.Equal(t, model.Attributes{"source": "test"}, properties)

	assert.Equal(t, row.HumanID, result.MessageID)
	assert.Equal(t, "orders", result.Queue)
	assert.Equal(t, row.PublishedAt, result.PublishedAt)
}

func TestProducer_Send_DefaultPriorityPrecedence(t *testing.T) {
	repo := &fakeRowRepository{}
	p := newTestProducer(t, repo, WithDefaultPriority(5))

	// Message without priority gets the producer default
	_, err := p.Send(context.Background(), model.NewQueue("orders"), model.NewMessage("a"))
	require.NoError(t, err)

	// Message with its own priority ignores the default
	msg := model.NewMessage("b")
	msg.Priority = intPtr(9)
	_, err = p.Send(context.Background(), model.NewQueue("orders"), msg)
	require.NoError(t, err)

	require.Len(t, repo.rows, 2)
	require.True(t, repo.rows[0].Priority.Valid)
	assert.Equal(t, int32(5), repo.rows[0].Priority.Int32)
	require.True(t, repo.rows[1].Priority.Valid)
	assert.Equal(t, int32(9), repo.rows[1].Priority.Int32)
}

func TestProducer_Send_DelayAndTTLDeadlines(t *testing.T) {
	repo := &fakeRowRepository{}
	p := newTestProducer(t, repo)

	msg := model.NewMessage("body")
	msg.DeliveryDelay = int64Ptr(2000)
	msg.TimeToLive = int64Ptr(1500)

	_, err := p.Send(context.Background(), model.NewQueue("orders"), msg)
	require.NoError(t, err)
	require.Len(t, repo.rows, 1)

	row := repo.rows[0]
	require.True(t, row.DelayedUntil.Valid)
	assert.Equal(t, testNow.Unix()+2, row.DelayedUntil.Int64)
	require.True(t, row.TimeToLive.Valid)
	assert.Equal(t, testNow.Unix()+1, row.TimeToLive.Int64, "sub-second remainder is dropped")
}

func TestProducer_Send_ZeroDelayOmitsDeadline(t *testing.T) {
	repo := &fakeRowRepository{}
	p := newTestProducer(t, repo)

	msg := model.NewMessage("body")
	msg.DeliveryDelay = int64Ptr(0)

	_, err := p.Send(context.Background(), model.NewQueue("orders"), msg)
	require.NoError(t, err)
	require.Len(t, repo.rows, 1)
	assert.False(t, repo.rows[0].DelayedUntil.Valid)
}

func TestProducer_Send_NegativeDelayRejectedBeforeInsert(t *testing.T) {
	repo := &fakeRowRepository{}
	p := newTestProducer(t, repo)

	msg := model.NewMessage("body")
	msg.DeliveryDelay = int64Ptr(-5)

	_, err := p.Send(context.Background(), model.NewQueue("orders"), msg)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Empty(t, repo.rows, "no row may be inserted on validation failure")
}

func TestProducer_Send_NegativeTTLRejectedBeforeInsert(t *testing.T) {
	repo := &fakeRowRepository{}
	p := newTestProducer(t, repo)

	msg := model.NewMessage("body")
	msg.TimeToLive = int64Ptr(-1)

	_, err := p.Send(context.Background(), model.NewQueue("orders"), msg)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Empty(t, repo.rows)
}

func TestProducer_Send_RejectsInvalidDestination(t *testing.T) {
	repo := &fakeRowRepository{}
	p := newTestProducer(t, repo)

	_, err := p.Send(context.Background(), model.Queue{}, model.NewMessage("body"))
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Empty(t, repo.rows, "gateway must not be invoked")
}

func TestProducer_Send_RejectsNilMessage(t *testing.T) {
	repo := &fakeRowRepository{}
	p := newTestProducer(t, repo)

	_, err := p.Send(context.Background(), model.NewQueue("orders"), nil)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Empty(t, repo.rows)
}

func TestProducer_Send_WrapsGatewayError(t *testing.T) {
	cause := errors.New("connection reset")
	repo := &fakeRowRepository{err: cause}
	p := newTestProducer(t, repo)

	_, err := p.Send(context.Background(), model.NewQueue("orders"), model.NewMessage("body"))
	require.Error(t, err)

	assert.True(t, IsSend(err))
	assert.True(t, errors.Is(err, cause), "original gateway error must be the cause")

	var enqueueErr *Error
	require.True(t, errors.As(err, &enqueueErr))
	assert.Equal(t, ErrCodeSend, enqueueErr.Code)
}

func TestProducer_Send_ExplicitPublishedAtPreserved(t *testing.T) {
	repo := &fakeRowRepository{}
	p := newTestProducer(t, repo)

	msg := model.NewMessage("body")
	msg.PublishedAt = int64Ptr(12345)

	_, err := p.Send(context.Background(), model.NewQueue("orders"), msg)
	require.NoError(t, err)
	require.Len(t, repo.rows, 1)
	assert.Equal(t, int64(12345), repo.rows[0].PublishedAt)
}

func TestProducer_Send_IdentifierGenerationFailure(t *testing.T) {
	repo := &fakeRowRepository{}
	p := newTestProducer(t, repo)
	p.ids = fixedIDGenerator{err: errors.New("no node id")}

	_, err := p.Send(context.Background(), model.NewQueue("orders"), model.NewMessage("body"))
	require.Error(t, err)

	var enqueueErr *Error
	require.True(t, errors.As(err, &enqueueErr))
	assert.Equal(t, ErrCodeInternal, enqueueErr.Code)
	assert.Empty(t, repo.rows)
}

func TestProducer_DefaultSetters(t *testing.T) {
	p := newTestProducer(t, &fakeRowRepository{})

	assert.Nil(t, p.Priority())
	assert.Nil(t, p.DeliveryDelay())
	assert.Nil(t, p.TimeToLive())

	p.SetPriority(intPtr(7))
	p.SetDeliveryDelay(int64Ptr(3000))
	p.SetTimeToLive(int64Ptr(4000))

	require.NotNil(t, p.Priority())
	assert.Equal(t, 7, *p.Priority())
	require.NotNil(t, p.DeliveryDelay())
	assert.Equal(t, int64(3000), *p.DeliveryDelay())
	require.NotNil(t, p.TimeToLive())
	assert.Equal(t, int64(4000), *p.TimeToLive())

	p.SetPriority(nil)
	assert.Nil(t, p.Priority())
}

func TestProducer_Send_OrderingAcrossSends(t *testing.T) {
	repo := &fakeRowRepository{}

	// Real generator, advancing clock: rows must come out ordered
	clock := testNow
	p, err := NewProducer(
		WithProducerRepository(repo),
		WithProducerLogger(&NoopLogger{}),
		WithTimeSource(func() time.Time {
			clock = clock.Add(time.Millisecond)
			return clock
		}),
	)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		_, err := p.Send(context.Background(), model.NewQueue("orders"), model.NewMessage("body"))
		require.NoError(t, err)
	}

	require.Len(t, repo.rows, 10)
	for i := 1; i < len(repo.rows); i++ {
		assert.NotEqual(t, repo.rows[i-1].ID, repo.rows[i].ID)
		assert.Less(t, repo.rows[i-1].PublishedAt, repo.rows[i].PublishedAt)
	}
}
