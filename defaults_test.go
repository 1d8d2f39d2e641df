package enqueue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeff1985/enqueue-dev/model"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestResolveDefaults_MessageValueWins(t *testing.T) {
	defaults := Defaults{
		Priority:      intPtr(5),
		DeliveryDelay: int64Ptr(10_000),
		TimeToLive:    int64Ptr(20_000),
	}
	msg := model.NewMessage("body")
	msg.Priority = intPtr(9)
	msg.DeliveryDelay = int64Ptr(1000)
	msg.TimeToLive = int64Ptr(2000)

	r := ResolveDefaults(defaults, msg)

	require.NotNil(t, r.Priority)
	assert.Equal(t, 9, *r.Priority)
	assert.Equal(t, int64(1000), r.DeliveryDelay)
	assert.Equal(t, int64(2000), r.TimeToLive)
}

func TestResolveDefaults_FallsBackToProducerDefaults(t *testing.T) {
	defaults := Defaults{
		Priority:      intPtr(5),
		DeliveryDelay: int64Ptr(10_000),
		TimeToLive:    int64Ptr(20_000),
	}
	msg := model.NewMessage("body")

	r := ResolveDefaults(defaults, msg)

	require.NotNil(t, r.Priority)
	assert.Equal(t, 5, *r.Priority)
	assert.Equal(t, int64(10_000), r.DeliveryDelay)
	assert.Equal(t, int64(20_000), r.TimeToLive)
}

func TestResolveDefaults_AbsentStaysAbsent(t *testing.T) {
	msg := model.NewMessage("body")

	r := ResolveDefaults(Defaults{}, msg)

	assert.Nil(t, r.Priority)
	assert.Zero(t, r.DeliveryDelay)
	assert.Zero(t, r.TimeToLive)
	assert.Nil(t, r.PublishedAt)
}

func TestResolveDefaults_DoesNotMutateMessage(t *testing.T) {
	defaults := Defaults{Priority: intPtr(5)}
	msg := model.NewMessage("body")

	r := ResolveDefaults(defaults, msg)

	assert.Nil(t, msg.Priority, "caller's message must stay untouched")

	// The resolved value is a copy, not an alias of the default
	*r.Priority = 7
	assert.Equal(t, 5, *defaults.Priority)
}

func TestResolveDefaults_ZeroMessageValueDisablesDefault(t *testing.T) {
	// An explicit 0 means "no delay" even when a producer default exists
	defaults := Defaults{DeliveryDelay: int64Ptr(10_000)}
	msg := model.NewMessage("body")
	msg.DeliveryDelay = int64Ptr(0)

	r := ResolveDefaults(defaults, msg)
	assert.Zero(t, r.DeliveryDelay)
}
