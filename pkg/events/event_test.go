package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	got []Event
	err error
}

func (r *recordingPublisher) Publish(ctx context.Context, event Event) error {
	r.got = append(r.got, event)
	return r.err
}

func TestEncodeDecode(t *testing.T) {
	e := NewUserEvent(MemoryCreated, "u1", map[string]interface{}{"memoryId": "m1"})

	raw, err := Encode(e)
	require.NoError(t, err)

	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, MemoryCreated, got.Type)
	assert.Equal(t, "u1", got.Data["userId"])
	assert.Equal(t, "m1", got.Data["memoryId"])
	assert.WithinDuration(t, e.OccurredAt, got.OccurredAt, time.Millisecond)
}

func TestFanoutTriesEveryTarget(t *testing.T) {
	failing := &recordingPublisher{err: errors.New("down")}
	ok := &recordingPublisher{}

	err := Fanout{failing, nil, ok}.Publish(context.Background(), NewUserEvent(UserSignedIn, "u1", nil))

	assert.EqualError(t, err, "down")
	assert.Len(t, failing.got, 1)
	assert.Len(t, ok.got, 1)
}

func TestBusDeliversToSubscriber(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := NewBus("activity")
	defer bus.Close()

	messages, err := bus.Subscribe(ctx)
	require.NoError(t, err)

	require.NoError(t, bus.Publish(ctx, NewUserEvent(UserSetupCompleted, "u1", nil)))

	select {
	case msg := <-messages:
		got, err := Decode(msg.Payload)
		require.NoError(t, err)
		assert.Equal(t, UserSetupCompleted, got.Type)
		msg.Ack()
	case <-time.After(time.Second):
		t.Fatal("no message delivered")
	}
}
