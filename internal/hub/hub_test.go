package hub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kittclouds/memcity/internal/snapshot"
)

func TestPublish_ShouldDeliverToEverySubscriber(t *testing.T) {
	h := New()
	a := h.Subscribe()
	b := h.Subscribe()

	h.Publish(Event{Kind: KindSnapshot})

	select {
	case e := <-a:
		assert.Equal(t, KindSnapshot, e.Kind)
	default:
		t.Fatal("subscriber a received nothing")
	}
	select {
	case e := <-b:
		assert.Equal(t, KindSnapshot, e.Kind)
	default:
		t.Fatal("subscriber b received nothing")
	}
}

func TestPublish_ShouldDropRatherThanBlockOnAFullSubscriber(t *testing.T) {
	h := New()
	sub := h.Subscribe()

	for i := 0; i < 20; i++ {
		h.Publish(Event{Kind: KindLayout})
	}

	count := 0
drain:
	for {
		select {
		case <-sub:
			count++
		default:
			break drain
		}
	}
	assert.LessOrEqual(t, count, 8)
}

func TestUnsubscribe_ShouldCloseTheChannelAndStopDelivery(t *testing.T) {
	h := New()
	sub := h.Subscribe()

	h.Unsubscribe(sub)
	h.Publish(Event{Kind: KindSnapshot})

	_, open := <-sub
	assert.False(t, open)
}

func TestUnsubscribe_ShouldBeANoOpForAnUnknownChannel(t *testing.T) {
	h := New()
	other := New()
	sub := other.Subscribe()

	assert.NotPanics(t, func() { h.Unsubscribe(sub) })
}

func TestClose_ShouldCloseAllSubscriberChannels(t *testing.T) {
	h := New()
	a := h.Subscribe()
	b := h.Subscribe()

	h.Close()

	_, openA := <-a
	_, openB := <-b
	assert.False(t, openA)
	assert.False(t, openB)
}

func TestPumpSnapshots_ShouldForwardUntilTheSourceCloses(t *testing.T) {
	h := New()
	sub := h.Subscribe()
	in := make(chan *snapshot.Snapshot, 1)
	in <- &snapshot.Snapshot{Generation: 3}
	close(in)

	h.PumpSnapshots(context.Background(), in)

	select {
	case e := <-sub:
		require.Equal(t, KindSnapshot, e.Kind)
		assert.Equal(t, uint64(3), e.Snapshot.Generation)
	case <-time.After(time.Second):
		t.Fatal("expected a forwarded snapshot event")
	}
}

func TestPumpSnapshots_ShouldStopWhenContextIsCancelled(t *testing.T) {
	h := New()
	in := make(chan *snapshot.Snapshot)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		h.PumpSnapshots(ctx, in)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("PumpSnapshots did not return after context cancellation")
	}
}
