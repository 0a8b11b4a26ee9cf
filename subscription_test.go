package rx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUnsubscribeIsIdempotent(t *testing.T) {
	teardowns := 0
	obs := Create(func(sub *Subscriber) {
		sub.Add(func() { teardowns++ })
	})

	sub := obs.Subscribe(Observer{})
	sub.Unsubscribe()
	sub.Unsubscribe()
	sub.Unsubscribe()

	assert.Equal(t, 1, teardowns, "teardown must run exactly once")
	assert.True(t, sub.Closed())
}

func TestTeardownOrderAndOnce(t *testing.T) {
	var order []string
	obs := Create(func(sub *Subscriber) {
		sub.Add(func() { order = append(order, "first") })
		sub.Add(func() { order = append(order, "second") })
	})

	obs.Subscribe(Observer{}).Unsubscribe()
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestAddAfterCloseRunsImmediately(t *testing.T) {
	sub := &Subscription{}
	sub.Unsubscribe()

	ran := false
	sub.Add(func() { ran = true })
	assert.True(t, ran, "a teardown added to a closed subscription runs immediately")
}

func TestNoDeliveryAfterUnsubscribe(t *testing.T) {
	r := record()
	sub := Interval(5 * time.Millisecond).Subscribe(r.observer())

	time.Sleep(12 * time.Millisecond)
	sub.Unsubscribe()
	seen := len(r.snapshot())

	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, seen, len(r.snapshot()), "no handler may fire after unsubscription")
	assert.False(t, r.isCompleted())
	assert.NoError(t, r.lastErr())
}

func TestSubscriptionClosesOnError(t *testing.T) {
	r := record()
	sub := Create(func(s *Subscriber) {
		s.Error(assert.AnError)
	}).Subscribe(r.observer())

	assert.True(t, sub.Closed())
	assert.ErrorIs(t, r.lastErr(), assert.AnError)
}

func TestErrorRunsTeardownBeforeLeavingResources(t *testing.T) {
	released := false
	Create(func(s *Subscriber) {
		s.Add(func() { released = true })
		s.Error(assert.AnError)
	}).Subscribe(record().observer())

	assert.True(t, released)
}
