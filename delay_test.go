package rx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelayPreservesOrderAndShifts(t *testing.T) {
	const d = 30 * time.Millisecond
	start := time.Now()
	r := record()
	Pipe(Of(1, 2, 3), Delay(d)).Subscribe(r.observer())

	require.True(t, r.wait(time.Second))
	assert.Equal(t, []any{1, 2, 3}, r.snapshot())
	assert.True(t, r.isCompleted())
	assert.GreaterOrEqual(t, time.Since(start), d, "nothing may arrive before the delay elapses")
}

func TestDelayEmitsNothingSynchronously(t *testing.T) {
	r := record()
	Pipe(Of(1), Delay(20*time.Millisecond)).Subscribe(r.observer())
	assert.Empty(t, r.snapshot(), "delayed values must not arrive inside Subscribe")
	require.True(t, r.wait(time.Second))
}

func TestDelayCancelDropsPending(t *testing.T) {
	r := record()
	sub := Pipe(Of(1, 2), Delay(40*time.Millisecond)).Subscribe(r.observer())
	sub.Unsubscribe()

	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, r.snapshot(), "unsubscribing cancels pending delayed emissions")
	assert.False(t, r.isCompleted())
}

func TestDelayErrorIsImmediate(t *testing.T) {
	source := Create(func(sub *Subscriber) {
		sub.Next(1)
		sub.Error(assert.AnError)
	})

	start := time.Now()
	r := record()
	Pipe(source, Delay(100*time.Millisecond)).Subscribe(r.observer())

	require.True(t, r.wait(time.Second))
	assert.ErrorIs(t, r.lastErr(), assert.AnError)
	assert.Less(t, time.Since(start), 90*time.Millisecond, "errors skip the delay queue")
	assert.Empty(t, r.snapshot(), "values pending behind the error are dropped")
}
