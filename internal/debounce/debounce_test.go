package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testDelay = 50 * time.Millisecond

func TestDebouncer_BurstFiresOnce(t *testing.T) {
	var calls atomic.Int32
	d := New(testDelay, func() { calls.Add(1) })

	for range 10 {
		d.Trigger()
		time.Sleep(testDelay / 10)
	}
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	time.Sleep(3 * testDelay)
	require.EqualValues(t, 1, calls.Load())
	require.False(t, d.Pending())
}

func TestDebouncer_SeparateQuietPeriodsFireSeparately(t *testing.T) {
	var calls atomic.Int32
	d := New(testDelay, func() { calls.Add(1) })

	d.Trigger()
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	d.Trigger()
	require.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestDebouncer_CancelDropsPendingCall(t *testing.T) {
	var calls atomic.Int32
	d := New(testDelay, func() { calls.Add(1) })

	d.Trigger()
	require.True(t, d.Pending())
	d.Cancel()
	require.False(t, d.Pending())

	time.Sleep(3 * testDelay)
	require.Zero(t, calls.Load())

	d.Trigger()
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestDebouncer_StopPreventsFutureCalls(t *testing.T) {
	var calls atomic.Int32
	d := New(testDelay, func() { calls.Add(1) })

	d.Trigger()
	d.Stop()
	d.Trigger()

	time.Sleep(3 * testDelay)
	require.Zero(t, calls.Load())
	require.False(t, d.Pending())
}
