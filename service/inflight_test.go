package service

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInflight_DuplicateSubmissionJoins(t *testing.T) {
	f := NewInflight()
	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})

	action := func() string {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(started)
		}
		<-release
		return "done"
	}

	var wg sync.WaitGroup
	results := make([]string, 2)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _, _ = Run(f, "s1", "transfer", "ACC-1|ACC-2|10", action)
	}()
	<-started
	assert.True(t, f.Loading("s1", "transfer"))

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], _, _ = Run(f, "s1", "transfer", "ACC-1|ACC-2|10", action)
	}()
	require.Eventually(t, func() bool {
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.active["s1|transfer"].waiters == 2
	}, time.Second, time.Millisecond)
	// Let the second submission reach the shared call.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, []string{"done", "done"}, results)
	assert.False(t, f.Loading("s1", "transfer"))
}

func TestInflight_DifferentInputIsBusy(t *testing.T) {
	f := NewInflight()
	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		Run(f, "s1", "transfer", "a", func() int {
			close(started)
			<-release
			return 1
		})
	}()
	<-started

	_, _, err := Run(f, "s1", "transfer", "b", func() int { return 2 })
	assert.ErrorIs(t, err, ErrBusy)

	// Other sessions and other views are independent.
	v, shared, err := Run(f, "s2", "transfer", "b", func() int { return 2 })
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.False(t, shared)

	v, _, err = Run(f, "s1", "history", "b", func() int { return 3 })
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	close(release)
	<-done

	v, _, err = Run(f, "s1", "transfer", "b", func() int { return 4 })
	require.NoError(t, err)
	assert.Equal(t, 4, v)
}

func TestInflight_LateSubmissionReusesFinishedResult(t *testing.T) {
	f := NewInflight()
	slot := "s1|transfer"

	// The first caller has finished its action but not yet left the slot.
	first, err := f.enter(slot, "ACC-1|ACC-2|10")
	require.NoError(t, err)
	f.finish(first, "done")

	var calls int32
	v, shared, err := Run(f, "s1", "transfer", "ACC-1|ACC-2|10", func() string {
		atomic.AddInt32(&calls, 1)
		return "again"
	})
	require.NoError(t, err)
	assert.Equal(t, "done", v)
	assert.True(t, shared)
	assert.Zero(t, atomic.LoadInt32(&calls))

	f.leave(slot, first)
	assert.False(t, f.Loading("s1", "transfer"))

	v, shared, err = Run(f, "s1", "transfer", "ACC-1|ACC-2|10", func() string { return "fresh" })
	require.NoError(t, err)
	assert.Equal(t, "fresh", v)
	assert.False(t, shared)
}
