package shutdown

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	order []string
}

func (r *recorder) add(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = append(r.order, name)
}

type component struct {
	name  string
	rec   *recorder
	delay time.Duration
}

func (c *component) Shutdown() {
	time.Sleep(c.delay)
	c.rec.add(c.name)
}

func TestShutdownRunsNewestFirst(t *testing.T) {
	rec := &recorder{}
	m := NewManager(nil)
	m.Register(&component{name: "first", rec: rec})
	m.Register(&component{name: "second", rec: rec})

	m.Shutdown()

	assert.Equal(t, []string{"second", "first"}, rec.order)
}

func TestShutdownIsIdempotent(t *testing.T) {
	rec := &recorder{}
	m := NewManager(nil)
	m.Register(&component{name: "only", rec: rec})

	m.Shutdown()
	m.Shutdown()

	assert.Len(t, rec.order, 1)
}

func TestShutdownCancelsContext(t *testing.T) {
	m := NewManager(nil)
	require.NoError(t, m.ctx.Err())

	m.Shutdown()
	require.ErrorIs(t, m.ctx.Err(), context.Canceled)
}

func TestShutdownTimesOutSlowComponent(t *testing.T) {
	rec := &recorder{}
	m := NewManager(nil)
	m.SetTimeout(10 * time.Millisecond)
	m.Register(&component{name: "fast", rec: rec})
	m.Register(&component{name: "slow", rec: rec, delay: time.Second})

	start := time.Now()
	m.Shutdown()

	assert.Less(t, time.Since(start), 500*time.Millisecond)
	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, []string{"fast"}, rec.order)
}

func TestListenReturnsAfterShutdown(t *testing.T) {
	m := NewManager(nil)
	called := false
	m.Listen(func() { called = true })

	m.Shutdown()
	time.Sleep(10 * time.Millisecond)

	assert.False(t, called, "callback only runs on a signal")
}
