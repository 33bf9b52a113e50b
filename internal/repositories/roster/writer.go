package roster

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
)

const writerWriteTimeout = 10 * time.Second

type writeOp struct {
	key    string
	value  string
	delete bool
}

type flushWaiter struct {
	target uint64
	done   chan struct{}
}

// backgroundWriter applies writes to a store on its own goroutine. Callers
// never wait on the store: only the latest pending write per key is kept, and
// a slow store simply coalesces more of them. Failures are logged and dropped.
type backgroundWriter struct {
	store Store
	wake  chan struct{}

	mu      sync.Mutex
	pending map[string]writeOp
	order   []string
	queued  uint64
	applied uint64
	waiters []flushWaiter
	closed  bool
	wg      sync.WaitGroup
}

func newBackgroundWriter(store Store) *backgroundWriter {
	w := &backgroundWriter{
		store:   store,
		wake:    make(chan struct{}, 1),
		pending: make(map[string]writeOp),
	}
	w.wg.Add(1)
	go w.run()
	return w
}

func (w *backgroundWriter) run() {
	defer w.wg.Done()

	for {
		ops, gen, ok := w.next()
		if !ok {
			return
		}
		for _, op := range ops {
			w.apply(op)
		}
		w.markApplied(gen)
	}
}

// next waits for pending writes and takes them in the order their keys were
// first queued. It reports false once the writer is closed and drained.
func (w *backgroundWriter) next() ([]writeOp, uint64, bool) {
	w.mu.Lock()
	for len(w.order) == 0 {
		if w.closed {
			w.mu.Unlock()
			return nil, 0, false
		}
		w.mu.Unlock()
		<-w.wake
		w.mu.Lock()
	}

	ops := make([]writeOp, 0, len(w.order))
	for _, key := range w.order {
		ops = append(ops, w.pending[key])
	}
	gen := w.queued
	w.pending = make(map[string]writeOp)
	w.order = nil
	w.mu.Unlock()

	return ops, gen, true
}

func (w *backgroundWriter) markApplied(gen uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.applied = gen
	remaining := w.waiters[:0]
	for _, waiter := range w.waiters {
		if waiter.target <= gen {
			close(waiter.done)
			continue
		}
		remaining = append(remaining, waiter)
	}
	w.waiters = remaining
}

func (w *backgroundWriter) apply(op writeOp) {
	ctx, cancel := context.WithTimeout(context.Background(), writerWriteTimeout)
	defer cancel()

	var err error
	if op.delete {
		err = w.store.Delete(ctx, op.key)
	} else {
		err = w.store.Set(ctx, op.key, op.value)
	}
	if err != nil {
		slog.Warn("durable store write failed",
			"key", op.key,
			"delete", op.delete,
			"error", err)
	}
}

func (w *backgroundWriter) enqueue(op writeOp) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return false
	}
	if _, ok := w.pending[op.key]; !ok {
		w.order = append(w.order, op.key)
	}
	w.pending[op.key] = op
	w.queued++
	w.signal()
	return true
}

func (w *backgroundWriter) signal() {
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Set queues a write of value under key
func (w *backgroundWriter) Set(key, value string) {
	if !w.enqueue(writeOp{key: key, value: value}) {
		slog.Warn("durable store writer closed, dropping write", "key", key)
	}
}

// Delete queues a delete of key
func (w *backgroundWriter) Delete(key string) {
	if !w.enqueue(writeOp{key: key, delete: true}) {
		slog.Warn("durable store writer closed, dropping delete", "key", key)
	}
}

// Flush waits until every write queued before the call has been applied
func (w *backgroundWriter) Flush(ctx context.Context) error {
	w.mu.Lock()
	if w.closed || w.applied >= w.queued {
		w.mu.Unlock()
		return nil
	}
	done := make(chan struct{})
	w.waiters = append(w.waiters, flushWaiter{target: w.queued, done: done})
	w.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "flush interrupted")
	}
}

// Close applies the pending writes and stops the goroutine
func (w *backgroundWriter) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.signal()
	w.mu.Unlock()

	w.wg.Wait()

	w.mu.Lock()
	for _, waiter := range w.waiters {
		close(waiter.done)
	}
	w.waiters = nil
	w.mu.Unlock()
}
