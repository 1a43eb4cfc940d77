package xfs

import (
	"bytes"
	"context"
	"slices"

	"github.com/mtth/xfs/internal/except"
	"golang.org/x/sync/semaphore"
)

// Future is the result of an operation running on a background goroutine. It resolves exactly once.
type Future[T any] struct {
	done chan struct{}
	val  T
}

// Wait blocks until the future resolves and returns its value. Subsequent calls return the same
// value immediately.
func (f *Future[T]) Wait() T {
	<-f.done
	return f.val
}

// Done returns a channel which is closed once the future resolves.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Ready returns true iff the future has resolved. It never blocks.
func (f *Future[T]) Ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Dispatcher spawns the goroutines backing futures. The nil and zero dispatchers are unbounded: every
// task starts running immediately and nothing limits how many run at once.
type Dispatcher struct {
	sem *semaphore.Weighted
}

// NewDispatcher returns a dispatcher running at most maxTasks tasks concurrently. Tasks over the
// limit still get their own goroutine, which waits for a slot. Non-positive limits are unbounded.
func NewDispatcher(maxTasks int64) *Dispatcher {
	if maxTasks <= 0 {
		return &Dispatcher{}
	}
	return &Dispatcher{sem: semaphore.NewWeighted(maxTasks)}
}

// Dispatch runs fn on a new goroutine. The returned future resolves to fn's result. There is no way
// to cancel fn once dispatched.
func Dispatch[T any](d *Dispatcher, fn func() T) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		if d != nil && d.sem != nil {
			// Acquisition only fails when its context is done.
			except.Require(d.sem.Acquire(context.Background(), 1))
			defer d.sem.Release(1)
		}
		f.val = fn()
	}()
	return f
}

// AsyncFileReader runs FileReader operations in the background. Arguments are copied before
// returning, results are delivered via futures.
type AsyncFileReader struct {
	Reader     FileReader
	Dispatcher *Dispatcher
}

// ReadAllBytes is the asynchronous counterpart of FileReader.ReadAllBytes.
func (r AsyncFileReader) ReadAllBytes(fp string) *Future[[]byte] {
	return Dispatch(r.Dispatcher, func() []byte { return r.Reader.ReadAllBytes(fp) })
}

// ReadAllText is the asynchronous counterpart of FileReader.ReadAllText.
func (r AsyncFileReader) ReadAllText(fp string) *Future[string] {
	return Dispatch(r.Dispatcher, func() string { return r.Reader.ReadAllText(fp) })
}

// ReadAllLines is the asynchronous counterpart of FileReader.ReadAllLines.
func (r AsyncFileReader) ReadAllLines(fp string) *Future[[]string] {
	return Dispatch(r.Dispatcher, func() []string { return r.Reader.ReadAllLines(fp) })
}

// ReadBlock is the asynchronous counterpart of FileReader.ReadBlock.
func (r AsyncFileReader) ReadBlock(fp string, size int, offset int64) *Future[[]byte] {
	return Dispatch(r.Dispatcher, func() []byte { return r.Reader.ReadBlock(fp, size, offset) })
}

// QueryFileSize is the asynchronous counterpart of FileReader.QueryFileSize.
func (r AsyncFileReader) QueryFileSize(fp string) *Future[int64] {
	return Dispatch(r.Dispatcher, func() int64 { return r.Reader.QueryFileSize(fp) })
}

// AsyncFileWriter runs FileWriter operations in the background. Data is copied before returning, so
// callers may reuse their buffers immediately. Concurrent writes to the same file are not serialized.
type AsyncFileWriter struct {
	Writer     FileWriter
	Dispatcher *Dispatcher
}

// WriteAllBytes is the asynchronous counterpart of FileWriter.WriteAllBytes.
func (w AsyncFileWriter) WriteAllBytes(fp string, data []byte) *Future[bool] {
	data = bytes.Clone(data)
	return Dispatch(w.Dispatcher, func() bool { return w.Writer.WriteAllBytes(fp, data) })
}

// WriteAllText is the asynchronous counterpart of FileWriter.WriteAllText.
func (w AsyncFileWriter) WriteAllText(fp string, text string) *Future[bool] {
	return Dispatch(w.Dispatcher, func() bool { return w.Writer.WriteAllText(fp, text) })
}

// WriteAllLines is the asynchronous counterpart of FileWriter.WriteAllLines.
func (w AsyncFileWriter) WriteAllLines(fp string, lines []string) *Future[bool] {
	lines = slices.Clone(lines)
	return Dispatch(w.Dispatcher, func() bool { return w.Writer.WriteAllLines(fp, lines) })
}

// WriteBlock is the asynchronous counterpart of FileWriter.WriteBlock.
func (w AsyncFileWriter) WriteBlock(fp string, data []byte, offset int64) *Future[bool] {
	data = bytes.Clone(data)
	return Dispatch(w.Dispatcher, func() bool { return w.Writer.WriteBlock(fp, data, offset) })
}
