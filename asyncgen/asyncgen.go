// Package asyncgen runs a blocking item producer on its own goroutine
// and exposes the items through a bounded channel. The producer is
// never cancelled mid-item; consumers stop reading whenever they like
// and the channel is always closed when the producer finishes, so the
// end of iteration is unambiguous.
package asyncgen

import (
	"context"
	"fmt"
	"iter"
	"time"
)

// retryInterval is how long the producer sleeps when the buffer is
// full before retrying the send.
const retryInterval = 10 * time.Millisecond

// Generator delivers the items of a background producer. Create one
// with New; the zero value is not usable.
type Generator[T any] struct {
	items chan T
	done  chan struct{}
	err   error
}

// Option configures a Generator.
type Option func(*options)

type options struct {
	bufferSize int
}

// WithBufferSize sets how many produced items may be buffered ahead of
// the consumer. The default is 1000.
func WithBufferSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.bufferSize = n
		}
	}
}

// New starts source on a new goroutine and returns a generator over
// its items. The items channel is closed when the source returns or
// panics, so ranging over Items always terminates.
func New[T any](source func() iter.Seq[T], opts ...Option) *Generator[T] {
	o := options{bufferSize: 1000}
	for _, opt := range opts {
		opt(&o)
	}
	g := &Generator[T]{
		items: make(chan T, o.bufferSize),
		done:  make(chan struct{}),
	}
	go g.run(source)
	return g
}

func (g *Generator[T]) run(source func() iter.Seq[T]) {
	defer close(g.items)
	defer close(g.done)
	defer func() {
		if r := recover(); r != nil {
			g.err = fmt.Errorf("generator source panicked: %v", r)
		}
	}()

	for item := range source() {
		g.put(item)
	}
}

// put delivers one item, sleeping in short intervals while the buffer
// is full. The producer therefore backs off instead of blocking
// indefinitely on a channel send, and item order is preserved because
// only the producer goroutine sends.
func (g *Generator[T]) put(item T) {
	for {
		select {
		case g.items <- item:
			return
		default:
			time.Sleep(retryInterval)
		}
	}
}

// Items returns the channel of produced items. The channel is closed
// after the last item, once the producer has finished.
func (g *Generator[T]) Items() <-chan T {
	return g.items
}

// Next returns the next item, blocking until one is available, the
// producer finishes, or ctx is done. ok is false when no more items
// will arrive.
func (g *Generator[T]) Next(ctx context.Context) (item T, ok bool, err error) {
	select {
	case item, ok = <-g.items:
		return item, ok, nil
	case <-ctx.Done():
		return item, false, ctx.Err()
	}
}

// Err reports whether the producer ended by panicking. It is valid
// once Items is closed.
func (g *Generator[T]) Err() error {
	select {
	case <-g.done:
		return g.err
	default:
		return nil
	}
}
