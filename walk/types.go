package walk

import (
	"context"
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("walk: invalid option supplied")

// Option configures Walk behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a Walk.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called whenever a remaining partition is queued for
	// further exploration.
	OnEnqueue func(r IndexRegion)

	// MaxCuboids, if > 0, stops the walk after this many maximal AABBs
	// have been emitted.
	MaxCuboids int

	err error
}

// DefaultOptions returns Options with sane defaults: Context.Background(),
// no cuboid limit, and a no-op OnEnqueue hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnEnqueue:  func(IndexRegion) {},
		MaxCuboids: 0,
		err:        nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run whenever a remaining partition
// is queued.
func WithOnEnqueue(fn func(r IndexRegion)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithMaxCuboids stops the walk after n cuboids have been emitted.
//
//	n > 0: stop after n cuboids
//	n == 0: explicit no limit
//	n < 0: invalid option -> ErrOptionViolation
func WithMaxCuboids(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxCuboids cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.MaxCuboids = n
		}
	}
}

// IndexRegion names a box in grid-position space rather than coordinate
// space: X1/Y1/Z1 are the inclusive lower edge positions on each axis,
// X2/Y2/Z2 the exclusive upper edge positions. A region's origin is
// (X1,Y1,Z1); its upper bound (X2,Y2,Z2) is never itself a cuboid origin.
type IndexRegion struct {
	X1, X2 int
	Y1, Y2 int
	Z1, Z2 int
}

// indexRegionQueue is a growable FIFO of IndexRegion with amortized
// constant-time push/pop, backed by a circular buffer that doubles when
// full.
type indexRegionQueue struct {
	head, tail int
	elements   []IndexRegion
}

const queueMinSize = 8

func newIndexRegionQueue() *indexRegionQueue {
	return &indexRegionQueue{elements: make([]IndexRegion, queueMinSize)}
}

func (q *indexRegionQueue) Len() int {
	if q.head <= q.tail {
		return q.tail - q.head
	}

	return len(q.elements[q.head:]) + len(q.elements[:q.tail])
}

func (q *indexRegionQueue) isFull() bool {
	return (q.tail+1)%len(q.elements) == q.head
}

func (q *indexRegionQueue) Push(r IndexRegion) {
	if q.isFull() {
		q.grow()
	}
	q.elements[q.tail] = r
	q.tail = (q.tail + 1) % len(q.elements)
}

func (q *indexRegionQueue) Pop() (IndexRegion, bool) {
	if q.Len() == 0 {
		return IndexRegion{}, false
	}
	r := q.elements[q.head]
	q.head = (q.head + 1) % len(q.elements)

	return r, true
}

func (q *indexRegionQueue) grow() {
	n := q.Len()
	newSize := len(q.elements) * 2
	newElements := make([]IndexRegion, newSize)

	if q.head < q.tail {
		copy(newElements, q.elements[q.head:q.tail])
	} else {
		k := copy(newElements, q.elements[q.head:])
		copy(newElements[k:], q.elements[:q.tail])
	}

	q.head = 0
	q.tail = n
	q.elements = newElements
}
