package collective

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Root is the rank that owns the data of every collective.
const Root = 0

var (
	// ErrSize is returned for groups of fewer than one rank and for scatter
	// buffers whose length differs from the group size.
	ErrSize = errors.New("collective: size mismatch")
	// ErrMismatch is returned when ranks disagree on the sequence of
	// collectives.
	ErrMismatch = errors.New("collective: mismatched collective")
)

// envelope is the unit moved between ranks.
type envelope struct {
	seq     int
	from    int
	payload any
}

type group struct {
	size int
	down []chan envelope // root to rank r
	up   chan envelope   // any rank to root
}

// Comm is one rank's handle on the group. It is not safe for use by more
// than one goroutine.
type Comm struct {
	rank int
	seq  int
	g    *group
}

// Rank returns this rank's index in [0, Size).
func (c *Comm) Rank() int { return c.rank }

// Size returns the number of ranks in the group.
func (c *Comm) Size() int { return c.g.size }

// IsRoot reports whether this rank is Root.
func (c *Comm) IsRoot() bool { return c.rank == Root }

// Run starts size ranks, each calling fn with its own Comm, and waits for all
// of them. It returns the first non-nil error.
func Run(ctx context.Context, size int, fn func(ctx context.Context, c *Comm) error) error {
	if size < 1 {
		return fmt.Errorf("%w: group of %d ranks", ErrSize, size)
	}
	g := &group{
		size: size,
		down: make([]chan envelope, size),
		up:   make(chan envelope, size),
	}
	for r := range g.down {
		g.down[r] = make(chan envelope, 1)
	}

	eg, egCtx := errgroup.WithContext(ctx)
	for r := 0; r < size; r++ {
		c := &Comm{rank: r, g: g}
		eg.Go(func() error {
			if err := fn(egCtx, c); err != nil {
				return fmt.Errorf("rank %d: %w", c.rank, err)
			}
			return nil
		})
	}
	return eg.Wait()
}

func (c *Comm) next() int {
	c.seq++
	return c.seq
}

func send(ctx context.Context, ch chan<- envelope, e envelope) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case ch <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func recv[T any](ctx context.Context, ch <-chan envelope, seq int) (envelope, T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return envelope{}, zero, err
	}
	select {
	case e := <-ch:
		if e.seq != seq {
			return e, zero, fmt.Errorf("%w: got collective #%d from rank %d, want #%d", ErrMismatch, e.seq, e.from, seq)
		}
		v, ok := e.payload.(T)
		if !ok {
			return e, zero, fmt.Errorf("%w: rank %d sent %T, want %T", ErrMismatch, e.from, e.payload, zero)
		}
		return e, v, nil
	case <-ctx.Done():
		return envelope{}, zero, ctx.Err()
	}
}

// Bcast copies *v from Root into *v on every other rank.
func Bcast[T any](ctx context.Context, c *Comm, v *T) error {
	seq := c.next()
	if c.IsRoot() {
		for r := 1; r < c.g.size; r++ {
			if err := send(ctx, c.g.down[r], envelope{seq: seq, from: Root, payload: *v}); err != nil {
				return err
			}
		}
		return nil
	}
	_, got, err := recv[T](ctx, c.g.down[c.rank], seq)
	if err != nil {
		return err
	}
	*v = got
	return nil
}

// Scatter hands parts[r] to rank r. Only Root's parts are read; it must have
// exactly Size elements. Every rank, Root included, returns its own element.
func Scatter[T any](ctx context.Context, c *Comm, parts []T) (T, error) {
	seq := c.next()
	if c.IsRoot() {
		var zero T
		if len(parts) != c.g.size {
			return zero, fmt.Errorf("%w: scatter of %d elements over %d ranks", ErrSize, len(parts), c.g.size)
		}
		for r := 1; r < c.g.size; r++ {
			if err := send(ctx, c.g.down[r], envelope{seq: seq, from: Root, payload: parts[r]}); err != nil {
				return zero, err
			}
		}
		return parts[Root], nil
	}
	_, got, err := recv[T](ctx, c.g.down[c.rank], seq)
	return got, err
}

// Gather collects v from every rank on Root, indexed by rank regardless of
// arrival order. Non-root ranks get a nil slice.
func Gather[T any](ctx context.Context, c *Comm, v T) ([]T, error) {
	seq := c.next()
	if !c.IsRoot() {
		return nil, send(ctx, c.g.up, envelope{seq: seq, from: c.rank, payload: v})
	}
	out := make([]T, c.g.size)
	out[Root] = v
	for i := 1; i < c.g.size; i++ {
		e, got, err := recv[T](ctx, c.g.up, seq)
		if err != nil {
			return nil, err
		}
		out[e.from] = got
	}
	return out, nil
}
