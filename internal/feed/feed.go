package feed

import (
	"context"
	"errors"
	"sync"
)

// State describes where a Paginator is in its load cycle.
type State int

const (
	// StateIdle means no fetch has been issued for the current filter.
	StateIdle State = iota
	// StateLoading means a fetch is in flight.
	StateLoading
	// StateLoaded means at least one page is accumulated and more remain.
	StateLoaded
	// StateExhausted means every page for the current filter is loaded.
	StateExhausted
	// StateError means the last fetch failed; Retry re-fetches the same page.
	StateError
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateExhausted:
		return "exhausted"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// ErrFetchInProgress is returned by LoadMore when a fetch is already in
// flight. Rapid repeat triggers are expected to ignore it.
var ErrFetchInProgress = errors.New("feed: fetch already in progress")

// Page is one fetched slice of results.
type Page[T any] struct {
	Items      []T
	TotalPages int
}

// FetchFunc loads one page of results for the given filter signature.
type FetchFunc[T any] func(ctx context.Context, filterSig string, page int) (Page[T], error)

// Paginator accumulates pages of results for a single filter, one fetch
// at a time. It guarantees:
//
//   - at most one fetch in flight (duplicate triggers get ErrFetchInProgress);
//   - accumulated items are de-duplicated by key across pages;
//   - a Reset invalidates any in-flight fetch; its result is discarded
//     instead of being merged into the new filter's accumulation;
//   - a failed fetch keeps the accumulation intact and Retry re-fetches
//     the same page.
type Paginator[T any, K comparable] struct {
	fetch FetchFunc[T]
	key   func(T) K

	mu         sync.Mutex
	filterSig  string
	generation uint64
	page       int // last successfully loaded page
	state      State
	inFlight   bool
	items      []T
	seen       map[K]struct{}
	lastErr    error
}

// New creates a Paginator in StateIdle with an empty filter signature.
// key extracts the de-duplication key from an item.
func New[T any, K comparable](fetch FetchFunc[T], key func(T) K) *Paginator[T, K] {
	return &Paginator[T, K]{
		fetch: fetch,
		key:   key,
		seen:  make(map[K]struct{}),
	}
}

// Reset switches the paginator to a new filter signature: the
// accumulation empties, pagination restarts at page 1, and any in-flight
// fetch result is discarded when it lands.
func (p *Paginator[T, K]) Reset(filterSig string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.filterSig = filterSig
	p.generation++
	p.page = 0
	p.state = StateIdle
	p.items = nil
	p.seen = make(map[K]struct{})
	p.lastErr = nil
}

// LoadMore fetches the next page for the current filter and merges it
// into the accumulation. It is a no-op returning nil when the feed is
// exhausted, and returns ErrFetchInProgress when a fetch is already in
// flight.
func (p *Paginator[T, K]) LoadMore(ctx context.Context) error {
	return p.load(ctx, false)
}

// Retry re-fetches the page that last failed. When the paginator is not
// in StateError it behaves like LoadMore.
func (p *Paginator[T, K]) Retry(ctx context.Context) error {
	return p.load(ctx, true)
}

func (p *Paginator[T, K]) load(ctx context.Context, retry bool) error {
	p.mu.Lock()
	if p.inFlight {
		p.mu.Unlock()
		return ErrFetchInProgress
	}
	if p.state == StateExhausted {
		p.mu.Unlock()
		return nil
	}
	if p.state == StateError && !retry {
		// After a failure the caller must explicitly Retry (or Reset);
		// scroll triggers must not hammer a failing backend.
		err := p.lastErr
		p.mu.Unlock()
		return err
	}

	nextPage := p.page + 1
	gen := p.generation
	sig := p.filterSig
	p.inFlight = true
	p.state = StateLoading
	p.mu.Unlock()

	result, err := p.fetch(ctx, sig, nextPage)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.inFlight = false
	if p.generation != gen {
		// The filter changed while this fetch was in flight; the result
		// belongs to the old filter and must not be merged.
		return nil
	}

	if err != nil {
		p.state = StateError
		p.lastErr = err
		return err
	}

	p.lastErr = nil
	for _, item := range result.Items {
		k := p.key(item)
		if _, dup := p.seen[k]; dup {
			continue
		}
		p.seen[k] = struct{}{}
		p.items = append(p.items, item)
	}
	p.page = nextPage

	if len(result.Items) == 0 || nextPage >= result.TotalPages {
		p.state = StateExhausted
	} else {
		p.state = StateLoaded
	}
	return nil
}

// Drain loads pages until the feed is exhausted or a fetch fails, and
// returns the full accumulation.
func (p *Paginator[T, K]) Drain(ctx context.Context) ([]T, error) {
	for p.State() != StateExhausted {
		if err := p.LoadMore(ctx); err != nil {
			return p.Items(), err
		}
		if err := ctx.Err(); err != nil {
			return p.Items(), err
		}
	}
	return p.Items(), nil
}

// Items returns a copy of the accumulated results in load order.
func (p *Paginator[T, K]) Items() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]T, len(p.items))
	copy(out, p.items)
	return out
}

// State returns the current load state.
func (p *Paginator[T, K]) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Err returns the error recorded by the last failed fetch, or nil.
func (p *Paginator[T, K]) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

// Page returns the number of the last successfully loaded page
// (0 before the first load).
func (p *Paginator[T, K]) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}
