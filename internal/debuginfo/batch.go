package debuginfo

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"pdbeval/internal/cdi"
)

// ErrSuperseded reports that a newer batch made this one's inputs stale.
var ErrSuperseded = errors.New("debug info batch superseded")

// Request names one method decode.
type Request struct {
	ID       MethodID
	ILOffset uint32
	Dialect  Dialect
}

// Result is the decode outcome for one request.
type Result struct {
	Request Request
	Info    *MethodDebugInfo
	Diags   []cdi.Diag
}

// Batch decodes many methods concurrently. Decoding one method is pure and
// holds no shared state, so requests fan out over a bounded worker group;
// the surrounding orchestration cancels through ctx, or supersedes an
// in-flight batch whose inputs changed rather than waiting on it.
type Batch struct {
	Reader   Reader
	Provider SymbolProvider
	// Cache is consulted and populated when non-nil.
	Cache *Cache
	// Workers bounds concurrency; <= 0 means unbounded.
	Workers int

	gen atomic.Uint64
}

// Supersede marks every in-flight Decode stale. Workers stop picking up
// requests and the superseded call returns ErrSuperseded.
func (b *Batch) Supersede() {
	b.gen.Add(1)
}

// Decode runs all requests and returns results in request order. It stops
// early on context cancellation or supersession; results already decoded
// when that happens are discarded along with the error.
func (b *Batch) Decode(ctx context.Context, reqs []Request) ([]Result, error) {
	start := b.gen.Load()
	results := make([]Result, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	if b.Workers > 0 {
		g.SetLimit(b.Workers)
	}
	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if b.gen.Load() != start {
				return ErrSuperseded
			}

			key := CacheKey{ID: req.ID, Dialect: req.Dialect}
			if b.Cache != nil {
				if info, ok := b.Cache.Lookup(key, req.ILOffset); ok {
					results[i] = Result{Request: req, Info: info}
					return nil
				}
			}
			info, diags := Read(b.Reader, b.Provider, req.ID, req.ILOffset, req.Dialect)
			if b.Cache != nil {
				b.Cache.Put(key, info)
			}
			results[i] = Result{Request: req, Info: info, Diags: diags}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
