package gate

import (
    "context"
    "fmt"

    "golang.org/x/sync/semaphore"

    "marketquotes/internal/provider"
)

// Gate wraps a Source and caps how many upstream calls may be in flight
// at once across every caller in the process. Callers over the cap wait
// for a slot or give up when their context ends. Calls are never delayed
// once a slot is free, so this is admission control, not rate limiting.
type Gate struct {
    P   provider.Source
    sem *semaphore.Weighted
}

// New returns p unchanged when maxInFlight <= 0.
func New(p provider.Source, maxInFlight int) provider.Source {
    if maxInFlight <= 0 { return p }
    return &Gate{P: p, sem: semaphore.NewWeighted(int64(maxInFlight))}
}

func (g *Gate) Name() string { return g.P.Name() }

func (g *Gate) Fetch(ctx context.Context, symbol string) (provider.RawPayload, error) {
    if err := g.sem.Acquire(ctx, 1); err != nil {
        return nil, &provider.FetchError{Symbol: symbol, Err: fmt.Errorf("waiting for upstream slot: %w", err)}
    }
    defer g.sem.Release(1)
    return g.P.Fetch(ctx, symbol)
}
