package aggregate

import (
    "context"
    "errors"
    "fmt"
    "time"

    "github.com/sirupsen/logrus"
    "golang.org/x/sync/errgroup"

    "marketquotes/internal/provider"
    "marketquotes/internal/telemetry"
)

// Result is the outcome for one requested symbol: exactly one of Quote
// and Err is set. Symbol is always the symbol as requested.
type Result struct {
    Symbol string
    Quote  *provider.Quote
    Err    error
}

// OK reports whether the lookup produced a quote.
func (r Result) OK() bool { return r.Err == nil && r.Quote != nil }

// Message is the failure text, empty on success.
func (r Result) Message() string {
    if r.Err != nil { return r.Err.Error() }
    if r.Quote == nil { return "no quote" }
    return ""
}

// Batch holds one Result per requested symbol, in request order.
// Success only says the batch ran to completion; check each item.
type Batch struct {
    Items   []Result
    Success bool
}

// Failed counts items that did not produce a quote.
func (b Batch) Failed() int {
    n := 0
    for _, it := range b.Items {
        if !it.OK() { n++ }
    }
    return n
}

// Parser converts one raw payload into a Quote for the requested symbol.
type Parser func(payload provider.RawPayload, symbol string) (provider.Quote, error)

// Config bounds lookup concurrency and time.
type Config struct {
    // MaxConcurrency caps simultaneous lookups within one batch.
    // 0 or negative means one goroutine per symbol.
    MaxConcurrency int
    // CallTimeout bounds each single-symbol lookup. 0 disables it.
    CallTimeout time.Duration
    // BatchTimeout bounds a whole FetchMany. 0 disables it.
    BatchTimeout time.Duration
}

// Aggregator composes a Source and a Parser into single and batched lookups.
// It holds no per-request state and is safe for concurrent use.
type Aggregator struct {
    src   provider.Source
    parse Parser
    cfg   Config
    log   logrus.FieldLogger
}

// New returns an Aggregator over src and parse. A nil log uses the
// standard logger.
func New(src provider.Source, parse Parser, cfg Config, log logrus.FieldLogger) *Aggregator {
    if log == nil { log = logrus.StandardLogger() }
    return &Aggregator{src: src, parse: parse, cfg: cfg, log: log}
}

// FetchOne looks up one symbol. It never fails: fetch and parse errors,
// and panics below it, come back as Result.Err.
func (a *Aggregator) FetchOne(ctx context.Context, symbol string) (res Result) {
    defer func() {
        if rec := recover(); rec != nil {
            res = Result{Symbol: symbol, Err: fmt.Errorf("lookup %s: panic: %v", symbol, rec)}
        }
        telemetry.QuoteLookup(res.OK())
    }()

    if a.cfg.CallTimeout > 0 {
        var cancel context.CancelFunc
        ctx, cancel = context.WithTimeout(ctx, a.cfg.CallTimeout)
        defer cancel()
    }

    payload, err := a.src.Fetch(ctx, symbol)
    if err != nil {
        var fe *provider.FetchError
        if !errors.As(err, &fe) {
            err = &provider.FetchError{Symbol: symbol, Err: err}
        }
        a.log.WithFields(logrus.Fields{"symbol": symbol, "error": err}).Warn("quote fetch failed")
        return Result{Symbol: symbol, Err: err}
    }

    q, err := a.parse(payload, symbol)
    if err != nil {
        a.log.WithFields(logrus.Fields{"symbol": symbol, "error": err}).Warn("quote parse failed")
        return Result{Symbol: symbol, Err: err}
    }
    return Result{Symbol: symbol, Quote: &q}
}

// FetchMany runs one FetchOne per entry, duplicates included, waits for
// all of them and returns the results in input order. One item failing
// never cancels or hides its siblings.
func (a *Aggregator) FetchMany(ctx context.Context, symbols []string) Batch {
    items := make([]Result, len(symbols))
    if len(symbols) == 0 {
        return Batch{Items: items, Success: true}
    }

    if a.cfg.BatchTimeout > 0 {
        var cancel context.CancelFunc
        ctx, cancel = context.WithTimeout(ctx, a.cfg.BatchTimeout)
        defer cancel()
    }

    // Plain Group on purpose: errgroup.WithContext would cancel siblings.
    var g errgroup.Group
    if a.cfg.MaxConcurrency > 0 { g.SetLimit(a.cfg.MaxConcurrency) }
    start := time.Now()
    for i, sym := range symbols {
        g.Go(func() error {
            items[i] = a.FetchOne(ctx, sym)
            return nil
        })
    }
    _ = g.Wait()

    b := Batch{Items: items, Success: true}
    a.log.WithFields(logrus.Fields{
        "symbols": len(symbols),
        "failed":  b.Failed(),
        "took":    time.Since(start).String(),
    }).Debug("batch complete")
    return b
}
