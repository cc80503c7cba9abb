package provider

import (
    "context"
    "fmt"
)

// Quote is the normalized shape built from one upstream payload.
// Values are never mutated after construction.
type Quote struct {
    Symbol        string  `json:"symbol"`
    DisplayName   string  `json:"name"`
    Price         float64 `json:"price"`
    ChangePercent float64 `json:"change_percent"`
}

// RawPayload is the unparsed upstream response body for one symbol.
type RawPayload []byte

// Source performs one upstream call for a single symbol.
type Source interface {
    Name() string
    Fetch(ctx context.Context, symbol string) (RawPayload, error)
}

// FetchError reports a transport failure reaching the upstream provider.
type FetchError struct {
    Symbol string
    Err    error
}

func (e *FetchError) Error() string {
    return fmt.Sprintf("fetch %s: %v", e.Symbol, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports a payload that does not have the expected structure.
type ParseError struct {
    Symbol string
    Reason string
    Err    error
}

func (e *ParseError) Error() string {
    if e.Err != nil {
        return fmt.Sprintf("parse %s: %s: %v", e.Symbol, e.Reason, e.Err)
    }
    return fmt.Sprintf("parse %s: %s", e.Symbol, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }
