package alphavantage

import (
    "encoding/json"
    "strconv"
    "strings"

    "github.com/shopspring/decimal"

    "marketquotes/internal/provider"
)

// displaySuffix is appended to the requested symbol to form DisplayName.
const displaySuffix = " Corp"

// response is the GLOBAL_QUOTE envelope. Alpha Vantage answers quota and
// key problems with 200 plus one of the message fields instead of a quote.
type response struct {
    GlobalQuote  *globalQuote `json:"Global Quote"`
    Information  string       `json:"Information"`
    Note         string       `json:"Note"`
    ErrorMessage string       `json:"Error Message"`
}

type globalQuote struct {
    Symbol        *string `json:"01. symbol"`
    Price         *string `json:"05. price"`
    ChangePercent *string `json:"10. change percent"`
}

type parseOptions struct {
    strictNumbers bool
}

// ParseOption tunes Parse.
type ParseOption func(*parseOptions)

// WithStrictNumbers makes an unparsable price or change percent a
// ParseError instead of a silent 0.
func WithStrictNumbers() ParseOption {
    return func(o *parseOptions) { o.strictNumbers = true }
}

// NewParser binds options into a parser usable by the aggregator.
func NewParser(opts ...ParseOption) func(provider.RawPayload, string) (provider.Quote, error) {
    return func(payload provider.RawPayload, symbol string) (provider.Quote, error) {
        return Parse(payload, symbol, opts...)
    }
}

// Parse turns a GLOBAL_QUOTE payload into a Quote for requestedSymbol.
// Quote.Symbol is the provider's spelling; DisplayName is always derived
// from requestedSymbol.
//
// Numeric fields are lenient by default: a price or change percent that
// does not parse becomes 0 without an error, so a quote of 0 can mean
// "upstream sent garbage". Use WithStrictNumbers to reject those payloads.
func Parse(payload provider.RawPayload, requestedSymbol string, opts ...ParseOption) (provider.Quote, error) {
    var o parseOptions
    for _, opt := range opts { opt(&o) }

    var resp response
    if err := json.Unmarshal(payload, &resp); err != nil {
        return provider.Quote{}, &provider.ParseError{Symbol: requestedSymbol, Reason: "decoding payload", Err: err}
    }
    gq := resp.GlobalQuote
    if gq == nil {
        reason := "missing \"Global Quote\""
        if msg := upstreamMessage(resp); msg != "" { reason += ": " + msg }
        return provider.Quote{}, &provider.ParseError{Symbol: requestedSymbol, Reason: reason}
    }
    // An empty object is what Alpha Vantage returns for unknown symbols.
    if gq.Symbol == nil || gq.Price == nil || gq.ChangePercent == nil {
        return provider.Quote{}, &provider.ParseError{Symbol: requestedSymbol, Reason: "incomplete \"Global Quote\""}
    }

    price, ok := parseNumber(*gq.Price)
    if !ok && o.strictNumbers {
        return provider.Quote{}, &provider.ParseError{Symbol: requestedSymbol, Reason: "invalid price " + strconv.Quote(*gq.Price)}
    }
    change, ok := parseNumber(strings.TrimRight(*gq.ChangePercent, "%"))
    if !ok && o.strictNumbers {
        return provider.Quote{}, &provider.ParseError{Symbol: requestedSymbol, Reason: "invalid change percent " + strconv.Quote(*gq.ChangePercent)}
    }

    sym := strings.TrimSpace(*gq.Symbol)
    if sym == "" { sym = requestedSymbol }
    return provider.Quote{
        Symbol:        sym,
        DisplayName:   requestedSymbol + displaySuffix,
        Price:         price,
        ChangePercent: change,
    }, nil
}

// parseNumber returns 0,false when s is not a decimal number.
func parseNumber(s string) (float64, bool) {
    d, err := decimal.NewFromString(s)
    if err != nil { return 0, false }
    f, _ := d.Float64()
    return f, true
}

func upstreamMessage(r response) string {
    switch {
    case r.ErrorMessage != "":
        return r.ErrorMessage
    case r.Information != "":
        return r.Information
    case r.Note != "":
        return r.Note
    }
    return ""
}
