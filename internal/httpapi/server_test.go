package httpapi

import (
    "compress/gzip"
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "io"
    "net/http"
    "net/http/httptest"
    "strings"
    "sync"
    "testing"

    "github.com/sirupsen/logrus/hooks/test"
    "github.com/stretchr/testify/require"

    "marketquotes/internal/aggregate"
    "marketquotes/internal/provider"
    "marketquotes/internal/provider/alphavantage"
)

type fakeSource struct {
    mu    sync.Mutex
    seen  []string
    fails map[string]bool
}

func (f *fakeSource) Name() string { return "fake" }
func (f *fakeSource) Fetch(_ context.Context, symbol string) (provider.RawPayload, error) {
    f.mu.Lock(); f.seen = append(f.seen, symbol); f.mu.Unlock()
    if f.fails[symbol] { return nil, &provider.FetchError{Symbol: symbol, Err: errors.New("upstream unavailable")} }
    if symbol == "EMPTY" { return provider.RawPayload(`{}`), nil }
    return provider.RawPayload(fmt.Sprintf(`{"Global Quote":{"01. symbol":%q,"05. price":"100.5000","10. change percent":"-0.5000%%"}}`, strings.ToUpper(symbol))), nil
}

func newTestServer(t *testing.T, opts Options) (http.Handler, *fakeSource) {
    t.Helper()
    log, _ := test.NewNullLogger()
    src := &fakeSource{fails: map[string]bool{"BAD": true}}
    agg := aggregate.New(src, alphavantage.NewParser(), aggregate.Config{MaxConcurrency: 4}, log)
    if opts.AllowedOrigins == nil { opts.AllowedOrigins = []string{"*"} }
    return NewServer(agg, opts, log).Handler(), src
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
    t.Helper()
    var rd io.Reader
    if body != "" { rd = strings.NewReader(body) }
    rr := httptest.NewRecorder()
    h.ServeHTTP(rr, httptest.NewRequest(method, target, rd))
    return rr
}

func TestGetStock_OK(t *testing.T) {
    h, _ := newTestServer(t, Options{})
    rr := do(t, h, http.MethodGet, "/stock/AAPL", "")
    require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
    require.Contains(t, rr.Header().Get("Content-Type"), "application/json")

    var q map[string]any
    require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &q))
    require.Equal(t, "AAPL", q["symbol"])
    require.Equal(t, "AAPL Corp", q["name"])
    require.InDelta(t, 100.5, q["price"], 1e-9)
    require.InDelta(t, -0.5, q["change_percent"], 1e-9)
}

func TestGetStock_FailureIs404WithMessage(t *testing.T) {
    h, _ := newTestServer(t, Options{})

    rr := do(t, h, http.MethodGet, "/stock/BAD", "")
    require.Equal(t, http.StatusNotFound, rr.Code)
    var e apiError
    require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &e))
    require.Contains(t, e.Error, "upstream unavailable")

    rr = do(t, h, http.MethodGet, "/stock/EMPTY", "")
    require.Equal(t, http.StatusNotFound, rr.Code)
    require.Contains(t, rr.Body.String(), "Global Quote")
}

func TestGetStocks_DropsFailedItems(t *testing.T) {
    h, src := newTestServer(t, Options{})
    rr := do(t, h, http.MethodGet, "/stocks/AAPL,BAD,MSFT", "")
    require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

    var quotes []provider.Quote
    require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &quotes))
    require.Len(t, quotes, 2)
    require.Equal(t, "AAPL", quotes[0].Symbol)
    require.Equal(t, "MSFT", quotes[1].Symbol)
    require.ElementsMatch(t, []string{"AAPL", "BAD", "MSFT"}, src.seen)
}

func TestGetStocks_TrimsAndUnescapes(t *testing.T) {
    h, src := newTestServer(t, Options{})
    rr := do(t, h, http.MethodGet, "/stocks/%20aapl%20,,msft%2C", "")
    require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
    require.ElementsMatch(t, []string{"aapl", "msft"}, src.seen)
}

func TestGetStocks_AllFailedIsEmptyArray(t *testing.T) {
    h, _ := newTestServer(t, Options{})
    rr := do(t, h, http.MethodGet, "/stocks/BAD,EMPTY", "")
    require.Equal(t, http.StatusOK, rr.Code)
    require.JSONEq(t, `[]`, rr.Body.String())
}

func TestGetStocks_EmptyListIs404(t *testing.T) {
    h, src := newTestServer(t, Options{})
    for _, target := range []string{"/stocks/", "/stocks", "/stocks/%20,%20", "/stocks/,,"} {
        rr := do(t, h, http.MethodGet, target, "")
        require.Equal(t, http.StatusNotFound, rr.Code, target)
    }
    require.Empty(t, src.seen)
}

func TestPostBatch(t *testing.T) {
    h, _ := newTestServer(t, Options{})

    rr := do(t, h, http.MethodPost, "/stocks/batch", `{"symbols":["IBM"," ","BAD","IBM"]}`)
    require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
    var quotes []provider.Quote
    require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &quotes))
    require.Len(t, quotes, 2)

    rr = do(t, h, http.MethodPost, "/stocks/batch", `{"symbols":`)
    require.Equal(t, http.StatusBadRequest, rr.Code)

    rr = do(t, h, http.MethodPost, "/stocks/batch", `{"tickers":["IBM"]}`)
    require.Equal(t, http.StatusBadRequest, rr.Code)

    rr = do(t, h, http.MethodPost, "/stocks/batch", `{"symbols":[]}`)
    require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestTooManySymbols(t *testing.T) {
    h, src := newTestServer(t, Options{})
    list := strings.TrimSuffix(strings.Repeat("A,", maxSymbols+1), ",")
    rr := do(t, h, http.MethodGet, "/stocks/"+list, "")
    require.Equal(t, http.StatusBadRequest, rr.Code)
    require.Empty(t, src.seen)
}

func TestCORS(t *testing.T) {
    h, src := newTestServer(t, Options{AllowedOrigins: []string{"http://localhost:3000"}})

    req := httptest.NewRequest(http.MethodOptions, "/stock/AAPL", nil)
    req.Header.Set("Origin", "http://localhost:3000")
    rr := httptest.NewRecorder()
    h.ServeHTTP(rr, req)
    require.Equal(t, http.StatusNoContent, rr.Code)
    require.Empty(t, rr.Body.String())
    require.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
    require.Equal(t, "3600", rr.Header().Get("Access-Control-Max-Age"))
    require.Empty(t, src.seen)

    req = httptest.NewRequest(http.MethodGet, "/health", nil)
    req.Header.Set("Origin", "https://evil.example")
    rr = httptest.NewRecorder()
    h.ServeHTTP(rr, req)
    require.Equal(t, http.StatusOK, rr.Code)
    require.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Wildcard(t *testing.T) {
    h, _ := newTestServer(t, Options{})
    req := httptest.NewRequest(http.MethodGet, "/health", nil)
    req.Header.Set("Origin", "https://anything.example")
    rr := httptest.NewRecorder()
    h.ServeHTTP(rr, req)
    require.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestHealthAndNotFound(t *testing.T) {
    h, _ := newTestServer(t, Options{})
    rr := do(t, h, http.MethodGet, "/health", "")
    require.Equal(t, http.StatusOK, rr.Code)
    require.JSONEq(t, `{"status":"healthy"}`, rr.Body.String())

    rr = do(t, h, http.MethodGet, "/nope", "")
    require.Equal(t, http.StatusNotFound, rr.Code)
    require.JSONEq(t, `{"error":"not found"}`, rr.Body.String())

    rr = do(t, h, http.MethodDelete, "/stock/AAPL", "")
    require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestGzip(t *testing.T) {
    h, _ := newTestServer(t, Options{})
    req := httptest.NewRequest(http.MethodGet, "/stock/AAPL", nil)
    req.Header.Set("Accept-Encoding", "gzip")
    rr := httptest.NewRecorder()
    h.ServeHTTP(rr, req)
    require.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

    zr, err := gzip.NewReader(rr.Body)
    require.NoError(t, err)
    body, err := io.ReadAll(zr)
    require.NoError(t, err)
    require.Contains(t, string(body), `"symbol":"AAPL"`)
}

type panicQuoter struct{}

func (panicQuoter) FetchOne(context.Context, string) aggregate.Result { panic("boom") }
func (panicQuoter) FetchMany(context.Context, []string) aggregate.Batch { panic("boom") }

func TestRecoverPanic(t *testing.T) {
    log, hook := test.NewNullLogger()
    h := NewServer(panicQuoter{}, Options{AllowedOrigins: []string{"*"}}, log).Handler()
    rr := do(t, h, http.MethodGet, "/stock/AAPL", "")
    require.Equal(t, http.StatusInternalServerError, rr.Code)
    require.NotEmpty(t, hook.AllEntries())

    for _, target := range []string{"/stock/AAPL", "/stocks/AAPL,MSFT"} {
        req := httptest.NewRequest(http.MethodGet, target, nil)
        req.Header.Set("Accept-Encoding", "gzip")
        rr = httptest.NewRecorder()
        h.ServeHTTP(rr, req)
        require.Equal(t, http.StatusInternalServerError, rr.Code)
        require.Empty(t, rr.Header().Get("Content-Encoding"))
        var e apiError
        require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &e), rr.Body.String())
        require.Equal(t, "internal server error", e.Error)
    }
}

func TestGzip_NoBodyStatusIsNotEncoded(t *testing.T) {
    h := withGzip(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
        w.WriteHeader(http.StatusNoContent)
    }))
    req := httptest.NewRequest(http.MethodGet, "/", nil)
    req.Header.Set("Accept-Encoding", "gzip")
    rr := httptest.NewRecorder()
    h.ServeHTTP(rr, req)
    require.Equal(t, http.StatusNoContent, rr.Code)
    require.Empty(t, rr.Header().Get("Content-Encoding"))
    require.Zero(t, rr.Body.Len())
}

func TestGzip_ErrorResponseDecodes(t *testing.T) {
    h, _ := newTestServer(t, Options{})
    req := httptest.NewRequest(http.MethodGet, "/stock/BAD", nil)
    req.Header.Set("Accept-Encoding", "gzip")
    rr := httptest.NewRecorder()
    h.ServeHTTP(rr, req)
    require.Equal(t, http.StatusNotFound, rr.Code)
    require.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

    zr, err := gzip.NewReader(rr.Body)
    require.NoError(t, err)
    var e apiError
    require.NoError(t, json.NewDecoder(zr).Decode(&e))
    require.Contains(t, e.Error, "upstream unavailable")
}

func TestGetStock_DecodesPathOnce(t *testing.T) {
    h, src := newTestServer(t, Options{})
    rr := do(t, h, http.MethodGet, "/stock/A%2541", "")
    require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
    require.Equal(t, []string{"A%41"}, src.seen)

    h, src = newTestServer(t, Options{})
    rr = do(t, h, http.MethodGet, "/stock/%20aapl%20", "")
    require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
    require.Equal(t, []string{"aapl"}, src.seen)
}
