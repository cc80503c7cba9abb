package httpapi

import (
    "context"
    "encoding/json"
    "errors"
    "expvar"
    "fmt"
    "io"
    "net/http"
    "net/url"
    "strings"
    "time"

    "github.com/go-chi/chi/v5"
    "github.com/sirupsen/logrus"

    "marketquotes/internal/aggregate"
    "marketquotes/internal/provider"
    "marketquotes/internal/telemetry"
)

// maxSymbols caps one multi-symbol request.
const maxSymbols = 1000

// Quoter is the lookup surface the HTTP handlers need.
type Quoter interface {
    FetchOne(ctx context.Context, symbol string) aggregate.Result
    FetchMany(ctx context.Context, symbols []string) aggregate.Batch
}

// Options configures a Server.
type Options struct {
    // AllowedOrigins is ["*"] or an exact-match origin list.
    AllowedOrigins []string
    // RequestTimeout bounds each lookup request. 0 disables it.
    RequestTimeout time.Duration
}

// Server is the HTTP front end over a Quoter.
type Server struct {
    quotes Quoter
    opts   Options
    log    logrus.FieldLogger
}

type apiError struct {
    Error string `json:"error"`
}

type batchRequest struct {
    Symbols []string `json:"symbols"`
}

// NewServer serves lookups from quotes; a nil log uses the standard logger.
func NewServer(quotes Quoter, opts Options, log logrus.FieldLogger) *Server {
    if log == nil { log = logrus.StandardLogger() }
    return &Server{quotes: quotes, opts: opts, log: log}
}

// Handler returns the full HTTP surface: middleware, health, expvar and
// the quote routes.
func (s *Server) Handler() http.Handler {
    r := chi.NewRouter()
    r.Use(recoverPanic(s.log), accessLog(s.log), telemetry.APIRequestMetricsMiddleware, cors(s.opts.AllowedOrigins), withGzip, limitBody)
    r.NotFound(func(w http.ResponseWriter, r *http.Request) {
        writeError(w, http.StatusNotFound, "not found")
    })
    r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
        writeError(w, http.StatusMethodNotAllowed, "method not allowed")
    })

    r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
        writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
    })
    r.Handle("/debug/vars", expvar.Handler())
    s.Mount(r)
    return r
}

// Mount registers the quote routes on r.
func (s *Server) Mount(r chi.Router) {
    r.Get("/stock/{symbol}", s.handleGetStock)
    r.Get("/stocks/{symbols}", s.handleGetStocks)
    r.Get("/stocks/", s.handleGetStocks)
    r.Get("/stocks", s.handleGetStocks)
    r.Post("/stocks/batch", s.handlePostBatch)
}

// handleGetStock answers one symbol. A failed lookup is a 404 carrying
// the failure message.
func (s *Server) handleGetStock(w http.ResponseWriter, r *http.Request) {
    symbol := strings.TrimSpace(urlParam(r, "symbol"))
    if symbol == "" {
        writeError(w, http.StatusNotFound, "symbol is required")
        return
    }

    ctx, cancel := s.requestContext(r)
    defer cancel()
    res := s.quotes.FetchOne(ctx, symbol)
    if !res.OK() {
        writeError(w, http.StatusNotFound, res.Message())
        return
    }
    writeJSON(w, http.StatusOK, res.Quote)
}

// handleGetStocks answers a comma-separated symbol list. Symbols whose
// lookup failed are left out of the array; an all-failed list is an
// empty array, not an error.
func (s *Server) handleGetStocks(w http.ResponseWriter, r *http.Request) {
    symbols := splitSymbols(urlParam(r, "symbols"))
    s.writeQuotes(w, r, symbols)
}

// handlePostBatch is handleGetStocks with the list in a JSON body.
func (s *Server) handlePostBatch(w http.ResponseWriter, r *http.Request) {
    var body batchRequest
    if err := decodeJSONBody(r, &body); err != nil {
        writeError(w, http.StatusBadRequest, "invalid JSON body")
        return
    }
    symbols := make([]string, 0, len(body.Symbols))
    for _, sym := range body.Symbols {
        if sym = strings.TrimSpace(sym); sym != "" { symbols = append(symbols, sym) }
    }
    s.writeQuotes(w, r, symbols)
}

func (s *Server) writeQuotes(w http.ResponseWriter, r *http.Request, symbols []string) {
    if len(symbols) == 0 {
        writeError(w, http.StatusNotFound, "no symbols provided")
        return
    }
    if len(symbols) > maxSymbols {
        writeError(w, http.StatusBadRequest, fmt.Sprintf("too many symbols (max %d)", maxSymbols))
        return
    }

    ctx, cancel := s.requestContext(r)
    defer cancel()
    batch := s.quotes.FetchMany(ctx, symbols)

    quotes := make([]provider.Quote, 0, len(batch.Items))
    for _, it := range batch.Items {
        if it.OK() { quotes = append(quotes, *it.Quote) }
    }
    writeJSON(w, http.StatusOK, quotes)
}

func (s *Server) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
    if s.opts.RequestTimeout > 0 {
        return context.WithTimeout(r.Context(), s.opts.RequestTimeout)
    }
    return context.WithCancel(r.Context())
}

// urlParam returns a decoded path parameter. chi matches on RawPath when
// it is set, so only then is the value still escaped.
func urlParam(r *http.Request, key string) string {
    v := chi.URLParam(r, key)
    if r.URL.RawPath == "" { return v }
    if u, err := url.PathUnescape(v); err == nil { return u }
    return v
}

func splitSymbols(s string) []string {
    parts := strings.Split(s, ",")
    out := make([]string, 0, len(parts))
    for _, p := range parts {
        p = strings.TrimSpace(p)
        if p != "" { out = append(out, p) }
    }
    return out
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
    w.Header().Set("Content-Type", "application/json; charset=utf-8")
    w.WriteHeader(statusCode)
    enc := json.NewEncoder(w)
    enc.SetEscapeHTML(false)
    _ = enc.Encode(payload)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
    writeJSON(w, statusCode, apiError{Error: message})
}

func decodeJSONBody(r *http.Request, dst any) error {
    dec := json.NewDecoder(r.Body)
    dec.DisallowUnknownFields()
    if err := dec.Decode(dst); err != nil {
        return err
    }
    if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
        return errors.New("request body must contain a single JSON object")
    }
    return nil
}

// Serve runs handler on addr until ctx is done, then shuts down within
// shutdownTimeout. It returns nil after a clean shutdown.
func Serve(ctx context.Context, addr string, handler http.Handler, shutdownTimeout time.Duration) error {
    srv := &http.Server{
        Addr:              addr,
        Handler:           handler,
        ReadHeaderTimeout: 5 * time.Second,
        ReadTimeout:       15 * time.Second,
        WriteTimeout:      30 * time.Second,
        IdleTimeout:       60 * time.Second,
    }

    errCh := make(chan error, 1)
    go func() { errCh <- srv.ListenAndServe() }()

    select {
    case err := <-errCh:
        if errors.Is(err, http.ErrServerClosed) { return nil }
        return fmt.Errorf("http server: %w", err)
    case <-ctx.Done():
    }

    shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
    defer cancel()
    if err := srv.Shutdown(shutdownCtx); err != nil {
        return fmt.Errorf("http shutdown: %w", err)
    }
    return nil
}
