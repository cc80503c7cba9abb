package httpapi

import (
    "compress/gzip"
    "io"
    "net/http"
    "strings"
    "sync"
    "time"

    "github.com/sirupsen/logrus"
)

const (
    corsMethods = "GET, POST, OPTIONS"
    corsHeaders = "Content-Type, Authorization, X-Requested-With"
    corsMaxAge  = "3600"
)

// cors answers preflights with 204 and sets Access-Control-Allow-Origin
// for "*" or an exact origin match. Unlisted origins get no allow header.
func cors(allowed []string) func(http.Handler) http.Handler {
    anyOrigin := false
    set := make(map[string]struct{}, len(allowed))
    for _, o := range allowed {
        o = strings.TrimSpace(o)
        if o == "*" { anyOrigin = true }
        if o != "" { set[o] = struct{}{} }
    }
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            h := w.Header()
            origin := r.Header.Get("Origin")
            if anyOrigin {
                h.Set("Access-Control-Allow-Origin", "*")
            } else if _, ok := set[origin]; ok && origin != "" {
                h.Set("Access-Control-Allow-Origin", origin)
                h.Set("Access-Control-Allow-Credentials", "true")
                h.Add("Vary", "Origin")
            }
            h.Set("Access-Control-Allow-Methods", corsMethods)
            h.Set("Access-Control-Allow-Headers", corsHeaders)
            h.Set("Access-Control-Max-Age", corsMaxAge)
            if r.Method == http.MethodOptions {
                w.WriteHeader(http.StatusNoContent)
                return
            }
            next.ServeHTTP(w, r)
        })
    }
}

var gzPool = sync.Pool{New: func() any {
    // Best speed: payloads are small JSON documents.
    w, _ := gzip.NewWriterLevel(io.Discard, gzip.BestSpeed)
    return w
}}

// withGzip compresses response when client supports gzip. Compression
// starts with the first WriteHeader or Write, so a handler that panics
// before writing leaves the response untouched for recoverPanic.
func withGzip(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
            next.ServeHTTP(w, r)
            return
        }
        gw := &gzipResponseWriter{ResponseWriter: w}
        completed := false
        defer func() { gw.finish(completed) }()
        next.ServeHTTP(gw, r)
        completed = true
    })
}

type gzipResponseWriter struct {
    http.ResponseWriter
    gz          *gzip.Writer
    wroteHeader bool
}

func (g *gzipResponseWriter) WriteHeader(status int) {
    if g.wroteHeader { return }
    g.wroteHeader = true
    if bodyAllowed(status) {
        h := g.Header()
        h.Set("Content-Encoding", "gzip")
        h.Add("Vary", "Accept-Encoding")
        h.Del("Content-Length")
        g.gz = gzPool.Get().(*gzip.Writer)
        g.gz.Reset(g.ResponseWriter)
    }
    g.ResponseWriter.WriteHeader(status)
}

func (g *gzipResponseWriter) Write(b []byte) (int, error) {
    if !g.wroteHeader { g.WriteHeader(http.StatusOK) }
    if g.gz == nil { return g.ResponseWriter.Write(b) }
    return g.gz.Write(b)
}

// finish writes the gzip trailer when the handler returned normally. On a
// panic the writer goes back to the pool without touching the response.
func (g *gzipResponseWriter) finish(completed bool) {
    if g.gz == nil { return }
    if completed { _ = g.gz.Close() }
    g.gz.Reset(io.Discard)
    gzPool.Put(g.gz)
    g.gz = nil
}

func bodyAllowed(status int) bool {
    return status >= http.StatusOK && status != http.StatusNoContent && status != http.StatusNotModified
}

// limitBody caps request body size.
func limitBody(next http.Handler) http.Handler {
    const maxBody = 1 << 20 // 1MB
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        if r.Method == http.MethodPost && r.Body != nil {
            r.Body = http.MaxBytesReader(w, r.Body, maxBody)
        }
        next.ServeHTTP(w, r)
    })
}

// recoverPanic turns a handler panic into a 500 and logs it.
func recoverPanic(log logrus.FieldLogger) func(http.Handler) http.Handler {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            defer func() {
                if rec := recover(); rec != nil {
                    log.WithFields(logrus.Fields{"path": r.URL.Path, "panic": rec}).Error("handler panic")
                    writeError(w, http.StatusInternalServerError, "internal server error")
                }
            }()
            next.ServeHTTP(w, r)
        })
    }
}

type loggingWriter struct {
    http.ResponseWriter
    status int
}

func (l *loggingWriter) WriteHeader(status int) {
    l.status = status
    l.ResponseWriter.WriteHeader(status)
}

func accessLog(log logrus.FieldLogger) func(http.Handler) http.Handler {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            start := time.Now()
            lw := &loggingWriter{ResponseWriter: w, status: http.StatusOK}
            next.ServeHTTP(lw, r)
            log.WithFields(logrus.Fields{
                "method": r.Method,
                "path":   r.URL.Path,
                "status": lw.status,
                "took":   time.Since(start).String(),
            }).Info("http request")
        })
    }
}
