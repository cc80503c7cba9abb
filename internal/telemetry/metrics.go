package telemetry

import (
	"context"
	"expvar"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

var (
	apiRequestsTotal         = expvar.NewInt("api_requests_total")
	apiRequestsErrorsTotal   = expvar.NewInt("api_requests_errors_total")
	apiRequestLatencyMsTotal = expvar.NewInt("api_request_latency_ms_total")
	apiRequestLatencySamples = expvar.NewInt("api_request_latency_samples_total")
	apiRequestsByRoute       = expvar.NewMap("api_requests_by_route")
	apiRequestErrorsByRoute  = expvar.NewMap("api_request_errors_by_route")
	rpcCallsTotal            = expvar.NewInt("rpc_calls_total")
	rpcCallsByMethod         = expvar.NewMap("rpc_calls_by_method")
	rpcErrorsByCode          = expvar.NewMap("rpc_errors_by_code")
	rpcLatencyMsTotal        = expvar.NewInt("rpc_latency_ms_total")
	quoteLookupsTotal        = expvar.NewInt("quote_lookups_total")
	quoteLookupFailures      = expvar.NewInt("quote_lookup_failures_total")
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// APIRequestMetricsMiddleware records request volume, error rate, and latency per route.
func APIRequestMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		route := requestRoute(r)
		key := strings.TrimSpace(r.Method + " " + route)
		if key == "" {
			key = r.Method + " /unknown"
		}

		apiRequestsTotal.Add(1)
		apiRequestsByRoute.Add(key, 1)

		if recorder.status >= http.StatusBadRequest {
			apiRequestsErrorsTotal.Add(1)
			apiRequestErrorsByRoute.Add(key, 1)
		}

		apiRequestLatencyMsTotal.Add(time.Since(start).Milliseconds())
		apiRequestLatencySamples.Add(1)
	})
}

func requestRoute(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := strings.TrimSpace(rctx.RoutePattern()); pattern != "" {
			return pattern
		}
	}
	return strings.TrimSpace(r.URL.Path)
}

// UnaryServerInterceptor counts RPC calls per method and non-OK status codes.
func UnaryServerInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	rpcCallsTotal.Add(1)
	rpcCallsByMethod.Add(info.FullMethod, 1)
	if err != nil {
		rpcErrorsByCode.Add(status.Code(err).String(), 1)
	}
	rpcLatencyMsTotal.Add(time.Since(start).Milliseconds())
	return resp, err
}

// QuoteLookup records the outcome of one single-symbol lookup.
func QuoteLookup(ok bool) {
	quoteLookupsTotal.Add(1)
	if !ok {
		quoteLookupFailures.Add(1)
	}
}
