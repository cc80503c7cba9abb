// Package rpc serves quote lookups as the market.MarketDataService gRPC
// service and provides a client for it.
package rpc

//go:generate protoc -I ../../proto --go_out=. --go_opt=module=marketquotes/internal/rpc --go-grpc_out=. --go-grpc_opt=module=marketquotes/internal/rpc market.proto

import (
    "context"
    "errors"
    "fmt"
    "net"
    "runtime/debug"
    "strings"
    "time"

    "github.com/sirupsen/logrus"
    "google.golang.org/grpc"
    "google.golang.org/grpc/codes"
    "google.golang.org/grpc/status"

    "marketquotes/internal/aggregate"
    "marketquotes/internal/rpc/marketpb"
    "marketquotes/internal/telemetry"
)

// Quoter is the lookup surface the RPC handlers need.
type Quoter interface {
    FetchOne(ctx context.Context, symbol string) aggregate.Result
    FetchMany(ctx context.Context, symbols []string) aggregate.Batch
}

// Server implements marketpb.MarketDataServiceServer. Lookup failures
// are reported in band through Success and ErrorMessage; the call itself
// succeeds. Every item's Symbol is the symbol exactly as requested.
type Server struct {
    marketpb.UnimplementedMarketDataServiceServer

    quotes Quoter
    log    logrus.FieldLogger
}

// NewServer serves lookups from quotes.
func NewServer(quotes Quoter, log logrus.FieldLogger) *Server {
    if log == nil { log = logrus.StandardLogger() }
    return &Server{quotes: quotes, log: log}
}

func (s *Server) GetStockPrice(ctx context.Context, req *marketpb.GetStockPriceRequest) (*marketpb.StockQuote, error) {
    symbol := strings.TrimSpace(req.GetSymbol())
    if symbol == "" {
        return &marketpb.StockQuote{Symbol: req.GetSymbol(), Success: false, ErrorMessage: "no symbol provided"}, nil
    }
    return toStockQuote(req.GetSymbol(), s.quotes.FetchOne(ctx, symbol)), nil
}

// GetMultipleStocks keeps every item, failed ones included, so
// len(Items) == len(Symbols). An empty list is an in-band failure.
func (s *Server) GetMultipleStocks(ctx context.Context, req *marketpb.GetMultipleStocksRequest) (*marketpb.GetMultipleStocksResponse, error) {
    requested := req.GetSymbols()
    if len(requested) == 0 {
        return &marketpb.GetMultipleStocksResponse{Success: false, ErrorMessage: "no symbols provided"}, nil
    }
    symbols := make([]string, len(requested))
    for i, sym := range requested { symbols[i] = strings.TrimSpace(sym) }

    batch := s.quotes.FetchMany(ctx, symbols)
    items := make([]*marketpb.StockQuote, len(batch.Items))
    for i, it := range batch.Items { items[i] = toStockQuote(requested[i], it) }
    return &marketpb.GetMultipleStocksResponse{Items: items, Success: batch.Success}, nil
}

// toStockQuote reports res under requested, the caller's own spelling.
func toStockQuote(requested string, res aggregate.Result) *marketpb.StockQuote {
    if !res.OK() {
        return &marketpb.StockQuote{Symbol: requested, Success: false, ErrorMessage: res.Message()}
    }
    q := res.Quote
    return &marketpb.StockQuote{
        Symbol:        requested,
        DisplayName:   q.DisplayName,
        Price:         q.Price,
        ChangePercent: q.ChangePercent,
        Success:       true,
    }
}

// NewGRPCServer builds a grpc.Server with recovery, logging and metrics
// interceptors and registers srv on it.
func NewGRPCServer(srv marketpb.MarketDataServiceServer, log logrus.FieldLogger, opts ...grpc.ServerOption) *grpc.Server {
    opts = append([]grpc.ServerOption{
        grpc.ChainUnaryInterceptor(recoveryInterceptor(log), loggingInterceptor(log), telemetry.UnaryServerInterceptor),
    }, opts...)
    gs := grpc.NewServer(opts...)
    marketpb.RegisterMarketDataServiceServer(gs, srv)
    return gs
}

func recoveryInterceptor(log logrus.FieldLogger) grpc.UnaryServerInterceptor {
    return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
        defer func() {
            if rec := recover(); rec != nil {
                log.WithFields(logrus.Fields{"method": info.FullMethod, "panic": rec, "stack": string(debug.Stack())}).Error("rpc panic")
                err = status.Errorf(codes.Internal, "internal error")
            }
        }()
        return handler(ctx, req)
    }
}

func loggingInterceptor(log logrus.FieldLogger) grpc.UnaryServerInterceptor {
    return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
        start := time.Now()
        resp, err := handler(ctx, req)
        log.WithFields(logrus.Fields{
            "method": info.FullMethod,
            "code":   status.Code(err).String(),
            "took":   time.Since(start).String(),
        }).Info("rpc call")
        return resp, err
    }
}

// Serve listens on addr and serves a server from newServer until ctx is
// done, then stops gracefully. If the graceful stop outlasts
// shutdownTimeout the server is stopped hard.
func Serve(ctx context.Context, addr string, newServer func() *grpc.Server, shutdownTimeout time.Duration) error {
    lis, err := net.Listen("tcp", addr)
    if err != nil {
        return fmt.Errorf("grpc listen %s: %w", addr, err)
    }
    return ServeListener(ctx, lis, newServer(), shutdownTimeout)
}

// ServeListener is Serve on an existing listener and server.
func ServeListener(ctx context.Context, lis net.Listener, gs *grpc.Server, shutdownTimeout time.Duration) error {
    errCh := make(chan error, 1)
    go func() { errCh <- gs.Serve(lis) }()

    select {
    case err := <-errCh:
        if err == nil || errors.Is(err, grpc.ErrServerStopped) { return nil }
        return fmt.Errorf("grpc server: %w", err)
    case <-ctx.Done():
    }

    done := make(chan struct{})
    go func() { gs.GracefulStop(); close(done) }()
    select {
    case <-done:
    case <-time.After(shutdownTimeout):
        gs.Stop()
        <-done
    }
    return nil
}
