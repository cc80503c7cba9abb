package main

import (
    "context"
    "net/http"
    "os"
    "os/signal"
    "syscall"

    "github.com/joho/godotenv"
    "github.com/sirupsen/logrus"
    "golang.org/x/sync/errgroup"
    "google.golang.org/grpc"

    "marketquotes/internal/aggregate"
    "marketquotes/internal/config"
    "marketquotes/internal/httpapi"
    "marketquotes/internal/httpx"
    "marketquotes/internal/logging"
    "marketquotes/internal/provider/alphavantage"
    "marketquotes/internal/provider/gate"
    "marketquotes/internal/rpc"
    "marketquotes/internal/supervisor"
)

func main() {
    // .env is optional; real environment wins.
    _ = godotenv.Load()

    cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
    if err != nil { logrus.Fatalf("config: %v", err) }
    log, err := logging.New(cfg.Log)
    if err != nil { logrus.Fatalf("logging: %v", err) }

    if cfg.Upstream.APIKey == config.DefaultAPIKey {
        log.Warn("ALPHA_API not set; using the demo key, which only answers for a few symbols")
    }

    agg, err := newAggregator(cfg, log)
    if err != nil { log.Fatalf("upstream client: %v", err) }

    api := httpapi.NewServer(agg, httpapi.Options{
        AllowedOrigins: cfg.CORS.AllowedOrigins,
        RequestTimeout: cfg.Server.RequestTimeout(),
    }, log)
    handler := api.Handler()
    rpcServer := rpc.NewServer(agg, log)

    ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
    defer stop()

    backoff := cfg.Server.RestartBackoff()
    shutdown := cfg.Server.ShutdownTimeout()
    g, gctx := errgroup.WithContext(ctx)
    g.Go(func() error {
        return supervisor.Supervise(gctx, log, "http", backoff, func(ctx context.Context) error {
            log.WithField("port", cfg.Server.HTTPPort).Info("http server listening")
            return httpapi.Serve(ctx, ":"+cfg.Server.HTTPPort, handler, shutdown)
        })
    })
    g.Go(func() error {
        return supervisor.Supervise(gctx, log, "grpc", backoff, func(ctx context.Context) error {
            log.WithField("port", cfg.Server.GRPCPort).Info("grpc server listening")
            return rpc.Serve(ctx, ":"+cfg.Server.GRPCPort, func() *grpc.Server {
                return rpc.NewGRPCServer(rpcServer, log)
            }, shutdown)
        })
    })

    if err := g.Wait(); err != nil {
        log.WithError(err).Error("server stopped")
        os.Exit(1)
    }
    log.Info("server stopped")
}

// newAggregator wires the upstream client, the in-flight gate and the
// normalizer into one Aggregator.
func newAggregator(cfg config.Config, log logrus.FieldLogger) (*aggregate.Aggregator, error) {
    hc := httpx.New(cfg.Upstream.Timeout())
    client, err := alphavantage.NewClient(
        cfg.Upstream.APIKey,
        alphavantage.WithBaseURL(cfg.Upstream.Endpoint),
        alphavantage.WithHTTPClient(hc),
        alphavantage.WithHeader(http.Header{"Accept": []string{"application/json"}}),
        alphavantage.WithLogger(log),
    )
    if err != nil {
        return nil, err
    }

    var parseOpts []alphavantage.ParseOption
    if cfg.Normalize.StrictNumbers { parseOpts = append(parseOpts, alphavantage.WithStrictNumbers()) }

    return aggregate.New(
        gate.New(client, cfg.Upstream.MaxInFlight),
        alphavantage.NewParser(parseOpts...),
        aggregate.Config{
            MaxConcurrency: cfg.Aggregate.MaxConcurrency,
            CallTimeout:    cfg.Upstream.Timeout(),
            BatchTimeout:   cfg.Aggregate.BatchTimeout(),
        },
        log,
    ), nil
}
