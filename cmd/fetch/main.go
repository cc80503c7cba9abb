package main

import (
    "context"
    "encoding/json"
    "fmt"
    "os"
    "strings"
    "time"

    "github.com/joho/godotenv"
    "github.com/sirupsen/logrus"
    "github.com/spf13/pflag"
    "github.com/spf13/viper"
    "google.golang.org/protobuf/encoding/protojson"

    "marketquotes/internal/aggregate"
    "marketquotes/internal/config"
    "marketquotes/internal/httpx"
    "marketquotes/internal/logging"
    "marketquotes/internal/provider"
    "marketquotes/internal/provider/alphavantage"
    "marketquotes/internal/rpc"
)

type result struct {
    Symbol string          `json:"symbol"`
    Quote  *provider.Quote `json:"quote,omitempty"`
    Error  string          `json:"error,omitempty"`
}

type rawResult struct {
    Symbol  string `json:"symbol"`
    Payload string `json:"payload,omitempty"`
    Error   string `json:"error,omitempty"`
}

func main() {
    _ = godotenv.Load()

    fs := pflag.NewFlagSet("fetch", pflag.ExitOnError)
    fs.String("symbols", "IBM", "comma-separated ticker symbols")
    fs.Bool("raw", false, "print raw upstream payloads instead of normalized quotes")
    fs.String("grpc", "", "query a running server at this gRPC address instead of the upstream")
    fs.String("config", "", "path to config file (optional)")
    fs.Duration("timeout", 15*time.Second, "overall timeout")
    fs.Bool("strict", false, "reject non-numeric prices instead of reporting 0")
    _ = fs.Parse(os.Args[1:])

    // Flags win over FETCH_* environment variables.
    v := viper.New()
    v.SetEnvPrefix("fetch")
    v.AutomaticEnv()
    if err := v.BindPFlags(fs); err != nil { logrus.Fatalf("flags: %v", err) }

    symbols := splitCSV(v.GetString("symbols"))
    if len(symbols) == 0 { logrus.Fatal("no symbols given") }

    ctx, cancel := context.WithTimeout(context.Background(), v.GetDuration("timeout"))
    defer cancel()

    if addr := v.GetString("grpc"); addr != "" {
        if err := viaGRPC(ctx, addr, symbols); err != nil { logrus.Fatal(err) }
        return
    }

    cfgPath := v.GetString("config")
    if cfgPath == "" { cfgPath = os.Getenv("CONFIG_FILE") }
    cfg, err := config.Load(cfgPath)
    if err != nil { logrus.Fatalf("config: %v", err) }
    if v.GetBool("strict") { cfg.Normalize.StrictNumbers = true }
    log, err := logging.New(cfg.Log)
    if err != nil { logrus.Fatalf("logging: %v", err) }

    client, err := alphavantage.NewClient(cfg.Upstream.APIKey,
        alphavantage.WithBaseURL(cfg.Upstream.Endpoint),
        alphavantage.WithHTTPClient(httpx.New(cfg.Upstream.Timeout())),
        alphavantage.WithLogger(log),
    )
    if err != nil { logrus.Fatalf("client: %v", err) }

    if v.GetBool("raw") {
        out := make([]rawResult, 0, len(symbols))
        for _, sym := range symbols {
            payload, err := client.Fetch(ctx, sym)
            if err != nil {
                out = append(out, rawResult{Symbol: sym, Error: err.Error()})
                continue
            }
            out = append(out, rawResult{Symbol: sym, Payload: string(payload)})
        }
        printJSON(out)
        return
    }

    var parseOpts []alphavantage.ParseOption
    if cfg.Normalize.StrictNumbers { parseOpts = append(parseOpts, alphavantage.WithStrictNumbers()) }
    agg := aggregate.New(client, alphavantage.NewParser(parseOpts...), aggregate.Config{
        MaxConcurrency: cfg.Aggregate.MaxConcurrency,
        CallTimeout:    cfg.Upstream.Timeout(),
    }, log)

    batch := agg.FetchMany(ctx, symbols)
    out := make([]result, 0, len(batch.Items))
    for _, it := range batch.Items {
        out = append(out, result{Symbol: it.Symbol, Quote: it.Quote, Error: errText(it.Err)})
    }
    printJSON(out)
}

func viaGRPC(ctx context.Context, addr string, symbols []string) error {
    c, err := rpc.Connect(addr)
    if err != nil {
        return err
    }
    defer c.Close()

    resp, err := c.GetMultipleStocks(ctx, symbols)
    if err != nil {
        return fmt.Errorf("GetMultipleStocks: %w", err)
    }
    b, err := protojson.MarshalOptions{Multiline: true, Indent: "  ", EmitUnpopulated: true}.Marshal(resp)
    if err != nil {
        return fmt.Errorf("encoding response: %w", err)
    }
    fmt.Println(string(b))
    return nil
}

func printJSON(v any) {
    enc := json.NewEncoder(os.Stdout)
    enc.SetIndent("", "  ")
    enc.SetEscapeHTML(false)
    _ = enc.Encode(v)
}

func errText(err error) string {
    if err == nil { return "" }
    return err.Error()
}

func splitCSV(s string) []string {
    parts := strings.Split(s, ",")
    out := make([]string, 0, len(parts))
    for _, p := range parts {
        p = strings.TrimSpace(p)
        if p != "" { out = append(out, p) }
    }
    return out
}
