package config

import (
    "errors"
    "fmt"
    "io/fs"
    "os"
    "strings"
    "time"

    "github.com/spf13/viper"
)

const DefaultAPIKey = "demo"

type Server struct {
    HTTPPort           string `mapstructure:"http_port"`
    GRPCPort           string `mapstructure:"grpc_port"`
    RequestTimeoutSec  int    `mapstructure:"request_timeout_sec"`
    ShutdownTimeoutSec int    `mapstructure:"shutdown_timeout_sec"`
    RestartBackoffMs   int    `mapstructure:"restart_backoff_ms"`
}

type Upstream struct {
    APIKey      string `mapstructure:"api_key"`
    Endpoint    string `mapstructure:"endpoint"`
    TimeoutSec  int    `mapstructure:"timeout_sec"`
    MaxInFlight int    `mapstructure:"max_in_flight"`
}

type Aggregate struct {
    MaxConcurrency  int `mapstructure:"max_concurrency"`
    BatchTimeoutSec int `mapstructure:"batch_timeout_sec"`
}

type Normalize struct {
    // StrictNumbers rejects quotes whose price or change percent is not a
    // number instead of reporting them as 0.
    StrictNumbers bool `mapstructure:"strict_numbers"`
}

type CORS struct {
    // AllowedOrigins is either ["*"] or an exact-match list.
    AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Log struct {
    Level  string `mapstructure:"level"`
    Format string `mapstructure:"format"`
}

type Config struct {
    Server    Server    `mapstructure:"server"`
    Upstream  Upstream  `mapstructure:"upstream"`
    Aggregate Aggregate `mapstructure:"aggregate"`
    Normalize Normalize `mapstructure:"normalize"`
    CORS      CORS      `mapstructure:"cors"`
    Log       Log       `mapstructure:"log"`
}

func Default() Config {
    return Config{
        Server: Server{
            HTTPPort:           "8002",
            GRPCPort:           "8005",
            RequestTimeoutSec:  15,
            ShutdownTimeoutSec: 5,
            RestartBackoffMs:   1000,
        },
        Upstream: Upstream{
            APIKey:      DefaultAPIKey,
            Endpoint:    "https://www.alphavantage.co/query",
            TimeoutSec:  10,
            MaxInFlight: 32,
        },
        Aggregate: Aggregate{MaxConcurrency: 16, BatchTimeoutSec: 20},
        CORS:      CORS{AllowedOrigins: []string{"*"}},
        Log:       Log{Level: "info", Format: "text"},
    }
}

// envBindings maps config keys to the environment variables that override them.
var envBindings = map[string]string{
    "server.http_port":            "HTTP_PORT",
    "server.grpc_port":            "GRPC_PORT",
    "server.request_timeout_sec":  "REQUEST_TIMEOUT_SEC",
    "server.shutdown_timeout_sec": "SHUTDOWN_TIMEOUT_SEC",
    "server.restart_backoff_ms":   "RESTART_BACKOFF_MS",
    "upstream.api_key":            "ALPHA_API",
    "upstream.endpoint":           "ALPHA_ENDPOINT",
    "upstream.timeout_sec":        "UPSTREAM_TIMEOUT_SEC",
    "upstream.max_in_flight":      "UPSTREAM_MAX_IN_FLIGHT",
    "aggregate.max_concurrency":   "MAX_CONCURRENCY",
    "aggregate.batch_timeout_sec": "BATCH_TIMEOUT_SEC",
    "normalize.strict_numbers":    "STRICT_NUMBERS",
    "cors.allowed_origins":        "ALLOWED_ORIGINS",
    "log.level":                   "LOG_LEVEL",
    "log.format":                  "LOG_FORMAT",
}

// Load reads config from path (JSON, YAML or TOML by extension). If path is
// empty, config.json in the working directory is used when present.
// Environment variables override file values; unset keys keep defaults.
func Load(path string) (Config, error) {
    v := viper.New()
    setDefaults(v, Default())
    for key, env := range envBindings {
        if err := v.BindEnv(key, env); err != nil {
            return Default(), fmt.Errorf("bind env %s: %w", env, err)
        }
    }

    if path == "" {
        if _, err := os.Stat("config.json"); err == nil {
            path = "config.json"
        }
    }
    if path != "" {
        v.SetConfigFile(path)
        if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
            return Default(), fmt.Errorf("read config: %w", err)
        }
    }

    var cfg Config
    if err := v.Unmarshal(&cfg); err != nil {
        return Default(), fmt.Errorf("parse config: %w", err)
    }
    cfg.CORS.AllowedOrigins = splitCSV(strings.Join(cfg.CORS.AllowedOrigins, ","))
    if cfg.Upstream.APIKey == "" { cfg.Upstream.APIKey = DefaultAPIKey }

    if err := cfg.Validate(); err != nil {
        return cfg, err
    }
    return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
    v.SetDefault("server.http_port", d.Server.HTTPPort)
    v.SetDefault("server.grpc_port", d.Server.GRPCPort)
    v.SetDefault("server.request_timeout_sec", d.Server.RequestTimeoutSec)
    v.SetDefault("server.shutdown_timeout_sec", d.Server.ShutdownTimeoutSec)
    v.SetDefault("server.restart_backoff_ms", d.Server.RestartBackoffMs)
    v.SetDefault("upstream.api_key", d.Upstream.APIKey)
    v.SetDefault("upstream.endpoint", d.Upstream.Endpoint)
    v.SetDefault("upstream.timeout_sec", d.Upstream.TimeoutSec)
    v.SetDefault("upstream.max_in_flight", d.Upstream.MaxInFlight)
    v.SetDefault("aggregate.max_concurrency", d.Aggregate.MaxConcurrency)
    v.SetDefault("aggregate.batch_timeout_sec", d.Aggregate.BatchTimeoutSec)
    v.SetDefault("normalize.strict_numbers", d.Normalize.StrictNumbers)
    v.SetDefault("cors.allowed_origins", d.CORS.AllowedOrigins)
    v.SetDefault("log.level", d.Log.Level)
    v.SetDefault("log.format", d.Log.Format)
}

// Validate reports every problem at once.
func (c Config) Validate() error {
    var errs []string
    requireValue("server.http_port", c.Server.HTTPPort, &errs)
    requireValue("server.grpc_port", c.Server.GRPCPort, &errs)
    if c.Server.HTTPPort != "" && c.Server.HTTPPort == c.Server.GRPCPort {
        errs = append(errs, "server.http_port and server.grpc_port must differ")
    }
    requireValue("upstream.endpoint", c.Upstream.Endpoint, &errs)
    if c.Upstream.TimeoutSec < 0 { errs = append(errs, "upstream.timeout_sec must be >= 0") }
    if c.Aggregate.BatchTimeoutSec < 0 { errs = append(errs, "aggregate.batch_timeout_sec must be >= 0") }
    if len(c.CORS.AllowedOrigins) == 0 { errs = append(errs, "cors.allowed_origins is required") }
    if len(errs) > 0 {
        return errors.New(strings.Join(errs, "; "))
    }
    return nil
}

func (s Server) RequestTimeout() time.Duration  { return time.Duration(s.RequestTimeoutSec) * time.Second }
func (s Server) ShutdownTimeout() time.Duration { return time.Duration(s.ShutdownTimeoutSec) * time.Second }
func (s Server) RestartBackoff() time.Duration  { return time.Duration(s.RestartBackoffMs) * time.Millisecond }
func (u Upstream) Timeout() time.Duration       { return time.Duration(u.TimeoutSec) * time.Second }
func (a Aggregate) BatchTimeout() time.Duration { return time.Duration(a.BatchTimeoutSec) * time.Second }

func requireValue(name, value string, errs *[]string) {
    if strings.TrimSpace(value) == "" {
        *errs = append(*errs, name+" is required")
    }
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
