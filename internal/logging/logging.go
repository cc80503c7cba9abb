package logging

import (
    "fmt"
    "io"
    "os"
    "strings"

    "github.com/sirupsen/logrus"

    "marketquotes/internal/config"
)

// New builds the process logger from cfg. Format is "text" or "json".
func New(cfg config.Log) (*logrus.Logger, error) {
    return NewWithOutput(cfg, os.Stderr)
}

func NewWithOutput(cfg config.Log, out io.Writer) (*logrus.Logger, error) {
    l := logrus.New()
    l.SetOutput(out)

    level := strings.TrimSpace(cfg.Level)
    if level == "" { level = "info" }
    lvl, err := logrus.ParseLevel(level)
    if err != nil {
        return nil, fmt.Errorf("log level: %w", err)
    }
    l.SetLevel(lvl)

    switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
    case "", "text":
        l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
    case "json":
        l.SetFormatter(&logrus.JSONFormatter{})
    default:
        return nil, fmt.Errorf("log format %q: want text or json", cfg.Format)
    }
    return l, nil
}
