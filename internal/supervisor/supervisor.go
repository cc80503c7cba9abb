package supervisor

import (
    "context"
    "fmt"
    "time"

    "github.com/sirupsen/logrus"
)

// Supervise runs run until ctx is done. If run returns early, with or
// without an error, it is logged and started again after backoff.
// A panic in run counts as an error. Supervise returns nil once ctx is
// done and run has returned.
func Supervise(ctx context.Context, log logrus.FieldLogger, name string, backoff time.Duration, run func(context.Context) error) error {
    entry := log.WithField("component", name)
    for attempt := 1; ; attempt++ {
        err := runOnce(ctx, run)
        if ctx.Err() != nil {
            if err != nil { entry.WithError(err).Warn("stopped with error") }
            return nil
        }
        fields := logrus.Fields{"attempt": attempt, "backoff": backoff.String()}
        if err != nil {
            entry.WithFields(fields).WithError(err).Error("exited, restarting")
        } else {
            entry.WithFields(fields).Warn("exited without error, restarting")
        }

        t := time.NewTimer(backoff)
        select {
        case <-ctx.Done():
            t.Stop()
            return nil
        case <-t.C:
        }
    }
}

func runOnce(ctx context.Context, run func(context.Context) error) (err error) {
    defer func() {
        if rec := recover(); rec != nil {
            err = &PanicError{Value: rec}
        }
    }()
    return run(ctx)
}

type PanicError struct {
    Value any
}

func (e *PanicError) Error() string { return fmt.Sprintf("panic: %v", e.Value) }
