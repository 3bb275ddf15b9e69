package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	slogmulti "github.com/samber/slog-multi"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const otelLoggerName = "github.com/hyperledger-labs/yui-path-relayer"

type RelayLogger struct {
	*slog.Logger
}

var (
	relayLogger *RelayLogger
	loggerMu    sync.RWMutex
)

func InitLogger(logLevel, format, output string, enableTelemetry bool) error {
	var writer io.Writer
	switch output {
	case "stdout":
		writer = os.Stdout
	case "stderr":
		writer = os.Stderr
	default:
		return errors.Newf("invalid log output: %q", output)
	}
	return InitLoggerWithWriter(logLevel, format, writer, enableTelemetry)
}

func InitLoggerWithWriter(logLevel, format string, writer io.Writer, enableTelemetry bool) error {
	slogLevel, err := parseLevel(logLevel)
	if err != nil {
		return err
	}
	handlerOpts := &slog.HandlerOptions{
		Level:     slogLevel,
		AddSource: true,
	}

	var handler slog.Handler
	switch format {
	case "text":
		handler = slog.NewTextHandler(writer, handlerOpts)
	case "json":
		handler = slog.NewJSONHandler(writer, handlerOpts)
	default:
		return errors.Newf("invalid log format: %q", format)
	}

	if enableTelemetry {
		handler = slogmulti.Fanout(handler, otelslog.NewHandler(otelLoggerName))
	}

	loggerMu.Lock()
	defer loggerMu.Unlock()
	relayLogger = &RelayLogger{slog.New(handler)}
	return nil
}

func parseLevel(logLevel string) (slog.Level, error) {
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return 0, errors.Newf("invalid log level: %q", logLevel)
	}
}

// GetLogger returns the global logger. Before InitLogger is called it
// returns a text logger writing to stderr.
func GetLogger() *RelayLogger {
	loggerMu.RLock()
	l := relayLogger
	loggerMu.RUnlock()
	if l != nil {
		return l
	}
	return &RelayLogger{slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{AddSource: true}))}
}

func (rl *RelayLogger) log(ctx context.Context, level slog.Level, skip int, msg string, args ...any) {
	if !rl.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	// skip runtime.Callers and this function
	runtime.Callers(skip+2, pcs[:])
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	_ = rl.Handler().Handle(ctx, r)
}

// Error logs err together with a stack trace captured at the caller
func (rl *RelayLogger) Error(msg string, err error, args ...any) {
	rl.logError(context.Background(), msg, err, args...)
}

func (rl *RelayLogger) ErrorContext(ctx context.Context, msg string, err error, args ...any) {
	rl.logError(ctx, msg, err, args...)
}

// logError must be called directly from an exported method
func (rl *RelayLogger) logError(ctx context.Context, msg string, err error, args ...any) {
	if !rl.Enabled(ctx, slog.LevelError) {
		return
	}
	args = append(args, "error", err)
	if err != nil {
		cError := errors.NewWithDepth(2, err.Error())
		args = append(args, "stack", fmt.Sprintf("%+v", cError))
	}
	rl.log(ctx, slog.LevelError, 2, msg, args...)
}

// WarnErr logs at warn level and attaches err when it is not nil
func (rl *RelayLogger) WarnErr(msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err)
	}
	rl.log(context.Background(), slog.LevelWarn, 1, msg, args...)
}

func (rl *RelayLogger) Fatal(msg string, err error, args ...any) {
	rl.log(context.Background(), slog.LevelError, 1, msg, append(args, "error", err)...)
	os.Exit(1)
}

func (rl *RelayLogger) TimeTrack(start time.Time, name string, args ...any) {
	rl.timeTrack(context.Background(), start, name, args...)
}

func (rl *RelayLogger) TimeTrackContext(ctx context.Context, start time.Time, name string, args ...any) {
	rl.timeTrack(ctx, start, name, args...)
}

// timeTrack must be called directly from an exported method
func (rl *RelayLogger) timeTrack(ctx context.Context, start time.Time, name string, args ...any) {
	elapsed := time.Since(start)
	args = append(args, "name", name, "elapsed", elapsed.Nanoseconds())
	rl.log(ctx, slog.LevelDebug, 2, "time track", args...)
}

func (rl *RelayLogger) WithChain(chainID string) *RelayLogger {
	return &RelayLogger{
		rl.With(
			"chain_id", chainID,
		),
	}
}

func (rl *RelayLogger) WithChainPair(srcChainID, dstChainID string) *RelayLogger {
	return &RelayLogger{
		rl.With(
			"src_chain_id", srcChainID,
			"dst_chain_id", dstChainID,
		),
	}
}

func (rl *RelayLogger) WithPath(pathID string) *RelayLogger {
	return &RelayLogger{
		rl.With(
			"path_id", pathID,
		),
	}
}

func (rl *RelayLogger) WithModule(moduleName string) *RelayLogger {
	return &RelayLogger{
		rl.With(
			"module", moduleName,
		),
	}
}
