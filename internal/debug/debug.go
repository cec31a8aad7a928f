package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "FORMS_DEBUG"

var (
	mu      sync.Mutex
	logger  *zap.Logger
	logFile *os.File
)

// Logger returns the process debug logger, initializing it from FORMS_DEBUG
// on first use. A failure to open the file yields a no-op logger.
func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		l, f, err := open(os.Getenv(EnvVar))
		if err != nil {
			l, f = zap.NewNop(), nil
		}
		logger, logFile = l, f
	}
	return logger
}

// Init replaces the debug logger with one appending to path.
// An empty path installs a no-op logger.
func Init(path string) error {
	l, f, err := open(path)
	if err != nil {
		return err
	}
	Set(l)
	mu.Lock()
	logFile = f
	mu.Unlock()
	return nil
}

// Set installs l as the debug logger. Passing nil restores the no-op logger.
func Set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()

	if l == nil {
		l = zap.NewNop()
	}
	logger = l
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// Close flushes the debug logger and falls back to a no-op logger.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		return nil
	}
	err := logger.Sync()
	logger = zap.NewNop()
	if logFile != nil {
		err = multierr.Append(err, logFile.Close())
		logFile = nil
	}
	return err
}

func open(path string) (*zap.Logger, *os.File, error) {
	if path == "" {
		return zap.NewNop(), nil, nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open debug log: %w", err)
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(f), zap.DebugLevel)
	return zap.New(core).Named("forms"), f, nil
}
