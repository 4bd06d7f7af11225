package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/op/go-logging"
)

// Module names of the loggers created by this repo. Levels can be set per module.
const (
	ModuleCLI      = "raytracer"
	ModuleRenderer = "renderer"
	ModuleServer   = "server"
	ModuleWeb      = "web"
)

type Level logging.Level

// Verbosity levels, least severe first.
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var backendLevels = map[Level]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Notice:  logging.NOTICE,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var (
	mu           sync.Mutex
	formatted    logging.Backend
	defaultLevel = Notice
	moduleLevels = map[string]Level{}
)

// Logger is a named, leveled logger. It satisfies core.Logger so it can be
// handed straight to the renderer.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns the logger for a module.
func New(module string) Logger {
	return logging.MustGetLogger(module)
}

// SetSink redirects all modules to sink. Configured levels are kept.
func SetSink(sink io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	formatted = logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), format)
	applyLevels()
}

// SetLevel sets the verbosity of the named modules. Without modules it sets
// the default and clears every per-module override.
func SetLevel(level Level, modules ...string) {
	mu.Lock()
	defer mu.Unlock()

	if len(modules) == 0 {
		defaultLevel = level
		moduleLevels = map[string]Level{}
	}
	for _, module := range modules {
		moduleLevels[module] = level
	}
	applyLevels()
}

// GetLevel reports the effective verbosity of a module.
func GetLevel(module string) Level {
	mu.Lock()
	defer mu.Unlock()

	if level, ok := moduleLevels[module]; ok {
		return level
	}
	return defaultLevel
}

// ParseLevel accepts a level name such as "debug" or "WARNING".
func ParseLevel(name string) (Level, error) {
	backendLevel, err := logging.LogLevel(strings.ToUpper(strings.TrimSpace(name)))
	if err != nil {
		return Notice, fmt.Errorf("unknown log level %q", name)
	}
	for level, l := range backendLevels {
		if l == backendLevel {
			return level, nil
		}
	}
	return Notice, fmt.Errorf("unsupported log level %q", name)
}

// ParseModuleLevel parses a "module=level" pair.
func ParseModuleLevel(pair string) (string, Level, error) {
	module, name, ok := strings.Cut(pair, "=")
	if !ok || strings.TrimSpace(module) == "" {
		return "", Notice, fmt.Errorf("expected module=level, got %q", pair)
	}
	level, err := ParseLevel(name)
	if err != nil {
		return "", Notice, err
	}
	return strings.TrimSpace(module), level, nil
}

// applyLevels installs a fresh leveled backend with the configured levels.
// Callers hold mu.
func applyLevels() {
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(backendLevels[defaultLevel], "")
	for module, level := range moduleLevels {
		leveled.SetLevel(backendLevels[level], module)
	}
	logging.SetBackend(leveled)
}

func init() {
	SetSink(os.Stderr)
}
