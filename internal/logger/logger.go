// Package logger builds the zerolog logger shared by the server, the queue
// consumer and the HTTP middleware.
package logger

import (
    "fmt"
    "io"
    "os"
    "strings"
    "time"

    "github.com/rs/zerolog"
)

var levelColors = map[string]string{
    "TRACE": "\x1b[36m",
    "DEBUG": "\x1b[32m",
    "INFO":  "\x1b[34m",
    "WARN":  "\x1b[33m",
    "ERROR": "\x1b[31m",
    "FATAL": "\x1b[31;1m",
    "PANIC": "\x1b[35m",
}

// New returns a logger for env.  In "dev" it writes colored console lines
// to stdout, elsewhere one JSON object per line.  LOG_LEVEL overrides the
// default info level.
func New(env string) zerolog.Logger {
    var out io.Writer = os.Stdout
    if env == "dev" || env == "" {
        out = consoleWriter(os.Stdout)
    }
    return NewWithWriter(out, os.Getenv("LOG_LEVEL"))
}

// NewWithWriter returns a JSON logger writing to w at the named level.
func NewWithWriter(w io.Writer, level string) zerolog.Logger {
    zerolog.TimeFieldFormat = time.RFC3339Nano
    zerolog.DurationFieldInteger = true

    lvl, err := zerolog.ParseLevel(strings.ToLower(level))
    if err != nil || level == "" {
        lvl = zerolog.InfoLevel
    }
    return zerolog.New(w).
        Level(lvl).
        With().
        Timestamp().
        Logger()
}

func consoleWriter(w io.Writer) zerolog.ConsoleWriter {
    output := zerolog.ConsoleWriter{
        Out:        w,
        TimeFormat: "2006-01-02 15:04:05 MST",
    }
    output.FormatLevel = func(i interface{}) string {
        level, _ := i.(string)
        level = strings.ToUpper(level)
        color, ok := levelColors[level]
        if !ok {
            color = "\x1b[0m"
        }
        return fmt.Sprintf("%s| %-6s|\x1b[0m", color, level)
    }
    output.FormatMessage = func(i interface{}) string {
        return fmt.Sprintf("\x1b[1m%s\x1b[0m", i)
    }
    output.FormatFieldName = func(i interface{}) string {
        return fmt.Sprintf("\x1b[36m%s:\x1b[0m", i)
    }
    return output
}
