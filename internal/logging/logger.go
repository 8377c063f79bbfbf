package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level уровень важности сообщения
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

// ParseLevel разбирает уровень из строки конфигурации.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Logger пишет сообщения с парами ключ-значение
type Logger struct {
	prefix string
	level  Level
	logger *log.Logger
}

// NewLogger создаёт логгер в stdout с префиксом компонента.
func NewLogger(prefix string, level Level) *Logger {
	return NewLoggerWithWriter(prefix, level, os.Stdout)
}

// NewLoggerWithWriter создаёт логгер с произвольным приёмником.
func NewLoggerWithWriter(prefix string, level Level, w io.Writer) *Logger {
	return &Logger{
		prefix: prefix,
		level:  level,
		logger: log.New(w, fmt.Sprintf("[%s] ", prefix), log.LstdFlags),
	}
}

// Discard логгер, который ничего не пишет.
func Discard() *Logger {
	return NewLoggerWithWriter("discard", LevelError+1, io.Discard)
}

// With возвращает логгер того же уровня с другим префиксом.
func (l *Logger) With(prefix string) *Logger {
	return &Logger{
		prefix: prefix,
		level:  l.level,
		logger: log.New(l.logger.Writer(), fmt.Sprintf("[%s] ", prefix), l.logger.Flags()),
	}
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.logWithKV(LevelDebug, msg, keysAndValues...)
}

func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.logWithKV(LevelInfo, msg, keysAndValues...)
}

func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.logWithKV(LevelWarn, msg, keysAndValues...)
}

func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.logWithKV(LevelError, msg, keysAndValues...)
}

func (l *Logger) logWithKV(level Level, msg string, keysAndValues ...interface{}) {
	if level < l.level {
		return
	}
	var kv strings.Builder
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fmt.Fprintf(&kv, " %v=%v", keysAndValues[i], keysAndValues[i+1])
	}
	l.logger.Printf("[%s] %s%s", levelNames[level], msg, kv.String())
}
