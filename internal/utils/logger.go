package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelError LogLevel = "error"
)

type Logger struct {
	level       LogLevel
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	fatalLogger *log.Logger
	file        *lumberjack.Logger
	RawBodyLog  bool
}

// LogFileConfig enables copying every log line to a rotated file.
type LogFileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func NewLogger(level string, rawBodyLog bool) *Logger {
	return NewLoggerWithFile(level, rawBodyLog, nil)
}

func NewLoggerWithFile(level string, rawBodyLog bool, fileCfg *LogFileConfig) *Logger {
	logLevel := parseLogLevel(level)

	var stdout, stderr io.Writer = os.Stdout, os.Stderr
	var file *lumberjack.Logger
	if fileCfg != nil && fileCfg.Path != "" {
		file = &lumberjack.Logger{
			Filename:   fileCfg.Path,
			MaxSize:    fileCfg.MaxSizeMB,
			MaxBackups: fileCfg.MaxBackups,
			MaxAge:     fileCfg.MaxAgeDays,
			Compress:   true,
		}
		stdout = io.MultiWriter(os.Stdout, file)
		stderr = io.MultiWriter(os.Stderr, file)
	}

	flags := log.Ldate | log.Ltime | log.Lshortfile
	return &Logger{
		level:       logLevel,
		infoLogger:  log.New(stdout, "INFO: ", flags),
		errorLogger: log.New(stderr, "ERROR: ", flags),
		debugLogger: log.New(stdout, "DEBUG: ", flags),
		fatalLogger: log.New(stderr, "FATAL: ", flags),
		file:        file,
		RawBodyLog:  rawBodyLog,
	}
}

func NewDiscardLogger() *Logger {
	return &Logger{
		level:       LevelInfo,
		infoLogger:  log.New(io.Discard, "", 0),
		errorLogger: log.New(io.Discard, "", 0),
		debugLogger: log.New(io.Discard, "", 0),
		fatalLogger: log.New(io.Discard, "", 0),
	}
}

func parseLogLevel(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l *Logger) Level() LogLevel {
	return l.level
}

func prefixed(reqID *string, format string) string {
	if reqID == nil || *reqID == "" {
		return format
	}
	return "[" + *reqID + "] " + format
}

func (l *Logger) Info(reqID *string, format string, v ...any) {
	if l.level == LevelError {
		return
	}
	l.infoLogger.Output(2, sprintf(prefixed(reqID, format), v...))
}

func (l *Logger) Error(reqID *string, format string, v ...any) {
	l.errorLogger.Output(2, sprintf(prefixed(reqID, format), v...))
}

func (l *Logger) Debug(reqID *string, format string, v ...any) {
	if l.level != LevelDebug {
		return
	}
	l.debugLogger.Output(2, sprintf(prefixed(reqID, format), v...))
}

// exit is swapped out in tests.
var exit = os.Exit

// Fatal logs v, closes the log file and exits with status 1. Deferred calls
// do not run, so the file is closed here.
func (l *Logger) Fatal(v ...any) {
	l.fatalLogger.Output(2, fmt.Sprint(v...))
	l.Close()
	exit(1)
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
