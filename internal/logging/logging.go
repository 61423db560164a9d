package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/fatih/color"
	"github.com/gopak/minigrep/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu      sync.Mutex
	out     io.Writer = os.Stdout
	logfile *lumberjack.Logger
	filelog = log.New(io.Discard, "", log.LstdFlags)
	verbose bool

	red   = color.New(color.FgRed)
	green = color.New(color.FgGreen)
	gray  = color.New(color.FgHiBlack)
)

// Init directs a copy of every message to the rotating log file described
// by cfg. An empty cfg.File leaves file logging off.
func Init(cfg config.Log) error {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	if cfg.File == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return err
	}
	logfile = &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.CompressEnabled(),
	}
	filelog.SetOutput(logfile)
	return nil
}

func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

func closeLocked() {
	if logfile != nil {
		_ = logfile.Close()
		logfile = nil
	}
	filelog.SetOutput(io.Discard)
}

// SetOutput replaces the console writer, os.Stdout by default.
func SetOutput(w io.Writer) {
	mu.Lock()
	out = w
	mu.Unlock()
}

func emit(console, msg string) {
	mu.Lock()
	defer mu.Unlock()
	_, _ = fmt.Fprintln(out, console)
	filelog.Println(msg)
}

func Info(msg string) { emit(msg, msg) }

func Success(msg string) { emit(green.Sprint(msg), msg) }

// Error reports a failure on the console output in red.
func Error(msg string) { emit(red.Sprint(msg), "[ERROR] "+msg) }

// SetVerbose toggles verbose output to the console.
func SetVerbose(v bool) {
	mu.Lock()
	verbose = v
	mu.Unlock()
}

// Debug prints only when verbose mode is enabled.
func Debug(msg string) {
	mu.Lock()
	v := verbose
	mu.Unlock()
	if !v {
		return
	}
	emit(gray.Sprint(msg), "[DEBUG] "+msg)
}
