// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/helper/gc"
)

// Logger defines the interface for logging operations.
//
// Diagnostics (per-file failures, skipped files, warnings) go through a Logger;
// reports are written to the command output directly.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

const (
	// FormatText selects CLILogger in New.
	FormatText = "text"
	// FormatJSON selects JSONLogger in New.
	FormatJSON = "json"
)

// New returns the logger for format writing to w. Unknown formats fall back to text.
func New(format string, w io.Writer, program string) Logger {
	if format == FormatJSON {
		return NewJSONLogger(w, program)
	}

	l := NewCLILogger(program)
	l.SetOutput(w)
	return l
}

// CLILogger implements Logger using the standard log package.
// Every line is prefixed with "program: " and carries no timestamp.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger writing to stderr.
// An empty program name disables the prefix.
func NewCLILogger(program string) *CLILogger {
	prefix := ""
	if program != "" {
		prefix = program + ": "
	}
	l := log.New(os.Stderr, prefix, 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// JSONLogger implements Logger with one JSON object per line:
//
//	{"program":"deletecert","message":"open ca.pem: no such file or directory"}
//
// JSONLogger is safe for concurrent use by multiple goroutines.
type JSONLogger struct {
	mu      sync.Mutex
	writer  io.Writer
	program string
}

// entry is one JSON log line.
type entry struct {
	Program string `json:"program,omitempty"`
	Message string `json:"message"`
}

// NewJSONLogger creates a new JSON logger.
// A nil writer discards output.
func NewJSONLogger(writer io.Writer, program string) *JSONLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &JSONLogger{
		writer:  writer,
		program: program,
	}
}

// Printf formats and logs a structured message.
func (j *JSONLogger) Printf(format string, v ...any) {
	j.write(fmt.Sprintf(format, v...))
}

// Println logs a structured message, spacing operands like fmt.Sprintln.
func (j *JSONLogger) Println(v ...any) {
	j.write(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

func (j *JSONLogger) write(msg string) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	// Encode appends the newline; an entry of two strings cannot fail to encode.
	_ = json.NewEncoder(buf).Encode(entry{Program: j.program, Message: msg})

	j.mu.Lock()
	_, _ = buf.WriteTo(j.writer)
	j.mu.Unlock()
}

// SetOutput sets the output destination for the JSON logger.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) SetOutput(w io.Writer) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if w == nil {
		j.writer = io.Discard
	} else {
		j.writer = w
	}
}
