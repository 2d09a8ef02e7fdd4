package logger

import (
	"fmt"
	"log"
	"strings"
)

type BasicLogger struct {
	verbose bool
}

func NewLogger(verbose bool) *BasicLogger {
	return &BasicLogger{
		verbose: verbose,
	}
}

func (l *BasicLogger) Title(msg string, args ...any) {
	formatted := fmt.Sprintf("\n"+msg+"\n", args...)
	for _, line := range strings.Split(formatted, "\n") {
		log.Printf("%s", line)
	}
}

func (l *BasicLogger) Info(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	for _, line := range strings.Split(strings.TrimSuffix(formatted, "\n"), "\n") {
		log.Printf("%s", line)
	}
}

func (l *BasicLogger) Warn(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	for _, line := range strings.Split(strings.TrimSuffix(formatted, "\n"), "\n") {
		log.Printf("Warning: %s", line)
	}
}

func (l *BasicLogger) Error(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	for _, line := range strings.Split(strings.TrimSuffix(formatted, "\n"), "\n") {
		log.Printf("Error: %s", line)
	}
}

func (l *BasicLogger) Debug(msg string, args ...any) {
	// skip debug when !verbose
	if !l.verbose {
		return
	}
	formatted := fmt.Sprintf(msg, args...)
	for _, line := range strings.Split(strings.TrimSuffix(formatted, "\n"), "\n") {
		log.Printf("Debug: %s", line)
	}
}
