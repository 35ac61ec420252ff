// =============================================================================
// CSV to Invoice Generator - Command Logger
// =============================================================================
//
// A simple leveled logger for the commands, implementing generator.Logger.
// Debug output only appears under --verbose.
//
// =============================================================================

package cmd

import "fmt"

// stdoutLogger prints leveled messages to stdout.
type stdoutLogger struct {
	verbose bool
}

func (l *stdoutLogger) Debug(msg string, args ...interface{}) {
	if l.verbose {
		fmt.Printf("[DEBUG] "+msg+"\n", args...)
	}
}

func (l *stdoutLogger) Info(msg string, args ...interface{}) {
	fmt.Printf("[INFO] "+msg+"\n", args...)
}

func (l *stdoutLogger) Warn(msg string, args ...interface{}) {
	fmt.Printf("[WARN] "+msg+"\n", args...)
}

func (l *stdoutLogger) Error(msg string, args ...interface{}) {
	fmt.Printf("[ERROR] "+msg+"\n", args...)
}
