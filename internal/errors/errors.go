package errors

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/checkin/internal/logger"
)

var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Warning formats a non-fatal problem with a "Warning: " prefix
func Warning(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Warning: %v", err)
}

// Report logs a non-fatal error and prints it to stderr without exiting
func Report(err error) {
	if err != nil {
		logger.Warn("Command completed with warnings", "error", err)
		fmt.Fprintf(stderr, "%s\n", Warning(err))
	}
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(stderr, "%s\n", Format(err))
		exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(stderr, "%s\n", Formatf(format, args...))
	exit(1)
}
