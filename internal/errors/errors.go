// Package errors prints command failures the same way for every koffee command.
package errors

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/koffee/internal/logger"
)

const prefix = "Error: "

// Format returns "Error: <err>", or "" for a nil error.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return prefix + err.Error()
}

func Formatf(format string, args ...interface{}) string {
	return prefix + fmt.Sprintf(format, args...)
}

// Report logs err and prints it to w. It returns false when err is nil.
func Report(w io.Writer, err error) bool {
	if err == nil {
		return false
	}
	logger.Error("Command failed", "error", err)
	fmt.Fprintln(w, Format(err))
	return true
}

// Fatal reports err on stderr and exits with status 1. A nil err is ignored.
func Fatal(err error) {
	if Report(os.Stderr, err) {
		os.Exit(1)
	}
}

func Fatalf(format string, args ...interface{}) {
	Fatal(fmt.Errorf(format, args...))
}
