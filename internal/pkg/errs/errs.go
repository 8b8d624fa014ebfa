// Package errs wraps cockroachdb/errors and defines the sentinel taxonomy the
// engines and the remote gateway share. Mark classifies gateway failures
// against a sentinel while keeping the cause chain; ExtractStackLines feeds
// bounded stack context into failure logs.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark attaches markErr as the identity of err: errors.Is(result, markErr)
// holds while the original cause stays inspectable.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// ExtractStackLines renders err verbosely and returns at most maxLines lines,
// for structured logs where a full stack dump would drown the entry.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
