package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches markErr so stdlib errors.Is(err, markErr) holds while keeping
// the original chain (and its stack) intact. Both the cause and the mark stay
// visible through Unwrap.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &markedError{cause: err, mark: markErr}
}

type markedError struct {
	cause error
	mark  error
}

func (e *markedError) Error() string {
	return e.cause.Error()
}

func (e *markedError) Unwrap() []error {
	return []error{e.cause, e.mark}
}

// Format delegates verbose formatting to the cause so %+v still prints its
// stack trace.
func (e *markedError) Format(st fmt.State, verb rune) {
	if verb == 'v' && st.Flag('+') {
		fmt.Fprintf(st, "%+v", e.cause)
		return
	}
	fmt.Fprintf(st, "%s", e.cause.Error())
}

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
