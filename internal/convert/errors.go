// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"

	"github.com/pdiddy/svg2ai/internal/host"
)

// Error codes carried by FatalError.
const (
	CodeAccessDenied = 5
	CodeNoPath       = 2
	CodeCancelled    = 1223
	CodeNoDocument   = 1302
	CodeHost         = 9000
)

// FatalError aborts the whole run. Anything else raised while converting a
// single file is reported and the walk moves on.
type FatalError struct {
	Code        int
	Description string
	// Line is the script line reported by the host, 0 when unknown.
	Line int
	Err  error
}

func (e *FatalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Description, e.Err)
	}
	return e.Description
}

func (e *FatalError) Unwrap() error { return e.Err }

// fatal builds a FatalError, taking the line from a wrapped host script error.
func fatal(code int, description string, err error) *FatalError {
	fe := &FatalError{Code: code, Description: description, Err: err}
	var se *host.ScriptError
	if errors.As(err, &se) {
		fe.Line = se.Line
	}
	return fe
}

// IsFatal reports whether err aborts the run.
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}
