// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report turns conversion outcomes into operator alerts: one per
// failed file, then either a summary or a fatal error.
package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/svg2ai/internal/convert"
	"github.com/pdiddy/svg2ai/internal/host"
)

// Alerter shows a blocking message to the operator.
type Alerter interface {
	Alert(title, message string)
}

// Reporter implements convert.Reporter on top of an Alerter.
type Reporter struct {
	alerts Alerter
}

// New returns a Reporter that raises alerts through a.
func New(a Alerter) *Reporter {
	return &Reporter{alerts: a}
}

// FileFailed raises one alert naming the file and the error.
func (r *Reporter) FileFailed(path string, err error) {
	r.alerts.Alert("Conversion failed", fmt.Sprintf("Could not convert %s: %v", path, err))
}

// Summary raises the end-of-run alert, including for zero files.
func (r *Reporter) Summary(converted int, ext string) {
	r.alerts.Alert("Done", SummaryMessage(converted, ext))
}

// Fatal raises the alert for an error that aborted the run.
func (r *Reporter) Fatal(err error) {
	r.alerts.Alert("Error", FatalMessage(err))
}

// SummaryMessage formats the end-of-run count.
func SummaryMessage(converted int, ext string) string {
	return fmt.Sprintf("%d SVG files were converted to %s", converted, strings.ToUpper(strings.TrimPrefix(ext, ".")))
}

// FatalMessage formats err as "ERROR: <code>, <description>", with the
// script line appended when the host reported one.
func FatalMessage(err error) string {
	code, line := convert.CodeHost, 0
	desc := err.Error()

	var fe *convert.FatalError
	var se *host.ScriptError
	switch {
	case errors.As(err, &fe):
		code, line, desc = fe.Code, fe.Line, fe.Description
		if fe.Err != nil {
			if errors.As(fe.Err, &se) {
				desc += ": " + se.Description
			} else {
				desc += ": " + fe.Err.Error()
			}
		}
	case errors.As(err, &se):
		code, line, desc = se.Number, se.Line, se.Description
	}

	msg := fmt.Sprintf("ERROR: %d, %s", code&0xFFFF, desc)
	if line > 0 {
		msg += fmt.Sprintf(" (line %d)", line)
	}
	return msg
}
