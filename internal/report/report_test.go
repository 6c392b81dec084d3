// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/svg2ai/internal/convert"
	"github.com/pdiddy/svg2ai/internal/host"
)

func TestSummaryMessage(t *testing.T) {
	assert.Equal(t, "2 SVG files were converted to AI", SummaryMessage(2, "ai"))
	assert.Equal(t, "0 SVG files were converted to AI", SummaryMessage(0, ".ai"))
}

func TestFatalMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "access denied",
			err:  &convert.FatalError{Code: convert.CodeAccessDenied, Description: "Access is denied"},
			want: "ERROR: 5, Access is denied",
		},
		{
			name: "wrapped fatal with script line",
			err: fmt.Errorf("run: %w", &convert.FatalError{
				Code: convert.CodeNoDocument, Description: "No document is open", Line: 7,
			}),
			want: "ERROR: 1302, No document is open (line 7)",
		},
		{
			name: "host script error",
			err:  &host.ScriptError{Number: 0x10015, Line: 3, Description: "boom"},
			want: "ERROR: 21, boom (line 3)",
		},
		{
			name: "fatal wrapping a script error",
			err: &convert.FatalError{
				Code: convert.CodeHost, Description: "Could not suppress host alerts", Line: 2,
				Err: fmt.Errorf("setting interaction level: %w", &host.ScriptError{Number: 8, Line: 2, Description: "app busy"}),
			},
			want: "ERROR: 9000, Could not suppress host alerts: app busy (line 2)",
		},
		{
			name: "fatal wrapping a plain error",
			err:  &convert.FatalError{Code: convert.CodeCancelled, Description: "Conversion cancelled", Err: errors.New("context canceled")},
			want: "ERROR: 1223, Conversion cancelled: context canceled",
		},
		{
			name: "plain error",
			err:  errors.New("something broke"),
			want: "ERROR: 9000, something broke",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FatalMessage(tt.err))
		})
	}
}

func TestReporterAlerts(t *testing.T) {
	rec := &Recorder{}
	r := New(rec)

	r.FileFailed("/in/bad.svg", errors.New("malformed"))
	r.Summary(3, "ai")

	require.Len(t, rec.Alerts, 2)
	assert.Equal(t, "Conversion failed", rec.Alerts[0].Title)
	assert.Equal(t, []string{
		"Could not convert /in/bad.svg: malformed",
		"3 SVG files were converted to AI",
	}, rec.Messages())
}

func TestReporterFatal(t *testing.T) {
	rec := &Recorder{}
	New(rec).Fatal(&convert.FatalError{Code: convert.CodeAccessDenied, Description: "Access is denied"})

	require.Len(t, rec.Alerts, 1)
	assert.Equal(t, "Error", rec.Alerts[0].Title)
	assert.Equal(t, "ERROR: 5, Access is denied", rec.Alerts[0].Message)
}

func TestTerminalAlert(t *testing.T) {
	var buf bytes.Buffer
	NewTerminal(&buf).Alert("Done", "2 SVG files were converted to AI")

	out := buf.String()
	assert.Contains(t, out, "Done")
	assert.Contains(t, out, "2 SVG files were converted to AI")
	assert.Contains(t, out, "╭", "rounded border")
}
