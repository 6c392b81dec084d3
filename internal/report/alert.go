// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the alert box styles.
type Theme struct {
	Title lipgloss.Style
	Body  lipgloss.Style
	Box   lipgloss.Style
}

// DefaultTheme returns the terminal alert styles.
func DefaultTheme() Theme {
	return Theme{
		Title: lipgloss.NewStyle().Bold(true),
		Body:  lipgloss.NewStyle(),
		Box: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
	}
}

// Terminal renders alerts as bordered boxes on a writer.
type Terminal struct {
	w     io.Writer
	theme Theme
}

// NewTerminal returns an Alerter writing to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w, theme: DefaultTheme()}
}

func (t *Terminal) Alert(title, message string) {
	body := lipgloss.JoinVertical(lipgloss.Left,
		t.theme.Title.Render(title),
		t.theme.Body.Render(message),
	)
	fmt.Fprintln(t.w, t.theme.Box.Render(body))
}

// Alert is one recorded alert.
type Alert struct {
	Title   string
	Message string
}

// Recorder keeps alerts in memory.
type Recorder struct {
	Alerts []Alert
}

func (r *Recorder) Alert(title, message string) {
	r.Alerts = append(r.Alerts, Alert{Title: title, Message: message})
}

// Messages returns the recorded messages in order.
func (r *Recorder) Messages() []string {
	out := make([]string, len(r.Alerts))
	for i, a := range r.Alerts {
		out[i] = a.Message
	}
	return out
}
