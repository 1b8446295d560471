package main

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"charm.land/lipgloss/v2"
	go_json "github.com/goccy/go-json"
	"golang.org/x/oauth2"

	"github.com/garrettladley/moves/internal/oauth"
)

const timeLayout = "2006-01-02 15:04:05"

var (
	colorGreen = lipgloss.Color("#6CC24A")
	colorTeal  = lipgloss.Color("#00A3A1")
	colorDim   = lipgloss.Color("#7D7D7D")
	colorRed   = lipgloss.Color("#E5533D")
)

var (
	successStyle = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	headingStyle = lipgloss.NewStyle().Foreground(colorTeal).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(colorDim)
	errorStyle   = lipgloss.NewStyle().Foreground(colorRed)
)

func printSuccess(w io.Writer, msg string) {
	_, _ = fmt.Fprintln(w, successStyle.Render(msg))
}

func printHeading(w io.Writer, msg string) {
	_, _ = fmt.Fprintln(w, headingStyle.Render(msg))
}

func printField(w io.Writer, label string, value any) {
	_, _ = fmt.Fprintf(w, "%s %v\n", labelStyle.Render(label+":"), value)
}

func printError(w io.Writer, msg string) {
	_, _ = fmt.Fprintln(w, errorStyle.Render(msg))
}

func printToken(w io.Writer, token *oauth2.Token) {
	if token.Expiry.IsZero() {
		printField(w, "Token expires", "never")
	} else {
		printField(w, "Token expires", token.Expiry.Local().Format(timeLayout))
		printField(w, "Expires in", formatDuration(time.Until(token.Expiry)))
	}
	if id := oauth.UserID(token); id != 0 {
		printField(w, "User ID", id)
	}
	printField(w, "Refresh token", token.RefreshToken != "")
}

// printJSON indents body when it is JSON and writes it verbatim otherwise.
func printJSON(w io.Writer, body []byte) {
	var buf bytes.Buffer
	if err := go_json.Indent(&buf, body, "", "  "); err != nil {
		_, _ = w.Write(body)
		_, _ = fmt.Fprintln(w)
		return
	}
	_, _ = buf.WriteTo(w)
	_, _ = fmt.Fprintln(w)
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Second).String()
}
