package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DateLayout is the day.month.year • hour:minute format used for end dates
const DateLayout = "02.01.06 • 15:04"

var (
	titleCaser = cases.Title(language.English)

	headerStyle  = color.New(color.Bold, color.FgHiWhite)
	labelStyle   = color.New(color.Faint)
	addressStyle = color.New(color.FgWhite)
	linkStyle    = color.New(color.FgCyan, color.Underline)
	okStyle      = color.New(color.FgGreen)
	warnStyle    = color.New(color.FgYellow)
	errStyle     = color.New(color.FgRed)
	mutedStyle   = color.New(color.Faint)
)

// trimContext drops the "failed to ..." wrapping added on the way up,
// keeping the part of an error chain that names the cause.
func trimContext(message string) string {
	parts := strings.Split(message, ": ")
	i := 0
	for i < len(parts)-1 && strings.HasPrefix(parts[i], "failed to ") {
		i++
	}
	return strings.Join(parts[i:], ": ")
}

func capitalize(msg string) string {
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}
	return msg
}

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return warnStyle.Sprintf("⚠️  %s", capitalize(trimContext(message)))
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	return errStyle.Sprintf("❌ %s", capitalize(trimContext(message)))
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return okStyle.Sprintf("✅ %s", message)
}

// Title title-cases a label such as "withdraw" or "join discord"
func Title(s string) string {
	return titleCaser.String(s)
}

// FormatDate renders t in DateLayout, or "-" when zero
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(DateLayout)
}

// Truncate shortens s to at most n runes, adding an ellipsis
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return string(runes[:n])
	}
	return string(runes[:n-1]) + "…"
}

// palette colors output when color is enabled
type palette struct {
	out   io.Writer
	color bool
}

func (p palette) paint(c *color.Color, s string) string {
	if p.color {
		return c.Sprint(s)
	}
	return s
}

func (p palette) ok(s string) string    { return p.paint(okStyle, s) }
func (p palette) warn(s string) string  { return p.paint(warnStyle, s) }
func (p palette) bad(s string) string   { return p.paint(errStyle, s) }
func (p palette) muted(s string) string { return p.paint(mutedStyle, s) }
func (p palette) link(s string) string  { return p.paint(linkStyle, s) }

func (p palette) section(title string) {
	fmt.Fprintln(p.out, p.paint(headerStyle, title))
}

func (p palette) field(label, value string) {
	fmt.Fprintf(p.out, "  %s %s\n", p.paint(labelStyle, fmt.Sprintf("%-11s", label+":")), value)
}
