package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/fatih/color"
)

// ColorMode represents color output mode
type ColorMode int

const (
	// ColorAuto enables colors unless NO_COLOR or a dumb terminal says otherwise
	ColorAuto ColorMode = iota
	// ColorAlways forces colors on
	ColorAlways
	// ColorNever forces colors off
	ColorNever
)

// ParseColorMode parses a string into a ColorMode
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q: must be auto, always, or never", s)
	}
}

// ResolveColors determines whether to use colors based on mode and environment
func ResolveColors(mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false
		}
		if os.Getenv("TERM") == "dumb" {
			return false
		}
		return !color.NoColor
	}
}

// Printer writes results to out and notices to err.
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

func NewPrinter(out, err io.Writer, useColors bool) *Printer {
	return &Printer{out: out, err: err, useColors: useColors}
}

// Out is the writer tables render to.
func (p *Printer) Out() io.Writer { return p.out }

// Info prints an informational message
func (p *Printer) Info(format string, args ...any) {
	p.line(p.out, color.FgCyan, "", "", format, args...)
}

// Success prints a success message
func (p *Printer) Success(format string, args ...any) {
	p.line(p.out, color.FgGreen, "✓ ", "[OK] ", format, args...)
}

// Warning prints a warning message
func (p *Printer) Warning(format string, args ...any) {
	p.line(p.err, color.FgYellow, "⚠ ", "[WARN] ", format, args...)
}

// Error prints an error message
func (p *Printer) Error(format string, args ...any) {
	p.line(p.err, color.FgRed, "✗ ", "[ERROR] ", format, args...)
}

// Print prints a plain message
func (p *Printer) Print(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) line(w io.Writer, attr color.Attribute, icon, tag, format string, args ...any) {
	if p.useColors {
		color.New(attr).Fprintf(w, icon+format+"\n", args...)
		return
	}
	fmt.Fprintf(w, tag+format+"\n", args...)
}

// Notice renders a shell notice. Blocking notices name the route the shell
// moves to.
func (p *Printer) Notice(n domain.Notice) {
	msg := n.Message
	if n.Navigate != "" {
		msg += " (run: storefrontctl login)"
	}
	switch n.Level {
	case domain.NoticeSuccess:
		p.Success("%s", msg)
	case domain.NoticeWarning:
		p.Warning("%s", msg)
	case domain.NoticeError:
		p.Error("%s", msg)
	default:
		p.Info("%s", msg)
	}
}

// Bold returns text in bold
func (p *Printer) Bold(text string) string {
	if p.useColors {
		return color.New(color.Bold).Sprint(text)
	}
	return text
}

// Dim returns dimmed text
func (p *Printer) Dim(text string) string {
	if p.useColors {
		return color.New(color.Faint).Sprint(text)
	}
	return text
}

// StatusBadge renders an order status.
func (p *Printer) StatusBadge(status string) string {
	if !p.useColors {
		return status
	}
	switch status {
	case "Delivered":
		return color.GreenString(status)
	case "Cancelled":
		return color.RedString(status)
	case "Shipped":
		return color.CyanString(status)
	default:
		return color.YellowString(status)
	}
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
