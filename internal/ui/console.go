// Package ui renders command output and prompts on the terminal.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Console writes styled lines to a single writer
type Console struct {
	out      io.Writer
	renderer *lipgloss.Renderer

	plain    lipgloss.Style
	warning  lipgloss.Style
	errStyle lipgloss.Style
	question lipgloss.Style
	success  lipgloss.Style
	muted    lipgloss.Style
}

// NewConsole creates a console on out. With noColor set every style renders as plain text.
func NewConsole(out io.Writer, noColor bool) *Console {
	r := lipgloss.NewRenderer(out)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return &Console{
		out:      out,
		renderer: r,
		plain:    base,
		warning:  base.Foreground(lipgloss.Color("214")),
		errStyle: base.Foreground(lipgloss.Color("9")).Bold(true),
		question: base.Foreground(lipgloss.Color("12")),
		success:  base.Foreground(lipgloss.Color("42")),
		muted:    base.Faint(true),
	}
}

// Writer returns the underlying writer
func (c *Console) Writer() io.Writer {
	return c.out
}

// Line writes text unstyled
func (c *Console) Line(text string) {
	c.print(c.plain, text)
}

// Warning writes text in the warning colour
func (c *Console) Warning(text string) {
	c.print(c.warning, text)
}

// Error writes text in the error colour
func (c *Console) Error(text string) {
	c.print(c.errStyle, text)
}

// Question writes a prompt line
func (c *Console) Question(text string) {
	c.print(c.question, text)
}

// QuestionText renders text in the prompt style without writing it
func (c *Console) QuestionText(text string) string {
	return c.question.Render(text)
}

// Success writes a confirmation line
func (c *Console) Success(text string) {
	c.print(c.success, text)
}

// Muted writes de-emphasised text
func (c *Console) Muted(text string) {
	c.print(c.muted, text)
}

func (c *Console) print(style lipgloss.Style, text string) {
	fmt.Fprintln(c.out, style.Render(text))
}
