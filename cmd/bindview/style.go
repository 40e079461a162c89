package main

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// styles colors terminal output. The zero value prints plain text.
type styles struct {
	color bool
	width int // truncation width; zero means none

	heading lipgloss.Style
	element lipgloss.Style
	config  lipgloss.Style
	text    lipgloss.Style
	event   lipgloss.Style
	dim     lipgloss.Style
}

// stylesFor returns colored styles sized to the terminal when w is a
// terminal and plain styles otherwise.
func stylesFor(w io.Writer) styles {
	f, ok := w.(*os.File)
	if !ok {
		return styles{}
	}
	fd := f.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return styles{}
	}
	s := styles{
		color:   true,
		heading: lipgloss.NewStyle().Bold(true).Underline(true),
		element: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		config:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		text:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		event:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		dim:     lipgloss.NewStyle().Faint(true),
	}
	if width, _, err := term.GetSize(int(fd)); err == nil && width > 0 {
		s.width = width
	}
	return s
}

func (s styles) render(st lipgloss.Style, text string) string {
	if !s.color {
		return text
	}
	return st.Render(text)
}

// line styles one line of a recording listing by the command it shows.
func (s styles) line(line string) string {
	if s.width > 0 {
		line = runewidth.Truncate(line, s.width, "…")
	}
	body := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(body)]
	switch {
	case strings.HasPrefix(body, "OpenElement"):
		return indent + s.render(s.element, body)
	case strings.HasPrefix(body, "ConfigureElement"):
		return indent + s.render(s.config, body)
	case strings.HasPrefix(body, "AddText"):
		return indent + s.render(s.text, body)
	}
	return line
}
