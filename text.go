package tabulate

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Text is a text value whose rendered form may carry invisible styling.
//
// Implementations must keep String and Unstyle equivalent apart from the
// invisible content: the same embedded line breaks and the same visible
// characters in the same order. Widths are measured on Unstyle and the
// styled form is spliced back in after justification.
type Text interface {
	// String returns the full, possibly styled, text.
	String() string
	// Unstyle returns the text with all invisible sequences removed.
	Unstyle() string
	// Lines returns the number of display lines.
	Lines() int
}

// LineCount returns the number of newline-separated lines in s.
func LineCount(s string) int {
	return strings.Count(s, "\n") + 1
}

// PlainText is text without any styling.
type PlainText string

func (t PlainText) String() string  { return string(t) }
func (t PlainText) Unstyle() string { return string(t) }
func (t PlainText) Lines() int      { return LineCount(string(t)) }

// EscapedText is text containing ANSI escape sequences, such as
// "\x1b[31mred\x1b[0m".
type EscapedText string

func (t EscapedText) String() string  { return string(t) }
func (t EscapedText) Unstyle() string { return ansi.Strip(string(t)) }
func (t EscapedText) Lines() int      { return LineCount(string(t)) }

// StyledText is a value rendered through a lipgloss style.
type StyledText struct {
	Style lipgloss.Style
	Value string
}

// Styled returns a [StyledText] rendering value with style.
func Styled(style lipgloss.Style, value string) StyledText {
	return StyledText{Style: style, Value: value}
}

func (t StyledText) String() string  { return t.Style.Render(t.Value) }
func (t StyledText) Unstyle() string { return ansi.Strip(t.String()) }
func (t StyledText) Lines() int      { return LineCount(t.String()) }

// Texts converts plain strings into a header slice.
func Texts(values ...string) []Text {
	out := make([]Text, len(values))
	for i, v := range values {
		out[i] = PlainText(v)
	}
	return out
}

// widthCond measures with East-Asian ambiguous runes as narrow so the
// layout does not depend on the process locale.
var widthCond = &runewidth.Condition{EastAsianWidth: false}

func displayWidth(s string) int {
	return widthCond.StringWidth(s)
}

// maxLineWidth returns the display width of the widest line in s.
func maxLineWidth(s string) int {
	n := 0
	for line := range strings.SplitSeq(s, "\n") {
		if w := displayWidth(line); w > n {
			n = w
		}
	}
	return n
}
