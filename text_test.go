package tabulate_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/bjaus/tabulate"
)

func TestPlainText(t *testing.T) {
	t.Parallel()
	txt := tabulate.PlainText("foo\nbar")
	assert.Equal(t, "foo\nbar", txt.String())
	assert.Equal(t, "foo\nbar", txt.Unstyle())
	assert.Equal(t, 2, txt.Lines())
}

func TestEscapedText(t *testing.T) {
	t.Parallel()
	txt := tabulate.EscapedText("This is \x1b[1;31;44mbold red with blue background\x1b[0m")
	assert.Equal(t, "This is bold red with blue background", txt.Unstyle())
	assert.Equal(t, 1, txt.Lines())
}

func TestStyledText(t *testing.T) {
	t.Parallel()
	txt := tabulate.Styled(lipgloss.NewStyle().Bold(true), "bold")
	assert.Equal(t, "bold", txt.Unstyle())
	assert.Equal(t, 1, txt.Lines())
}

func TestLineCount(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1, tabulate.LineCount(""))
	assert.Equal(t, 2, tabulate.LineCount("\n"))
	assert.Equal(t, 3, tabulate.LineCount("a\nb\nc"))
}

// Widths are measured on Unstyle and the styled form is spliced back, so
// both forms must keep the same line structure and visible characters.
func TestUnstyleKeepsLineStructure(t *testing.T) {
	t.Parallel()
	tests := map[string]tabulate.Text{
		"plain":           tabulate.PlainText("more\nspam eggs"),
		"escaped":         tabulate.EscapedText("more\nspam \x1b[31meggs\x1b[0m"),
		"escaped per run": tabulate.EscapedText("\x1b[5;30mS\x1b[31mt\x1b[32my\x1b[0m\n\x1b[1mx\x1b[0m"),
		"lipgloss":        tabulate.Styled(lipgloss.NewStyle().Italic(true), "one\ntwo"),
	}
	for name, txt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			styled := strings.Split(txt.String(), "\n")
			unstyled := strings.Split(txt.Unstyle(), "\n")
			assert.Len(t, unstyled, len(styled))
			assert.Equal(t, txt.Lines(), len(unstyled))
			for i := range styled {
				assert.Contains(t, stripVisibleOrder(styled[i]), unstyled[i])
			}
		})
	}
}

// stripVisibleOrder drops escape sequences introduced by ESC so the
// remaining runes can be compared with the unstyled line.
func stripVisibleOrder(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc:
			if (r >= '@' && r <= '~') && r != '[' {
				inEsc = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestTexts(t *testing.T) {
	t.Parallel()
	got := tabulate.Texts("a", "b")
	assert.Equal(t, []tabulate.Text{tabulate.PlainText("a"), tabulate.PlainText("b")}, got)
	assert.Empty(t, tabulate.Texts())
}
