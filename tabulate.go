package tabulate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrMissingInterface  = errors.New("missing required interface")
	ErrInvalidAlign      = errors.New("invalid alignment")
)

// Align controls how cells are justified within their column.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
	// AlignDecimal right-aligns numbers on their decimal point. It is only
	// valid for numeric columns.
	AlignDecimal
)

var alignNames = map[Align]string{
	AlignLeft:    "left",
	AlignCenter:  "center",
	AlignRight:   "right",
	AlignDecimal: "decimal",
}

// String returns the alignment name.
func (a Align) String() string {
	if s, ok := alignNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Align(%d)", int(a))
}

// ParseAlign parses one of "left", "center", "right" or "decimal".
func ParseAlign(s string) (Align, error) {
	for a, name := range alignNames {
		if name == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidAlign, s)
}

// Set implements pflag.Value.
func (a *Align) Set(s string) error {
	v, err := ParseAlign(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Type implements pflag.Value.
func (a *Align) Type() string { return "align" }

func mustStringAlign(a Align) {
	if a == AlignDecimal {
		panic("tabulate: string alignment cannot be AlignDecimal, only numeric alignment can")
	}
}

// Table is a grid of cells with optional headers, ready to render.
//
// Rendering never mutates the table, so a Table may be rendered from
// several goroutines as long as none of them changes its settings.
type Table struct {
	style    Style
	strAlign Align
	numAlign Align
	rows     [][]Cell
	headers  []Text
	border   func(string) string
}

// New returns a table with strings aligned left and numbers aligned on the
// decimal point. An empty headers slice renders a headerless table.
func New(style Style, rows [][]Cell, headers []Text) *Table {
	return &Table{
		style:    style,
		strAlign: AlignLeft,
		numAlign: AlignDecimal,
		rows:     rows,
		headers:  headers,
	}
}

// SetAlign sets the alignment of text columns and numeric columns.
//
// It panics if str is AlignDecimal.
func (t *Table) SetAlign(str, num Align) {
	mustStringAlign(str)
	t.strAlign = str
	t.numAlign = num
}

// SetBorderStyle sets a function applied to every border component
// (begins, fills, separators and ends) before the table is assembled.
// A nil fn removes the border style.
func (t *Table) SetBorderStyle(fn func(string) string) {
	t.border = fn
}

// LipglossBorder adapts a lipgloss style for [Table.SetBorderStyle].
func LipglossBorder(style lipgloss.Style) func(string) string {
	return func(s string) string {
		if s == "" {
			return s
		}
		return style.Render(s)
	}
}

// Tabulate renders the table. Lines are joined with "\n" and the result has
// no trailing newline.
func (t *Table) Tabulate() (string, error) {
	format, err := t.style.Format()
	if err != nil {
		return "", err
	}
	if t.border != nil {
		format = format.paint(t.border)
	}

	hasHeader := len(t.headers) > 0
	numCols := columnCount(t.headers, t.rows)
	specs := columnSpecs(numCols, t.rows)
	widths := columnWidths(numCols, t.headers, t.rows, specs, t.numAlign)

	var lines []string
	emitRow := func(r DataRow, texts []Text) {
		for _, fragments := range splitRow(texts, widths, specs, t.strAlign, t.numAlign) {
			lines = append(lines, dataLine(r, fragments))
		}
	}

	if format.LineAbove != nil && !(hasHeader && format.HideLineAboveIfHeader) {
		lines = append(lines, borderLine(format.LineAbove, widths))
	}
	if hasHeader {
		emitRow(format.HeaderRow, headerTexts(t.headers, numCols))
		if format.LineBelowHeader != nil {
			lines = append(lines, borderLine(format.LineBelowHeader, widths))
		}
	}
	for i, row := range t.rows {
		if i > 0 && format.LineBetweenRows != nil {
			lines = append(lines, borderLine(format.LineBetweenRows, widths))
		}
		emitRow(format.DataRow, rowTexts(row, numCols, specs))
	}
	if format.LineBelow != nil && !(hasHeader && format.HideLineBelowIfHeader) {
		lines = append(lines, borderLine(format.LineBelow, widths))
	}
	return strings.Join(lines, "\n"), nil
}

// Option configures [Render].
type Option func(*Table)

// WithAlign sets text and numeric column alignment.
//
// It panics if str is AlignDecimal.
func WithAlign(str, num Align) Option {
	mustStringAlign(str)
	return func(t *Table) {
		t.strAlign = str
		t.numAlign = num
	}
}

// WithBorderStyle sets the border style function, see [Table.SetBorderStyle].
func WithBorderStyle(fn func(string) string) Option {
	return func(t *Table) { t.border = fn }
}

// Render renders rows with the given style and headers.
func Render(style Style, rows [][]Cell, headers []Text, opts ...Option) (string, error) {
	t := New(style, rows, headers)
	for _, opt := range opts {
		opt(t)
	}
	return t.Tabulate()
}

// --- Typed items ---

// Rower provides the cells of one row. Required by [Write].
type Rower interface {
	Row() []Cell
}

// Headed provides column headers.
// Without it, the table renders without headers.
type Headed interface {
	Header() []Text
}

// Aligned sets text and numeric column alignment.
// Default: AlignLeft and AlignDecimal.
type Aligned interface {
	Align() (str, num Align)
}

// Write renders items as a table and writes it to w followed by a newline.
// Optional interfaces are read from the first item.
func Write[T any](w io.Writer, style Style, items ...T) error {
	if len(items) == 0 {
		return nil
	}
	first := any(items[0])
	if _, ok := first.(Rower); !ok {
		return fmt.Errorf("%w: style %q requires Rower, not implemented by %T", ErrMissingInterface, style, items[0])
	}

	rows := make([][]Cell, len(items))
	for i, item := range items {
		rows[i] = any(item).(Rower).Row()
	}

	var headers []Text
	if h, ok := first.(Headed); ok {
		headers = h.Header()
	}

	t := New(style, rows, headers)
	if a, ok := first.(Aligned); ok {
		t.SetAlign(a.Align())
	}

	out, err := t.Tabulate()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// Marshal renders items as a table and returns the bytes.
func Marshal[T any](style Style, items ...T) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, style, items...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
