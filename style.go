package tabulate

import "fmt"

// Style names a table layout.
type Style string

const (
	Plain       Style = "plain"
	Simple      Style = "simple"
	Github      Style = "github"
	Grid        Style = "grid"
	Fancy       Style = "fancy"
	Presto      Style = "presto"
	FancyGithub Style = "fancygithub"
	FancyPresto Style = "fancypresto"
)

var styles = []Style{Plain, Simple, Github, Grid, Fancy, Presto, FancyGithub, FancyPresto}

// String returns the style name.
func (s Style) String() string { return string(s) }

// Styles returns all supported style names.
func Styles() []Style {
	out := make([]Style, len(styles))
	copy(out, styles)
	return out
}

// ParseStyle parses a style name. Names are lower-case and case-sensitive.
func ParseStyle(s string) (Style, error) {
	for _, st := range styles {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Line describes a horizontal rule: Begin, then Fill repeated to each
// column's width with Sep between columns, then End.
type Line struct {
	Begin, Fill, Sep, End string
}

// DataRow describes how the cells of a row are framed.
type DataRow struct {
	Begin, Sep, End string
}

// TableFormat is the full set of decorations of a style.
//
//	--- LineAbove ---------
//	    HeaderRow
//	--- LineBelowHeader ---
//	    DataRow
//	--- LineBetweenRows ---
//	    DataRow
//	--- LineBelow ---------
//
// Nil lines are not drawn.
type TableFormat struct {
	LineAbove       *Line
	LineBelowHeader *Line
	LineBetweenRows *Line
	LineBelow       *Line
	HeaderRow       DataRow
	DataRow         DataRow

	// HideLineAboveIfHeader and HideLineBelowIfHeader suppress the outer
	// rules of headered tables, for styles whose header separator already
	// frames the table.
	HideLineAboveIfHeader bool
	HideLineBelowIfHeader bool
}

var (
	basicRow             = DataRow{"", "  ", ""}
	basicLine            = Line{"", "-", "  ", ""}
	pipeRow              = DataRow{"| ", " | ", " |"}
	singleLine           = Line{"", "─", "─┼─", ""}
	singleLineWithEnds   = Line{"├─", "─", "─┼─", "─┤"}
	boxRow               = DataRow{"", " │ ", ""}
	boxRowWithEnds       = DataRow{"│ ", " │ ", " │"}
	githubLine           = Line{"|-", "-", "-|-", "-|"}
	gridLine             = Line{"+-", "-", "-+-", "-+"}
	gridHeaderLine       = Line{"+=", "=", "=+=", "=+"}
	fancyLineAbove       = Line{"╒═", "═", "═╤═", "═╕"}
	fancyLineBelowHeader = Line{"╞═", "═", "═╪═", "═╡"}
	fancyLineBelow       = Line{"╘═", "═", "═╧═", "═╛"}
	prestoRow            = DataRow{" ", " | ", " "}
	prestoLine           = Line{"-", "-", "-+-", "-"}
)

var formats = map[Style]TableFormat{
	Plain: {
		HeaderRow: basicRow,
		DataRow:   basicRow,
	},
	Simple: {
		LineAbove:             &basicLine,
		LineBelowHeader:       &basicLine,
		LineBelow:             &basicLine,
		HeaderRow:             basicRow,
		DataRow:               basicRow,
		HideLineAboveIfHeader: true,
		HideLineBelowIfHeader: true,
	},
	Github: {
		LineAbove:             &githubLine,
		LineBelowHeader:       &githubLine,
		HeaderRow:             pipeRow,
		DataRow:               pipeRow,
		HideLineAboveIfHeader: true,
	},
	Grid: {
		LineAbove:       &gridLine,
		LineBelowHeader: &gridHeaderLine,
		LineBetweenRows: &gridLine,
		LineBelow:       &gridLine,
		HeaderRow:       pipeRow,
		DataRow:         pipeRow,
	},
	Fancy: {
		LineAbove:       &fancyLineAbove,
		LineBelowHeader: &fancyLineBelowHeader,
		LineBetweenRows: &singleLineWithEnds,
		LineBelow:       &fancyLineBelow,
		HeaderRow:       boxRowWithEnds,
		DataRow:         boxRowWithEnds,
	},
	Presto: {
		LineBelowHeader: &prestoLine,
		HeaderRow:       prestoRow,
		DataRow:         prestoRow,
	},
	FancyGithub: {
		LineBelowHeader: &singleLineWithEnds,
		HeaderRow:       boxRowWithEnds,
		DataRow:         boxRowWithEnds,
	},
	FancyPresto: {
		LineBelowHeader: &singleLine,
		HeaderRow:       boxRow,
		DataRow:         boxRow,
	},
}

// Format returns the decorations of the style. The result is a copy and
// may be modified freely.
func (s Style) Format() (TableFormat, error) {
	f, ok := formats[s]
	if !ok {
		return TableFormat{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
	return f.clone(), nil
}

func (f TableFormat) clone() TableFormat {
	f.LineAbove = f.LineAbove.clone()
	f.LineBelowHeader = f.LineBelowHeader.clone()
	f.LineBetweenRows = f.LineBetweenRows.clone()
	f.LineBelow = f.LineBelow.clone()
	return f
}

func (l *Line) clone() *Line {
	if l == nil {
		return nil
	}
	c := *l
	return &c
}

// paint returns a copy of f with every border component passed through fn.
func (f TableFormat) paint(fn func(string) string) TableFormat {
	f = f.clone()
	for _, l := range []*Line{f.LineAbove, f.LineBelowHeader, f.LineBetweenRows, f.LineBelow} {
		if l == nil {
			continue
		}
		l.Begin, l.Fill, l.Sep, l.End = fn(l.Begin), fn(l.Fill), fn(l.Sep), fn(l.End)
	}
	for _, r := range []*DataRow{&f.HeaderRow, &f.DataRow} {
		r.Begin, r.Sep, r.End = fn(r.Begin), fn(r.Sep), fn(r.End)
	}
	return f
}
