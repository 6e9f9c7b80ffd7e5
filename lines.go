package tabulate

import (
	"strings"
	"unicode"
)

// rowTexts lays one logical row out over numCols columns. Numbers are
// rendered at their column's precision; missing cells are empty.
func rowTexts(row []Cell, numCols int, specs []columnSpec) []Text {
	texts := make([]Text, numCols)
	for col := range texts {
		if col >= len(row) {
			texts[col] = PlainText("")
			continue
		}
		cell := row[col]
		if t, ok := cell.Text(); ok {
			texts[col] = t
			continue
		}
		s, _ := cell.RenderPrecision(specs[col].fractionDigits)
		texts[col] = PlainText(s)
	}
	return texts
}

// headerTexts pads headers out to numCols columns.
func headerTexts(headers []Text, numCols int) []Text {
	texts := make([]Text, numCols)
	for col := range texts {
		if col < len(headers) && headers[col] != nil {
			texts[col] = headers[col]
		} else {
			texts[col] = PlainText("")
		}
	}
	return texts
}

// splitRow expands a row into its physical lines: one per embedded line
// of its tallest cell. Each entry holds the formatted fragment of every
// column.
func splitRow(texts []Text, widths []int, specs []columnSpec, strAlign, numAlign Align) [][]string {
	n := 1
	for _, t := range texts {
		n = max(n, t.Lines())
	}
	styled := make([][]string, len(texts))
	unstyled := make([][]string, len(texts))
	for col, t := range texts {
		styled[col] = strings.Split(t.String(), "\n")
		unstyled[col] = strings.Split(t.Unstyle(), "\n")
	}
	lines := make([][]string, n)
	for i := range lines {
		fragments := make([]string, len(texts))
		for col := range texts {
			align := strAlign
			if specs[col].allNumeric {
				align = numAlign
			}
			fragments[col] = formatFragment(styled[col], unstyled[col], i, align, widths[col])
		}
		lines[i] = fragments
	}
	return lines
}

// formatFragment justifies line i of a cell within width. Cells shorter
// than the row yield blank padding.
func formatFragment(styled, unstyled []string, i int, align Align, width int) string {
	if i >= len(unstyled) {
		return strings.Repeat(" ", width)
	}
	plain := unstyled[i]
	out := justify(plain, width, align)
	if i < len(styled) && styled[i] != plain {
		out = strings.Replace(out, plain, styled[i], 1)
	}
	return out
}

func justify(s string, width int, align Align) string {
	pad := width - displayWidth(s)
	if pad < 0 {
		pad = 0
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	case AlignDecimal:
		return blankZeroFraction(strings.Repeat(" ", pad) + s)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

// blankZeroFraction replaces a trailing ".000…" with spaces, so padded
// integers line up under their siblings' decimal points.
func blankZeroFraction(s string) string {
	dot := strings.LastIndexByte(s, '.')
	if dot < 0 {
		return s
	}
	if strings.Trim(s[dot+1:], "0") != "" {
		return s
	}
	return s[:dot] + strings.Repeat(" ", len(s)-dot)
}

func borderLine(l *Line, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat(l.Fill, w)
	}
	return trimRight(l.Begin + strings.Join(parts, l.Sep) + l.End)
}

func dataLine(r DataRow, fragments []string) string {
	return trimRight(r.Begin + strings.Join(fragments, r.Sep) + r.End)
}

func trimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
