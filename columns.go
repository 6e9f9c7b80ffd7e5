package tabulate

// Headers are measured with this much extra room so they never touch the
// column separators.
const minPadding = 2

type columnSpec struct {
	allNumeric     bool
	fractionDigits int
}

func columnCount(headers []Text, rows [][]Cell) int {
	n := len(headers)
	for _, row := range rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// columnSpecs reports, per column, whether every present cell is numeric
// and the largest fraction digit count among its numeric cells. Absent
// cells do not disqualify a column, but a column with no cells at all is
// text.
func columnSpecs(numCols int, rows [][]Cell) []columnSpec {
	specs := make([]columnSpec, numCols)
	for col := range specs {
		present := false
		all := true
		digits := 0
		for _, row := range rows {
			if col >= len(row) {
				continue
			}
			present = true
			cell := row[col]
			if !cell.IsNumeric() {
				all = false
				continue
			}
			digits = max(digits, cell.FractionDigits())
		}
		specs[col] = columnSpec{allNumeric: present && all, fractionDigits: digits}
	}
	return specs
}

// columnWidths computes the content width of every column.
//
// Decimal-aligned numbers are measured by the byte length of their fixed
// precision form, which is always ASCII.
func columnWidths(numCols int, headers []Text, rows [][]Cell, specs []columnSpec, numAlign Align) []int {
	widths := make([]int, numCols)
	for col := range widths {
		w := 0
		if col < len(headers) && headers[col] != nil {
			w = maxLineWidth(headers[col].Unstyle()) + minPadding
		}
		spec := specs[col]
		fixed := spec.allNumeric && numAlign == AlignDecimal && spec.fractionDigits > 0
		for _, row := range rows {
			if col >= len(row) {
				continue
			}
			w = max(w, cellWidth(row[col], spec, fixed))
		}
		widths[col] = w
	}
	return widths
}

func cellWidth(c Cell, spec columnSpec, fixed bool) int {
	if fixed {
		s, _ := c.RenderPrecision(spec.fractionDigits)
		return len(s)
	}
	if t, ok := c.Text(); ok {
		return maxLineWidth(t.Unstyle())
	}
	s, _ := c.Render()
	return len(s)
}
