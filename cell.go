package tabulate

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

type cellKind uint8

const (
	kindText cellKind = iota
	kindInt
	kindFloat
)

// Cell is a single table value: an integer, a float, or text.
// The zero Cell is empty plain text.
type Cell struct {
	kind cellKind
	i    int32
	f    float64
	text Text
}

// Int returns an integer cell.
func Int(v int32) Cell { return Cell{kind: kindInt, i: v} }

// Float returns a floating-point cell.
func Float(v float64) Cell { return Cell{kind: kindFloat, f: v} }

// TextCell returns a text cell backed by t.
func TextCell(t Text) Cell { return Cell{kind: kindText, text: t} }

// Str returns a plain text cell.
//
// Strings holding escape sequences break the layout; use [Escaped]
// for those.
func Str(s string) Cell { return TextCell(PlainText(s)) }

// Escaped returns a text cell holding ANSI escape sequences.
func Escaped(s string) Cell { return TextCell(EscapedText(s)) }

// CellOf converts a Go value into a cell. Integers that fit in 32 bits
// become [Int], other integers and floats become [Float], [Text]
// implementations become text cells, and anything else is formatted as
// plain text.
func CellOf(v any) Cell {
	switch x := v.(type) {
	case Cell:
		return x
	case Text:
		return TextCell(x)
	case string:
		return Str(x)
	case fmt.Stringer:
		return Str(x.String())
	case nil:
		return Str("")
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n >= math.MinInt32 && n <= math.MaxInt32 {
			return Int(int32(n))
		}
		return Float(float64(n))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		if n <= math.MaxInt32 {
			return Int(int32(n))
		}
		return Float(float64(n))
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	default:
		return Str(fmt.Sprint(v))
	}
}

// IsNumeric reports whether the cell holds an integer or a float.
func (c Cell) IsNumeric() bool {
	return c.kind == kindInt || c.kind == kindFloat
}

// Text returns the cell's text value. It reports false for numeric cells.
func (c Cell) Text() (Text, bool) {
	if c.kind != kindText {
		return nil, false
	}
	if c.text == nil {
		return PlainText(""), true
	}
	return c.text, true
}

// Render returns the natural decimal form of a numeric cell. It reports
// false for text cells.
func (c Cell) Render() (string, bool) {
	switch c.kind {
	case kindInt:
		return strconv.FormatInt(int64(c.i), 10), true
	case kindFloat:
		return formatFloat(c.f, -1), true
	default:
		return "", false
	}
}

// RenderPrecision formats a numeric cell with exactly digits fractional
// digits. Integers are formatted as the equivalent float, so Int(451) at
// 4 digits is "451.0000". It reports false for text cells.
func (c Cell) RenderPrecision(digits int) (string, bool) {
	switch c.kind {
	case kindInt:
		return strconv.FormatFloat(float64(c.i), 'f', digits, 64), true
	case kindFloat:
		return formatFloat(c.f, digits), true
	default:
		return "", false
	}
}

// formatFloat renders f in fixed notation. Infinities print as "inf" and
// "-inf".
func formatFloat(f float64, digits int) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', digits, 64)
}

// FractionDigits returns the number of digits after the decimal point in
// the natural form of a float cell, and 0 for any other cell.
func (c Cell) FractionDigits() int {
	if c.kind != kindFloat {
		return 0
	}
	s, _ := c.Render()
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		return len(s) - dot - 1
	}
	return 0
}

// String returns the natural form of the cell: the decimal rendering of a
// number or the styled text.
func (c Cell) String() string {
	if s, ok := c.Render(); ok {
		return s
	}
	t, _ := c.Text()
	return t.String()
}
