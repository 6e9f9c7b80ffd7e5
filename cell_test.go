package tabulate_test

import (
	"math"
	"testing"
	"time"

	"github.com/bjaus/tabulate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellIsNumeric(t *testing.T) {
	t.Parallel()
	assert.True(t, tabulate.Int(1).IsNumeric())
	assert.True(t, tabulate.Float(1.5).IsNumeric())
	assert.False(t, tabulate.Str("1").IsNumeric())
	assert.False(t, tabulate.Escaped("\x1b[1m1\x1b[0m").IsNumeric())
	assert.False(t, tabulate.Cell{}.IsNumeric())
}

func TestCellRender(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		cell tabulate.Cell
		want string
		ok   bool
	}{
		"int":            {cell: tabulate.Int(451), want: "451", ok: true},
		"negative int":   {cell: tabulate.Int(-7), want: "-7", ok: true},
		"float":          {cell: tabulate.Float(41.9999), want: "41.9999", ok: true},
		"whole float":    {cell: tabulate.Float(41), want: "41", ok: true},
		"large float":    {cell: tabulate.Float(1e21), want: "1000000000000000000000", ok: true},
		"small float":    {cell: tabulate.Float(0.000001), want: "0.000001", ok: true},
		"text":           {cell: tabulate.Str("spam"), ok: false},
		"no separators":  {cell: tabulate.Int(math.MaxInt32), want: "2147483647", ok: true},
		"negative float": {cell: tabulate.Float(-3.25), want: "-3.25", ok: true},
		"infinity":       {cell: tabulate.Float(math.Inf(1)), want: "inf", ok: true},
		"neg infinity":   {cell: tabulate.Float(math.Inf(-1)), want: "-inf", ok: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, ok := tt.cell.Render()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCellRenderPrecision(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		cell   tabulate.Cell
		digits int
		want   string
		ok     bool
	}{
		"int padded":     {cell: tabulate.Int(451), digits: 4, want: "451.0000", ok: true},
		"int no digits":  {cell: tabulate.Int(451), digits: 0, want: "451", ok: true},
		"float exact":    {cell: tabulate.Float(41.9999), digits: 4, want: "41.9999", ok: true},
		"float padded":   {cell: tabulate.Float(0.5), digits: 3, want: "0.500", ok: true},
		"float rounded":  {cell: tabulate.Float(41.9999), digits: 2, want: "42.00", ok: true},
		"float to whole": {cell: tabulate.Float(2.5), digits: 0, want: "2", ok: true},
		"text":           {cell: tabulate.Str("spam"), digits: 2, ok: false},
		"infinity":       {cell: tabulate.Float(math.Inf(1)), digits: 2, want: "inf", ok: true},
		"neg infinity":   {cell: tabulate.Float(math.Inf(-1)), digits: 3, want: "-inf", ok: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, ok := tt.cell.RenderPrecision(tt.digits)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCellFractionDigits(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 4, tabulate.Float(41.9999).FractionDigits())
	assert.Equal(t, 1, tabulate.Float(0.1).FractionDigits())
	assert.Equal(t, 0, tabulate.Float(42).FractionDigits())
	assert.Equal(t, 0, tabulate.Int(42).FractionDigits())
	assert.Equal(t, 0, tabulate.Str("4.25").FractionDigits())
}

func TestCellText(t *testing.T) {
	t.Parallel()
	txt, ok := tabulate.Str("spam").Text()
	require.True(t, ok)
	assert.Equal(t, tabulate.PlainText("spam"), txt)

	txt, ok = tabulate.Cell{}.Text()
	require.True(t, ok)
	assert.Equal(t, "", txt.String())

	_, ok = tabulate.Int(1).Text()
	assert.False(t, ok)
}

func TestCellString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "451", tabulate.Int(451).String())
	assert.Equal(t, "\x1b[1mx\x1b[0m", tabulate.Escaped("\x1b[1mx\x1b[0m").String())
}

type celsius float64

func TestCellOf(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value any
		want  tabulate.Cell
	}{
		"cell":        {value: tabulate.Int(3), want: tabulate.Int(3)},
		"int":         {value: 42, want: tabulate.Int(42)},
		"int8":        {value: int8(-4), want: tabulate.Int(-4)},
		"uint16":      {value: uint16(9), want: tabulate.Int(9)},
		"int64 big":   {value: int64(math.MaxInt32) + 1, want: tabulate.Float(2147483648)},
		"uint64 big":  {value: uint64(1 << 40), want: tabulate.Float(1 << 40)},
		"float32":     {value: float32(0.5), want: tabulate.Float(0.5)},
		"named float": {value: celsius(21.5), want: tabulate.Float(21.5)},
		"string":      {value: "spam", want: tabulate.Str("spam")},
		"text":        {value: tabulate.EscapedText("\x1b[1mx"), want: tabulate.Escaped("\x1b[1mx")},
		"stringer":    {value: time.March, want: tabulate.Str("March")},
		"nil":         {value: nil, want: tabulate.Str("")},
		"bool":        {value: true, want: tabulate.Str("true")},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tabulate.CellOf(tt.value))
		})
	}
}
