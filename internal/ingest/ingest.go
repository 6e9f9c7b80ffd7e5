// Package ingest turns whitespace-separated text into table cells.
package ingest

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/bjaus/tabulate"
)

const maxLineSize = 16 << 20

// Options controls how input is read.
type Options struct {
	// Header uses the first line as column headers.
	Header bool
	// ANSI treats text tokens as holding escape sequences.
	ANSI bool
}

// Data is a parsed grid.
type Data struct {
	Headers []tabulate.Text
	Rows    [][]tabulate.Cell
}

// Read parses r line by line. Every line is split on whitespace; blank
// lines become empty rows.
func Read(r io.Reader, opts Options) (Data, error) {
	var data Data
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	first := true
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if first && opts.Header {
			first = false
			data.Headers = make([]tabulate.Text, len(fields))
			for i, f := range fields {
				data.Headers[i] = text(f, opts.ANSI)
			}
			continue
		}
		first = false
		row := make([]tabulate.Cell, len(fields))
		for i, f := range fields {
			row[i] = Classify(f, opts.ANSI)
		}
		data.Rows = append(data.Rows, row)
	}
	if err := sc.Err(); err != nil {
		return Data{}, err
	}
	return data, nil
}

// Classify returns an Int cell for tokens that parse as a signed 32-bit
// integer, a Float cell for decimal floating-point tokens, and a text cell
// otherwise. Hex floats and digit separators are text. Out-of-range floats saturate to infinity.
func Classify(token string, ansi bool) tabulate.Cell {
	if i, err := strconv.ParseInt(token, 10, 32); err == nil {
		return tabulate.Int(int32(i))
	}
	if !isHex(token) && !strings.ContainsRune(token, '_') {
		f, err := strconv.ParseFloat(token, 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return tabulate.Float(f)
		}
	}
	return tabulate.TextCell(text(token, ansi))
}

func text(s string, ansi bool) tabulate.Text {
	if ansi {
		return tabulate.EscapedText(s)
	}
	return tabulate.PlainText(s)
}

func isHex(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
