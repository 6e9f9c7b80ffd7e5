// Package tabulate renders tables of strings and numbers as aligned text.
//
// A table is a grid of [Cell] values: integers ([Int]), floats ([Float]) or
// text ([Str], [Escaped], [TextCell]). Rows may have different lengths and
// cells may span several lines. Column widths follow the display width of
// their contents, so East-Asian wide characters and ANSI-colored text line
// up correctly.
//
//	out, err := tabulate.Render(tabulate.Fancy,
//		[][]tabulate.Cell{
//			{tabulate.Str("spam"), tabulate.Float(41.9999)},
//			{tabulate.Str("eggs"), tabulate.Int(451)},
//		},
//		tabulate.Texts("strings", "numbers"),
//	)
//
// prints
//
//	╒═══════════╤═══════════╕
//	│ strings   │   numbers │
//	╞═══════════╪═══════════╡
//	│ spam      │   41.9999 │
//	├───────────┼───────────┤
//	│ eggs      │  451      │
//	╘═══════════╧═══════════╛
//
// # Styles
//
// [Plain], [Simple], [Github], [Grid], [Fancy], [Presto], [FancyGithub] and
// [FancyPresto]. Use [ParseStyle] to convert a flag value into a [Style];
// unknown names return [ErrUnsupportedFormat].
//
// # Alignment
//
// Text columns default to [AlignLeft] and numeric columns to [AlignDecimal],
// which aligns numbers on their decimal point and blanks the zero padding of
// values with fewer fraction digits. A column is numeric when every cell
// present in it is a number. [AlignDecimal] is never valid for text columns:
// [Table.SetAlign] and [WithAlign] panic when given it.
//
// # Styled text
//
// Any [Text] implementation can be placed in a cell. [PlainText] carries no
// styling, [EscapedText] holds raw ANSI escape sequences and [StyledText]
// wraps a lipgloss style. Widths are computed on the unstyled text and the
// styled text is spliced back after justification.
//
// # Typed items
//
// Types implementing [Rower] (and optionally [Headed] and [Aligned]) can be
// rendered directly with [Write] and [Marshal].
package tabulate
