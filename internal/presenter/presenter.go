// Package presenter renders a row set as a fixed-width text table and
// exports it to CSV, JSON or HTML.
package presenter

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/mmatos/tabula/internal/domain"
	"github.com/mmatos/tabula/internal/timeutil"
)

// RenderText formats columns and rows as a fixed-width table: header
// line, dash separator joined by -+-, then one block of wrapped lines
// per row, cells joined by " | " and left-justified. With returnString
// false the table is printed to stdout and an empty string returned.
func RenderText(columns []string, rows []domain.Row, returnString bool) (string, error) {
	if err := validateCells(rows); err != nil {
		return "", err
	}

	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = runewidth.StringWidth(col)
		for _, row := range rows {
			if w := runewidth.StringWidth(cleanCell(row[col])); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	headerCells := make([]string, len(columns))
	sepCells := make([]string, len(columns))
	for i, col := range columns {
		headerCells[i] = runewidth.FillRight(col, widths[i])
		sepCells[i] = strings.Repeat("-", widths[i])
	}
	b.WriteString(strings.Join(headerCells, " | "))
	b.WriteString("\n")
	b.WriteString(strings.Join(sepCells, "-+-"))

	for _, row := range rows {
		wrapped := make([][]string, len(columns))
		height := 1
		for i, col := range columns {
			wrapped[i] = wrapWords(cleanCell(row[col]), widths[i])
			if len(wrapped[i]) > height {
				height = len(wrapped[i])
			}
		}
		for line := 0; line < height; line++ {
			parts := make([]string, len(columns))
			for i := range columns {
				cell := ""
				if line < len(wrapped[i]) {
					cell = wrapped[i][line]
				}
				parts[i] = runewidth.FillRight(cell, widths[i])
			}
			b.WriteString("\n")
			b.WriteString(strings.Join(parts, " | "))
		}
	}

	if !returnString {
		fmt.Fprintln(os.Stdout, b.String())
		return "", nil
	}
	return b.String(), nil
}

func validateCells(rows []domain.Row) error {
	for i, row := range rows {
		for key, v := range row {
			switch v.(type) {
			case nil, string, int, int64, float64, time.Time:
			default:
				return fmt.Errorf("%w: value %v in row %d, key %q has unsupported type %T",
					domain.ErrInvalidType, v, i, key, v)
			}
		}
	}
	return nil
}

// cleanCell normalizes a cell for display: nil becomes empty, dates
// take their ISO-8601 form, embedded line breaks are stripped.
func cleanCell(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		c = strings.ReplaceAll(c, "\r", "")
		return strings.ReplaceAll(c, "\n", " ")
	case int:
		return strconv.Itoa(c)
	case int64:
		return strconv.FormatInt(c, 10)
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case time.Time:
		return c.Format(timeutil.DateLayout)
	}
	return fmt.Sprint(v)
}

// wrapWords word-wraps a cell to the given display width, hard-splitting
// words wider than the column. Always yields at least one line.
func wrapWords(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 || width <= 0 {
		return []string{s}
	}

	var lines []string
	cur := ""
	flush := func() {
		if cur != "" {
			lines = append(lines, cur)
			cur = ""
		}
	}

	for _, word := range words {
		for runewidth.StringWidth(word) > width {
			flush()
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				// A single rune wider than the column still has to advance.
				r := []rune(word)
				head = string(r[0])
			}
			lines = append(lines, head)
			word = word[len(head):]
		}
		switch {
		case cur == "":
			cur = word
		case runewidth.StringWidth(cur)+1+runewidth.StringWidth(word) <= width:
			cur += " " + word
		default:
			flush()
			cur = word
		}
	}
	flush()

	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
