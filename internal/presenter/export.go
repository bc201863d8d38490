package presenter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"strconv"
	"time"

	"github.com/mmatos/tabula/internal/domain"
	"github.com/mmatos/tabula/internal/timeutil"
	"github.com/mmatos/tabula/internal/validation"
)

const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatHTML = "html"
)

var allowedFormats = []string{FormatCSV, FormatJSON, FormatHTML}

// Save writes rows to <path>.<format>. Format and path are validated,
// and for JSON every cell is checked, before any file is created.
func Save(rows []domain.Row, columns []string, format, path string) error {
	supported := false
	for _, f := range allowedFormats {
		if format == f {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("%w: invalid output format %q, choose one of csv, json, html",
			domain.ErrInvalidValue, format)
	}
	if err := validation.ValidatePath(path); err != nil {
		return err
	}

	switch format {
	case FormatCSV:
		return saveCSV(rows, columns, path+".csv")
	case FormatJSON:
		return saveJSON(rows, columns, path+".json")
	default:
		return saveHTML(rows, columns, path+".html")
	}
}

// exportCell renders a cell for CSV/HTML output. Unlike the text table
// it keeps embedded newlines; the CSV writer quotes them.
func exportCell(v any) (string, error) {
	switch c := v.(type) {
	case nil:
		return "", nil
	case string:
		return c, nil
	case int:
		return strconv.Itoa(c), nil
	case int64:
		return strconv.FormatInt(c, 10), nil
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64), nil
	case time.Time:
		return c.Format(timeutil.DateLayout), nil
	}
	return "", fmt.Errorf("%w: value %v of type %T is not serializable", domain.ErrInvalidType, v, v)
}

func recordsFor(rows []domain.Row, columns []string) ([][]string, error) {
	records := make([][]string, len(rows))
	for i, row := range rows {
		record := make([]string, len(columns))
		for j, col := range columns {
			cell, err := exportCell(row[col])
			if err != nil {
				return nil, fmt.Errorf("row %d, column %q: %w", i, col, err)
			}
			record[j] = cell
		}
		records[i] = record
	}
	return records, nil
}

func saveCSV(rows []domain.Row, columns []string, filename string) error {
	records, err := recordsFor(rows, columns)
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'
	if err := w.Write(columns); err != nil {
		return err
	}
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func saveJSON(rows []domain.Row, columns []string, filename string) error {
	out := make([]map[string]any, len(rows))
	for i, row := range rows {
		obj := make(map[string]any, len(columns))
		for _, col := range columns {
			v, ok := row[col]
			if !ok {
				continue
			}
			switch c := v.(type) {
			case nil, string, int, int64, float64:
				obj[col] = v
			case time.Time:
				obj[col] = c.Format(timeutil.DateLayout)
			default:
				return fmt.Errorf("%w: row %d, column %q: value of type %T is not serializable",
					domain.ErrInvalidType, i, col, v)
			}
		}
		out[i] = obj
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

var htmlTmpl = template.Must(template.New("table").Parse(`<html>
<head>
<meta charset="UTF-8">
<style>
  table {
    font-family: "Courier New", Courier, monospace;
    border-collapse: collapse;
    width: 100%;
  }
  td, th {
    border: 1px solid #dddddd;
    text-align: left;
    padding: 8px;
  }
  tr:nth-child(even) {
    background-color: #dddddd;
  }
</style>
</head>
<body>
<table>
  <thead>
    <tr>
{{- range .Cols}}
      <th>{{.}}</th>
{{- end}}
    </tr>
  </thead>
  <tbody>
{{- range .Data}}
    <tr>
{{- range .}}
      <td>{{.}}</td>
{{- end}}
    </tr>
{{- end}}
  </tbody>
</table>
</body>
</html>
`))

func saveHTML(rows []domain.Row, columns []string, filename string) error {
	records, err := recordsFor(rows, columns)
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return htmlTmpl.Execute(f, struct {
		Cols []string
		Data [][]string
	}{Cols: columns, Data: records})
}
