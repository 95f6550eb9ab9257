// Package ingest parses uploaded evidence files into row tables. The
// boundary is deliberately forgiving: a bad file produces a per-file
// error, never a failed batch.
package ingest

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/xuri/excelize/v2"
)

// MaxFileSize is the per-file upload ceiling
const MaxFileSize = 10 << 20

// File is one uploaded file
type File struct {
	Name string
	Data []byte
}

// Table is the parsed row table of one file
type Table struct {
	Source  string     `json:"source"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
	Note    string     `json:"note,omitempty"`
}

// FileError records why one file of a batch was skipped
type FileError struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Result is the outcome of one upload batch
type Result struct {
	Tables       []Table     `json:"tables"`
	Errors       []FileError `json:"errors"`
	Consolidated Table       `json:"consolidated"`
}

var allowedExtensions = map[string]bool{
	".xlsx": true,
	".csv":  true,
	".tsv":  true,
	".txt":  true,
	".json": true,
	".pdf":  true,
	".docx": true,
}

type Service struct{}

func New() *Service {
	return &Service{}
}

// Process parses each file of the batch and builds the consolidated
// cross-file table. Oversized or unsupported files land in Errors.
func (s *Service) Process(files []File) Result {
	result := Result{Tables: []Table{}, Errors: []FileError{}}

	for _, f := range files {
		ext := strings.ToLower(filepath.Ext(f.Name))
		if !allowedExtensions[ext] {
			result.Errors = append(result.Errors, FileError{
				Name:   f.Name,
				Reason: fmt.Sprintf("unsupported file type %q", ext),
			})
			continue
		}
		if len(f.Data) > MaxFileSize {
			result.Errors = append(result.Errors, FileError{
				Name:   f.Name,
				Reason: fmt.Sprintf("file exceeds the %d MB limit", MaxFileSize>>20),
			})
			continue
		}

		table, err := parseFile(f.Name, ext, f.Data)
		if err != nil {
			result.Errors = append(result.Errors, FileError{
				Name:   f.Name,
				Reason: err.Error(),
			})
			continue
		}
		result.Tables = append(result.Tables, table)
	}

	result.Consolidated = consolidate(result.Tables)
	return result
}

func parseFile(name, ext string, data []byte) (Table, error) {
	switch ext {
	case ".xlsx":
		return parseWorkbook(name, data)
	case ".csv":
		return parseDelimited(name, data, ',')
	case ".tsv":
		return parseDelimited(name, data, '\t')
	case ".json":
		return parseJSON(name, data)
	case ".txt":
		return parseLines(name, data), nil
	case ".pdf", ".docx":
		// Accepted so the upload does not bounce, but there is no
		// text extraction for these formats.
		return Table{
			Source:  name,
			Headers: []string{},
			Rows:    [][]string{},
			Note:    "no extractable rows for this format",
		}, nil
	}
	return Table{}, goerr.New("unsupported file type", goerr.V("ext", ext))
}

func parseWorkbook(name string, data []byte) (Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return Table{}, goerr.Wrap(err, "failed to open workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{Source: name, Headers: []string{}, Rows: [][]string{}}, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Table{}, goerr.Wrap(err, "failed to read sheet", goerr.V("sheet", sheets[0]))
	}
	return tableFromRows(name, rows), nil
}

func parseDelimited(name string, data []byte, comma rune) (Table, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return Table{}, goerr.Wrap(err, "failed to parse delimited file")
	}
	return tableFromRows(name, rows), nil
}

func parseJSON(name string, data []byte) (Table, error) {
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return Table{}, goerr.Wrap(err, "expected a JSON array of objects")
	}

	// Stable header order: union of keys, sorted.
	keySet := map[string]bool{}
	for _, rec := range records {
		for k := range rec {
			keySet[k] = true
		}
	}
	headers := make([]string, 0, len(keySet))
	for k := range keySet {
		headers = append(headers, k)
	}
	sort.Strings(headers)

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(headers))
		for i, h := range headers {
			if v, ok := rec[h]; ok && v != nil {
				row[i] = fmt.Sprintf("%v", v)
			}
		}
		rows = append(rows, row)
	}
	return Table{Source: name, Headers: headers, Rows: rows}, nil
}

func parseLines(name string, data []byte) Table {
	rows := [][]string{}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, []string{line})
	}
	return Table{Source: name, Headers: []string{"text"}, Rows: rows}
}

// tableFromRows treats the first row as the header row
func tableFromRows(name string, rows [][]string) Table {
	table := Table{Source: name, Headers: []string{}, Rows: [][]string{}}
	if len(rows) == 0 {
		return table
	}
	table.Headers = rows[0]
	for _, row := range rows[1:] {
		padded := make([]string, len(table.Headers))
		copy(padded, row)
		table.Rows = append(table.Rows, padded)
	}
	return table
}

// consolidate merges every table into one, keyed by a leading source
// column. Columns keep their first-appearance order across files.
func consolidate(tables []Table) Table {
	merged := Table{Source: "consolidated", Headers: []string{"source"}, Rows: [][]string{}}
	index := map[string]int{"source": 0}

	for _, t := range tables {
		for _, h := range t.Headers {
			if _, ok := index[h]; !ok {
				index[h] = len(merged.Headers)
				merged.Headers = append(merged.Headers, h)
			}
		}
	}

	for _, t := range tables {
		for _, row := range t.Rows {
			out := make([]string, len(merged.Headers))
			out[0] = t.Source
			for i, h := range t.Headers {
				if i < len(row) {
					out[index[h]] = row[i]
				}
			}
			merged.Rows = append(merged.Rows, out)
		}
	}
	return merged
}
