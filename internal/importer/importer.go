// Package importer parses an uploaded roster spreadsheet into clean
// player rows: header aliasing, name filtering, email deduplication,
// and base-price coercion.
package importer

import (
	"encoding/csv"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/xuri/excelize/v2"
)

var (
	// ErrNoNameColumn means no header resolved to the canonical name
	// field. The whole import is skipped; event setup still proceeds.
	ErrNoNameColumn = crerr.New("roster has no resolvable name column")
	// ErrUnsupportedFormat means the file extension is neither CSV nor
	// an Excel workbook.
	ErrUnsupportedFormat = crerr.New("unsupported roster file format")
	// ErrEmptyFile means the upload held no rows at all.
	ErrEmptyFile = crerr.New("roster file is empty")
)

const (
	DefaultCategory = "General"
	DefaultPosition = "Player"
)

// Row is one surviving roster entry in canonical form.
type Row struct {
	Name       string
	Email      string
	Category   string
	Position   string
	Department string
	BasePrice  int
	ImageURL   string
}

// columnAliases maps each canonical field to the source headers it may
// appear under, most specific first. Headers are compared after
// lowercasing and trimming.
var columnAliases = map[string][]string{
	"name":       {"player", "player name", "fullname", "name", "full name"},
	"email":      {"email", "email address", "contact", "mail", "id"},
	"category":   {"category", "cat", "group", "tier", "type"},
	"position":   {"position", "role", "speciality", "playing role"},
	"department": {"department", "dept", "branch", "section"},
	"base_price": {"baseprice", "base price", "cost", "starting bid", "price", "points", "base"},
	"image":      {"image", "photo", "pic", "url", "image link"},
}

// Parse reads a roster upload and returns the cleaned rows. The format
// is chosen by file extension: .csv goes through encoding/csv,
// .xlsx/.xlsm through excelize (first sheet).
func Parse(filename string, r io.Reader) ([]Row, error) {
	var (
		records [][]string
		err     error
	)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		records, err = readCSV(r)
	case ".xlsx", ".xlsm":
		records, err = readWorkbook(r)
	default:
		return nil, crerr.Wrapf(ErrUnsupportedFormat, "file %q", filename)
	}
	if err != nil {
		return nil, err
	}

	return Normalize(records)
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, crerr.Wrap(err, "read csv roster")
	}

	return records, nil
}

func readWorkbook(r io.Reader) ([][]string, error) {
	book, err := excelize.OpenReader(r)
	if err != nil {
		return nil, crerr.Wrap(err, "open roster workbook")
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}

	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, crerr.Wrapf(err, "read sheet %q", sheets[0])
	}

	return rows, nil
}

// Normalize maps the header row onto canonical fields and cleans the
// data rows: entries without a name are dropped, duplicate normalized
// emails keep the first occurrence, and base prices are coerced to
// non-negative integers (anything unparseable becomes zero).
func Normalize(records [][]string) ([]Row, error) {
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	columns := resolveColumns(records[0])
	if _, ok := columns["name"]; !ok {
		return nil, ErrNoNameColumn
	}

	out := make([]Row, 0, len(records)-1)
	seenEmails := make(map[string]struct{})

	for _, record := range records[1:] {
		name := strings.TrimSpace(cell(record, columns, "name"))
		if name == "" {
			continue
		}

		email := normalizeEmail(cell(record, columns, "email"))
		if email != "" {
			if _, dup := seenEmails[email]; dup {
				continue
			}
			seenEmails[email] = struct{}{}
		}

		row := Row{
			Name:       name,
			Email:      email,
			Category:   strings.TrimSpace(cell(record, columns, "category")),
			Position:   strings.TrimSpace(cell(record, columns, "position")),
			Department: strings.TrimSpace(cell(record, columns, "department")),
			BasePrice:  coercePrice(cell(record, columns, "base_price")),
			ImageURL:   strings.TrimSpace(cell(record, columns, "image")),
		}
		if row.Category == "" {
			row.Category = DefaultCategory
		}
		if row.Position == "" {
			row.Position = DefaultPosition
		}

		out = append(out, row)
	}

	return out, nil
}

// resolveColumns matches the header row against the alias table and
// returns canonical field -> column index. The first matching alias
// wins per field; a column claimed by one field stays claimed.
func resolveColumns(header []string) map[string]int {
	indexByHeader := make(map[string]int, len(header))
	for idx, raw := range header {
		key := strings.ToLower(strings.TrimSpace(raw))
		if key == "" {
			continue
		}
		if _, exists := indexByHeader[key]; !exists {
			indexByHeader[key] = idx
		}
	}

	columns := make(map[string]int, len(columnAliases))
	claimed := make(map[int]struct{}, len(columnAliases))
	for _, field := range []string{"name", "email", "category", "position", "department", "base_price", "image"} {
		for _, alias := range columnAliases[field] {
			idx, ok := indexByHeader[alias]
			if !ok {
				continue
			}
			if _, taken := claimed[idx]; taken {
				continue
			}
			columns[field] = idx
			claimed[idx] = struct{}{}
			break
		}
	}

	return columns
}

func cell(record []string, columns map[string]int, field string) string {
	idx, ok := columns[field]
	if !ok || idx >= len(record) {
		return ""
	}
	return record[idx]
}

func normalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// coercePrice turns a price cell into a non-negative int. Decimal
// values are truncated; anything unparseable or negative becomes zero.
func coercePrice(raw string) int {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	if parsed < 0 {
		return 0
	}

	return int(parsed)
}
