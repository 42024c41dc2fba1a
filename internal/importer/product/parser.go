package product

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MrJamesThe3rd/clubshop/internal/catalog"
	enc "github.com/MrJamesThe3rd/clubshop/internal/encoding"
)

var ErrNoHeader = errors.New("no product header found: expected at least name and price columns")

// Parser reads product sheets exported from spreadsheets. Columns may come
// in any order and the sheet may be separated by ';' or ','.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]catalog.NewListing, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	br := bufio.NewReader(utf8r)

	reader := csv.NewReader(br)
	reader.Comma = detectComma(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var (
		cols  colIndex
		found bool
		rows  []record
	)

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		if !found {
			cols, found = mapHeader(row)
			continue
		}

		line, _ := reader.FieldPos(0)
		rows = append(rows, record{line: line, cells: row})
	}

	if !found {
		return nil, ErrNoHeader
	}

	return parseRows(cols, rows)
}

// record is a data row with its 1-based line in the file.
type record struct {
	line  int
	cells []string
}

// detectComma picks ';' unless the first line only contains commas.
func detectComma(br *bufio.Reader) rune {
	line, _ := br.Peek(br.Size())
	if i := strings.IndexByte(string(line), '\n'); i >= 0 {
		line = line[:i]
	}

	if strings.Count(string(line), ";") == 0 && strings.Count(string(line), ",") > 0 {
		return ','
	}

	return ';'
}

// parseRows converts data rows into listings. Blank rows are skipped.
func parseRows(cols colIndex, rows []record) ([]catalog.NewListing, error) {
	var listings []catalog.NewListing

	for _, r := range rows {
		if isBlank(r.cells) {
			continue
		}

		l, err := parseRow(cols, r.cells)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", r.line, err)
		}

		listings = append(listings, l)
	}

	return listings, nil
}

func parseRow(cols colIndex, row []string) (catalog.NewListing, error) {
	var l catalog.NewListing

	l.Name = cols.get(row, fieldName)
	if l.Name == "" {
		return l, errors.New("missing name")
	}

	price, err := parsePrice(cols.get(row, fieldPrice))
	if err != nil {
		return l, fmt.Errorf("invalid price %q: %w", cols.get(row, fieldPrice), err)
	}

	l.Price = price

	if s := cols.get(row, fieldMonths); s != "" {
		months, err := strconv.Atoi(s)
		if err != nil || months < 0 {
			return l, fmt.Errorf("invalid installment months %q", s)
		}

		if months > 0 {
			l.InstallmentMonths = new(months)
		}
	}

	category, err := parseCategory(cols.get(row, fieldCategory))
	if err != nil {
		return l, err
	}

	l.Category = category

	if s := cols.get(row, fieldIsMembership); s != "" {
		b, err := parseBool(s)
		if err != nil {
			return l, err
		}

		l.IsMembership = b
	}

	if l.IsMembership {
		l.Category = catalog.CategoryMembership
	}

	if err := l.Validate(); err != nil {
		return l, err
	}

	return l, nil
}

func parseCategory(s string) (catalog.Category, error) {
	if s == "" {
		return catalog.CategoryOther, nil
	}

	c := catalog.ParseCategory(s)
	if string(c) != strings.ToLower(s) {
		return "", fmt.Errorf("unknown category %q", s)
	}

	return c, nil
}

// parseBool accepts spreadsheet tick marks besides yes/no and strconv forms.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "y", "x", "✓":
		return true, nil
	case "no", "n", "-":
		return false, nil
	}

	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid membership flag %q", s)
	}

	return b, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
