package parsers

import (
	"bytes"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	seasondomain "github.com/Black-And-White-Club/golf-league/app/modules/season/domain"
)

var eventSheetPattern = regexp.MustCompile(`(?i)^\s*event\s*(\d+)\s*$`)

// XLSXParser parses season workbooks with one "Event <n>" sheet per event.
// Other sheets are ignored.
type XLSXParser struct{}

// NewXLSXParser creates a new XLSX parser
func NewXLSXParser() *XLSXParser {
	return &XLSXParser{}
}

// Parse parses XLSX data into a season input
func (p *XLSXParser) Parse(data []byte) (seasondomain.SeasonModelInput, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		if strings.Contains(err.Error(), "zip: not a valid zip file") {
			return seasondomain.SeasonModelInput{}, fmt.Errorf("failed to open XLSX file: %w. (Hint: If this is a CSV file, please ensure it has a .csv extension)", err)
		}
		return seasondomain.SeasonModelInput{}, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	events := make(map[int][]playerRow)
	var order []int
	for _, sheet := range f.GetSheetList() {
		n, ok := EventSheetNumber(sheet)
		if !ok {
			continue
		}
		if _, dup := events[n]; dup {
			return seasondomain.SeasonModelInput{}, fmt.Errorf("%w: event %d appears on two sheets", seasondomain.ErrInvalidEvent, n)
		}

		rows, err := f.GetRows(sheet)
		if err != nil {
			return seasondomain.SeasonModelInput{}, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
		}
		parsed, err := parseEventRows(rows)
		if err != nil {
			return seasondomain.SeasonModelInput{}, fmt.Errorf("sheet %q: %w", sheet, err)
		}
		events[n] = parsed
		order = append(order, n)
	}

	if len(order) == 0 {
		return seasondomain.SeasonModelInput{}, ErrNoEvents
	}
	slices.Sort(order)
	return assemble(events, order)
}

// EventSheetName is the sheet name used for event n.
func EventSheetName(n int) string {
	return "Event " + strconv.Itoa(n)
}

// EventSheetNumber reports the event number of a sheet named "Event <n>".
func EventSheetNumber(sheet string) (int, bool) {
	m := eventSheetPattern.FindStringSubmatch(sheet)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
