package parsers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	seasondomain "github.com/Black-And-White-Club/golf-league/app/modules/season/domain"
)

// CSVParser parses a single-event CSV score file
type CSVParser struct {
	event int
}

// NewCSVParser creates a CSV parser whose rows belong to event.
func NewCSVParser(event int) *CSVParser {
	return &CSVParser{event: event}
}

// Parse parses CSV data into a one-event season input
func (p *CSVParser) Parse(data []byte) (seasondomain.SeasonModelInput, error) {
	records, err := readCSV(data)
	if err != nil {
		return seasondomain.SeasonModelInput{}, err
	}

	rows, err := parseEventRows(records)
	if err != nil {
		return seasondomain.SeasonModelInput{}, fmt.Errorf("event %d: %w", p.event, err)
	}
	return assemble(map[int][]playerRow{p.event: rows}, []int{p.event})
}

func readCSV(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}
	return records, nil
}
