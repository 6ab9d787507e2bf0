package parsers

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	seasondomain "github.com/Black-And-White-Club/golf-league/app/modules/season/domain"
)

// Parser defines the interface for season score file parsers
type Parser interface {
	Parse(data []byte) (seasondomain.SeasonModelInput, error)
}

// ParserFactory defines the interface for creating parsers
type ParserFactory interface {
	GetParser(filename string) (Parser, error)
}

// Factory creates the appropriate parser based on file extension
type Factory struct{}

// NewFactory creates a new parser factory
func NewFactory() *Factory {
	return &Factory{}
}

// GetParser returns the appropriate parser for the given filename. A CSV
// file holds one event, numbered by the trailing digits of its base name
// ("event3.csv" is event 3) or 1 when there are none.
func (f *Factory) GetParser(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".csv":
		return NewCSVParser(eventNumberFromName(filename)), nil
	case ".xlsx":
		return NewXLSXParser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFile, ext)
	}
}

func eventNumberFromName(filename string) int {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	end := len(base)
	start := end
	for start > 0 && unicode.IsDigit(rune(base[start-1])) {
		start--
	}
	if n, err := strconv.Atoi(base[start:end]); err == nil && n > 0 {
		return n
	}
	return 1
}
