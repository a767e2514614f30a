package normalize

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/handiism/spotify-analysis/internal/model"
)

// DecimalSeparator is the decimal mark used by the dataset.
const DecimalSeparator = ","

// ErrNotDecimal is returned for stream counts that are not a plain
// non-negative decimal number.
var ErrNotDecimal = errors.New("not a decimal number")

var decimalPattern = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)$`)

// ParseStreams converts a comma-decimal string such as "1,234" into 1.234.
//
// Only digits and a single separator are accepted; signs, exponents,
// thousands separators and a second separator are rejected with a
// *model.ParseError.
func ParseStreams(raw string) (float64, error) {
	value := strings.ReplaceAll(strings.TrimSpace(raw), DecimalSeparator, ".")
	if !decimalPattern.MatchString(value) {
		return 0, streamsError(raw, ErrNotDecimal)
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, streamsError(raw, err)
	}
	return f, nil
}

func streamsError(raw string, err error) error {
	return &model.ParseError{Field: model.DefaultStreamsColumn, Value: raw, Err: err}
}
