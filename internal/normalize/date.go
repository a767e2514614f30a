package normalize

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/handiism/spotify-analysis/internal/model"
)

// CenturyPrefix is prepended to two-digit years. All two-digit years are
// taken as 20YY; 19YY is never produced. This is a known limitation of the
// dataset's short date form.
const CenturyPrefix = "20"

// canonicalLayout is the single layout every date is rebuilt into before parsing.
const canonicalLayout = "02 January 2006"

// ErrDateTokens is returned when a date does not split into day, month and year.
var ErrDateTokens = errors.New("expected day, month and year")

// ParseDate converts "D Month YYYY" or "D.Month.YY" into a calendar date.
//
// The separator is chosen by the presence of a period. The day is
// zero-padded, a two-digit year is expanded with ExpandYear, and the tokens
// are rejoined as "DD Month YYYY". Month must be a full English month name
// (case-insensitive).
//
// Returns a *model.ParseError if the text does not have exactly three
// tokens or does not form a valid calendar date.
func ParseDate(raw string) (time.Time, error) {
	tokens := splitDate(strings.TrimSpace(raw))
	if len(tokens) != 3 {
		return time.Time{}, dateError(raw, fmt.Errorf("%w, got %d token(s)", ErrDateTokens, len(tokens)))
	}

	day, month, year := tokens[0], tokens[1], tokens[2]
	if len(day) == 1 {
		day = "0" + day
	}
	year = ExpandYear(year)

	date, err := time.Parse(canonicalLayout, day+" "+month+" "+year)
	if err != nil {
		return time.Time{}, dateError(raw, err)
	}
	return date, nil
}

// ExpandYear prefixes CenturyPrefix to a two-digit year and returns any
// other year unchanged.
func ExpandYear(year string) string {
	if len(year) == 2 {
		return CenturyPrefix + year
	}
	return year
}

func splitDate(raw string) []string {
	if !strings.Contains(raw, ".") {
		return strings.Fields(raw)
	}

	tokens := strings.Split(raw, ".")
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}
	return tokens
}

func dateError(raw string, err error) error {
	return &model.ParseError{Field: model.ColumnReleaseDate, Value: raw, Err: err}
}
