package importer

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in priority order. The explicit layouts run before
// any free-form fallback so ambiguous tokens such as "01/02/03" always
// resolve through the MM/dd/yy attempt instead of a generic guess.
var dateLayouts = []string{
	"2-Jan-2006",
	"1/2/2006",
	"01/02/2006",
	"01/02/06",
	"1/2/06",
	"20060102",
	"2006-01-02",
	"2006-1-02",
	"Mon, Jan 02 2006",
	"Monday, Jan 02, 2006 15:04:05",
}

// fallbackLayouts approximate free-form parsing once every named layout has
// failed.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC1123,
	time.ANSIC,
}

var serialDatePattern = regexp.MustCompile(`^\d+$`)

// serialEpochOffset is the number of days between the spreadsheet serial
// epoch (1899-12-30) and the Unix epoch.
const serialEpochOffset = 25569

// NormalizeDate parses a free-form broker date token into a UTC timestamp
// with second precision. It never panics; ok is false when every candidate
// format fails.
func NormalizeDate(token string) (time.Time, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, token, time.UTC); err == nil {
			return t.UTC().Truncate(time.Second), true
		}
	}

	// A bare integer that survived the yyyyMMdd attempt above is a
	// spreadsheet serial date.
	if serialDatePattern.MatchString(token) {
		if serial, err := strconv.ParseInt(token, 10, 64); err == nil {
			return time.Unix((serial-serialEpochOffset)*86400, 0).UTC(), true
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.ParseInLocation(layout, token, time.UTC); err == nil {
			return t.UTC().Truncate(time.Second), true
		}
	}

	return time.Time{}, false
}
