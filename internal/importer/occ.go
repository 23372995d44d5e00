package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tradeimport/pkg/contracts/domain"
)

// OCC symbology: root symbol + expiration (YYMMDD) + C/P indicator + strike,
// where the strike is a fixed-point numeral with five integer and three
// fractional digits.
var (
	occPattern      = regexp.MustCompile(`^([A-Z0-9]+)(\d{6})([CP])(\d+(?:\.\d+)?)$`)
	leadingNonAlnum = regexp.MustCompile(`^[^A-Za-z0-9]+`)
)

const (
	occStrikeDigits   = 8
	occStrikeFracSize = 3
	occStrikeDivisor  = 1000.0
)

// DecodeOptionSymbol parses an OCC-format option ticker into its underlying
// symbol, expiration date, option type and strike price.
//
// Two-digit years always expand to 20YY; symbols expiring before 2000 are
// outside the supported range.
func DecodeOptionSymbol(occSymbol string) (domain.OptionDetails, error) {
	cleaned := strings.ToUpper(leadingNonAlnum.ReplaceAllString(strings.TrimSpace(occSymbol), ""))

	m := occPattern.FindStringSubmatch(cleaned)
	if m == nil {
		return domain.OptionDetails{}, fmt.Errorf("%w: %q", ErrInvalidSymbolFormat, occSymbol)
	}
	root, exp, typeCode, rawStrike := m[1], m[2], m[3], m[4]

	expDate := fmt.Sprintf("20%s-%s-%s", exp[0:2], exp[2:4], exp[4:6])
	if _, err := time.Parse("2006-01-02", expDate); err != nil {
		return domain.OptionDetails{}, fmt.Errorf("%w: %q", ErrInvalidExpirationDate, occSymbol)
	}

	strike, err := decodeStrike(rawStrike)
	if err != nil {
		return domain.OptionDetails{}, fmt.Errorf("%w: %q", ErrInvalidSymbolFormat, occSymbol)
	}

	optionType := domain.OptionTypeCall
	if typeCode == "P" {
		optionType = domain.OptionTypePut
	}

	return domain.OptionDetails{
		USymbol:        root,
		ExpirationDate: expDate,
		OptionType:     optionType,
		StrikePrice:    strike,
	}, nil
}

// decodeStrike rebuilds the 8-digit fixed-point strike from the raw numeral.
// A decimal numeral keeps its first three fractional digits; a short integer
// gets an implicit ".000". An integer already eight digits wide is the
// fixed-point encoding itself and must not gain another fractional group,
// otherwise "00185000" would decode as 185000 instead of 185.
func decodeStrike(raw string) (float64, error) {
	digits := raw
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		intPart, fracPart := raw[:i], raw[i+1:]
		for len(fracPart) < occStrikeFracSize {
			fracPart += "0"
		}
		digits = intPart + fracPart[:occStrikeFracSize]
	} else if len(raw) < occStrikeDigits {
		digits += strings.Repeat("0", occStrikeFracSize)
	}
	for len(digits) < occStrikeDigits {
		digits = "0" + digits
	}

	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, err
	}
	return float64(v) / occStrikeDivisor, nil
}
