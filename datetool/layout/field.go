package layout

import (
	"fmt"
	"strings"

	"github.com/AntonStoeckl/datetool-go/datetool"
)

type fieldKind int

const (
	kindLiteral fieldKind = iota
	kindEra
	kindYear
	kindMonth
	kindDay
	kindDayOfYear
	kindWeekday
	kindAMPM
	kindHour23
	kindHour12
	kindHour24
	kindHour11
	kindMinute
	kindSecond
	kindFraction
	kindZoneBasic
	kindZoneISO
	kindZoneISOWithZ
	kindZoneName
)

const quote = '\''

// field is one element of a compiled pattern: either literal text or a letter run like "yyyy".
type field struct {
	kind    fieldKind
	count   int
	letter  byte
	literal string
}

type letterSpec struct {
	kind     fieldKind
	minCount int
	maxCount int
}

var letterSpecs = map[byte]letterSpec{
	'G': {kind: kindEra, minCount: 1, maxCount: 3},
	'y': {kind: kindYear, minCount: 1, maxCount: 9},
	'M': {kind: kindMonth, minCount: 1, maxCount: 4},
	'L': {kind: kindMonth, minCount: 1, maxCount: 4},
	'd': {kind: kindDay, minCount: 1, maxCount: 2},
	'D': {kind: kindDayOfYear, minCount: 1, maxCount: 3},
	'E': {kind: kindWeekday, minCount: 1, maxCount: 4},
	'a': {kind: kindAMPM, minCount: 1, maxCount: 3},
	'H': {kind: kindHour23, minCount: 1, maxCount: 2},
	'h': {kind: kindHour12, minCount: 1, maxCount: 2},
	'k': {kind: kindHour24, minCount: 1, maxCount: 2},
	'K': {kind: kindHour11, minCount: 1, maxCount: 2},
	'm': {kind: kindMinute, minCount: 1, maxCount: 2},
	's': {kind: kindSecond, minCount: 1, maxCount: 2},
	'S': {kind: kindFraction, minCount: 1, maxCount: 9},
	'Z': {kind: kindZoneBasic, minCount: 1, maxCount: 5},
	'x': {kind: kindZoneISO, minCount: 1, maxCount: 3},
	'X': {kind: kindZoneISOWithZ, minCount: 1, maxCount: 3},
	'z': {kind: kindZoneName, minCount: 1, maxCount: 4},
}

func tokenize(pattern string) ([]field, error) {
	if pattern == "" {
		return nil, datetool.ErrEmptyPattern
	}

	var fields []field
	var literal strings.Builder

	flushLiteral := func() {
		if literal.Len() > 0 {
			fields = append(fields, field{kind: kindLiteral, literal: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(pattern); {
		c := pattern[i]

		switch {
		case c == quote:
			if i+1 < len(pattern) && pattern[i+1] == quote {
				literal.WriteByte(quote)
				i += 2
				continue
			}

			end, text, err := readQuoted(pattern, i+1)
			if err != nil {
				return nil, err
			}

			literal.WriteString(text)
			i = end

		case isASCIILetter(c):
			run := i
			for run < len(pattern) && pattern[run] == c {
				run++
			}

			fl, err := letterField(c, run-i)
			if err != nil {
				return nil, err
			}

			flushLiteral()
			fields = append(fields, fl)
			i = run

		default:
			literal.WriteByte(c)
			i++
		}
	}

	flushLiteral()

	return fields, nil
}

// readQuoted reads quoted text starting right after an opening quote and returns
// the index after the closing quote.
func readQuoted(pattern string, start int) (int, string, error) {
	var text strings.Builder

	for i := start; i < len(pattern); i++ {
		if pattern[i] != quote {
			text.WriteByte(pattern[i])
			continue
		}

		if i+1 < len(pattern) && pattern[i+1] == quote {
			text.WriteByte(quote)
			i++
			continue
		}

		return i + 1, text.String(), nil
	}

	return 0, "", fmt.Errorf("%w: unterminated quote at position %d", datetool.ErrInvalidPattern, start-1)
}

func letterField(letter byte, count int) (field, error) {
	spec, ok := letterSpecs[letter]
	if !ok {
		return field{}, fmt.Errorf("%w: unsupported field letter %q", datetool.ErrInvalidPattern, letter)
	}

	if count < spec.minCount || count > spec.maxCount || (letter == 'Z' && count == 4) {
		return field{}, fmt.Errorf("%w: unsupported width %d for field letter %q", datetool.ErrInvalidPattern, count, letter)
	}

	return field{kind: spec.kind, count: count, letter: letter}, nil
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// numeric reports whether the field renders as digits.
func (f field) numeric() bool {
	switch f.kind {
	case kindYear, kindDay, kindDayOfYear, kindHour23, kindHour12, kindHour24, kindHour11,
		kindMinute, kindSecond, kindFraction:
		return true
	case kindMonth:
		return f.count <= 2
	default:
		return false
	}
}
