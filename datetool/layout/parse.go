package layout

import (
	"fmt"
	"strings"
	"time"

	"github.com/AntonStoeckl/datetool-go/datetool"
)

const (
	maxYearDigits = 9
	twoDigitPivot = 69
)

var (
	shortMonthNames = []string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}
	shortDayNames   = []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}
	fullMonthNames  = monthNames()
	fullDayNames    = weekdayNames()
)

// parsed collects field values while walking the input. A value of -1 means "not present".
type parsed struct {
	year       int
	bc         bool
	month      int
	day        int
	yearDay    int
	hour       int
	hourKind   fieldKind
	minute     int
	second     int
	nanosecond int
	pm         int
	offset     int
	hasOffset  bool
}

type parser struct {
	formatter *Formatter
	value     string
	pos       int
}

func (p *parser) run(loc *time.Location) (time.Time, error) {
	values := parsed{year: 1970, month: -1, day: -1, yearDay: -1, hour: -1, pm: -1}

	fields := p.formatter.fields
	for idx, fl := range fields {
		adjacent := idx+1 < len(fields) && fl.numeric() && fields[idx+1].numeric()
		if err := p.parseField(fl, adjacent, &values); err != nil {
			return time.Time{}, err
		}
	}

	if p.pos != len(p.value) {
		return time.Time{}, p.fail("unexpected trailing input %q", p.value[p.pos:])
	}

	return p.build(values, loc)
}

func (p *parser) parseField(fl field, adjacent bool, values *parsed) error {
	var err error

	switch fl.kind {
	case kindLiteral:
		if !strings.HasPrefix(p.value[p.pos:], fl.literal) {
			return p.fail("expected %q at position %d", fl.literal, p.pos)
		}
		p.pos += len(fl.literal)

	case kindEra:
		var era int
		era, err = p.readName([]string{"ad", "bc"}, 2)
		values.bc = era == 1

	case kindYear:
		values.year, err = p.readYear(fl, adjacent)

	case kindMonth:
		switch fl.count {
		case 3:
			values.month, err = p.readName(shortMonthNames, 3)
			values.month++
		case 4:
			values.month, err = p.readFullName(fullMonthNames)
			values.month++
		default:
			values.month, err = p.readNumber(fl, adjacent, 2)
		}

	case kindDay:
		values.day, err = p.readNumber(fl, adjacent, 2)

	case kindDayOfYear:
		values.yearDay, err = p.readNumber(fl, adjacent, 3)

	case kindWeekday:
		if fl.count == 4 {
			_, err = p.readFullName(fullDayNames)
		} else {
			_, err = p.readName(shortDayNames, 3)
		}

	case kindAMPM:
		values.pm, err = p.readName([]string{"am", "pm"}, 2)

	case kindHour23, kindHour12, kindHour24, kindHour11:
		values.hour, err = p.readNumber(fl, adjacent, 2)
		values.hourKind = fl.kind

	case kindMinute:
		values.minute, err = p.readNumber(fl, adjacent, 2)

	case kindSecond:
		values.second, err = p.readNumber(fl, adjacent, 2)

	case kindFraction:
		values.nanosecond, err = p.readFraction(fl, adjacent)

	case kindZoneBasic, kindZoneISO, kindZoneISOWithZ:
		values.offset, err = p.readOffset(fl)
		values.hasOffset = err == nil

	case kindZoneName:
		err = p.readZoneName(values)
	}

	return err
}

func (p *parser) readDigits(minDigits, maxDigits int) (int, error) {
	start := p.pos
	value := 0

	for p.pos < len(p.value) && p.pos-start < maxDigits {
		c := p.value[p.pos]
		if c < '0' || c > '9' {
			break
		}
		value = value*10 + int(c-'0')
		p.pos++
	}

	if p.pos-start < minDigits {
		return 0, p.fail("expected %d to %d digits at position %d", minDigits, maxDigits, start)
	}

	return value, nil
}

// readNumber reads a numeric field. A field directly followed by another numeric field has a fixed
// width, otherwise it takes up to maxDigits digits.
func (p *parser) readNumber(fl field, adjacent bool, maxDigits int) (int, error) {
	if adjacent {
		return p.readDigits(fl.count, fl.count)
	}

	return p.readDigits(1, maxDigits)
}

func (p *parser) readYear(fl field, adjacent bool) (int, error) {
	if fl.count == 2 {
		year, err := p.readDigits(2, 2)
		if err != nil {
			return 0, err
		}

		if year < twoDigitPivot {
			return 2000 + year, nil
		}
		return 1900 + year, nil
	}

	if adjacent {
		return p.readDigits(fl.count, fl.count)
	}

	return p.readDigits(1, maxYearDigits)
}

func (p *parser) readFraction(fl field, adjacent bool) (int, error) {
	start := p.pos

	var digits int
	var err error
	if adjacent {
		digits, err = p.readDigits(fl.count, fl.count)
	} else {
		digits, err = p.readDigits(1, 9)
	}

	if err != nil {
		return 0, err
	}

	return digits * pow10[9-(p.pos-start)], nil
}

// readName matches one of the lower case names with a fixed length, case-insensitive,
// and returns its index.
func (p *parser) readName(names []string, length int) (int, error) {
	if p.pos+length <= len(p.value) {
		candidate := strings.ToLower(p.value[p.pos : p.pos+length])
		for idx, name := range names {
			if candidate == name {
				p.pos += length
				return idx, nil
			}
		}
	}

	return 0, p.fail("expected one of %v at position %d", names, p.pos)
}

func (p *parser) readFullName(names []string) (int, error) {
	rest := strings.ToLower(p.value[p.pos:])
	for idx, name := range names {
		if strings.HasPrefix(rest, name) {
			p.pos += len(name)
			return idx, nil
		}
	}

	return 0, p.fail("expected one of %v at position %d", names, p.pos)
}

func (p *parser) readOffset(fl field) (int, error) {
	useZ := fl.kind == kindZoneISOWithZ || (fl.kind == kindZoneBasic && fl.count == 5)
	if useZ && p.pos < len(p.value) && p.value[p.pos] == 'Z' {
		p.pos++
		return 0, nil
	}

	if p.pos >= len(p.value) || (p.value[p.pos] != '+' && p.value[p.pos] != '-') {
		return 0, p.fail("expected zone offset at position %d", p.pos)
	}

	sign := 1
	if p.value[p.pos] == '-' {
		sign = -1
	}
	p.pos++

	hours, err := p.readDigits(2, 2)
	if err != nil {
		return 0, err
	}

	minutes := 0

	switch fl.offsetStyle() {
	case offsetHoursOptionalMinutes:
		if p.pos < len(p.value) && p.value[p.pos] >= '0' && p.value[p.pos] <= '9' {
			minutes, err = p.readDigits(2, 2)
		}
	case offsetBasic:
		minutes, err = p.readDigits(2, 2)
	case offsetExtended:
		if p.pos >= len(p.value) || p.value[p.pos] != ':' {
			return 0, p.fail("expected ':' in zone offset at position %d", p.pos)
		}
		p.pos++
		minutes, err = p.readDigits(2, 2)
	}

	if err != nil {
		return 0, err
	}

	if hours > 23 || minutes > 59 {
		return 0, p.fail("zone offset out of range")
	}

	return sign * (hours*3600 + minutes*60), nil
}

// readZoneName consumes a zone abbreviation. Only UTC and GMT carry a known offset,
// every other abbreviation leaves the zone to the parse location.
func (p *parser) readZoneName(values *parsed) error {
	start := p.pos
	for p.pos < len(p.value) && isASCIILetter(p.value[p.pos]) {
		p.pos++
	}

	if p.pos == start {
		return p.fail("expected zone name at position %d", start)
	}

	switch p.value[start:p.pos] {
	case "UTC", "GMT":
		values.offset = 0
		values.hasOffset = true
	}

	return nil
}

func (p *parser) build(values parsed, loc *time.Location) (time.Time, error) {
	year := values.year
	if values.bc {
		year = 1 - year
	}

	hour, err := p.resolveHour(values)
	if err != nil {
		return time.Time{}, err
	}

	if values.minute > 59 {
		return time.Time{}, p.fail("minute %d out of range", values.minute)
	}

	if values.second > 59 {
		return time.Time{}, p.fail("second %d out of range", values.second)
	}

	month, day, err := p.resolveDate(year, values)
	if err != nil {
		return time.Time{}, err
	}

	if values.hasOffset {
		loc = time.FixedZone("", values.offset)
	}

	return time.Date(year, time.Month(month), day, hour, values.minute, values.second, values.nanosecond, loc), nil
}

func (p *parser) resolveDate(year int, values parsed) (int, int, error) {
	month, day := values.month, values.day

	if values.yearDay >= 0 && month < 0 && day < 0 {
		if values.yearDay < 1 || values.yearDay > daysInYear(year) {
			return 0, 0, p.fail("day of year %d out of range", values.yearDay)
		}

		t := time.Date(year, time.January, values.yearDay, 0, 0, 0, 0, time.UTC)
		return int(t.Month()), t.Day(), nil
	}

	if month < 0 {
		month = 1
	}

	if day < 0 {
		day = 1
	}

	if month < 1 || month > 12 {
		return 0, 0, p.fail("month %d out of range", month)
	}

	if day < 1 || day > daysIn(time.Month(month), year) {
		return 0, 0, p.fail("day %d out of range for %s %d", day, time.Month(month), year)
	}

	if values.yearDay >= 0 {
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if t.YearDay() != values.yearDay {
			return 0, 0, p.fail("day of year %d does not match %d-%d-%d", values.yearDay, year, month, day)
		}
	}

	return month, day, nil
}

func (p *parser) resolveHour(values parsed) (int, error) {
	hour := values.hour
	if hour < 0 {
		if values.pm == 1 {
			return 12, nil
		}
		return 0, nil
	}

	switch values.hourKind {
	case kindHour12:
		if hour < 1 || hour > 12 {
			return 0, p.fail("hour %d out of range 1-12", hour)
		}
		hour %= 12
	case kindHour11:
		if hour > 11 {
			return 0, p.fail("hour %d out of range 0-11", hour)
		}
	case kindHour24:
		if hour < 1 || hour > 24 {
			return 0, p.fail("hour %d out of range 1-24", hour)
		}
		hour %= 24
	default:
		if hour > 23 {
			return 0, p.fail("hour %d out of range 0-23", hour)
		}
		if (values.pm == 0 && hour >= 12) || (values.pm == 1 && hour < 12) {
			return 0, p.fail("hour %d contradicts the am/pm marker", hour)
		}
		return hour, nil
	}

	if values.pm == 1 && (values.hourKind == kindHour12 || values.hourKind == kindHour11) {
		hour += 12
	}

	return hour, nil
}

func (p *parser) fail(format string, args ...any) error {
	return fmt.Errorf(
		"%w: %q against %q: %s",
		datetool.ErrDateStringMismatch,
		p.value,
		p.formatter.pattern,
		fmt.Sprintf(format, args...),
	)
}

func monthNames() []string {
	names := make([]string, 12)
	for m := time.January; m <= time.December; m++ {
		names[m-1] = strings.ToLower(m.String())
	}

	return names
}

func weekdayNames() []string {
	names := make([]string, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		names[d] = strings.ToLower(d.String())
	}

	return names
}

func daysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func daysInYear(year int) int {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
}
