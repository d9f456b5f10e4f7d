package layout

import (
	"strconv"
	"time"
)

var pow10 = [10]int{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000}

func (f field) appendTo(buf []byte, t time.Time) []byte {
	switch f.kind {
	case kindLiteral:
		return append(buf, f.literal...)

	case kindEra:
		if t.Year() > 0 {
			return append(buf, "AD"...)
		}
		return append(buf, "BC"...)

	case kindYear:
		year := yearOfEra(t.Year())
		if f.count == 2 {
			return appendPadded(buf, year%100, 2)
		}
		return appendPadded(buf, year, f.count)

	case kindMonth:
		switch f.count {
		case 3:
			return append(buf, t.Month().String()[:3]...)
		case 4:
			return append(buf, t.Month().String()...)
		default:
			return appendPadded(buf, int(t.Month()), f.count)
		}

	case kindDay:
		return appendPadded(buf, t.Day(), f.count)

	case kindDayOfYear:
		return appendPadded(buf, t.YearDay(), f.count)

	case kindWeekday:
		if f.count == 4 {
			return append(buf, t.Weekday().String()...)
		}
		return append(buf, t.Weekday().String()[:3]...)

	case kindAMPM:
		if t.Hour() < 12 {
			return append(buf, "AM"...)
		}
		return append(buf, "PM"...)

	case kindHour23:
		return appendPadded(buf, t.Hour(), f.count)

	case kindHour12:
		hour := t.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		return appendPadded(buf, hour, f.count)

	case kindHour24:
		hour := t.Hour()
		if hour == 0 {
			hour = 24
		}
		return appendPadded(buf, hour, f.count)

	case kindHour11:
		return appendPadded(buf, t.Hour()%12, f.count)

	case kindMinute:
		return appendPadded(buf, t.Minute(), f.count)

	case kindSecond:
		return appendPadded(buf, t.Second(), f.count)

	case kindFraction:
		return appendPadded(buf, t.Nanosecond()/pow10[9-f.count], f.count)

	case kindZoneBasic, kindZoneISO, kindZoneISOWithZ:
		_, offset := t.Zone()
		return f.appendOffset(buf, offset)

	case kindZoneName:
		name, _ := t.Zone()
		return append(buf, name...)

	default:
		return buf
	}
}

func (f field) appendOffset(buf []byte, offset int) []byte {
	useZ := f.kind == kindZoneISOWithZ || (f.kind == kindZoneBasic && f.count == 5)
	if useZ && offset == 0 {
		return append(buf, 'Z')
	}

	sign := byte('+')
	if offset < 0 {
		sign = '-'
		offset = -offset
	}

	hours := offset / 3600
	minutes := offset % 3600 / 60

	buf = append(buf, sign)
	buf = appendPadded(buf, hours, 2)

	switch f.offsetStyle() {
	case offsetHoursOptionalMinutes:
		if minutes != 0 {
			buf = appendPadded(buf, minutes, 2)
		}
	case offsetBasic:
		buf = appendPadded(buf, minutes, 2)
	case offsetExtended:
		buf = append(buf, ':')
		buf = appendPadded(buf, minutes, 2)
	}

	return buf
}

type offsetStyle int

const (
	offsetHoursOptionalMinutes offsetStyle = iota
	offsetBasic
	offsetExtended
)

func (f field) offsetStyle() offsetStyle {
	if f.kind == kindZoneBasic {
		if f.count == 5 {
			return offsetExtended
		}
		return offsetBasic
	}

	switch f.count {
	case 1:
		return offsetHoursOptionalMinutes
	case 2:
		return offsetBasic
	default:
		return offsetExtended
	}
}

func yearOfEra(year int) int {
	if year > 0 {
		return year
	}
	return 1 - year
}

func appendPadded(buf []byte, value int, width int) []byte {
	digits := strconv.Itoa(value)
	for i := len(digits); i < width; i++ {
		buf = append(buf, '0')
	}

	return append(buf, digits...)
}
