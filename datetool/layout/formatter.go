package layout

import (
	"time"

	"github.com/google/uuid"
)

// Formatter is a compiled format pattern. It is immutable and safe for concurrent use.
type Formatter struct {
	id      uuid.UUID
	pattern string
	fields  []field
}

// Compile builds a Formatter from pattern.
//
// Returns datetool.ErrEmptyPattern for an empty pattern and datetool.ErrInvalidPattern
// for unterminated quotes, reserved letters and unsupported field widths.
func Compile(pattern string) (*Formatter, error) {
	fields, err := tokenize(pattern)
	if err != nil {
		return nil, err
	}

	return &Formatter{
		id:      uuid.New(),
		pattern: pattern,
		fields:  fields,
	}, nil
}

// ID identifies this Formatter instance. Two compilations of the same pattern get different IDs.
func (f *Formatter) ID() uuid.UUID {
	return f.id
}

// Pattern returns the pattern the Formatter was compiled from.
func (f *Formatter) Pattern() string {
	return f.pattern
}

// Format renders t, in the location of t.
func (f *Formatter) Format(t time.Time) string {
	buf := make([]byte, 0, len(f.pattern)+16)
	for _, fl := range f.fields {
		buf = fl.appendTo(buf, t)
	}

	return string(buf)
}

// Parse reads value according to the pattern.
//
// Wall clock fields are interpreted in loc unless the pattern contains a zone offset field,
// then the parsed offset wins. A nil loc means UTC.
// All failures wrap datetool.ErrDateStringMismatch.
func (f *Formatter) Parse(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}

	p := parser{formatter: f, value: value}

	return p.run(loc)
}
