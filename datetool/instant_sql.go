package datetool

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/lib/pq"
)

// Value implements driver.Valuer, an Instant is stored as a plain time.Time.
func (i Instant) Value() (driver.Value, error) {
	return i.t, nil
}

// Scan implements sql.Scanner.
//
// Supported sources:
//   - time.Time
//   - int64: milliseconds since the Unix epoch
//   - []byte and string: PostgreSQL text timestamps like "2019-07-05 10:00:00.123+08"
//   - nil: the zero Instant
func (i *Instant) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*i = Instant{}
	case time.Time:
		*i = InstantOf(v)
	case int64:
		*i = InstantFromUnixMilli(v)
	case []byte:
		return i.scanText(string(v))
	case string:
		return i.scanText(v)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedScanSource, src)
	}

	return nil
}

func (i *Instant) scanText(text string) error {
	t, err := pq.ParseTimestamp(time.UTC, text)
	if err != nil {
		return fmt.Errorf("%w: %q: %s", ErrDateStringMismatch, text, err.Error())
	}

	*i = InstantOf(t)

	return nil
}

// PostgresText renders i in the PostgreSQL timestamptz text format, in the location of the wrapped time.
func (i Instant) PostgresText() string {
	return string(pq.FormatTimestamp(i.t))
}

// ScanTimestamptz implements pgtype.TimestamptzScanner for the pgx v5 driver.
func (i *Instant) ScanTimestamptz(v pgtype.Timestamptz) error {
	if !v.Valid {
		*i = Instant{}
		return nil
	}

	if v.InfinityModifier != pgtype.Finite {
		return fmt.Errorf("%w: %s", ErrInfiniteTimestamp, v.InfinityModifier.String())
	}

	*i = InstantOf(v.Time)

	return nil
}

// TimestamptzValue implements pgtype.TimestamptzValuer for the pgx v5 driver.
// The zero Instant is written as NULL.
func (i Instant) TimestamptzValue() (pgtype.Timestamptz, error) {
	if i.IsZero() {
		return pgtype.Timestamptz{}, nil
	}

	return pgtype.Timestamptz{Time: i.t, Valid: true}, nil
}
