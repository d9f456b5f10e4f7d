package datetool

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var instantJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON renders i as a quoted millisecond timestamp, e.g. "1562292000000".
func (i Instant) MarshalJSON() ([]byte, error) {
	return instantJSON.Marshal(i.Timestamp())
}

// UnmarshalJSON accepts a quoted millisecond timestamp or a bare JSON integer.
// A JSON null leaves i unchanged.
func (i *Instant) UnmarshalJSON(data []byte) error {
	iter := instantJSON.BorrowIterator(data)
	defer instantJSON.ReturnIterator(iter)

	var timestamp string

	switch iter.WhatIsNext() {
	case jsoniter.StringValue:
		timestamp = iter.ReadString()
	case jsoniter.NumberValue:
		timestamp = string(iter.ReadNumber())
	case jsoniter.NilValue:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrMalformedTimestamp, data)
	}

	if iter.Error != nil {
		return fmt.Errorf("%w: %s", ErrMalformedTimestamp, data)
	}

	parsed, err := ParseTimestamp(timestamp)
	if err != nil {
		return err
	}

	*i = parsed

	return nil
}
