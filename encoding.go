package fixnum

import (
	"database/sql/driver"
	"fmt"
	"strconv"
)

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [FixedPoint.String].
func (f FixedPoint[I, P]) MarshalText() ([]byte, error) {
	return f.appendText(nil), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
func (f *FixedPoint[I, P]) UnmarshalText(text []byte) error {
	var err error
	*f, err = Parse[I, P](string(text))
	return err
}

// MarshalJSON implements [json.Marshaler] interface.
// The number is encoded as a JSON string, so no digits are lost by
// decoders that use binary floating-point numbers.
func (f FixedPoint[I, P]) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, 50)
	b = append(b, '"')
	b = f.appendText(b)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements [json.Unmarshaler] interface.
// Both JSON strings and JSON numbers without an exponent are accepted.
// JSON null leaves f unchanged.
func (f *FixedPoint[I, P]) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	var err error
	if len(s) > 0 && s[0] == '"' {
		s, err = strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("unquoting %s: %w", data, err)
		}
	}
	*f, err = Parse[I, P](s)
	return err
}

// MarshalBinary implements [encoding.BinaryMarshaler] interface.
// The raw scaled value is encoded in big-endian byte order using exactly
// as many bytes as the backing integer has.
func (f FixedPoint[I, P]) MarshalBinary() ([]byte, error) {
	return f.inner.appendBytes(nil), nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler] interface.
//
// UnmarshalBinary returns [ErrInvalidBinaryLength] if the length of data
// differs from the size of the backing integer.
func (f *FixedPoint[I, P]) UnmarshalBinary(data []byte) error {
	var x I
	z, ok := x.fromBytes(data)
	if !ok {
		return ErrInvalidBinaryLength
	}
	f.inner = z
	return nil
}

// Scan implements the [sql.Scanner] interface.
// Strings and byte slices are parsed, int64 and float64 values are
// converted, see [Parse], [FromInt] and [FromFloat64].
func (f *FixedPoint[I, P]) Scan(value any) error {
	var err error
	switch v := value.(type) {
	case string:
		*f, err = Parse[I, P](v)
	case []byte:
		*f, err = Parse[I, P](string(v))
	case int64:
		*f, err = FromInt[I, P](v)
	case float64:
		*f, err = FromFloat64[I, P](v)
	default:
		err = ErrUnsupportedType
	}
	if err != nil {
		return fmt.Errorf("converting from %T to %T: %w", value, f, err)
	}
	return nil
}

// Value implements the [driver.Valuer] interface.
// The number is stored as its decimal text.
func (f FixedPoint[I, P]) Value() (driver.Value, error) {
	return f.String(), nil
}
