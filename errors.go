package fixnum

// ArithmeticError is an error returned by arithmetic operations.
// Operations are pure, so repeating a failed operation with the same
// operands always fails with the same error.
type ArithmeticError int8

const (
	// Overflow means that the result does not fit the backing integer.
	Overflow ArithmeticError = iota + 1
	// DivisionByZero means that the divisor is zero.
	DivisionByZero
	// DomainViolation means that an operand is out of the domain of the
	// operation, e.g. the square root of a negative number.
	DomainViolation
)

// Error implements the error interface.
func (e ArithmeticError) Error() string {
	switch e {
	case Overflow:
		return "overflow"
	case DivisionByZero:
		return "division by zero"
	case DomainViolation:
		return "domain violation"
	}
	return "unknown arithmetic error"
}

// ConvertError is an error returned by conversions and parsing.
// It carries one of a small fixed set of reasons, exported as Err* variables
// for use with [errors.Is].
type ConvertError struct {
	reason string
}

// Error implements the error interface.
func (e *ConvertError) Error() string {
	return e.reason
}

// Reason returns the static description of the error.
func (e *ConvertError) Reason() string {
	return e.reason
}

var (
	// ErrTooBigMantissa is returned by FromDecimal when the scaled mantissa
	// does not fit the backing integer.
	ErrTooBigMantissa = &ConvertError{"too big mantissa"}
	// ErrUnsupportedExponent is returned by FromDecimal when the exponent is
	// less than -P or greater than 10.
	ErrUnsupportedExponent = &ConvertError{"unsupported exponent"}
	// ErrPrecisionTooHigh means the input has more fractional digits than P.
	ErrPrecisionTooHigh = &ConvertError{"requested precision is too high"}
	// ErrIntegralPart means the integral part is empty or not a number.
	ErrIntegralPart = &ConvertError{"can't parse integral part"}
	// ErrFractionalPart means a decimal point is not followed by digits.
	ErrFractionalPart = &ConvertError{"can't parse fractional part"}
	// ErrFractionalDigits means the fractional part contains a non-digit.
	ErrFractionalDigits = &ConvertError{"can't parse fractional part: must contain digits only"}
	// ErrTooBigIntegral means the integral part alone is out of range.
	ErrTooBigIntegral = &ConvertError{"too big integral part"}
	// ErrTooBigNumber means the whole value is out of range.
	ErrTooBigNumber = &ConvertError{"too big number"}
	// ErrNotFinite is returned by FromFloat64 for NaN and infinities.
	ErrNotFinite = &ConvertError{"not finite"}
	// ErrInvalidBinaryLength is returned by UnmarshalBinary when the input
	// length differs from the width of the backing integer.
	ErrInvalidBinaryLength = &ConvertError{"invalid binary length"}
	// ErrUnsupportedType is returned by Scan for source types it cannot convert.
	ErrUnsupportedType = &ConvertError{"unsupported type"}
)
