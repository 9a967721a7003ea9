/*
Package fixnum implements fixed-point decimal numbers with explicit rounding.
It is specifically designed for balances and prices in transactional
financial systems, where every inexact result must be rounded in a
direction chosen by the caller.

# Representation

[FixedPoint] is a struct with a single field, the backing integer.
Its two type parameters fix the representation at compile time:

  - I: the backing integer, one of [I16], [I32], [I64] and [I128].
  - P: the precision, one of the tags [P0] through [P38], that is the number
    of digits after the decimal point.

The numerical value of a fixed-point number is calculated as:

  - inner / 10^P

In this approach, every numeric value has exactly one representation, and
the raw scaled value is available with [FixedPoint.Bits] and [FromBits].

# Constraints

The range of a fixed-point number is determined by its backing integer and
precision. Here are the ranges for frequently used combinations:

	| Backing | Precision | Minimum                                   | Maximum                                  |
	| ------- | --------- | ----------------------------------------- | ---------------------------------------- |
	| I16     | 3         | -32.768                                   | 32.767                                   |
	| I32     | 6         | -2147.483648                              | 2147.483647                              |
	| I64     | 9         | -9223372036.854775808                     | 9223372036.854775807                     |
	| I128    | 18        | -170141183460469231731.687303715884105728 | 170141183460469231731.687303715884105727 |

A precision whose scale 10^P does not fit the backing integer is a
programming error: operations of such a type that use the scale panic.

Special values such as NaN, infinity or negative zero are not supported.
This ensures that arithmetic operations always produce either valid numbers
or errors.

# Conversions

The package provides methods for converting fixed-point numbers:

  - from/to string:
    [Parse], [MustParse], [FixedPoint.String].
  - from/to float64:
    [FromFloat64], [FixedPoint.Float64].
  - from integers and decimal mantissas:
    [FromInt], [FromDecimal], [FixedPoint.Integral], [FixedPoint.Int64].
  - from/to text, JSON, binary and SQL:
    [FixedPoint.MarshalText], [FixedPoint.MarshalJSON],
    [FixedPoint.MarshalBinary], [FixedPoint.Scan], [FixedPoint.Value].

See the documentation for each method for more details.

# Operations

Addition, subtraction, negation and multiplication by an integer are exact.
They return [Overflow] instead of wrapping around.

Multiplication, division and square root of fixed-point numbers are carried
out in double width:

  - I16 and I32 are promoted to int32 and int64.
  - I64 uses 128-bit products from [math/bits].
  - I128 uses a 256-bit integer.

So the exact mathematical result is computed first and then rounded once,
and an error is returned only when the rounded result does not fit the
backing integer.

# Rounding

Every operation that can be inexact takes a [RoundMode]:

	| Mode         | -2.5 | -1.5 | 1.5 | 2.5 |
	| ------------ | ---- | ---- | --- | --- |
	| Floor        | -3   | -2   | 1   | 2   |
	| Ceil         | -2   | -1   | 2   | 3   |
	| TowardZero   | -2   | -1   | 1   | 2   |
	| AwayFromZero | -3   | -2   | 2   | 3   |

There is no implicit rounding anywhere in the package.
Parsing never rounds and rejects inputs with too many fractional digits.

# Errors

All methods are pure. Apart from the precision error described above,
the only panics are in the Must functions.
Errors are returned in the following cases:

  - Division by Zero.
    Unlike the standard library, [FixedPoint.Quo], [FixedPoint.QuoInt],
    [IntQuo] and [FixedPoint.Inv] do not panic when dividing by 0.
    Instead, they return [DivisionByZero].

  - Domain Violation.
    [FixedPoint.Sqrt] returns [DomainViolation] for negative numbers.

  - Overflow.
    Unlike standard integers, there is no "wrap around" for fixed-point
    numbers. For out-of-range values, arithmetic operations return
    [Overflow]. The saturating variants clamp to the range instead.

Conversion errors are of type [ConvertError] and can be matched with
[errors.Is] against the Err variables.
*/
package fixnum
