// Package shopdec converts fixed-point numbers to and from
// [decimal.Decimal] of github.com/shopspring/decimal.
package shopdec

import (
	"github.com/shopspring/decimal"
	"github.com/zeebo/errs"

	"github.com/sora-xor/fixnum"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("shopdec")

// ToDecimal converts f to a decimal. The conversion is exact.
func ToDecimal[I fixnum.Integer[I], P fixnum.Precision](f fixnum.FixedPoint[I, P]) decimal.Decimal {
	d, err := decimal.NewFromString(f.String())
	if err != nil {
		panic(Error.Wrap(err))
	}
	return d
}

// FromDecimal converts d to a fixed-point number.
// Digits beyond the precision P are rounded by mode.
//
// FromDecimal returns an error of class [Error] if the rounded number does
// not fit the type.
func FromDecimal[I fixnum.Integer[I], P fixnum.Precision](d decimal.Decimal, mode fixnum.RoundMode) (fixnum.FixedPoint[I, P], error) {
	var f fixnum.FixedPoint[I, P]
	places := int32(f.Precision())
	switch mode {
	case fixnum.Floor:
		d = d.RoundFloor(places)
	case fixnum.Ceil:
		d = d.RoundCeil(places)
	case fixnum.AwayFromZero:
		d = d.RoundUp(places)
	default:
		d = d.Truncate(places)
	}
	f, err := fixnum.Parse[I, P](d.StringFixed(places))
	if err != nil {
		return f, Error.Wrap(err)
	}
	return f, nil
}
