package fixnum

// Precision is a compile-time count of fractional decimal digits.
// It is implemented by the zero-size tags [P0] through [P38] and selects the
// scale of a [FixedPoint]: a value with precision P is stored as its
// mathematical value multiplied by 10^P.
//
// A precision whose scale does not fit the backing integer is a programming
// error and makes the operations of the type that use the scale panic.
type Precision interface {
	Digits() int
}

// Precision tags.
type (
	P0  struct{}
	P1  struct{}
	P2  struct{}
	P3  struct{}
	P4  struct{}
	P5  struct{}
	P6  struct{}
	P7  struct{}
	P8  struct{}
	P9  struct{}
	P10 struct{}
	P11 struct{}
	P12 struct{}
	P13 struct{}
	P14 struct{}
	P15 struct{}
	P16 struct{}
	P17 struct{}
	P18 struct{}
	P19 struct{}
	P20 struct{}
	P21 struct{}
	P22 struct{}
	P23 struct{}
	P24 struct{}
	P25 struct{}
	P26 struct{}
	P27 struct{}
	P28 struct{}
	P29 struct{}
	P30 struct{}
	P31 struct{}
	P32 struct{}
	P33 struct{}
	P34 struct{}
	P35 struct{}
	P36 struct{}
	P37 struct{}
	P38 struct{}
)

func (P0) Digits() int { return 0 }
func (P1) Digits() int { return 1 }
func (P2) Digits() int { return 2 }
func (P3) Digits() int { return 3 }
func (P4) Digits() int { return 4 }
func (P5) Digits() int { return 5 }
func (P6) Digits() int { return 6 }
func (P7) Digits() int { return 7 }
func (P8) Digits() int { return 8 }
func (P9) Digits() int { return 9 }
func (P10) Digits() int { return 10 }
func (P11) Digits() int { return 11 }
func (P12) Digits() int { return 12 }
func (P13) Digits() int { return 13 }
func (P14) Digits() int { return 14 }
func (P15) Digits() int { return 15 }
func (P16) Digits() int { return 16 }
func (P17) Digits() int { return 17 }
func (P18) Digits() int { return 18 }
func (P19) Digits() int { return 19 }
func (P20) Digits() int { return 20 }
func (P21) Digits() int { return 21 }
func (P22) Digits() int { return 22 }
func (P23) Digits() int { return 23 }
func (P24) Digits() int { return 24 }
func (P25) Digits() int { return 25 }
func (P26) Digits() int { return 26 }
func (P27) Digits() int { return 27 }
func (P28) Digits() int { return 28 }
func (P29) Digits() int { return 29 }
func (P30) Digits() int { return 30 }
func (P31) Digits() int { return 31 }
func (P32) Digits() int { return 32 }
func (P33) Digits() int { return 33 }
func (P34) Digits() int { return 34 }
func (P35) Digits() int { return 35 }
func (P36) Digits() int { return 36 }
func (P37) Digits() int { return 37 }
func (P38) Digits() int { return 38 }
