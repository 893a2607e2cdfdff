package visibility

import (
	"fmt"
	"math/big"
)

// Rational is an exact fraction Num/Den with Den > 0 and the pair reduced to
// lowest terms. The zero value is not valid; use NewRational or Int.
type Rational struct {
	Num int64
	Den int64
}

// NewRational returns num/den reduced. It panics on a zero denominator, the
// same way integer division does.
func NewRational(num, den int64) Rational {
	if den == 0 {
		panic("visibility: rational with zero denominator")
	}
	if den < 0 {
		num, den = -num, -den
	}
	if g := gcd(abs(num), den); g > 1 {
		num /= g
		den /= g
	}
	return Rational{Num: num, Den: den}
}

// Int returns n/1.
func Int(n int64) Rational {
	return Rational{Num: n, Den: 1}
}

// Half returns (2n+1)/2, the centre coordinate of cell n.
func Half(n int) Rational {
	return Rational{Num: 2*int64(n) + 1, Den: 2}
}

func (r Rational) Add(o Rational) Rational {
	return NewRational(r.Num*o.Den+o.Num*r.Den, r.Den*o.Den)
}

func (r Rational) Sub(o Rational) Rational {
	return NewRational(r.Num*o.Den-o.Num*r.Den, r.Den*o.Den)
}

func (r Rational) Mul(o Rational) Rational {
	return NewRational(r.Num*o.Num, r.Den*o.Den)
}

func (r Rational) Div(o Rational) Rational {
	if o.Num == 0 {
		panic("visibility: rational division by zero")
	}
	return NewRational(r.Num*o.Den, r.Den*o.Num)
}

// Cmp returns -1, 0 or +1 as r is less than, equal to or greater than o.
// Cross products are compared in big.Int so large grids cannot overflow.
func (r Rational) Cmp(o Rational) int {
	left := new(big.Int).Mul(big.NewInt(r.Num), big.NewInt(o.Den))
	right := new(big.Int).Mul(big.NewInt(o.Num), big.NewInt(r.Den))
	return left.Cmp(right)
}

// Floor returns the largest integer not greater than r.
func (r Rational) Floor() int64 {
	q := r.Num / r.Den
	if r.Num%r.Den != 0 && r.Num < 0 {
		q--
	}
	return q
}

func (r Rational) Float64() float64 {
	return float64(r.Num) / float64(r.Den)
}

func (r Rational) String() string {
	if r.Den == 1 {
		return fmt.Sprintf("%d", r.Num)
	}
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
