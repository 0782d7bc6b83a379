package rational

import (
	"math/big"
	"strings"
)

// HalfUnit returns 5·10^-(prec+1), half a unit in the last of prec digits.
func HalfUnit(prec int) Rat {
	return Rat{r: new(big.Rat).SetFrac(big.NewInt(5), Pow10(prec+1))}
}

// DecimalString formats x with exactly prec digits after the decimal point.
//
// Rounding is bias-then-truncate: half a unit in the last requested digit is
// added (subtracted for negative x) and the result is truncated toward zero.
// A value that rounds to zero prints without a sign ("0.00", never "-0.00").
// prec == 0 renders the integer part only, without a decimal point.
func (x Rat) DecimalString(prec int) (string, error) {
	if prec < 0 {
		return "", ErrNegativePrecision
	}
	w := x.Add(HalfUnit(prec))
	if x.Sign() < 0 {
		w = x.Sub(HalfUnit(prec))
	}
	return truncatedDecimal(w, prec), nil
}

// truncatedDecimal writes x truncated (not rounded) to prec digits.
func truncatedDecimal(x Rat, prec int) string {
	var sb strings.Builder
	neg := x.Sign() < 0
	if neg {
		x = x.Neg()
	}

	scaled := new(big.Int).Mul(x.val().Num(), Pow10(prec))
	scaled.Quo(scaled, x.val().Denom())
	if neg && scaled.Sign() != 0 {
		sb.WriteByte('-')
	}
	digits := scaled.String()
	if len(digits) <= prec {
		digits = strings.Repeat("0", prec-len(digits)+1) + digits
	}

	cut := len(digits) - prec
	sb.WriteString(digits[:cut])
	if prec > 0 {
		sb.WriteByte('.')
		sb.WriteString(digits[cut:])
	}
	return sb.String()
}

// Bound shrinks the numerator and denominator of x together until at most
// one of them exceeds 10^digits, keeping the sign. The result approximates x
// and is used where a heuristic extraction would otherwise emit a term with
// a huge exact fraction.
func (x Rat) Bound(digits int) Rat {
	if digits < 0 || x.IsZero() {
		return x
	}
	p := Pow10(digits)
	p2 := new(big.Int).Mul(p, p)
	ten := big.NewInt(10)

	num := new(big.Int).Abs(x.val().Num())
	den := new(big.Int).Set(x.val().Denom())
	for num.Cmp(p2) > 0 && den.Cmp(p2) > 0 {
		num.Quo(num, p)
		den.Quo(den, p)
	}
	for num.Cmp(p) > 0 && den.Cmp(p) > 0 {
		num.Quo(num, ten)
		den.Quo(den, ten)
	}
	if x.Sign() < 0 {
		num.Neg(num)
	}
	// den stays above p (≥ 1) throughout, so the division is defined.
	return Rat{r: new(big.Rat).SetFrac(num, den)}
}
