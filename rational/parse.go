package rational

import (
	"fmt"
	"math/big"
)

// Parse reads a rational literal of the form
//
//	[ws] [+|-] digits [ "/" digits ] [ws]
//
// where ws is any run of bytes <= ' '. The value is reduced to lowest terms.
// Malformed input wraps ErrSyntax with the byte offset of the failure;
// a zero denominator returns ErrZeroDenominator.
func Parse(s string) (Rat, error) {
	p := parser{s: s}
	p.skipSpace()

	neg := false
	if c, ok := p.peek(); ok && (c == '+' || c == '-') {
		neg = c == '-'
		p.pos++
	}
	num, err := p.natural()
	if err != nil {
		return Rat{}, err
	}
	if neg {
		num.Neg(num)
	}

	den := big.NewInt(1)
	if c, ok := p.peek(); ok && c == '/' {
		p.pos++
		if den, err = p.natural(); err != nil {
			return Rat{}, err
		}
	}

	p.skipSpace()
	if p.pos != len(p.s) {
		return Rat{}, p.errorf("unexpected %q", p.s[p.pos])
	}
	return NewBig(num, den)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Rat {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

type parser struct {
	s   string
	pos int
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.s) {
		return 0, false
	}
	return p.s[p.pos], true
}

func (p *parser) skipSpace() {
	for p.pos < len(p.s) && p.s[p.pos] <= ' ' {
		p.pos++
	}
}

// natural consumes one or more decimal digits.
func (p *parser) natural() (*big.Int, error) {
	start := p.pos
	for p.pos < len(p.s) && p.s[p.pos] >= '0' && p.s[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		if p.pos == len(p.s) {
			return nil, p.errorf("expected digit, got end of input")
		}
		return nil, p.errorf("expected digit, got %q", p.s[p.pos])
	}
	n, _ := new(big.Int).SetString(p.s[start:p.pos], 10)
	return n, nil
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: offset %d: %s", ErrSyntax, p.pos, fmt.Sprintf(format, args...))
}
