package command

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/cfrac/cf"
	"github.com/katalvlaran/cfrac/constants"
	"github.com/katalvlaran/cfrac/rational"
)

// ErrUnknownOperand reports an operand that is neither a rational, a known
// name nor a known fn:<rational> form.
var ErrUnknownOperand = errors.New("cfcalc: unknown operand")

var named = map[string]func(opts ...cf.Option) cf.CF{
	"pi":   func(opts ...cf.Option) cf.CF { return constants.Pi(opts...) },
	"e":    func(opts ...cf.Option) cf.CF { return constants.E(opts...) },
	"e2":   func(opts ...cf.Option) cf.CF { return constants.ESquared(opts...) },
	"phi":  constants.GoldenRatio,
	"tan1": func(opts ...cf.Option) cf.CF { return constants.Tan1(opts...) },
}

var functions = map[string]func(rational.Rat, ...cf.Option) (cf.CF, error){
	"sqrt":   cf.SqrtRational,
	"exp":    constants.Exp,
	"ln1p":   constants.Ln1PlusX,
	"sin":    constants.Sin,
	"cos":    constants.Cos,
	"arctan": constants.Arctan,
	"arcsin": constants.Arcsin,
	"sinh":   constants.Sinh,
	"cosh":   constants.Cosh,
}

// parseOperand turns one command-line operand into a CF.
func parseOperand(s string, opts []cf.Option) (cf.CF, error) {
	s = strings.TrimSpace(s)
	if mk, ok := named[strings.ToLower(s)]; ok {
		return mk(opts...), nil
	}
	if fn, arg, ok := strings.Cut(s, ":"); ok {
		f, known := functions[strings.ToLower(fn)]
		if !known {
			return nil, fmt.Errorf("%q: function must be one of %s: %w",
				s, strings.Join(functionNames(), ", "), ErrUnknownOperand)
		}
		r, err := rational.Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
		return f(r, opts...)
	}
	r, err := rational.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%q: %w: %w", s, ErrUnknownOperand, err)
	}
	return cf.NewRational(r), nil
}

func functionNames() []string {
	out := make([]string, 0, len(functions))
	for k := range functions {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
