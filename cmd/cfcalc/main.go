// Command cfcalc evaluates exact continued-fraction expressions.
//
// Usage:
//
//	cfcalc decimal --precision 30 sqrt:2
//	cfcalc terms --terms 12 pi
//	cfcalc convergents e
//	cfcalc calc add sqrt:2 sqrt:3
//	cfcalc sqrt exp:1/2
//
// Settings can also come from CFCALC_* environment variables or a YAML
// file given with --config.
package main

import (
	"os"

	"github.com/katalvlaran/cfrac/cmd/cfcalc/command"
)

func main() {
	if err := command.NewRoot().Execute(); err != nil {
		os.Exit(1)
	}
}
