package desr

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gharib85/desr/symbol"
)

var equationRE = regexp.MustCompile(`^d([a-zA-Z0-9]+)/d([a-zA-Z0-9]+)\s*=+\s*(.+)$`)

// ParseEquation parses a single first-order differential equation of the
// form "d<var>/d<indep> = <expr>" ("==" is also accepted) and returns the
// differentiated variable and its right-hand side. The denominator
// identifier must name indepVar.
func ParseEquation(line, indepVar string) (*symbol.Sym, symbol.Expr, error) {
	m := equationRE.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return nil, nil, fmt.Errorf("%w: %q", ErrMalformedEquation, line)
	}
	if m[2] != indepVar {
		return nil, nil, fmt.Errorf("%w: equation %q differentiates with respect to %q, want %q",
			ErrWrongIndepVar, line, m[2], indepVar)
	}
	rhs, err := symbol.Parse(m[3])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrMalformedEquation, err)
	}
	return symbol.S(m[1]), rhs, nil
}
