package desr

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gharib85/desr/hermite"
	"github.com/gharib85/desr/symbol"
)

// System is an ordered system of first-order ordinary differential
// equations. Each variable carries a derivative expression; a nil entry
// means the derivative is unspecified (a parameter of the system), which
// is distinct from an explicit zero. Systems are immutable once built.
type System struct {
	indepVar string
	vars     []*symbol.Sym
	derivs   []symbol.Expr
}

// DerivativePair is one specified equation of a system.
type DerivativePair struct {
	Var  *symbol.Sym
	Expr symbol.Expr
}

// NewSystem builds a system from parallel variable and derivative slices.
// The independent variable must appear exactly once among the variables
// and its derivative must be exactly 1; violations are reported, never
// silently corrected.
func NewSystem(vars []*symbol.Sym, derivs []symbol.Expr, indepVar string) (*System, error) {
	if len(vars) != len(derivs) {
		return nil, fmt.Errorf("%w: %d variables but %d derivatives",
			ErrInvalidSystem, len(vars), len(derivs))
	}
	seen := make(map[string]bool, len(vars))
	indepIdx := -1
	for i, v := range vars {
		if seen[v.Name()] {
			return nil, fmt.Errorf("%w: duplicate variable %q", ErrInvalidSystem, v.Name())
		}
		seen[v.Name()] = true
		if v.Name() == indepVar {
			indepIdx = i
		}
	}
	if indepIdx == -1 {
		return nil, fmt.Errorf("%w: independent variable %q not among the variables",
			ErrInvalidSystem, indepVar)
	}
	if derivs[indepIdx] == nil || !derivs[indepIdx].Simplify().Equal(symbol.N(1)) {
		return nil, fmt.Errorf("%w: derivative of independent variable %q must be 1",
			ErrInvalidSystem, indepVar)
	}
	return &System{
		indepVar: indepVar,
		vars:     append([]*symbol.Sym{}, vars...),
		derivs:   append([]symbol.Expr{}, derivs...),
	}, nil
}

// FromEquations builds a system from newline-separated equation text.
// Variables are ordered dependent variables (sorted by name), then the
// independent variable, then the remaining free variables of the
// right-hand sides (sorted by name). Those remaining variables get no
// derivative. The text is trimmed as a whole; interior blank lines are
// malformed equations.
func FromEquations(text, indepVar string) (*System, error) {
	eqs := map[string]symbol.Expr{}
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		v, rhs, err := ParseEquation(line, indepVar)
		if err != nil {
			return nil, err
		}
		if v.Name() == indepVar {
			// d<t>/d<t> = 1 is redundant but accepted, so rendered
			// systems parse back. Anything else is a contradiction.
			if !rhs.Equal(symbol.N(1)) {
				return nil, fmt.Errorf("%w: derivative of independent variable %q must be 1, got %s",
					ErrInvalidSystem, indepVar, rhs)
			}
			continue
		}
		if _, dup := eqs[v.Name()]; dup {
			return nil, fmt.Errorf("%w: duplicate equation for %q", ErrInvalidSystem, v.Name())
		}
		eqs[v.Name()] = rhs
	}

	depNames := make([]string, 0, len(eqs))
	rhs := make([]symbol.Expr, 0, len(eqs))
	for name, e := range eqs {
		depNames = append(depNames, name)
		rhs = append(rhs, e)
	}
	sort.Strings(depNames)

	names := append([]string{}, depNames...)
	names = append(names, indepVar)
	placed := make(map[string]bool, len(names))
	for _, n := range names {
		placed[n] = true
	}
	for _, n := range symbol.SymbolNames(rhs...) {
		if !placed[n] {
			placed[n] = true
			names = append(names, n)
		}
	}

	vars := make([]*symbol.Sym, len(names))
	derivs := make([]symbol.Expr, len(names))
	for i, n := range names {
		vars[i] = symbol.S(n)
		switch {
		case n == indepVar:
			derivs[i] = symbol.N(1)
		default:
			derivs[i] = eqs[n] // nil for parameters
		}
	}
	return NewSystem(vars, derivs, indepVar)
}

// IndepVar returns the name of the independent variable.
func (s *System) IndepVar() string { return s.indepVar }

// Variables returns the system's variables in order.
func (s *System) Variables() []*symbol.Sym {
	return append([]*symbol.Sym{}, s.vars...)
}

// Derivatives returns one expression per variable in system order, with
// unspecified derivatives rendered as explicit zeros.
func (s *System) Derivatives() []symbol.Expr {
	out := make([]symbol.Expr, len(s.derivs))
	for i, d := range s.derivs {
		if d == nil {
			out[i] = symbol.N(0)
		} else {
			out[i] = d
		}
	}
	return out
}

// DerivativePairs returns the specified equations only, in system order.
func (s *System) DerivativePairs() []DerivativePair {
	out := make([]DerivativePair, 0, len(s.vars))
	for i, d := range s.derivs {
		if d != nil {
			out = append(out, DerivativePair{Var: s.vars[i], Expr: d})
		}
	}
	return out
}

// String renders the system as one equation per variable in system order.
func (s *System) String() string {
	derivs := s.Derivatives()
	lines := make([]string, len(s.vars))
	for i, v := range s.vars {
		lines[i] = fmt.Sprintf("d%s/d%s = %s", v.Name(), s.indepVar, derivs[i])
	}
	return strings.Join(lines, "\n")
}

// PowerMatrix glues together the power matrices of t*f/x for every
// specified derivative dx/dt = f, one block per equation, in system
// order. Rows follow the system's variable order.
func (s *System) PowerMatrix() (*hermite.Matrix, error) {
	t := symbol.S(s.indepVar)
	blocks := make([]*hermite.Matrix, 0, len(s.vars))
	for _, pair := range s.DerivativePairs() {
		expr := symbol.MulOf(t, pair.Expr, symbol.PowOf(pair.Var, symbol.N(-1)))
		block, err := RationalPowerMatrix(expr, s.vars)
		if err != nil {
			return nil, fmt.Errorf("equation for %q: %w", pair.Var.Name(), err)
		}
		blocks = append(blocks, block)
	}
	return hermite.HStack(blocks...), nil
}

// MaximalScalingMatrix returns a basis for the lattice of scaling
// symmetries of the system, one row per independent scaling, with columns
// following the system's variable order. A single all-zero row is
// returned when only the trivial scaling exists.
func (s *System) MaximalScalingMatrix() (*hermite.Matrix, error) {
	pm, err := s.PowerMatrix()
	if err != nil {
		return nil, err
	}
	h, u := hermite.RowHNF(pm)

	zero := 0
	for i := 0; i < h.Rows(); i++ {
		if h.RowIsZero(i) {
			zero++
		}
	}
	if zero == 0 {
		return hermite.NewMatrix(1, len(s.vars)), nil
	}
	for i := h.Rows() - zero; i < h.Rows(); i++ {
		if !h.RowIsZero(i) {
			panic("desr: zero rows of the Hermite form are not contiguous")
		}
	}
	return u.SubmatrixRows(u.Rows()-zero, u.Rows()), nil
}

// ReorderVariables returns a new system with the variables (and their
// derivatives) permuted into the given order. The order must be a
// permutation of the system's variables; the receiver is not modified.
func (s *System) ReorderVariables(order []*symbol.Sym) (*System, error) {
	if len(order) != len(s.vars) {
		return nil, fmt.Errorf("%w: got %d variables, want %d",
			ErrReorderMismatch, len(order), len(s.vars))
	}
	index := make(map[string]int, len(s.vars))
	for i, v := range s.vars {
		index[v.Name()] = i
	}
	used := make(map[string]bool, len(order))
	vars := make([]*symbol.Sym, len(order))
	derivs := make([]symbol.Expr, len(order))
	for i, v := range order {
		j, ok := index[v.Name()]
		if !ok {
			return nil, fmt.Errorf("%w: unknown variable %q", ErrReorderMismatch, v.Name())
		}
		if used[v.Name()] {
			return nil, fmt.Errorf("%w: duplicate variable %q", ErrReorderMismatch, v.Name())
		}
		used[v.Name()] = true
		vars[i] = s.vars[j]
		derivs[i] = s.derivs[j]
	}
	return &System{indepVar: s.indepVar, vars: vars, derivs: derivs}, nil
}
