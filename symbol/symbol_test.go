package symbol

import "testing"

// ============================================================
// Numbers
// ============================================================

func TestNumString(t *testing.T) {
	if got := N(42).String(); got != "42" {
		t.Errorf("N(42).String() = %q, want %q", got, "42")
	}
	if got := F(1, 2).String(); got != "1/2" {
		t.Errorf("F(1, 2).String() = %q, want %q", got, "1/2")
	}
	if got := F(4, 2).String(); got != "2" {
		t.Errorf("F(4, 2).String() = %q, want %q", got, "2")
	}
	if got := N(-3).String(); got != "-3" {
		t.Errorf("N(-3).String() = %q, want %q", got, "-3")
	}
}

func TestNumPredicates(t *testing.T) {
	if !N(0).IsZero() {
		t.Error("N(0).IsZero() = false, want true")
	}
	if !N(1).IsOne() {
		t.Error("N(1).IsOne() = false, want true")
	}
	if F(1, 2).IsInteger() {
		t.Error("F(1, 2).IsInteger() = true, want false")
	}
	if !F(6, 3).IsInteger() {
		t.Error("F(6, 3).IsInteger() = false, want true")
	}
}

// ============================================================
// Simplification
// ============================================================

func TestSimplifyString(t *testing.T) {
	x := S("x")
	y := S("y")

	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{"collect like terms", AddOf(x, x, N(2)), "2*x + 2"},
		{"constant last", AddOf(N(1), x), "x + 1"},
		{"merge bases", MulOf(x, x), "x^2"},
		{"cancel to one", MulOf(x, PowOf(x, N(-1))), "1"},
		{"zero factor", MulOf(N(0), x, y), "0"},
		{"distribute integer power", PowOf(MulOf(x, y), N(2)), "x^2*y^2"},
		{"power of power", PowOf(PowOf(x, N(2)), N(3)), "x^6"},
		{"numeric power", PowOf(N(2), N(10)), "1024"},
		{"negative numeric power", PowOf(N(2), N(-2)), "1/4"},
		{"negated symbol", MulOf(N(-1), x), "-1*x"},
		{"factor order", MulOf(y, x), "x*y"},
		{"cancel terms", AddOf(x, MulOf(N(-1), x)), "0"},
		{"nested sums flatten", AddOf(AddOf(x, y), x), "2*x + y"},
	}
	for _, tt := range tests {
		if got := tt.expr.String(); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestExpand(t *testing.T) {
	x := S("x")
	y := S("y")

	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{"difference of squares", MulOf(AddOf(x, N(1)), AddOf(x, N(-1))), "x^2 + -1"},
		{"binomial square", PowOf(AddOf(x, y), N(2)), "2*x*y + x^2 + y^2"},
		{"scalar through sum", MulOf(N(3), AddOf(x, y)), "3*x + 3*y"},
		{"already flat", AddOf(x, y), "x + y"},
	}
	for _, tt := range tests {
		if got := Expand(tt.expr).String(); got != tt.want {
			t.Errorf("%s: Expand = %q, want %q", tt.name, got, tt.want)
		}
	}
}

// ============================================================
// Substitution and equality
// ============================================================

func TestSub(t *testing.T) {
	x := S("x")
	y := S("y")

	e := AddOf(MulOf(x, y), x)
	got := Sub(e, "x", N(2)).String()
	if got != "2*y + 2" {
		t.Errorf("Sub(x*y + x, x, 2) = %q, want %q", got, "2*y + 2")
	}

	got = Sub(x, "y", N(5)).String()
	if got != "x" {
		t.Errorf("Sub(x, y, 5) = %q, want %q", got, "x")
	}
}

func TestEqual(t *testing.T) {
	x := S("x")
	y := S("y")

	if !MulOf(x, y).Equal(MulOf(y, x)) {
		t.Error("x*y should equal y*x after simplification")
	}
	if AddOf(x, N(1)).Equal(AddOf(x, N(2))) {
		t.Error("x + 1 should not equal x + 2")
	}
	if x.Equal(y) {
		t.Error("x should not equal y")
	}
	if !N(2).Equal(F(4, 2)) {
		t.Error("N(2) should equal F(4, 2)")
	}
}

// ============================================================
// Free symbols
// ============================================================

func TestSymbolNames(t *testing.T) {
	e := AddOf(MulOf(S("b"), S("a")), PowOf(S("c"), S("a")))
	got := SymbolNames(e)
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("SymbolNames returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SymbolNames[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
