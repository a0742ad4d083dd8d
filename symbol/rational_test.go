package symbol

import (
	"errors"
	"testing"
)

// ============================================================
// Single-fraction form
// ============================================================

func TestFraction(t *testing.T) {
	tests := []struct {
		src       string
		wantNum   string
		wantDenom string
	}{
		{"1 - n/K", "K + -1*n", "K"},
		{"(x^2 + x*y)/(x*z)", "x + y", "z"},
		{"x + x^2", "x + x^2", "1"},
		{"x/2 + y/3", "3*x + 2*y", "6"},
		{"2*x/(4*y)", "x", "2*y"},
		{"x/(-y)", "-1*x", "y"},
		{"1/(x*y)", "1", "x*y"},
		{"x^-2", "1", "x^2"},
		{"0", "0", "1"},
		{"(x + x^2)/x", "x + 1", "1"},
		{"3", "3", "1"},
	}
	for _, tt := range tests {
		e, err := Parse(tt.src)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", tt.src, err)
		}
		num, denom, err := Fraction(e)
		if err != nil {
			t.Errorf("Fraction(%q) returned error: %v", tt.src, err)
			continue
		}
		if got := num.String(); got != tt.wantNum {
			t.Errorf("Fraction(%q) num = %q, want %q", tt.src, got, tt.wantNum)
		}
		if got := denom.String(); got != tt.wantDenom {
			t.Errorf("Fraction(%q) denom = %q, want %q", tt.src, got, tt.wantDenom)
		}
	}
}

func TestFractionNonRational(t *testing.T) {
	bad := []string{
		"x^y",
		"x^(1/2)",
		"2^(x + 1)",
	}
	for _, src := range bad {
		e, err := Parse(src)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", src, err)
		}
		_, _, err = Fraction(e)
		if err == nil {
			t.Errorf("Fraction(%q) succeeded, want error", src)
			continue
		}
		if !errors.Is(err, ErrNonRational) {
			t.Errorf("Fraction(%q) error = %v, want ErrNonRational", src, err)
		}
	}
}

func TestFractionZeroDenominator(t *testing.T) {
	bad := []string{
		"1/0",
		"x/0",
		"1/(y - y)",
		"x/(x - x)",
		"1/((x + 1)*(x - 1) - x^2 + 1)",
	}
	for _, src := range bad {
		e, err := Parse(src)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", src, err)
		}
		_, _, err = Fraction(e)
		if err == nil {
			t.Errorf("Fraction(%q) succeeded, want error", src)
			continue
		}
		if !errors.Is(err, ErrNonRational) {
			t.Errorf("Fraction(%q) error = %v, want ErrNonRational", src, err)
		}
	}
}

// ============================================================
// Constant/terms split
// ============================================================

func TestCoeffAdd(t *testing.T) {
	tests := []struct {
		src       string
		wantConst string
		wantTerms []string
	}{
		{"x + y + 3", "3", []string{"x", "y"}},
		{"x*y", "0", []string{"x*y"}},
		{"5", "5", nil},
		{"1 - n/K", "1", []string{"-1*K^-1*n"}},
		{"2*x - 7", "-7", []string{"2*x"}},
	}
	for _, tt := range tests {
		e, err := Parse(tt.src)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", tt.src, err)
		}
		c, terms := CoeffAdd(e)
		if got := c.String(); got != tt.wantConst {
			t.Errorf("CoeffAdd(%q) constant = %q, want %q", tt.src, got, tt.wantConst)
		}
		if len(terms) != len(tt.wantTerms) {
			t.Errorf("CoeffAdd(%q) returned %d terms, want %d", tt.src, len(terms), len(tt.wantTerms))
			continue
		}
		for i, want := range tt.wantTerms {
			if got := terms[i].String(); got != want {
				t.Errorf("CoeffAdd(%q) term %d = %q, want %q", tt.src, i, got, want)
			}
		}
	}
}
