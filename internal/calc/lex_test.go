package calc

import (
	"math"
	"reflect"
	"testing"
)

type (
	lp = LeftParen
	rp = RightParen
)

func op(c byte) Operator { return Operator(c) }

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []Token
	}{
		{"", nil},
		{"32-33", []Token{Number(32), op('-'), Number(33)}},
		{"-1+23", []Token{Number(-1), op('+'), Number(23)}},
		{"(-2)*3", []Token{lp{}, Number(-2), rp{}, op('*'), Number(3)}},
		{"2*-3", []Token{Number(2), op('*'), Number(-3)}},
		{"2^-1", []Token{Number(2), op('^'), Number(-1)}},
		{"1.25/0.5", []Token{Number(1.25), op('/'), Number(0.5)}},
		{" 1 + 2 ", []Token{Number(1), op('+'), Number(2)}},
		{"1x+y2", []Token{Number(1), op('+'), Number(2)}},
		{"-(1)", []Token{op('-'), lp{}, Number(1), rp{}}},
		{"π", []Token{Number(math.Pi)}},
		{"2π", []Token{Number(2), Number(math.Pi)}},
		{"-π", []Token{Number(-math.Pi)}},
		{"√9", []Token{lp{}, Number(9), rp{}, op('^'), Number(0.5)}},
		{"√-4", []Token{lp{}, Number(-4), rp{}, op('^'), Number(0.5)}},
		{"√π", []Token{lp{}, Number(math.Pi), rp{}, op('^'), Number(0.5)}},
		{
			"√(3+(4*2))",
			[]Token{lp{}, Number(3), op('+'), lp{}, Number(4), op('*'), Number(2), rp{}, rp{}, op('^'), Number(0.5)},
		},
		{
			"√(9)+1",
			[]Token{lp{}, Number(9), rp{}, op('^'), Number(0.5), op('+'), Number(1)},
		},
		{
			"√√16",
			[]Token{lp{}, lp{}, Number(16), rp{}, op('^'), Number(0.5), rp{}, op('^'), Number(0.5)},
		},
		{
			"√(√16)",
			[]Token{lp{}, lp{}, Number(16), rp{}, op('^'), Number(0.5), rp{}, op('^'), Number(0.5)},
		},
		{"√", []Token{lp{}, rp{}, op('^'), Number(0.5)}},
		{"√(1+2", []Token{lp{}, Number(1), op('+'), Number(2), rp{}, op('^'), Number(0.5)}},
	}
	for _, test := range tests {
		got := Tokenize(test.in)
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("Tokenize(%q)\n  got: %v\n want: %v", test.in, got, test.want)
		}
	}
}

func TestTokenizeAnswer(t *testing.T) {
	got := TokenizeAnswer("ANS*2-ANS", 1.5)
	want := []Token{Number(1.5), op('*'), Number(2), op('-'), Number(1.5)}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("wrong tokens\n  got: %v\n want: %v", got, want)
	}
	got = TokenizeAnswer("-ANS", 7)
	want = []Token{Number(-7)}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("wrong tokens\n  got: %v\n want: %v", got, want)
	}
	got = Tokenize("ANS")
	want = []Token{Number(0)}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("wrong tokens\n  got: %v\n want: %v", got, want)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{3, "3"},
		{-2.5, "-2.5"},
		{0.30000000000000004, "0.30000000000000004"},
		{1e6, "1000000"},
		{1e-7, "0.0000001"},
		{1e21, "1000000000000000000000"},
	}
	for _, test := range tests {
		if got := FormatNumber(test.in); got != test.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", test.in, got, test.want)
		}
	}
}

// Rendered numbers must tokenize back to the same value.
func TestFormatNumberRoundTrip(t *testing.T) {
	values := []float64{1, -1, math.Pi, -math.E, 1e300, 1.5e-300, 123456.789, 1.0 / 3}
	for _, v := range values {
		text := FormatNumber(v)
		toks := Tokenize(text)
		if len(toks) != 1 || float64(toks[0].(Number)) != v {
			t.Errorf("%v rendered as %q tokenizes to %v", v, text, toks)
		}
	}
}
