package calc

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SplitInput checks text against the input alphabet and splits it into input
// symbols, dropping whitespace. The alphabet is the digits, '.', the operators,
// parentheses, √, π and ANS. It reports false if text is empty or contains
// any other character.
func SplitInput(text string) ([]string, bool) {
	if text == "" {
		return nil, false
	}
	var syms []string
	for len(text) > 0 {
		if strings.HasPrefix(text, InputAnswer) {
			syms = append(syms, InputAnswer)
			text = text[len(InputAnswer):]
			continue
		}
		r, size := utf8.DecodeRuneInString(text)
		sym := text[:size]
		text = text[size:]
		switch {
		case unicode.IsSpace(r):
		case isInputSymbol(sym):
			syms = append(syms, sym)
		default:
			return nil, false
		}
	}
	return syms, true
}

// isInputSymbol tells whether s is a single input symbol.
func isInputSymbol(s string) bool {
	switch s {
	case InputSqrt, InputPi, InputAnswer, ".", "(", ")":
		return true
	}
	return len(s) == 1 && (s[0] >= '0' && s[0] <= '9' || isOp(s[0]))
}

// isOperatorInput tells whether s is an operator symbol.
func isOperatorInput(s string) bool {
	return len(s) == 1 && isOp(s[0])
}
