package expr

import (
	"regexp"
	"strconv"
	"strings"
)

// sciLiteral matches decimal literals with an exponent part: 1e-3, 2.5E4, .5e2.
var sciLiteral = regexp.MustCompile(`\.?\b\d+(\.\d*)?[eE][+-]?\d+\b`)

// rewrite turns the user grammar into govaluate's: exponent literals are
// expanded to plain decimals and ^ becomes a right-nested **.
func rewrite(src string) string {
	src = sciLiteral.ReplaceAllStringFunc(src, func(lit string) string {
		v, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return lit
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	})
	return nestPowers(src)
}

// nestPowers rewrites a^b^c as a**(b**(c)). govaluate's ** groups to the
// left; ^ in formulas groups to the right.
func nestPowers(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		if s[i] != '^' {
			b.WriteByte(s[i])
			continue
		}

		end := operandEnd(s, i+1)
		next := skipSpaces(s, end)
		if next >= len(s) || s[next] != '^' {
			b.WriteString("**")
			continue
		}
		for next < len(s) && s[next] == '^' {
			end = operandEnd(s, next+1)
			next = skipSpaces(s, end)
		}
		b.WriteString("**(")
		b.WriteString(nestPowers(s[i+1 : end]))
		b.WriteByte(')')
		i = end - 1
	}
	return b.String()
}

// operandEnd returns the index just past the operand starting at i:
// an optional sign, then a number, a name, a call f(...) or a group (...).
// Malformed input stops early and is left for govaluate to reject.
func operandEnd(s string, i int) int {
	i = skipSpaces(s, i)
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i = skipSpaces(s, i+1)
	}
	for i < len(s) && isOperandByte(s[i]) {
		i++
	}
	if i < len(s) && s[i] == '(' {
		return closingParen(s, i)
	}
	return i
}

// closingParen returns the index after the parenthesis matching s[open],
// or len(s) when it is unbalanced.
func closingParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return len(s)
}

func skipSpaces(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	return i
}

func isOperandByte(c byte) bool {
	return c == '.' || c == '_' ||
		('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
