package config

import "strings"

// Tokenize splits s at any rune of delims. Tokens are trimmed and empty
// tokens are dropped.
func Tokenize(s, delims string) []string {
	var tokens []string
	for _, tok := range strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(delims, r)
	}) {
		if tok = strings.TrimSpace(tok); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// Tokenize2 splits s at sep. When parens is set, separators nested inside
// parentheses do not split and a pair enclosing the whole string is
// removed first, so "(1,(2+3))" yields ["1", "(2+3)"]. Tokens are trimmed;
// empty tokens between separators are kept. A blank string has no tokens.
func Tokenize2(s string, sep rune, parens bool) []string {
	s = strings.TrimSpace(s)
	if parens {
		for enclosed(s) {
			s = strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	if s == "" {
		return nil
	}
	var tokens []string
	depth, start := 0, 0
	for i, r := range s {
		switch {
		case parens && r == '(':
			depth++
		case parens && r == ')':
			if depth > 0 {
				depth--
			}
		case r == sep && depth == 0:
			tokens = append(tokens, strings.TrimSpace(s[start:i]))
			start = i + len(string(sep))
		}
	}
	return append(tokens, strings.TrimSpace(s[start:]))
}

// enclosed reports whether s is wrapped in one matching pair of
// parentheses.
func enclosed(s string) bool {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return false
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i != len(s)-1 {
				return false
			}
		}
	}
	return depth == 0
}
