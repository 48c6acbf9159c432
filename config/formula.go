package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Eval evaluates an arithmetic formula. It supports decimal numbers, the
// binary operators + - * / % and ^, unary minus, parentheses and the
// constant PI.
func Eval(s string) (float64, error) {
	p := &formulaParser{src: s}
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return 0, fmt.Errorf("%w: unexpected %q at %d", ErrFormula, p.src[p.pos], p.pos)
	}
	return v, nil
}

type formulaParser struct {
	src string
	pos int
}

func (p *formulaParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *formulaParser) accept(c byte) bool {
	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

// expr = term { ("+" | "-") term }
func (p *formulaParser) expr() (float64, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case p.accept('+'):
			r, err := p.term()
			if err != nil {
				return 0, err
			}
			v += r
		case p.accept('-'):
			r, err := p.term()
			if err != nil {
				return 0, err
			}
			v -= r
		default:
			return v, nil
		}
	}
}

// term = power { ("*" | "/" | "%") power }
func (p *formulaParser) term() (float64, error) {
	v, err := p.power()
	if err != nil {
		return 0, err
	}
	for {
		var op byte
		switch {
		case p.accept('*'):
			op = '*'
		case p.accept('/'):
			op = '/'
		case p.accept('%'):
			op = '%'
		default:
			return v, nil
		}
		r, err := p.power()
		if err != nil {
			return 0, err
		}
		switch op {
		case '*':
			v *= r
		case '/':
			if r == 0 {
				return 0, fmt.Errorf("%w: division by zero", ErrFormula)
			}
			v /= r
		case '%':
			if r == 0 {
				return 0, fmt.Errorf("%w: division by zero", ErrFormula)
			}
			v = math.Mod(v, r)
		}
	}
}

// power = unary [ "^" power ]
func (p *formulaParser) power() (float64, error) {
	v, err := p.unary()
	if err != nil {
		return 0, err
	}
	if p.accept('^') {
		r, err := p.power()
		if err != nil {
			return 0, err
		}
		v = math.Pow(v, r)
	}
	return v, nil
}

// unary = [ "-" | "+" ] unary | primary
func (p *formulaParser) unary() (float64, error) {
	if p.accept('-') {
		v, err := p.unary()
		return -v, err
	}
	if p.accept('+') {
		return p.unary()
	}
	return p.primary()
}

// primary = number | "PI" | "(" expr ")"
func (p *formulaParser) primary() (float64, error) {
	if p.accept('(') {
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		if !p.accept(')') {
			return 0, fmt.Errorf("%w: missing ')'", ErrFormula)
		}
		return v, nil
	}
	p.skipSpace()
	if rest := p.src[p.pos:]; len(rest) >= 2 && strings.EqualFold(rest[:2], "pi") {
		p.pos += 2
		return math.Pi, nil
	}
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if (c < '0' || c > '9') && c != '.' {
			break
		}
		p.pos++
	}
	if start == p.pos {
		if p.pos >= len(p.src) {
			return 0, fmt.Errorf("%w: unexpected end", ErrFormula)
		}
		return 0, fmt.Errorf("%w: unexpected %q at %d", ErrFormula, p.src[p.pos], p.pos)
	}
	v, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrFormula, err)
	}
	return v, nil
}
