package config

import (
	"fmt"
	"math"
	"strconv"
)

// Vars binds formula variable names to values.
type Vars map[string]float64

// Eval evaluates a bounding formula against vars. Grammar:
//
//	expr   := term (('+' | '-') term)*
//	term   := factor (('*' | '/') factor)*
//	factor := number | name | name '(' expr ')' | '(' expr ')' | '-' factor
//
// Supported functions: exp, log, sqrt. Unknown names return
// ErrUnknownName; any other malformed input returns ErrBadFormula.
func Eval(src string, vars Vars) (float64, error) {
	p := parser{src: src, vars: vars}
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return 0, fmt.Errorf("config: trailing input %q: %w", p.src[p.pos:], ErrBadFormula)
	}
	return v, nil
}

type parser struct {
	src  string
	pos  int
	vars Vars
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

// peek returns the next non-space byte without consuming it, or 0 at EOF.
func (p *parser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) expr() (float64, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			t, err := p.term()
			if err != nil {
				return 0, err
			}
			v += t
		case '-':
			p.pos++
			t, err := p.term()
			if err != nil {
				return 0, err
			}
			v -= t
		default:
			return v, nil
		}
	}
}

func (p *parser) term() (float64, error) {
	v, err := p.factor()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '*':
			p.pos++
			f, err := p.factor()
			if err != nil {
				return 0, err
			}
			v *= f
		case '/':
			p.pos++
			f, err := p.factor()
			if err != nil {
				return 0, err
			}
			v /= f
		default:
			return v, nil
		}
	}
}

func (p *parser) factor() (float64, error) {
	switch c := p.peek(); {
	case c == '-':
		p.pos++
		v, err := p.factor()
		return -v, err
	case c == '(':
		p.pos++
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, fmt.Errorf("config: missing ')': %w", ErrBadFormula)
		}
		p.pos++
		return v, nil
	case c >= '0' && c <= '9' || c == '.':
		return p.number()
	case isNameByte(c):
		return p.name()
	default:
		return 0, fmt.Errorf("config: unexpected %q at offset %d: %w", string(c), p.pos, ErrBadFormula)
	}
}

func (p *parser) number() (float64, error) {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c >= '0' && c <= '9' || c == '.' {
			p.pos++
			continue
		}
		break
	}
	v, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("config: bad number %q: %w", p.src[start:p.pos], ErrBadFormula)
	}
	return v, nil
}

func (p *parser) name() (float64, error) {
	start := p.pos
	for p.pos < len(p.src) && isNameByte(p.src[p.pos]) {
		p.pos++
	}
	name := p.src[start:p.pos]

	if p.peek() == '(' {
		p.pos++
		arg, err := p.expr()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, fmt.Errorf("config: missing ')': %w", ErrBadFormula)
		}
		p.pos++
		switch name {
		case "exp":
			return math.Exp(arg), nil
		case "log":
			return math.Log(arg), nil
		case "sqrt":
			return math.Sqrt(arg), nil
		default:
			return 0, fmt.Errorf("config: function %q: %w", name, ErrUnknownName)
		}
	}

	v, ok := p.vars[name]
	if !ok {
		return 0, fmt.Errorf("config: variable %q: %w", name, ErrUnknownName)
	}
	return v, nil
}

func isNameByte(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
