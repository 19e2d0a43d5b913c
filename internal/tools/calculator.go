// Package tools implements the interactive catalog tools other than FLAMES.
package tools

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Calculator errors.
var (
	ErrEmptyExpression    = errors.New("empty expression")
	ErrInvalidCharacters  = errors.New("invalid characters in expression")
	ErrInvalidExpression  = errors.New("invalid expression")
	ErrDivisionByZero     = errors.New("division by zero")
	errUnexpectedEndInput = errors.New("unexpected end of expression")
)

const calculatorAlphabet = "0123456789+-*/(). "

// Evaluate computes an arithmetic expression over + - * / and parentheses
// with the usual precedence. Only digits, the four operators, parentheses,
// dots and spaces are accepted.
func Evaluate(expr string) (float64, error) {
	if strings.TrimSpace(expr) == "" {
		return 0, ErrEmptyExpression
	}
	for _, r := range expr {
		if !strings.ContainsRune(calculatorAlphabet, r) {
			return 0, ErrInvalidCharacters
		}
	}

	p := &parser{src: expr}
	v, err := p.expression()
	if err != nil {
		if errors.Is(err, ErrDivisionByZero) {
			return 0, err
		}
		return 0, ErrInvalidExpression
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return 0, ErrInvalidExpression
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidExpression
	}
	return v, nil
}

// FormatNumber renders a result without trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type parser struct {
	src string
	pos int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

func (p *parser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

// expression := term (('+' | '-') term)*
func (p *parser) expression() (float64, error) {
	left, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek()
		if op != '+' && op != '-' {
			return left, nil
		}
		p.pos++
		right, err := p.term()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			left += right
		} else {
			left -= right
		}
	}
}

// term := unary (('*' | '/') unary)*
func (p *parser) term() (float64, error) {
	left, err := p.unary()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek()
		if op != '*' && op != '/' {
			return left, nil
		}
		p.pos++
		right, err := p.unary()
		if err != nil {
			return 0, err
		}
		if op == '*' {
			left *= right
			continue
		}
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		left /= right
	}
}

// unary := ('+' | '-') unary | primary
func (p *parser) unary() (float64, error) {
	switch p.peek() {
	case '-':
		p.pos++
		v, err := p.unary()
		return -v, err
	case '+':
		p.pos++
		return p.unary()
	}
	return p.primary()
}

// primary := number | '(' expression ')'
func (p *parser) primary() (float64, error) {
	c := p.peek()
	switch {
	case c == 0:
		return 0, errUnexpectedEndInput
	case c == '(':
		p.pos++
		v, err := p.expression()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, ErrInvalidExpression
		}
		p.pos++
		return v, nil
	case c == '.' || (c >= '0' && c <= '9'):
		return p.number()
	}
	return 0, ErrInvalidExpression
}

func (p *parser) number() (float64, error) {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c != '.' && (c < '0' || c > '9') {
			break
		}
		p.pos++
	}
	return strconv.ParseFloat(p.src[start:p.pos], 64)
}
