package lambda

import "fmt"

// SyntaxError reports a parse failure at a rune offset into the input.
// Parsing is all-or-nothing: a SyntaxError means no partial term exists.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Pos, e.Msg)
}

const lambdaRune = 'λ'

// eof is returned by peek past the end of input. It is not a valid name
// rune, so the scanning loops stop on it.
const eof = rune(-1)

// Parser scans a single input string. The grammar is character-exact:
//
//	term        := atom (' ' atom)*      left-folded into applications
//	atom        := '(' term ')' | abstraction | variable
//	abstraction := 'λ' variable '.' term
//	variable    := one or more runes excluding '(' ')' 'λ' '.' ' '
//
// The separator is exactly one ASCII space; no other whitespace is special.
type Parser struct {
	input []rune
	pos   int
}

func NewParser(input string) *Parser {
	return &Parser{input: []rune(input)}
}

func (p *Parser) peek() rune {
	if p.pos >= len(p.input) {
		return eof
	}
	return p.input[p.pos]
}

func (p *Parser) errorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

// Parse consumes the entire input as a single term. Input remaining after
// a complete term is a syntax error.
func (p *Parser) Parse() (Term, error) {
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.input) {
		return nil, p.errorf("unexpected %q after complete term", p.peek())
	}
	return term, nil
}

// parseTerm parses a space-separated sequence of atoms. Application
// associates left: a b c = ((a b) c). A bare atom is returned unchanged.
func (p *Parser) parseTerm() (Term, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.peek() == ' ' {
		p.pos++
		right, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		left = App{Fun: left, Arg: right}
	}
	return left, nil
}

func (p *Parser) parseAtom() (Term, error) {
	switch p.peek() {
	case '(':
		p.pos++
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if p.peek() != ')' {
			return nil, p.errorf("expected ')'")
		}
		p.pos++
		return term, nil
	case lambdaRune:
		return p.parseAbs()
	default:
		return p.parseVariable()
	}
}

// parseAbs parses 'λ' variable '.' term. The binder position is parsed
// with the variable production and must come out as a single Var. The body
// extends as far right as possible.
func (p *Parser) parseAbs() (Term, error) {
	p.pos++ // consume λ
	binder, err := p.parseVariable()
	if err != nil {
		return nil, err
	}
	v, ok := binder.(Var)
	if !ok {
		return nil, p.errorf("abstraction binder must be a single variable")
	}
	if p.peek() != '.' {
		return nil, p.errorf("expected '.' after binder")
	}
	p.pos++
	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return Abs{Arg: v.Name, Body: body}, nil
}

func (p *Parser) parseVariable() (Term, error) {
	start := p.pos
	for isNameRune(p.peek()) {
		p.pos++
	}
	if p.pos == start {
		if p.peek() == eof {
			return nil, p.errorf("unexpected end of input")
		}
		return nil, p.errorf("unexpected %q", p.peek())
	}
	return Var{Name: string(p.input[start:p.pos])}, nil
}

func isNameRune(r rune) bool {
	switch r {
	case '(', ')', lambdaRune, '.', ' ', eof:
		return false
	}
	return true
}

// Parse parses a lambda term from source text.
func Parse(source string) (Term, error) {
	return NewParser(source).Parse()
}
