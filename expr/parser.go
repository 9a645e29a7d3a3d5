package expr

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsieve/pattern"
	"github.com/katalvlaran/lvsieve/residue"
)

// Conjunction is an "&"-joined run of residue classes.
type Conjunction struct {
	Terms []residue.Class
}

// Expression is a "|"-joined list of conjunctions.
type Expression struct {
	Conjunctions []Conjunction
}

// parser walks a token slice once, left to right.
type parser struct {
	src  string
	toks []Token
	i    int
}

// ParseExpression parses text into its syntax tree.
//
// Errors (all wrap ErrMalformedLiteral unless noted):
//   - empty input, a missing operand, or a dangling operator;
//   - a literal that is not <int>@<int>;
//   - nested or unbalanced parentheses, or "|" inside parentheses;
//   - residue.ErrInvalidModulus for a literal with modulus ≤ 0.
func ParseExpression(text string) (Expression, error) {
	toks, err := Tokenize(text)
	if err != nil {
		return Expression{}, err
	}
	p := &parser{src: text, toks: toks}

	var e Expression
	for {
		conj, err := p.conjunction()
		if err != nil {
			return Expression{}, err
		}
		e.Conjunctions = append(e.Conjunctions, conj)

		switch tok := p.peek(); tok.Kind {
		case PIPE:
			p.i++
		case EOF:
			return e, nil
		default:
			return Expression{}, p.unexpected(tok, "expected '|' or end of input")
		}
	}
}

// conjunction := group ("&" group)*
func (p *parser) conjunction() (Conjunction, error) {
	var c Conjunction
	for {
		terms, err := p.group()
		if err != nil {
			return Conjunction{}, err
		}
		c.Terms = append(c.Terms, terms...)
		if p.peek().Kind != AMP {
			return c, nil
		}
		p.i++
	}
}

// group := literal | "(" literal ("&" literal)* ")"
func (p *parser) group() ([]residue.Class, error) {
	open := p.peek()
	if open.Kind != LPAREN {
		lit, err := p.literal()
		if err != nil {
			return nil, err
		}
		return []residue.Class{lit}, nil
	}
	p.i++

	var terms []residue.Class
	for {
		if tok := p.peek(); tok.Kind == LPAREN {
			return nil, malformed(p.src, tok.Pos, tok.Pos+1, "nested parentheses are not supported")
		}
		lit, err := p.literal()
		if err != nil {
			return nil, err
		}
		terms = append(terms, lit)

		switch tok := p.peek(); tok.Kind {
		case AMP:
			p.i++
		case RPAREN:
			p.i++
			return terms, nil
		case EOF:
			return nil, malformed(p.src, open.Pos, len(p.src), "unclosed '('")
		default:
			return nil, p.unexpected(tok, "expected '&' or ')' inside parentheses")
		}
	}
}

// literal := INT "@" INT
func (p *parser) literal() (residue.Class, error) {
	start := p.peek()
	if start.Kind != INT {
		return residue.Class{}, p.unexpected(start, "expected <modulus>@<shift>")
	}
	if p.at(1).Kind != AT || p.at(2).Kind != INT {
		end := p.at(1)
		if end.Kind == AT {
			end = p.at(2)
		}
		return residue.Class{}, malformed(p.src, start.Pos, end.Pos+len(end.Text), "expected <modulus>@<shift>")
	}
	m, s := start, p.at(2)
	p.i += 3

	c, err := residue.New(m.Val, s.Val)
	if err != nil {
		return residue.Class{}, fmt.Errorf("expr: %q at offset %d: %w", p.src[m.Pos:s.Pos+len(s.Text)], m.Pos, err)
	}

	return c, nil
}

func (p *parser) peek() Token { return p.at(0) }

// at returns the token k positions ahead; past the end it repeats EOF.
func (p *parser) at(k int) Token {
	if p.i+k < len(p.toks) {
		return p.toks[p.i+k]
	}

	return p.toks[len(p.toks)-1]
}

func (p *parser) unexpected(tok Token, reason string) error {
	if tok.Kind == EOF {
		return malformed(p.src, tok.Pos, tok.Pos, "unexpected end of input, "+reason)
	}

	return malformed(p.src, tok.Pos, tok.Pos+len(tok.Text), "unexpected "+tok.Kind.String()+", "+reason)
}

// Pattern evaluates the expression: each conjunction is intersected left to
// right, then the conjunctions are unioned left to right.
func (e Expression) Pattern() (pattern.Pattern, error) {
	if len(e.Conjunctions) == 0 {
		return pattern.Pattern{}, fmt.Errorf("expr: empty expression: %w", ErrMalformedLiteral)
	}
	groups := make([]pattern.Pattern, 0, len(e.Conjunctions))
	for _, c := range e.Conjunctions {
		if len(c.Terms) == 0 {
			return pattern.Pattern{}, fmt.Errorf("expr: empty conjunction: %w", ErrMalformedLiteral)
		}
		bins := make([]pattern.Pattern, len(c.Terms))
		for i, t := range c.Terms {
			b, err := pattern.Single(t.Modulus, t.Shift)
			if err != nil {
				return pattern.Pattern{}, fmt.Errorf("expr: %s: %w", t, err)
			}
			bins[i] = b
		}
		g, err := pattern.Reduce(pattern.OpIntersection, bins...)
		if err != nil {
			return pattern.Pattern{}, fmt.Errorf("expr: %s: %w", c, err)
		}
		groups = append(groups, g)
	}
	out, err := pattern.Reduce(pattern.OpUnion, groups...)
	if err != nil {
		return pattern.Pattern{}, fmt.Errorf("expr: %s: %w", e, err)
	}

	return out, nil
}

// String renders a conjunction; more than one term is parenthesized.
func (c Conjunction) String() string {
	parts := make([]string, len(c.Terms))
	for i, t := range c.Terms {
		parts[i] = t.String()
	}
	if len(parts) == 1 {
		return parts[0]
	}

	return "(" + strings.Join(parts, "&") + ")"
}

// String renders the expression in the grammar accepted by ParseExpression.
func (e Expression) String() string {
	parts := make([]string, len(e.Conjunctions))
	for i, c := range e.Conjunctions {
		parts[i] = c.String()
	}

	return strings.Join(parts, "|")
}

// Period returns the lcm of every modulus in the expression, which is the
// period Pattern will produce, or 0 if it would exceed pattern.MaxPeriod.
func (e Expression) Period() int {
	l := 1
	for _, c := range e.Conjunctions {
		for _, t := range c.Terms {
			if l = pattern.LCM(l, t.Modulus); l == 0 {
				return 0
			}
		}
	}

	return l
}

// Parse parses and evaluates text in one step.
func Parse(text string) (pattern.Pattern, error) {
	e, err := ParseExpression(text)
	if err != nil {
		return pattern.Pattern{}, err
	}

	return e.Pattern()
}

// Join serializes a union of residue classes: "m@s|m@s|...".
func Join(terms []residue.Class) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.String()
	}

	return strings.Join(parts, "|")
}
