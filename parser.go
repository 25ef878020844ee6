package minigeo

import (
	"fmt"
	"strconv"
	"strings"
)

// Parser reads POLYGON and MULTIPOLYGON tagged text. A Parser is used for a
// single input; ParseWKT is safe for concurrent use.
type Parser struct {
	s *Scanner
}

func newParser(text string) *Parser {
	return &Parser{
		s: NewScanner(text),
	}
}

// ParseWKT parses a single POLYGON or MULTIPOLYGON. Any malformed part fails
// the whole input: the result is either a complete geometry or a
// *ParserError, never both.
func ParseWKT(text string) (Geometry, error) {
	if len(strings.TrimSpace(text)) == 0 {
		return nil, &ParserError{Tok: EOF, Msg: "geometry not defined"}
	}
	return newParser(text).Parse()
}

func (p *Parser) Parse() (Geometry, error) {
	var (
		geom Geometry
		err  error
	)
	tok, lit := p.next()
	switch tok {
	case POLYGON:
		geom, err = p.parsePolygonText()
	case MULTIPOLYGON:
		geom, err = p.parseMultiPolygonText()
	default:
		return nil, p.error(tok, lit, "expected POLYGON or MULTIPOLYGON")
	}
	if err != nil {
		return nil, err
	}
	if tok, lit := p.next(); tok != EOF {
		return nil, p.error(tok, lit, "unexpected trailing input")
	}
	return geom, nil
}

// multipolygon := '(' polygon (',' polygon)* ')'
func (p *Parser) parseMultiPolygonText() (*MultiPolygon, error) {
	if err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	polygons := make([]*Polygon, 0, 2)
	for {
		tok, lit := p.next()
		if tok == RPAREN && len(polygons) == 0 {
			return nil, p.error(tok, lit, "multipolygon requires at least one polygon")
		}
		if tok != LPAREN {
			return nil, p.error(tok, lit, fmt.Sprintf("got %v, expected %v", tok, LPAREN))
		}
		p.s.Reset()
		polygon, err := p.parsePolygonText()
		if err != nil {
			return nil, err
		}
		polygons = append(polygons, polygon)
		done, err := p.parseListEnd()
		if err != nil {
			return nil, err
		}
		if done {
			return NewMultiPolygon(polygons...), nil
		}
	}
}

// polygon := '(' ring (',' ring)* ')'
func (p *Parser) parsePolygonText() (*Polygon, error) {
	if err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	rings := make([]*LinearRing, 0, 1)
	for {
		tok, lit := p.next()
		if tok == RPAREN && len(rings) == 0 {
			return nil, p.error(tok, lit, "polygon requires at least one ring")
		}
		if tok != LPAREN {
			return nil, p.error(tok, lit, fmt.Sprintf("got %v, expected %v", tok, LPAREN))
		}
		p.s.Reset()
		coords, err := p.parseCoordinates()
		if err != nil {
			return nil, err
		}
		if len(coords) < 3 {
			return nil, p.error(RPAREN, ")",
				fmt.Sprintf("ring requires at least 3 coordinates, got %d", len(coords)))
		}
		rings = append(rings, NewLinearRing(coords))
		done, err := p.parseListEnd()
		if err != nil {
			return nil, err
		}
		if done {
			return NewPolygon(rings[0], rings[1:]...), nil
		}
	}
}

// ring := '(' pair (',' pair)* ')' | '(' ')'
func (p *Parser) parseCoordinates() ([]Coordinate, error) {
	if err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	coords := make([]Coordinate, 0, 8)
	if tok, _ := p.next(); tok == RPAREN {
		return coords, nil
	}
	p.s.Reset()
	for {
		c, err := p.parsePair()
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)
		done, err := p.parseListEnd()
		if err != nil {
			return nil, err
		}
		if done {
			return coords, nil
		}
	}
}

// pair := number WS+ number
func (p *Parser) parsePair() (c Coordinate, err error) {
	tok, lit := p.next()
	if tok != NUMBER {
		return c, p.error(tok, lit, fmt.Sprintf("got %v, expected %v", tok, NUMBER))
	}
	if c.X, err = p.parseNumber(lit); err != nil {
		return c, err
	}
	tok, lit = p.s.Next()
	if tok != WS || len(strings.Trim(lit, " \t")) > 0 {
		return c, p.error(tok, lit, "expected spaces between coordinate values")
	}
	tok, lit = p.s.Next()
	if tok != NUMBER {
		return c, p.error(tok, lit, fmt.Sprintf("got %v, expected %v", tok, NUMBER))
	}
	if c.Y, err = p.parseNumber(lit); err != nil {
		return c, err
	}
	return c, nil
}

func (p *Parser) parseNumber(lit string) (float64, error) {
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, p.error(NUMBER, lit, err.Error())
	}
	return v, nil
}

// parseListEnd consumes a list separator. It reports true on the closing
// parenthesis.
func (p *Parser) parseListEnd() (bool, error) {
	tok, lit := p.next()
	switch tok {
	case COMMA:
		return false, nil
	case RPAREN:
		return true, nil
	default:
		return false, p.error(tok, lit, fmt.Sprintf("got %v, expected %v or %v", tok, COMMA, RPAREN))
	}
}

func (p *Parser) expect(want Token) error {
	tok, lit := p.next()
	if tok != want {
		return p.error(tok, lit, fmt.Sprintf("got %v, expected %v", tok, want))
	}
	return nil
}

// next skips whitespace.
func (p *Parser) next() (Token, string) {
	for {
		tok, lit := p.s.Next()
		if tok != WS {
			return tok, lit
		}
	}
}

func (p *Parser) error(tok Token, lit string, msg string) error {
	return &ParserError{
		Pos: p.s.Offset(),
		Lit: lit,
		Tok: tok,
		Msg: msg,
	}
}

type ParserError struct {
	Tok Token
	Lit string
	Pos Pos
	Msg string
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("minigeo/wkt: parsing error got=%v, lit=%q, pos=%d %s",
		e.Tok, e.Lit, e.Pos, e.Msg)
}
