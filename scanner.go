package minigeo

import (
	"unicode"
	"unicode/utf8"
)

// Scanner splits WKT text into tokens. Whitespace is reported as WS so that
// the parser can tell "30 10" from "30-10".
type Scanner struct {
	src    string
	offset int
	next   int
	tok    Token
	lit    string
	unread bool
}

func NewScanner(src string) *Scanner {
	return &Scanner{src: src}
}

// Reset makes the following Next call return the current token again.
func (s *Scanner) Reset() {
	s.unread = true
}

// Offset returns the byte offset of the current token.
func (s *Scanner) Offset() Pos {
	return Pos(s.offset)
}

func (s *Scanner) NextTok() Token {
	tok, _ := s.Next()
	return tok
}

func (s *Scanner) Next() (tok Token, lit string) {
	if s.unread {
		s.unread = false
		return s.tok, s.lit
	}
	s.tok, s.lit = s.scan()
	return s.tok, s.lit
}

func (s *Scanner) scan() (Token, string) {
	s.offset = s.next
	if s.next >= len(s.src) {
		return EOF, ""
	}
	r, width := utf8.DecodeRuneInString(s.src[s.next:])
	switch {
	case unicode.IsSpace(r):
		return WS, s.scanWhile(unicode.IsSpace)
	case r == '(':
		s.next += width
		return LPAREN, "("
	case r == ')':
		s.next += width
		return RPAREN, ")"
	case r == ',':
		s.next += width
		return COMMA, ","
	case r == '-' || r == '+' || r == '.' || isDigit(r):
		return s.scanNumber()
	case isLetter(r):
		lit := s.scanWhile(func(r rune) bool { return isLetter(r) || isDigit(r) })
		if keyword, found := LookupKeyword(lit); found {
			return keyword, lit
		}
		return IDENT, lit
	default:
		s.next += width
		return ILLEGAL, string(r)
	}
}

// scanNumber reads [-+]? digit* '.'? digit+.
func (s *Scanner) scanNumber() (Token, string) {
	start := s.next
	if c := s.src[s.next]; c == '-' || c == '+' {
		s.next++
	}
	intDigits := s.skipDigits()
	hasPoint := false
	fracDigits := 0
	if s.next < len(s.src) && s.src[s.next] == '.' {
		hasPoint = true
		s.next++
		fracDigits = s.skipDigits()
	}
	lit := s.src[start:s.next]
	if (hasPoint && fracDigits == 0) || (!hasPoint && intDigits == 0) {
		return ILLEGAL, lit
	}
	return NUMBER, lit
}

func (s *Scanner) skipDigits() (n int) {
	for s.next < len(s.src) && isDigit(rune(s.src[s.next])) {
		s.next++
		n++
	}
	return n
}

func (s *Scanner) scanWhile(fn func(r rune) bool) string {
	start := s.next
	for s.next < len(s.src) {
		r, width := utf8.DecodeRuneInString(s.src[s.next:])
		if !fn(r) {
			break
		}
		s.next += width
	}
	return s.src[start:s.next]
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isLetter(r rune) bool {
	return r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}
