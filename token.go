package minigeo

import "strconv"

type (
	Pos   int
	Token int
)

const (
	ILLEGAL Token = iota
	EOF
	WS

	literalBegin
	IDENT  // LINESTRING
	NUMBER // 30, -12.5, .5
	literalEnd

	operatorBegin
	LPAREN // (
	RPAREN // )
	COMMA  // ,
	operatorEnd

	keywordBegin
	POLYGON      // POLYGON
	MULTIPOLYGON // MULTIPOLYGON
	keywordEnd
)

var tokens = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",
	WS:      "WS",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",

	LPAREN: "(",
	RPAREN: ")",
	COMMA:  ",",

	POLYGON:      "POLYGON",
	MULTIPOLYGON: "MULTIPOLYGON",
}

func (tok Token) IsLiteral() bool {
	return literalBegin < tok && tok < literalEnd
}

func (tok Token) IsOperator() bool {
	return operatorBegin < tok && tok < operatorEnd
}

func (tok Token) IsKeyword() bool {
	return keywordBegin < tok && tok < keywordEnd
}

func (tok Token) String() string {
	s := ""
	if 0 <= tok && tok < Token(len(tokens)) {
		s = tokens[tok]
	}
	if s == "" {
		s = "token(" + strconv.Itoa(int(tok)) + ")"
	}
	return s
}
