package minigeo

// keywords maps geometry tagged text names to their tokens.
var keywords = func() map[string]Token {
	m := make(map[string]Token, int(keywordEnd-keywordBegin-1))
	for tok := keywordBegin + 1; tok < keywordEnd; tok++ {
		m[tokens[tok]] = tok
	}
	return m
}()

// LookupKeyword matches geometry tagged text names. The match is case
// sensitive: "POLYGON" is a keyword, "Polygon" is an identifier, reported
// as IDENT.
func LookupKeyword(ident string) (Token, bool) {
	tok, found := keywords[ident]
	if !found {
		return IDENT, false
	}
	return tok, true
}
