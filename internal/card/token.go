package card

import (
	"regexp"
	"strconv"
	"strings"
)

// Token is one entry of a cell. Valid is false when the fragment
// could not be parsed as an integer.
type Token struct {
	Value int  `json:"value"`
	Valid bool `json:"valid"`
}

var cellSep = regexp.MustCompile(`[,` + unicodeSpace + `]+`)

func Num(v int) Token { return Token{Value: v, Valid: true} }

func Invalid() Token { return Token{} }

func (t Token) String() string {
	if !t.Valid {
		return "?"
	}
	return strconv.Itoa(t.Value)
}

// ParseCell turns a cell like "15,2,7 14,11" into tokens, keeping
// unparsable fragments in place as invalid tokens.
func ParseCell(cell string) []Token {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}

	var tokens []Token
	for _, part := range cellSep.Split(cell, -1) {
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			tokens = append(tokens, Invalid())
			continue
		}
		tokens = append(tokens, Num(n))
	}
	return tokens
}
