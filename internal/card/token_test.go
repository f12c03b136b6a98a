package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCell(t *testing.T) {
	cases := []struct {
		name string
		cell string
		want []Token
	}{
		{"empty", "", nil},
		{"whitespace only", "  \t ", nil},
		{"separators only", " ,, , ", nil},
		{"comma list", "15,2,7,14,11", []Token{Num(15), Num(2), Num(7), Num(14), Num(11)}},
		{"mixed separators", " 1, 2\t3,,4 ", []Token{Num(1), Num(2), Num(3), Num(4)}},
		{"signed", "-3,+4,0", []Token{Num(-3), Num(4), Num(0)}},
		{"unicode spaces", "1\u00a02\u20033\v4", []Token{Num(1), Num(2), Num(3), Num(4)}},
		{"invalid kept in place", "1,x,3", []Token{Num(1), Invalid(), Num(3)}},
		{"float is invalid", "1.5", []Token{Invalid()}},
		{"overflow is invalid", "99999999999999999999999", []Token{Invalid()}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseCell(tc.cell))
		})
	}
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "42", Num(42).String())
	assert.Equal(t, "?", Invalid().String())
}
