package card

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nums(vs ...int) []Token {
	tokens := make([]Token, len(vs))
	for i, v := range vs {
		tokens[i] = Num(v)
	}
	return tokens
}

func validRecord(id string) Record {
	return Record{
		ID: id,
		Columns: [columnCount][]Token{
			nums(1, 2, 3, 4, 5),
			nums(16, 17, 18, 19, 20),
			nums(31, 32, 0, 34, 35),
			nums(46, 47, 48, 49, 50),
			nums(61, 62, 63, 64, 65),
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	res := Validate(validRecord("1"))

	assert.True(t, res.Valid)
	assert.Equal(t, "Card 1: Valid", res.Message)
	assert.Equal(t, "1", res.ID)
	assert.Equal(t, validRecord("1").Columns, res.Columns)
}

func TestValidate_Scenarios(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(r *Record)
		want   string
	}{
		{
			name:   "center not zero",
			mutate: func(r *Record) { r.Columns[N][2] = Num(33) },
			want:   "Card 1: N center should be 0, got 33",
		},
		{
			name:   "center out of range is still a center error",
			mutate: func(r *Record) { r.Columns[N][2] = Num(99) },
			want:   "Card 1: N center should be 0, got 99",
		},
		{
			name:   "short column",
			mutate: func(r *Record) { r.Columns[B] = nums(1, 2, 3, 4) },
			want:   "Card 1: B: expected 5 numbers, got 4",
		},
		{
			name:   "empty column",
			mutate: func(r *Record) { r.Columns[G] = nil },
			want:   "Card 1: G: expected 5 numbers, got 0",
		},
		{
			name:   "out of range",
			mutate: func(r *Record) { r.Columns[I][0] = Num(31) },
			want:   "Card 1: I: 31 out of range (16-30)",
		},
		{
			name:   "duplicate in column",
			mutate: func(r *Record) { r.Columns[O][4] = Num(61) },
			want:   "Card 1: O: duplicate number 61",
		},
		{
			name:   "out of range and duplicate on same token",
			mutate: func(r *Record) { r.Columns[B] = nums(99, 2, 3, 4, 99) },
			want:   "Card 1: B: 99 out of range (1-15); B: 99 out of range (1-15); B: duplicate number 99",
		},
		{
			name:   "non-numeric",
			mutate: func(r *Record) { r.Columns[G][1] = Invalid() },
			want:   "Card 1: G: non-numeric value",
		},
		{
			name:   "non-numeric center",
			mutate: func(r *Record) { r.Columns[N][2] = Invalid() },
			want:   "Card 1: N: non-numeric value",
		},
		{
			name:   "zero outside the center",
			mutate: func(r *Record) { r.Columns[N][0] = Num(0) },
			want:   "Card 1: N: 0 out of range (31-45)",
		},
		{
			name: "errors across columns accumulate in order",
			mutate: func(r *Record) {
				r.Columns[B] = nums(1, 2)
				r.Columns[N][2] = Num(33)
				r.Columns[O][0] = Num(1)
			},
			want: "Card 1: B: expected 5 numbers, got 2; N center should be 0, got 33; O: 1 out of range (61-75)",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validRecord("1")
			tc.mutate(&r)

			res := Validate(r)

			assert.False(t, res.Valid)
			assert.Equal(t, tc.want, res.Message)
		})
	}
}

func TestValidate_LengthErrorSkipsTokenChecks(t *testing.T) {
	r := validRecord("7")
	r.Columns[I] = []Token{Invalid(), Num(99), Num(99)}

	res := Validate(r)

	require.False(t, res.Valid)
	assert.Equal(t, 1, strings.Count(res.Message, "I:"))
	assert.Contains(t, res.Message, "I: expected 5 numbers, got 3")
	assert.NotContains(t, res.Message, "out of range")
	assert.NotContains(t, res.Message, "duplicate")
	assert.NotContains(t, res.Message, "non-numeric")
}

func TestValidate_ParsedScenarios(t *testing.T) {
	records := ParseTable("Card ID B I N G O\n" +
		"1 1,2,3,4,5 16,17,18,19,20 31,32,33,34,35 46,47,48,49,50 61,62,63,64,65\n" +
		"2 1,2,3,4 16,17,18,19,20 31,32,0,34,35 46,47,48,49,50 61,62,63,64,65")
	require.Len(t, records, 2)

	b := Validate(records[0])
	assert.False(t, b.Valid)
	assert.Contains(t, b.Message, "N center should be 0, got 33")

	d := Validate(records[1])
	assert.False(t, d.Valid)
	assert.Contains(t, d.Message, "B: expected 5 numbers, got 4")
}

func TestRules(t *testing.T) {
	for i, rule := range Rules {
		assert.Equal(t, Column(i), rule.Column)
		assert.Equal(t, rule.Column == N, rule.HasFreeSpace())
	}
	assert.True(t, Rules[B].InRange(1))
	assert.True(t, Rules[B].InRange(15))
	assert.False(t, Rules[B].InRange(16))
}
