package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBatch_Scenario(t *testing.T) {
	results, groups := ValidateBatch(ParseTable("Card ID B I N G O\n" + validLine))

	require.Len(t, results, 1)
	assert.True(t, results[0].Valid)
	assert.Equal(t, "Card 1: Valid", results[0].Message)
	assert.Empty(t, groups)
}

func TestValidateBatch_DuplicateValidCards(t *testing.T) {
	results, groups := ValidateBatch([]Record{validRecord("1"), validRecord("2")})

	require.Len(t, results, 2)
	assert.Equal(t, []DuplicateGroup{{"1", "2"}}, groups)
	assert.False(t, results[0].Valid)
	assert.Equal(t, "Valid but Duplicate of card(s) 2", results[0].Message)
	assert.False(t, results[1].Valid)
	assert.Equal(t, "Valid but Duplicate of card(s) 1", results[1].Message)
}

func TestValidateBatch_DuplicateInvalidCards(t *testing.T) {
	bad := func(id string) Record {
		r := validRecord(id)
		r.Columns[N][2] = Invalid()
		return r
	}

	results, groups := ValidateBatch([]Record{bad("a"), validRecord("b"), bad("c"), bad("d")})

	assert.Equal(t, []DuplicateGroup{{"a", "c", "d"}}, groups)
	assert.Equal(t, "Card a: N: non-numeric value; Duplicate of card(s) c, d", results[0].Message)
	assert.True(t, results[1].Valid)
	assert.Equal(t, "Card c: N: non-numeric value; Duplicate of card(s) a, d", results[2].Message)
	assert.Equal(t, "Card d: N: non-numeric value; Duplicate of card(s) a, c", results[3].Message)
}

func TestValidateBatch_GroupOrder(t *testing.T) {
	other := validRecord("x")
	other.Columns[B] = nums(5, 4, 3, 2, 1)
	second := other
	second.ID = "y"

	_, groups := ValidateBatch([]Record{other, validRecord("1"), second, validRecord("2")})

	assert.Equal(t, []DuplicateGroup{{"x", "y"}, {"1", "2"}}, groups)
}

func TestValidateBatch_OrderSensitiveFingerprint(t *testing.T) {
	reordered := validRecord("2")
	reordered.Columns[B] = nums(2, 1, 3, 4, 5)

	results, groups := ValidateBatch([]Record{validRecord("1"), reordered})

	assert.Empty(t, groups)
	assert.True(t, results[0].Valid)
	assert.True(t, results[1].Valid)
}

func TestValidateBatch_SameIDNotListedAsDuplicate(t *testing.T) {
	cases := []struct {
		name   string
		ids    []string
		groups []DuplicateGroup
		want   []string
	}{
		{
			name:   "only same id",
			ids:    []string{"5", "5"},
			groups: []DuplicateGroup{{"5", "5"}},
			want: []string{
				"Valid but Duplicate of card(s) ",
				"Valid but Duplicate of card(s) ",
			},
		},
		{
			name:   "same id among others",
			ids:    []string{"1", "5", "5"},
			groups: []DuplicateGroup{{"1", "5", "5"}},
			want: []string{
				"Valid but Duplicate of card(s) 5, 5",
				"Valid but Duplicate of card(s) 1",
				"Valid but Duplicate of card(s) 1",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			records := make([]Record, len(tc.ids))
			for i, id := range tc.ids {
				records[i] = validRecord(id)
			}

			results, groups := ValidateBatch(records)

			assert.Equal(t, tc.groups, groups)
			require.Len(t, results, len(tc.want))
			for i, want := range tc.want {
				assert.False(t, results[i].Valid)
				assert.Equal(t, want, results[i].Message)
			}
		})
	}
}

func TestValidateBatch_Idempotent(t *testing.T) {
	records := ParseTable("card b i n g o\n" + validLine + "\n" + validLine + "\n2 1 2 3 4 5")

	r1, g1 := ValidateBatch(records)
	r2, g2 := ValidateBatch(records)

	assert.Equal(t, r1, r2)
	assert.Equal(t, g1, g2)
}

func TestDeduplicate_DoesNotMutateInput(t *testing.T) {
	in := []Result{Validate(validRecord("1")), Validate(validRecord("2"))}

	out, _ := Deduplicate(in)

	assert.True(t, in[0].Valid)
	assert.Equal(t, "Card 1: Valid", in[0].Message)
	assert.False(t, out[0].Valid)
}

func TestFingerprintOf(t *testing.T) {
	empty := [columnCount][]Token{}
	withInvalid := [columnCount][]Token{{Invalid()}}
	withZero := [columnCount][]Token{{Num(0)}}

	assert.NotEqual(t, FingerprintOf(empty), FingerprintOf(withInvalid))
	assert.NotEqual(t, FingerprintOf(withInvalid), FingerprintOf(withZero))
	assert.Equal(t, FingerprintOf(validRecord("1").Columns), FingerprintOf(validRecord("2").Columns))
}
