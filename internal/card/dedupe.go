package card

import "strings"

// Fingerprint is the canonical encoding of a card's five columns. Two
// cards with equal fingerprints have identical column content.
type Fingerprint string

// DuplicateGroup lists the ids of cards sharing one fingerprint.
type DuplicateGroup []string

func FingerprintOf(cols [columnCount][]Token) Fingerprint {
	var sb strings.Builder
	for c, tokens := range cols {
		if c > 0 {
			sb.WriteByte('|')
		}
		for i, t := range tokens {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(t.String())
		}
	}
	return Fingerprint(sb.String())
}

// ValidateBatch validates every record and then marks content duplicates.
func ValidateBatch(records []Record) ([]Result, []DuplicateGroup) {
	results := make([]Result, len(records))
	for i, r := range records {
		results[i] = Validate(r)
	}
	return Deduplicate(results)
}

// Deduplicate groups results by fingerprint and invalidates every member
// of a group with two or more cards. The input slice is left untouched.
func Deduplicate(results []Result) ([]Result, []DuplicateGroup) {
	out := make([]Result, len(results))
	copy(out, results)

	var order []Fingerprint
	members := make(map[Fingerprint][]int)
	for i, r := range out {
		fp := FingerprintOf(r.Columns)
		if _, ok := members[fp]; !ok {
			order = append(order, fp)
		}
		members[fp] = append(members[fp], i)
	}

	var groups []DuplicateGroup
	for _, fp := range order {
		idx := members[fp]
		if len(idx) < 2 {
			continue
		}

		group := make(DuplicateGroup, len(idx))
		for k, i := range idx {
			group[k] = out[i].ID
		}
		groups = append(groups, group)

		for _, i := range idx {
			// cards sharing this card's id are never listed as its duplicates
			others := make([]string, 0, len(idx)-1)
			for _, id := range group {
				if id != out[i].ID {
					others = append(others, id)
				}
			}
			note := "Duplicate of card(s) " + strings.Join(others, ", ")

			if out[i].Valid {
				out[i].Valid = false
				out[i].Message = "Valid but " + note
			} else {
				out[i].Message += "; " + note
			}
		}
	}

	return out, groups
}
