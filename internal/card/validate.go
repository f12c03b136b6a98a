package card

import (
	"fmt"
	"strings"
)

// Result is the verdict for one card. Columns are kept for fingerprinting.
type Result struct {
	ID      string
	Columns [columnCount][]Token
	Valid   bool
	Message string
}

type errorList []string

func (e *errorList) addf(format string, args ...any) {
	*e = append(*e, fmt.Sprintf(format, args...))
}

func (e errorList) String() string {
	return strings.Join(e, "; ")
}

// Validate checks every column of r against Rules and reports all
// problems found, not just the first.
func Validate(r Record) Result {
	var errs errorList
	for _, rule := range Rules {
		checkColumn(rule, r.Column(rule.Column), &errs)
	}

	res := Result{ID: r.ID, Columns: r.Columns, Valid: len(errs) == 0}
	if res.Valid {
		res.Message = fmt.Sprintf("Card %s: Valid", r.ID)
	} else {
		res.Message = fmt.Sprintf("Card %s: %s", r.ID, errs)
	}
	return res
}

func checkColumn(rule ColumnRule, tokens []Token, errs *errorList) {
	name := rule.Column
	if len(tokens) != cardSize {
		errs.addf("%s: expected %d numbers, got %d", name, cardSize, len(tokens))
		return
	}

	seen := make(map[int]bool, cardSize)
	for pos, tok := range tokens {
		if !tok.Valid {
			errs.addf("%s: non-numeric value", name)
			continue
		}

		if rule.HasFreeSpace() && pos == rule.FreeSpace {
			if tok.Value != 0 {
				errs.addf("%s center should be 0, got %d", name, tok.Value)
			}
			continue
		}

		if !rule.InRange(tok.Value) {
			errs.addf("%s: %d out of range (%d-%d)", name, tok.Value, rule.Low, rule.High)
		}
		if seen[tok.Value] {
			errs.addf("%s: duplicate number %d", name, tok.Value)
		}
		seen[tok.Value] = true
	}
}
