package card

import (
	"regexp"
	"strings"
)

// Column indexes the five bingo columns of a card.
type Column int

const (
	B Column = iota
	I
	N
	G
	O
)

const columnCount = 5

func (c Column) String() string {
	return [...]string{"B", "I", "N", "G", "O"}[c]
}

// Record is one data line of the submitted table.
type Record struct {
	ID      string
	Columns [columnCount][]Token
}

func (r Record) Column(c Column) []Token {
	return r.Columns[c]
}

type parseState int

const (
	seekingHeader parseState = iota
	collectingRows
)

// unicodeSpace matches what unicode.IsSpace accepts; RE2's \s is ASCII only.
const unicodeSpace = `\s\v\x{85}\p{Z}`

var (
	headerLine = regexp.MustCompile(`(?i)^card[` + unicodeSpace + `]`)
	lineBreak  = regexp.MustCompile(`\r\n|[\n\r\v\f\x{1c}-\x{1e}\x{85}\x{2028}\x{2029}]`)
)

// ParseTable converts raw text into card records in input order. Lines
// before the header and lines with fewer than six fields are ignored, so
// an input without a usable table yields an empty result.
func ParseTable(text string) []Record {
	var records []Record
	state := seekingHeader

	for _, line := range lineBreak.Split(strings.TrimSpace(text), -1) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if headerLine.MatchString(line) {
			state = collectingRows
			continue
		}
		if state != collectingRows {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 1+columnCount {
			continue
		}

		r := Record{ID: fields[0]}
		for c := range r.Columns {
			r.Columns[c] = ParseCell(fields[1+c])
		}
		records = append(records, r)
	}

	return records
}
