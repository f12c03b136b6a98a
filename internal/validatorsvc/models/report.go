package models

type CardResult struct {
	ID      string `json:"id"`
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// Report is what a caller renders for one submitted batch.
type Report struct {
	TotalCards      int          `json:"total_cards"`
	ValidCount      int          `json:"valid_count"`
	ValidMessages   []string     `json:"valid_messages"`
	InvalidMessages []string     `json:"invalid_messages"`
	DuplicateGroups [][]string   `json:"duplicate_groups"`
	Cards           []CardResult `json:"cards"`
	OriginalText    string       `json:"original_text,omitempty"`
}
