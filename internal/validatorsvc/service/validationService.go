package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/avvvet/bingo-validator/internal/card"
	"github.com/avvvet/bingo-validator/internal/validatorsvc/models"
	log "github.com/sirupsen/logrus"
)

var (
	ErrNoInput = errors.New("Please paste data or upload a file.")
	ErrNoCards = errors.New(`No valid card data found. Check that the header line starts with "card".`)
)

type ValidationService struct{}

func NewValidationService() *ValidationService {
	return &ValidationService{}
}

// Validate parses text as a card table and validates the whole batch.
// Bad card data is reported in the Report, never as an error.
func (s *ValidationService) Validate(ctx context.Context, text string) (*models.Report, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoInput
	}

	start := time.Now()
	records := card.ParseTable(text)
	if len(records) == 0 {
		return nil, ErrNoCards
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results, groups := card.ValidateBatch(records)
	report := buildReport(results, groups)
	report.OriginalText = text

	log.WithFields(log.Fields{
		"cards":      report.TotalCards,
		"valid":      report.ValidCount,
		"duplicates": len(groups),
		"took":       time.Since(start),
	}).Info("card batch validated")

	return report, nil
}

func buildReport(results []card.Result, groups []card.DuplicateGroup) *models.Report {
	report := &models.Report{
		TotalCards:      len(results),
		ValidMessages:   []string{},
		InvalidMessages: []string{},
		DuplicateGroups: make([][]string, 0, len(groups)),
		Cards:           make([]models.CardResult, 0, len(results)),
	}

	for _, r := range results {
		report.Cards = append(report.Cards, models.CardResult{
			ID:      r.ID,
			Valid:   r.Valid,
			Message: r.Message,
		})
		if r.Valid {
			report.ValidCount++
			report.ValidMessages = append(report.ValidMessages, r.Message)
		} else {
			report.InvalidMessages = append(report.InvalidMessages, r.Message)
		}
	}

	for _, g := range groups {
		report.DuplicateGroups = append(report.DuplicateGroups, []string(g))
	}

	return report
}
