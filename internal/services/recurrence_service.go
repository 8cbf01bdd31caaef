package services

import (
	"time"

	"github.com/shopspring/decimal"

	"walletmate/internal/config"
	"walletmate/internal/logger"
	"walletmate/internal/models"
	"walletmate/internal/store"
	"walletmate/internal/uuid"
)

// recurrenceService rolls recurring budgets forward when asked to.
type recurrenceService struct {
	store  *store.Store
	policy config.RecurrencePolicy
}

// NewRecurrenceService creates a new RecurrenceServicer. With
// config.RecurrenceAlways every check appends one occurrence per active
// lineage; with config.RecurrenceDue it appends only once the occurrence date
// has been reached.
func NewRecurrenceService(st *store.Store, policy config.RecurrencePolicy) RecurrenceServicer {
	if policy == "" {
		policy = config.RecurrenceAlways
	}
	return &recurrenceService{store: st, policy: policy}
}

// CheckAndRollForward appends the next occurrence of every recurring budget.
// Occurrences are new budgets that share the source's category and amount,
// start with nothing spent, and do not recur themselves. A source whose
// remaining duration has reached zero is kept but emits nothing further.
func (s *recurrenceService) CheckAndRollForward(now time.Time) (*RolloverResult, error) {
	result := &RolloverResult{Created: []models.Budget{}}

	err := s.store.Transaction(func(tx *store.Store) error {
		budgets, err := loadBudgets(tx)
		if err != nil {
			return err
		}

		var created []models.Budget
		for i := range budgets {
			source := &budgets[i]
			if !source.IsRolloverSource() {
				continue
			}
			if source.RecurrenceDuration != nil && *source.RecurrenceDuration <= 0 {
				continue
			}

			next := NextOccurrence(source.Date, source.RecurrenceType, source.Occurrences+1)
			if s.policy == config.RecurrenceDue && next.After(now) {
				continue
			}

			created = append(created, models.Budget{
				ID:             uuid.New(),
				Category:       source.Category,
				Amount:         source.Amount,
				SpentAmount:    decimal.Zero,
				Date:           next,
				RecurrenceType: models.RecurrenceNone,
				SourceID:       source.ID,
			})

			source.Occurrences++
			if source.RecurrenceDuration != nil {
				remaining := *source.RecurrenceDuration - 1
				source.RecurrenceDuration = &remaining
			}
		}

		if len(created) > 0 {
			budgets = append(budgets, created...)
			if err := saveBudgets(tx, budgets); err != nil {
				return err
			}
			result.Created = created
		}
		result.Budgets = budgets
		return nil
	})
	if err != nil {
		return nil, storageErr(err)
	}

	logger.Get().Infow("recurrence check complete",
		"policy", s.policy,
		"created", len(result.Created),
		"budgets", len(result.Budgets),
	)
	return result, nil
}

// NextOccurrence returns the date of the nth occurrence after start for the
// given recurrence. Month-based intervals clamp to the last day of the target
// month, so Jan 31 plus one month is the last day of February.
func NextOccurrence(start time.Time, recurrence models.RecurrenceType, n int) time.Time {
	switch recurrence {
	case models.RecurrenceDaily:
		return start.AddDate(0, 0, n)
	case models.RecurrenceWeekly:
		return start.AddDate(0, 0, 7*n)
	case models.RecurrenceMonthly:
		return addMonthsClamped(start, n)
	case models.RecurrenceQuarterly:
		return addMonthsClamped(start, 3*n)
	case models.RecurrenceAnnually:
		return addMonthsClamped(start, 12*n)
	default:
		return start
	}
}

func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := time.Date(firstOfTarget.Year(), firstOfTarget.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
