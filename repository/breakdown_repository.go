package repository

import "paycheck-agent/domain"

// BreakdownRepository holds the most recent calculation result.
type BreakdownRepository interface {
	Save(result domain.Breakdown) error
	Latest() (domain.Breakdown, bool)
	Reset()
}
