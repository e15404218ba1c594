package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrJobIncomplete  = errors.New("job is missing required fields")
	ErrNotPublished   = errors.New("job is not published")
	ErrAlreadyApplied = errors.New("already applied to this job")
	ErrNoChanges      = errors.New("no fields to update")
)

// notFound maps gorm's missing-row error onto ErrNotFound.
func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return err
}
