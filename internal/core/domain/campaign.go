package domain

import "time"

// Campaign is a budgeted marketing effort owned by exactly one user.
// Budget is stored in whole currency units. CreatedAt is set by the
// database on insert and never changes afterwards.
type Campaign struct {
	ID          int64
	Title       string
	Description *string
	Budget      int64
	StartDate   time.Time
	EndDate     time.Time
	OwnerID     string
	CreatedAt   time.Time
}
