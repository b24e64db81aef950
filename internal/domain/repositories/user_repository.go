package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"luyona.backend/internal/domain/entities"
)

// ListFilter narrows the admin list views
type ListFilter struct {
	// PendingOnly restricts to approval=false (the waitlist) and flips the
	// ordering to oldest-first.
	PendingOnly bool
}

// UserStats are the raw dashboard counts
type UserStats struct {
	Total               int64
	Approved            int64
	Pending             int64
	CompletedOnboarding int64
	WithProfilePic      int64
	RecentRegistrations int64
}

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	// SaveOnboarding writes the core identity fields and unconditionally
	// resets approval to false. The intent document is not touched.
	SaveOnboarding(ctx context.Context, id uuid.UUID, p *entities.OnboardingProfile) error
	// UpdateProfile writes the full profile row back in one statement.
	UpdateProfile(ctx context.Context, user *entities.User) error
	SetApproval(ctx context.Context, id uuid.UUID, approved bool) error
	// Delete hard-deletes the row. Deleting an absent row is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ListFilter) ([]*entities.User, error)
	Stats(ctx context.Context, recentSince time.Time) (*UserStats, error)
}
