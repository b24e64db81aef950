package usecases

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"luyona.backend/internal/domain/entities"
	"luyona.backend/internal/domain/repositories"
	"luyona.backend/pkg/logger"
)

// recentWindow bounds the dashboard's recent-registrations count
const recentWindow = 7 * 24 * time.Hour

const dashboardCacheKey = "admin:dashboard"

// StatsCacheStore caches the dashboard aggregate between requests
type StatsCacheStore interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Put(ctx context.Context, key string, value interface{}) error
}

// AdminUsecase handles the review workflow and aggregate views
type AdminUsecase struct {
	userRepo   repositories.UserRepository
	statsCache StatsCacheStore
	now        func() time.Time
}

// NewAdminUsecase creates a new admin usecase. statsCache may be nil, in
// which case every dashboard read hits the database.
func NewAdminUsecase(userRepo repositories.UserRepository, statsCache StatsCacheStore) *AdminUsecase {
	return &AdminUsecase{
		userRepo:   userRepo,
		statsCache: statsCache,
		now:        time.Now,
	}
}

// ListUsers returns every user, newest first, with the review annotations
// and the headline counts.
func (u *AdminUsecase) ListUsers(ctx context.Context) (*entities.AdminUserList, error) {
	users, err := u.userRepo.List(ctx, repositories.ListFilter{})
	if err != nil {
		return nil, err
	}

	list := &entities.AdminUserList{
		Users: make([]entities.AdminUserSummary, 0, len(users)),
		Total: len(users),
	}
	for _, user := range users {
		if user.Approval {
			list.Approved++
		} else {
			list.Pending++
		}
		if user.OnboardingComplete {
			list.CompletedOnboarding++
		}
		list.Users = append(list.Users, u.annotate(user))
	}
	return list, nil
}

// Waitlist returns the unapproved users, oldest first
func (u *AdminUsecase) Waitlist(ctx context.Context) ([]entities.AdminUserSummary, error) {
	users, err := u.userRepo.List(ctx, repositories.ListFilter{PendingOnly: true})
	if err != nil {
		return nil, err
	}

	out := make([]entities.AdminUserSummary, 0, len(users))
	for _, user := range users {
		out = append(out, u.annotate(user))
	}
	return out, nil
}

// GetUserDetail returns one user's full review view
func (u *AdminUsecase) GetUserDetail(ctx context.Context, userID uuid.UUID) (*entities.AdminUserDetail, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &entities.AdminUserDetail{
		AdminUserSummary:           u.annotate(user),
		CurrentLocation:            user.CurrentLocation,
		FavouriteTravelDestination: user.FavouriteTravelDestination,
		LastHolidayPlaces:          user.LastHolidayPlaces,
		FavouritePlacesToGo:        user.FavouritePlacesToGo,
	}, nil
}

// SetApproval flips a user's approval flag
func (u *AdminUsecase) SetApproval(ctx context.Context, userID uuid.UUID, approved bool) error {
	return u.userRepo.SetApproval(ctx, userID, approved)
}

// DashboardStats returns the dashboard aggregate. The approval rate is the
// approved share of all users rounded to one decimal, and 0 when there are
// no users at all. Results are served from the cache when one is configured.
func (u *AdminUsecase) DashboardStats(ctx context.Context) (*entities.DashboardStats, error) {
	if u.statsCache != nil {
		var cached entities.DashboardStats
		hit, err := u.statsCache.Get(ctx, dashboardCacheKey, &cached)
		if err != nil {
			logger.Warn(ctx, "dashboard cache read failed", zap.Error(err))
		}
		if hit {
			return &cached, nil
		}
	}

	raw, err := u.userRepo.Stats(ctx, u.now().Add(-recentWindow))
	if err != nil {
		return nil, err
	}

	stats := &entities.DashboardStats{
		TotalUsers:          raw.Total,
		ApprovedUsers:       raw.Approved,
		PendingUsers:        raw.Pending,
		CompletedOnboarding: raw.CompletedOnboarding,
		UsersWithProfilePic: raw.WithProfilePic,
		RecentRegistrations: raw.RecentRegistrations,
	}
	if raw.Total > 0 {
		rate := float64(raw.Approved) / float64(raw.Total) * 100
		stats.ApprovalRate = math.Round(rate*10) / 10
	}

	if u.statsCache != nil {
		if err := u.statsCache.Put(ctx, dashboardCacheKey, stats); err != nil {
			logger.Warn(ctx, "dashboard cache write failed", zap.Error(err))
		}
	}
	return stats, nil
}

// annotate derives the per-user review signals
func (u *AdminUsecase) annotate(user *entities.User) entities.AdminUserSummary {
	count := user.Intent.LifestyleImageCount()
	return entities.AdminUserSummary{
		ID:                  user.ID,
		Email:               user.Email,
		FirstName:           user.FirstName,
		LastName:            user.LastName,
		Gender:              user.Gender,
		DOB:                 user.DOB,
		ProfilePicURL:       user.ProfilePicURL,
		Intent:              user.Intent,
		OnboardingComplete:  user.OnboardingComplete,
		Approval:            user.Approval,
		CreatedAt:           user.CreatedAt,
		UpdatedAt:           user.UpdatedAt,
		Age:                 user.Age(u.now()),
		HasProfilePic:       user.ProfilePicURL != "",
		HasLifestyleImages:  count > 0,
		LifestyleImageCount: count,
	}
}
