package handlers

import (
	"context"
	"io"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"luyona.backend/internal/domain/entities"
	domainerrors "luyona.backend/internal/domain/errors"
	"luyona.backend/internal/domain/repositories"
	"luyona.backend/internal/infrastructure/media"
	"luyona.backend/internal/interfaces/http/middleware"
	"luyona.backend/pkg/logger"
)

func init() {
	logger.Init("development")
}

type userRepoStub struct {
	items map[uuid.UUID]*entities.User
	seq   int
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{items: map[uuid.UUID]*entities.User{}}
}

func (s *userRepoStub) add(user *entities.User) *entities.User {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.seq++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(s.seq) * time.Hour)
	}
	s.items[user.ID] = user
	return user
}

func (s *userRepoStub) Create(_ context.Context, user *entities.User) error {
	for _, existing := range s.items {
		if existing.Email == user.Email {
			return domainerrors.ErrAlreadyExists
		}
	}
	s.add(user)
	return nil
}

func (s *userRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, item := range s.items {
		if item.Email == email {
			copied := *item
			return &copied, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) SaveOnboarding(_ context.Context, id uuid.UUID, p *entities.OnboardingProfile) error {
	item, ok := s.items[id]
	if !ok {
		return nil
	}
	item.FirstName = p.FirstName
	item.LastName = p.LastName
	item.Gender = p.Gender
	item.DOB = p.DOB
	item.CurrentLocation = p.CurrentLocation
	item.FavouriteTravelDestination = p.FavouriteTravelDestination
	item.LastHolidayPlaces = p.LastHolidayPlaces
	item.FavouritePlacesToGo = p.FavouritePlacesToGo
	item.ProfilePicURL = p.ProfilePicURL
	item.Approval = false
	return nil
}

func (s *userRepoStub) UpdateProfile(_ context.Context, user *entities.User) error {
	if _, ok := s.items[user.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	copied := *user
	s.items[user.ID] = &copied
	return nil
}

func (s *userRepoStub) SetApproval(_ context.Context, id uuid.UUID, approved bool) error {
	item, ok := s.items[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	item.Approval = approved
	return nil
}

func (s *userRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.items, id)
	return nil
}

func (s *userRepoStub) List(_ context.Context, filter repositories.ListFilter) ([]*entities.User, error) {
	out := make([]*entities.User, 0, len(s.items))
	for _, item := range s.items {
		if filter.PendingOnly && item.Approval {
			continue
		}
		copied := *item
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if filter.PendingOnly {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *userRepoStub) Stats(_ context.Context, recentSince time.Time) (*repositories.UserStats, error) {
	var stats repositories.UserStats
	for _, item := range s.items {
		stats.Total++
		if item.Approval {
			stats.Approved++
		} else {
			stats.Pending++
		}
		if item.OnboardingComplete {
			stats.CompletedOnboarding++
		}
		if item.ProfilePicURL != "" {
			stats.WithProfilePic++
		}
		if !item.CreatedAt.Before(recentSince) {
			stats.RecentRegistrations++
		}
	}
	return &stats, nil
}

type mediaStoreStub struct {
	err    error
	params []media.UploadParams
}

func (s *mediaStoreStub) Upload(_ context.Context, _ io.Reader, params media.UploadParams) (*media.Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.params = append(s.params, params)
	return &media.Result{
		URL:      "https://cdn.test/" + params.Folder + "/" + params.PublicID,
		PublicID: params.Folder + "/" + params.PublicID,
	}, nil
}

// asUser fakes the auth middleware for a fixed caller
func asUser(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Set(middleware.UserEmailKey, "test@mail.com")
		c.Next()
	}
}
