package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"luyona.backend/internal/domain/entities"
	domainerrors "luyona.backend/internal/domain/errors"
	"luyona.backend/internal/domain/repositories"
	"luyona.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations on GORM
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user row
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m := &models.User{
		ID:                  user.ID,
		Email:               user.Email,
		PasswordHash:        user.PasswordHash,
		LastHolidayPlaces:   encodePlaces(user.LastHolidayPlaces),
		FavouritePlacesToGo: encodePlaces(user.FavouritePlacesToGo),
		Intent:              encodeIntent(user.Intent),
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toEntity(&m), nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toEntity(&m), nil
}

// SaveOnboarding writes the core identity fields and resets approval to
// false, leaving the intent document alone.
func (r *UserRepository) SaveOnboarding(ctx context.Context, id uuid.UUID, p *entities.OnboardingProfile) error {
	updates := map[string]interface{}{
		"first_name":                   p.FirstName,
		"last_name":                    p.LastName,
		"gender":                       p.Gender,
		"dob":                          p.DOB.Ptr(),
		"current_location":             p.CurrentLocation,
		"favourite_travel_destination": p.FavouriteTravelDestination,
		"last_holiday_places":          encodePlaces(p.LastHolidayPlaces),
		"favourite_places_to_go":       encodePlaces(p.FavouritePlacesToGo),
		"profile_pic_url":              p.ProfilePicURL,
		"approval":                     false,
		"updated_at":                   time.Now(),
	}

	return r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates).Error
}

// UpdateProfile writes the full profile row back in a single statement
func (r *UserRepository) UpdateProfile(ctx context.Context, user *entities.User) error {
	updates := map[string]interface{}{
		"first_name":                   user.FirstName,
		"last_name":                    user.LastName,
		"gender":                       user.Gender,
		"dob":                          user.DOB.Ptr(),
		"current_location":             user.CurrentLocation,
		"favourite_travel_destination": user.FavouriteTravelDestination,
		"last_holiday_places":          encodePlaces(user.LastHolidayPlaces),
		"favourite_places_to_go":       encodePlaces(user.FavouritePlacesToGo),
		"profile_pic_url":              user.ProfilePicURL,
		"intent":                       encodeIntent(user.Intent),
		"onboarding_complete":          user.OnboardingComplete,
		"is_private":                   user.IsPrivate,
		"updated_at":                   time.Now(),
	}

	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", user.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SetApproval flips the approval gate for a user
func (r *UserRepository) SetApproval(ctx context.Context, id uuid.UUID, approved bool) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{"approval": approved, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete hard-deletes a user row. A missing row is not reported.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().Delete(&models.User{}, "id = ?", id).Error
}

// List lists users, newest first; the waitlist variant restricts to pending
// users oldest first.
func (r *UserRepository) List(ctx context.Context, filter repositories.ListFilter) ([]*entities.User, error) {
	query := r.db.WithContext(ctx)
	if filter.PendingOnly {
		query = query.Where("approval = ?", false).Order("created_at ASC")
	} else {
		query = query.Order("created_at DESC")
	}

	var userModels []models.User
	if err := query.Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, toEntity(&userModels[i]))
	}
	return users, nil
}

// Stats computes the dashboard counts
func (r *UserRepository) Stats(ctx context.Context, recentSince time.Time) (*repositories.UserStats, error) {
	var s repositories.UserStats

	counts := []struct {
		dest  *int64
		scope func(*gorm.DB) *gorm.DB
	}{
		{&s.Total, func(q *gorm.DB) *gorm.DB { return q }},
		{&s.Approved, func(q *gorm.DB) *gorm.DB { return q.Where("approval = ?", true) }},
		{&s.Pending, func(q *gorm.DB) *gorm.DB { return q.Where("approval = ?", false) }},
		{&s.CompletedOnboarding, func(q *gorm.DB) *gorm.DB { return q.Where("onboarding_complete = ?", true) }},
		{&s.WithProfilePic, func(q *gorm.DB) *gorm.DB {
			return q.Where("profile_pic_url IS NOT NULL AND profile_pic_url <> ''")
		}},
		{&s.RecentRegistrations, func(q *gorm.DB) *gorm.DB { return q.Where("created_at >= ?", recentSince) }},
	}

	for _, c := range counts {
		q := c.scope(r.db.WithContext(ctx).Model(&models.User{}))
		if err := q.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return &s, nil
}

func toEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:                         m.ID,
		Email:                      m.Email,
		PasswordHash:               m.PasswordHash,
		FirstName:                  m.FirstName,
		LastName:                   m.LastName,
		Gender:                     m.Gender,
		DOB:                        null.TimeFromPtr(m.DOB),
		CurrentLocation:            m.CurrentLocation,
		FavouriteTravelDestination: m.FavouriteTravelDestination,
		LastHolidayPlaces:          decodePlaces(m.LastHolidayPlaces),
		FavouritePlacesToGo:        decodePlaces(m.FavouritePlacesToGo),
		ProfilePicURL:              m.ProfilePicURL,
		Intent:                     decodeIntent(m.Intent),
		OnboardingComplete:         m.OnboardingComplete,
		Approval:                   m.Approval,
		IsPrivate:                  m.IsPrivate,
		CreatedAt:                  m.CreatedAt,
		UpdatedAt:                  m.UpdatedAt,
	}
}

// decodePlaces is a safe parse: malformed stored JSON degrades to an empty
// list instead of surfacing an error. Several read paths rely on this.
func decodePlaces(raw string) []entities.Place {
	if raw == "" {
		return []entities.Place{}
	}
	var places []entities.Place
	if err := json.Unmarshal([]byte(raw), &places); err != nil {
		return []entities.Place{}
	}
	if places == nil {
		return []entities.Place{}
	}
	return places
}

// decodeIntent degrades malformed stored JSON to an empty document
func decodeIntent(raw string) entities.Intent {
	if raw == "" {
		return entities.Intent{}
	}
	var intent entities.Intent
	if err := json.Unmarshal([]byte(raw), &intent); err != nil {
		return entities.Intent{}
	}
	return intent
}

func encodePlaces(places []entities.Place) string {
	if places == nil {
		places = []entities.Place{}
	}
	raw, _ := json.Marshal(places)
	return string(raw)
}

func encodeIntent(intent entities.Intent) string {
	raw, _ := json.Marshal(intent)
	return string(raw)
}
