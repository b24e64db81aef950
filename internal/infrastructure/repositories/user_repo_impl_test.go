package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"luyona.backend/internal/domain/entities"
	domainerrors "luyona.backend/internal/domain/errors"
	"luyona.backend/internal/domain/repositories"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entities.User{Email: "a@mail.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID, "id assigned on create")

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@mail.com", got.Email)
	assert.False(t, got.Approval)
	assert.False(t, got.OnboardingComplete)
	assert.Empty(t, got.LastHolidayPlaces)

	byEmail, err := repo.GetByEmail(ctx, "a@mail.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "nobody@mail.com")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.User{Email: "a@mail.com", PasswordHash: "h"}))
	err := repo.Create(ctx, &entities.User{Email: "a@mail.com", PasswordHash: "h"})
	assert.Error(t, err)
}

func TestUserRepository_SaveOnboardingResetsApproval(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entities.User{Email: "a@mail.com", PasswordHash: "h"}
	require.NoError(t, repo.Create(ctx, user))
	require.NoError(t, repo.SetApproval(ctx, user.ID, true))

	dob := time.Date(1995, 4, 2, 0, 0, 0, 0, time.UTC)
	profile := &entities.OnboardingProfile{
		FirstName:                  "Ada",
		LastName:                   "L",
		Gender:                     "female",
		DOB:                        null.TimeFrom(dob),
		CurrentLocation:            "Lagos",
		FavouriteTravelDestination: "Lisbon",
		LastHolidayPlaces:          []entities.Place{{Name: "Accra", Details: "beach"}},
		FavouritePlacesToGo:        []entities.Place{{Name: "Kyoto"}},
		ProfilePicURL:              "https://img/ada.jpg",
	}
	require.NoError(t, repo.SaveOnboarding(ctx, user.ID, profile))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.FirstName)
	assert.True(t, got.DOB.Valid)
	assert.Equal(t, []entities.Place{{Name: "Accra", Details: "beach"}}, got.LastHolidayPlaces)
	assert.False(t, got.Approval, "onboarding save puts the user back in review")
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entities.User{Email: "a@mail.com", PasswordHash: "h"}
	require.NoError(t, repo.Create(ctx, user))

	user.FirstName = "Ada"
	user.Intent = entities.Intent{Bio: "hello", Interests: []string{"travel"}}
	user.OnboardingComplete = true
	require.NoError(t, repo.UpdateProfile(ctx, user))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.FirstName)
	assert.Equal(t, "hello", got.Intent.Bio)
	assert.True(t, got.OnboardingComplete)

	missing := &entities.User{ID: uuid.New()}
	assert.ErrorIs(t, repo.UpdateProfile(ctx, missing), domainerrors.ErrNotFound)
}

func TestUserRepository_SetApproval(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entities.User{Email: "a@mail.com", PasswordHash: "h"}
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, repo.SetApproval(ctx, user.ID, true))
	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, got.Approval)

	assert.ErrorIs(t, repo.SetApproval(ctx, uuid.New(), true), domainerrors.ErrNotFound)
}

func TestUserRepository_DeleteIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entities.User{Email: "a@mail.com", PasswordHash: "h"}
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, repo.Delete(ctx, user.ID))
	_, err := repo.GetByID(ctx, user.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, user.ID), "deleting an absent row succeeds")
}

func TestUserRepository_ListOrdering(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, email := range []string{"first@mail.com", "second@mail.com", "third@mail.com"} {
		id := uuid.New()
		mustExec(t, db, `INSERT INTO users (id, email, password_hash, approval, onboarding_complete, is_private, created_at, updated_at)
			VALUES (?, ?, 'h', ?, false, false, ?, ?)`,
			id, email, email == "second@mail.com", base.Add(time.Duration(i)*time.Hour), base)
	}

	all, err := repo.List(ctx, repositories.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third@mail.com", all[0].Email, "newest first")
	assert.Equal(t, "first@mail.com", all[2].Email)

	pending, err := repo.List(ctx, repositories.ListFilter{PendingOnly: true})
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "first@mail.com", pending[0].Email, "waitlist is oldest first")
	assert.Equal(t, "third@mail.com", pending[1].Email)
}

func TestUserRepository_Stats(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	now := time.Now()
	rows := []struct {
		email     string
		approved  bool
		onboarded bool
		pic       string
		createdAt time.Time
	}{
		{"a@mail.com", true, true, "https://img/a.jpg", now},
		{"b@mail.com", false, true, "", now.Add(-10 * 24 * time.Hour)},
		{"c@mail.com", false, false, "", now},
	}
	for _, row := range rows {
		mustExec(t, db, `INSERT INTO users (id, email, password_hash, approval, onboarding_complete, is_private, profile_pic_url, created_at, updated_at)
			VALUES (?, ?, 'h', ?, ?, false, ?, ?, ?)`,
			uuid.New(), row.email, row.approved, row.onboarded, row.pic, row.createdAt, row.createdAt)
	}

	stats, err := repo.Stats(ctx, now.Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(1), stats.Approved)
	assert.Equal(t, int64(2), stats.Pending)
	assert.Equal(t, int64(2), stats.CompletedOnboarding)
	assert.Equal(t, int64(1), stats.WithProfilePic)
	assert.Equal(t, int64(2), stats.RecentRegistrations)
}

func TestUserRepository_CorruptStoredJSONDegradesToEmpty(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	id := uuid.New()
	mustExec(t, db, `INSERT INTO users (id, email, password_hash, last_holiday_places, favourite_places_to_go, intent, approval, onboarding_complete, is_private, created_at, updated_at)
		VALUES (?, 'a@mail.com', 'h', '{broken', 'also broken', '[not intent', false, false, false, ?, ?)`,
		id, time.Now(), time.Now())

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err, "corrupt stored JSON must not fail the read")
	assert.Empty(t, got.LastHolidayPlaces)
	assert.Empty(t, got.FavouritePlacesToGo)
	assert.Equal(t, entities.Intent{}, got.Intent)
}
