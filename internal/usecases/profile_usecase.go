package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"luyona.backend/internal/domain/entities"
	domainerrors "luyona.backend/internal/domain/errors"
	"luyona.backend/internal/domain/repositories"
)

// dobLayout is the wire format for dates of birth
const dobLayout = "2006-01-02"

// ProfileUsecase handles profile reads, the onboarding save and partial
// profile updates.
type ProfileUsecase struct {
	userRepo repositories.UserRepository
	now      func() time.Time
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(userRepo repositories.UserRepository) *ProfileUsecase {
	return &ProfileUsecase{
		userRepo: userRepo,
		now:      time.Now,
	}
}

// GetProfile returns the caller's full profile with the derived age attached
func (u *ProfileUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entities.ProfileView, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &entities.ProfileView{User: user, Age: user.Age(u.now())}, nil
}

// SaveOnboarding persists the first-time profile capture. Every core field is
// written exactly as supplied, and approval is reset so the account re-enters
// review even when re-submitted by an already approved user.
func (u *ProfileUsecase) SaveOnboarding(ctx context.Context, userID uuid.UUID, input *entities.OnboardingInput) error {
	profile := &entities.OnboardingProfile{
		FirstName:                  input.FirstName,
		LastName:                   input.LastName,
		Gender:                     input.Gender,
		CurrentLocation:            input.CurrentLocation,
		FavouriteTravelDestination: input.FavouriteTravelDestination,
		LastHolidayPlaces:          input.LastHolidayPlaces,
		FavouritePlacesToGo:        input.FavouritePlacesToGo,
		ProfilePicURL:              input.ProfilePicURL,
	}
	if input.DOB != "" {
		dob, err := time.Parse(dobLayout, input.DOB)
		if err != nil {
			return domainerrors.BadRequest("invalid date of birth")
		}
		profile.DOB = null.TimeFrom(dob)
	}
	return u.userRepo.SaveOnboarding(ctx, userID, profile)
}

// UpdateProfile applies a partial update over the stored profile. A field
// that is present in the request overwrites the stored value, including
// explicit empty strings and false; an absent field keeps the stored value.
// The place lists are replaced whole when supplied, and the intent document
// is merged key-wise. An empty dob string keeps the stored date.
func (u *ProfileUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.FirstName.Valid {
		user.FirstName = input.FirstName.String
	}
	if input.LastName.Valid {
		user.LastName = input.LastName.String
	}
	if input.Gender.Valid {
		user.Gender = input.Gender.String
	}
	if input.DOB.Valid && input.DOB.String != "" {
		dob, err := time.Parse(dobLayout, input.DOB.String)
		if err != nil {
			return nil, domainerrors.BadRequest("invalid date of birth")
		}
		user.DOB = null.TimeFrom(dob)
	}
	if input.CurrentLocation.Valid {
		user.CurrentLocation = input.CurrentLocation.String
	}
	if input.FavouriteTravelDestination.Valid {
		user.FavouriteTravelDestination = input.FavouriteTravelDestination.String
	}
	if input.LastHolidayPlaces != nil {
		user.LastHolidayPlaces = *input.LastHolidayPlaces
	}
	if input.FavouritePlacesToGo != nil {
		user.FavouritePlacesToGo = *input.FavouritePlacesToGo
	}
	if input.ProfilePicURL.Valid {
		user.ProfilePicURL = input.ProfilePicURL.String
	}
	input.Intent.ApplyTo(&user.Intent)
	if input.OnboardingComplete.Valid {
		user.OnboardingComplete = input.OnboardingComplete.Bool
	}
	if input.IsPrivate.Valid {
		user.IsPrivate = input.IsPrivate.Bool
	}

	if err := u.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
