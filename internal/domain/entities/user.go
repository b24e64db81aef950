package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Place is one entry of a user's ordered travel lists
type Place struct {
	Name    string `json:"name"`
	Details string `json:"details"`
}

// Intent is the optional preference/content sub-record of a profile. It is
// persisted as a JSON document and merged key-wise on partial updates.
type Intent struct {
	Bio                string   `json:"bio,omitempty"`
	Interests          []string `json:"interests,omitempty"`
	TVShow             string   `json:"tvShow,omitempty"`
	Movie              string   `json:"movie,omitempty"`
	WatchList          string   `json:"watchList,omitempty"`
	LifestyleImageURLs []string `json:"lifestyleImageUrls,omitempty"`
	PreferredAgeRange  []int    `json:"preferredAgeRange,omitempty"`
	InterestedGender   string   `json:"interestedGender,omitempty"`
}

// LifestyleImageCount counts the non-empty lifestyle image entries
func (i Intent) LifestyleImageCount() int {
	n := 0
	for _, u := range i.LifestyleImageURLs {
		if u != "" {
			n++
		}
	}
	return n
}

// User represents a user entity
type User struct {
	ID                         uuid.UUID `json:"id"`
	Email                      string    `json:"email"`
	PasswordHash               string    `json:"-"`
	FirstName                  string    `json:"firstName"`
	LastName                   string    `json:"lastName"`
	Gender                     string    `json:"gender"`
	DOB                        null.Time `json:"dob"`
	CurrentLocation            string    `json:"currentLocation"`
	FavouriteTravelDestination string    `json:"favouriteTravelDestination"`
	LastHolidayPlaces          []Place   `json:"lastHolidayPlaces"`
	FavouritePlacesToGo        []Place   `json:"favouritePlacesToGo"`
	ProfilePicURL              string    `json:"profilePicUrl"`
	Intent                     Intent    `json:"intent"`
	OnboardingComplete         bool      `json:"onboardingComplete"`
	Approval                   bool      `json:"approval"`
	IsPrivate                  bool      `json:"isPrivate"`
	CreatedAt                  time.Time `json:"createdAt"`
	UpdatedAt                  time.Time `json:"updatedAt"`
}

// Age derives the user's age from the date of birth at read time.
// Returns nil when no date of birth is set.
func (u *User) Age(now time.Time) *int {
	if !u.DOB.Valid {
		return nil
	}
	age := int(now.Sub(u.DOB.Time).Hours() / (365.25 * 24))
	return &age
}

// ProfileView is the full profile payload with the derived age attached
type ProfileView struct {
	*User
	Age *int `json:"age"`
}
