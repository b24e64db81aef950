package entities

import (
	"github.com/volatiletech/null/v8"
)

// RegisterInput represents input for account creation
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginInput represents input for login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// OnboardingInput is the first-time profile save submitted at the end of the
// onboarding flow. Every core field is written as supplied; the intent
// document is left untouched.
type OnboardingInput struct {
	FirstName                  string  `json:"firstName"`
	LastName                   string  `json:"lastName"`
	Gender                     string  `json:"gender"`
	DOB                        string  `json:"dob"`
	CurrentLocation            string  `json:"currentLocation"`
	FavouriteTravelDestination string  `json:"favouriteTravelDestination"`
	LastHolidayPlaces          []Place `json:"lastHolidayPlaces"`
	FavouritePlacesToGo        []Place `json:"favouritePlacesToGo"`
	ProfilePicURL              string  `json:"profilePicUrl"`
}

// OnboardingProfile is the parsed form of an onboarding save, ready for
// persistence. Saving it always resets approval to false.
type OnboardingProfile struct {
	FirstName                  string
	LastName                   string
	Gender                     string
	DOB                        null.Time
	CurrentLocation            string
	FavouriteTravelDestination string
	LastHolidayPlaces          []Place
	FavouritePlacesToGo        []Place
	ProfilePicURL              string
}

// IntentInput is a partial intent update. A set field overwrites the stored
// value, including explicitly empty ones; an absent field is preserved.
type IntentInput struct {
	Bio                null.String `json:"bio"`
	Interests          *[]string   `json:"interests"`
	TVShow             null.String `json:"tvShow"`
	Movie              null.String `json:"movie"`
	WatchList          null.String `json:"watchList"`
	LifestyleImageURLs *[]string   `json:"lifestyleImageUrls"`
	PreferredAgeRange  *[]int      `json:"preferredAgeRange"`
	InterestedGender   null.String `json:"interestedGender"`
}

// ApplyTo merges the supplied intent keys into cur, key-wise and shallow
func (in *IntentInput) ApplyTo(cur *Intent) {
	if in == nil {
		return
	}
	if in.Bio.Valid {
		cur.Bio = in.Bio.String
	}
	if in.Interests != nil {
		cur.Interests = *in.Interests
	}
	if in.TVShow.Valid {
		cur.TVShow = in.TVShow.String
	}
	if in.Movie.Valid {
		cur.Movie = in.Movie.String
	}
	if in.WatchList.Valid {
		cur.WatchList = in.WatchList.String
	}
	if in.LifestyleImageURLs != nil {
		cur.LifestyleImageURLs = *in.LifestyleImageURLs
	}
	if in.PreferredAgeRange != nil {
		cur.PreferredAgeRange = *in.PreferredAgeRange
	}
	if in.InterestedGender.Valid {
		cur.InterestedGender = in.InterestedGender.String
	}
}

// UpdateProfileInput is a partial profile update. Scalar fields use null
// wrappers so an explicit falsy value overwrites while an absent field falls
// back to the stored value; the two place lists are replaced whole when
// supplied, never merged per item.
type UpdateProfileInput struct {
	FirstName                  null.String  `json:"firstName"`
	LastName                   null.String  `json:"lastName"`
	Gender                     null.String  `json:"gender"`
	DOB                        null.String  `json:"dob"`
	CurrentLocation            null.String  `json:"currentLocation"`
	FavouriteTravelDestination null.String  `json:"favouriteTravelDestination"`
	LastHolidayPlaces          *[]Place     `json:"lastHolidayPlaces"`
	FavouritePlacesToGo        *[]Place     `json:"favouritePlacesToGo"`
	ProfilePicURL              null.String  `json:"profilePicUrl"`
	Intent                     *IntentInput `json:"intent"`
	OnboardingComplete         null.Bool    `json:"onboardingComplete"`
	IsPrivate                  null.Bool    `json:"isPrivate"`
}
