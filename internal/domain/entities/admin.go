package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// AdminUserSummary is the per-user row of the admin list views, annotated
// with the derived review signals.
type AdminUserSummary struct {
	ID                  uuid.UUID `json:"id"`
	Email               string    `json:"email"`
	FirstName           string    `json:"firstName"`
	LastName            string    `json:"lastName"`
	Gender              string    `json:"gender"`
	DOB                 null.Time `json:"dob"`
	ProfilePicURL       string    `json:"profilePicUrl"`
	Intent              Intent    `json:"intent"`
	OnboardingComplete  bool      `json:"onboardingComplete"`
	Approval            bool      `json:"approval"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
	Age                 *int      `json:"age"`
	HasProfilePic       bool      `json:"hasProfilePic"`
	HasLifestyleImages  bool      `json:"hasLifestyleImages"`
	LifestyleImageCount int       `json:"lifestyleImageCount"`
}

// AdminUserDetail extends the summary with the travel-history lists
type AdminUserDetail struct {
	AdminUserSummary
	CurrentLocation            string  `json:"currentLocation"`
	FavouriteTravelDestination string  `json:"favouriteTravelDestination"`
	LastHolidayPlaces          []Place `json:"lastHolidayPlaces"`
	FavouritePlacesToGo        []Place `json:"favouritePlacesToGo"`
}

// AdminUserList is the aggregate list view with its headline counts
type AdminUserList struct {
	Users               []AdminUserSummary `json:"users"`
	Total               int                `json:"total"`
	Approved            int                `json:"approved"`
	Pending             int                `json:"pending"`
	CompletedOnboarding int                `json:"completedOnboarding"`
}

// DashboardStats is the admin dashboard aggregate
type DashboardStats struct {
	TotalUsers          int64   `json:"totalUsers"`
	ApprovedUsers       int64   `json:"approvedUsers"`
	PendingUsers        int64   `json:"pendingUsers"`
	CompletedOnboarding int64   `json:"completedOnboarding"`
	UsersWithProfilePic int64   `json:"usersWithProfilePic"`
	RecentRegistrations int64   `json:"recentRegistrations"`
	ApprovalRate        float64 `json:"approvalRate"`
}
