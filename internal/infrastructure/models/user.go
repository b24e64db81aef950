package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the persistence model for the users table. The two place lists and
// the intent document are stored as JSON text columns. Rows are hard-deleted.
type User struct {
	ID                         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email                      string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash               string     `gorm:"type:varchar(255);not null"`
	FirstName                  string     `gorm:"type:varchar(100)"`
	LastName                   string     `gorm:"type:varchar(100)"`
	Gender                     string     `gorm:"type:varchar(50)"`
	DOB                        *time.Time `gorm:"column:dob;type:date"`
	CurrentLocation            string     `gorm:"type:varchar(255)"`
	FavouriteTravelDestination string     `gorm:"type:varchar(255)"`
	LastHolidayPlaces          string     `gorm:"type:text"`
	FavouritePlacesToGo        string     `gorm:"type:text"`
	ProfilePicURL              string     `gorm:"column:profile_pic_url;type:text"`
	Intent                     string     `gorm:"type:text"`
	OnboardingComplete         bool       `gorm:"not null;default:false"`
	Approval                   bool       `gorm:"not null;default:false"`
	IsPrivate                  bool       `gorm:"not null;default:false"`
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}
