package profile

import (
	"errors"
	"time"

	"github.com/2fit/fitstreak/internal/streaks"
)

var ErrProfileNotFound = errors.New("profile not found")

// Profile is everything the app shows on the profile screen, streak
// counters included.
type Profile struct {
	OwnerID       string    `json:"ownerId"`
	FullName      string    `json:"fullName"`
	PreferredName string    `json:"preferredName"`
	DateOfBirth   time.Time `json:"dateOfBirth"`
	WeightKG      float64   `json:"weightKg"`
	HeightCM      float64   `json:"heightCm"`
	Gender        string    `json:"gender"`
	Completed     bool      `json:"profileCompleted"`

	streaks.Counters
}

// Update carries the profile fields a PUT wants to change; nil fields stay
// untouched.
type Update struct {
	FullName      *string    `json:"fullName,omitempty"`
	PreferredName *string    `json:"preferredName,omitempty"`
	DateOfBirth   *time.Time `json:"dateOfBirth,omitempty"`
	WeightKG      *float64   `json:"weightKg,omitempty"`
	HeightCM      *float64   `json:"heightCm,omitempty"`
	Gender        *string    `json:"gender,omitempty"`
	Completed     *bool      `json:"profileCompleted,omitempty"`
}

func (u Update) Empty() bool {
	return u.FullName == nil && u.PreferredName == nil && u.DateOfBirth == nil &&
		u.WeightKG == nil && u.HeightCM == nil && u.Gender == nil && u.Completed == nil
}
