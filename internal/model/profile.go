package model

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidGender = errors.New("model: invalid gender")

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	default:
		return false
	}
}

// Profile holds the user fields the engine consumes. Gender only gates
// whether the cycle model runs at all.
type Profile struct {
	Gender        Gender
	CycleTracking bool
}

// CycleModelApplies reports whether the cycle model should run for this
// profile.
func (p Profile) CycleModelApplies() bool {
	return p.Gender == GenderFemale && p.CycleTracking
}

func (p Profile) Validate() error {
	if !p.Gender.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidGender, p.Gender)
	}
	if p.CycleTracking && p.Gender != GenderFemale {
		return errors.New("model: cycle tracking requires a female profile")
	}
	return nil
}

// Settings is the explicit parameter object the host passes into the engine
// loop. The scoring logic itself never reads these; they drive refresh
// cadence and notification routing only.
type Settings struct {
	Theme           string
	Notifications   bool
	RefreshInterval time.Duration
}

func (s Settings) Validate() error {
	if s.RefreshInterval <= 0 {
		return errors.New("model: refresh interval must be positive")
	}
	return nil
}
