// Package entities contains core business entities.
package entities

import (
	"fmt"
	"math"
	"time"
)

// Gender enumerates player genders.
type Gender string

const (
	// GenderMale marks a male player.
	GenderMale Gender = "male"
	// GenderFemale marks a female player.
	GenderFemale Gender = "female"
)

// Level enumerates skill tiers.
type Level string

const (
	// LevelCasual is the entry tier.
	LevelCasual Level = "casual"
	// LevelIntermediate is the middle tier.
	LevelIntermediate Level = "intermediate"
	// LevelPro is the advanced tier.
	LevelPro Level = "pro"
	// LevelCaptain is the top tier.
	LevelCaptain Level = "captain"
)

// MVPThreshold is the overall rating at which a player earns the MVP badge.
const MVPThreshold = 4.8

const (
	skillMin = 1
	skillMax = 5
)

// Skills is the six-part skill vector, each rating in 1..5.
type Skills struct {
	Attack    int
	Defense   int
	Reception int
	Setting   int
	Serve     int
	Block     int
}

// Validate checks every skill rating is within 1..5.
func (s Skills) Validate() error {
	for _, v := range []int{s.Attack, s.Defense, s.Reception, s.Setting, s.Serve, s.Block} {
		if v < skillMin || v > skillMax {
			return fmt.Errorf("%w: skill ratings must be between %d and %d", ErrInvalidArgument, skillMin, skillMax)
		}
	}
	return nil
}

// Overall returns the arithmetic mean of the skill vector rounded to one decimal.
func (s Skills) Overall() float64 {
	sum := s.Attack + s.Defense + s.Reception + s.Setting + s.Serve + s.Block
	return math.Round(float64(sum)/6*10) / 10
}

// Player is a domain model of a roster member.
type Player struct {
	ID        string
	OwnerID   string
	Name      string
	Gender    Gender
	Level     Level
	Rating    float64
	MVP       bool
	AvatarURL string
	Skills    Skills
	CreatedAt *time.Time
}

// DeriveRating recomputes the overall rating and MVP flag from the skill
// vector. Callers never set those fields directly.
func (p *Player) DeriveRating() {
	p.Rating = p.Skills.Overall()
	p.MVP = p.Rating >= MVPThreshold
}

// ValidGender reports whether g is a known gender value.
func ValidGender(g Gender) bool {
	return g == GenderMale || g == GenderFemale
}

// ValidLevel reports whether l is a known level value.
func ValidLevel(l Level) bool {
	switch l {
	case LevelCasual, LevelIntermediate, LevelPro, LevelCaptain:
		return true
	}
	return false
}

// ReconcileRoster merges a mutated player into a roster snapshot: replaced in
// place when the id is present, prepended otherwise.
func ReconcileRoster(roster []Player, p Player) []Player {
	for i := range roster {
		if roster[i].ID == p.ID {
			out := make([]Player, len(roster))
			copy(out, roster)
			out[i] = p
			return out
		}
	}
	out := make([]Player, 0, len(roster)+1)
	out = append(out, p)
	return append(out, roster...)
}
