// Package entities contains core business entities.
package entities

// Stats aggregates the owner's roster for the statistics view.
type Stats struct {
	TotalPlayers  int64          `json:"total_players"`
	AverageRating float64        `json:"average_rating"`
	MVPCount      int64          `json:"mvp_count"`
	ByGender      []GenderStat   `json:"by_gender"`
	ByLevel       []LevelStat    `json:"by_level"`
	RatingBuckets []RatingBucket `json:"rating_buckets"`
	SkillAverages []SkillAverage `json:"skill_averages"`
}

// GenderStat counts players per gender.
type GenderStat struct {
	Gender Gender `json:"gender"`
	Count  int64  `json:"count"`
}

// LevelStat counts players per level tier.
type LevelStat struct {
	Level Level `json:"level"`
	Count int64 `json:"count"`
}

// RatingBucket counts players within one overall-rating range.
type RatingBucket struct {
	Bucket string `json:"bucket"`
	Count  int64  `json:"count"`
}

// SkillAverage is the squad-wide mean of one skill, one decimal place.
type SkillAverage struct {
	Skill   string  `json:"skill"`
	Average float64 `json:"average"`
}
