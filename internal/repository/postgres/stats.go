package postgres

import (
	"context"
	"fmt"

	"github.com/XEXEU22/volleyapp/internal/entities"
)

const (
	statsTotalsQuery = `
SELECT COUNT(*),
       COALESCE(ROUND(AVG(rating), 1), 0),
       COUNT(*) FILTER (WHERE is_mvp)
FROM players
WHERE owner_id=$1`

	statsByGenderQuery = `SELECT gender, COUNT(*) FROM players WHERE owner_id=$1 GROUP BY gender`

	statsByLevelQuery = `SELECT level, COUNT(*) FROM players WHERE owner_id=$1 GROUP BY level`

	statsBucketsQuery = `
SELECT bucket, COUNT(*)
FROM (
    SELECT CASE
        WHEN rating < 2 THEN '1-2'
        WHEN rating < 3 THEN '2-3'
        WHEN rating < 4 THEN '3-4'
        ELSE '4-5'
    END AS bucket
    FROM players
    WHERE owner_id=$1
) b
GROUP BY bucket
ORDER BY bucket`

	statsSkillAveragesQuery = `
SELECT COALESCE(ROUND(AVG(skill_attack), 1), 0),
       COALESCE(ROUND(AVG(skill_defense), 1), 0),
       COALESCE(ROUND(AVG(skill_reception), 1), 0),
       COALESCE(ROUND(AVG(skill_setting), 1), 0),
       COALESCE(ROUND(AVG(skill_serve), 1), 0),
       COALESCE(ROUND(AVG(skill_block), 1), 0)
FROM players
WHERE owner_id=$1`
)

// Stats returns aggregated roster statistics for one owner.
func (p *Postgres) Stats(ctx context.Context, ownerID string) (entities.Stats, error) {
	res := entities.Stats{}

	if err := p.db.QueryRow(ctx, statsTotalsQuery, ownerID).
		Scan(&res.TotalPlayers, &res.AverageRating, &res.MVPCount); err != nil {
		return res, fmt.Errorf("stats totals: %w", err)
	}

	rows, err := p.db.Query(ctx, statsByGenderQuery, ownerID)
	if err != nil {
		return res, fmt.Errorf("stats by gender: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var s entities.GenderStat
		if err := rows.Scan(&s.Gender, &s.Count); err != nil {
			return res, fmt.Errorf("scan gender stat: %w", err)
		}
		res.ByGender = append(res.ByGender, s)
	}
	if err := rows.Err(); err != nil {
		return res, fmt.Errorf("iterate gender stat: %w", err)
	}

	rows2, err := p.db.Query(ctx, statsByLevelQuery, ownerID)
	if err != nil {
		return res, fmt.Errorf("stats by level: %w", err)
	}
	defer rows2.Close()
	for rows2.Next() {
		var s entities.LevelStat
		if err := rows2.Scan(&s.Level, &s.Count); err != nil {
			return res, fmt.Errorf("scan level stat: %w", err)
		}
		res.ByLevel = append(res.ByLevel, s)
	}
	if err := rows2.Err(); err != nil {
		return res, fmt.Errorf("iterate level stat: %w", err)
	}

	rows3, err := p.db.Query(ctx, statsBucketsQuery, ownerID)
	if err != nil {
		return res, fmt.Errorf("stats buckets: %w", err)
	}
	defer rows3.Close()
	for rows3.Next() {
		var s entities.RatingBucket
		if err := rows3.Scan(&s.Bucket, &s.Count); err != nil {
			return res, fmt.Errorf("scan rating bucket: %w", err)
		}
		res.RatingBuckets = append(res.RatingBuckets, s)
	}
	if err := rows3.Err(); err != nil {
		return res, fmt.Errorf("iterate rating buckets: %w", err)
	}

	var attack, defense, reception, setting, serve, block float64
	if err := p.db.QueryRow(ctx, statsSkillAveragesQuery, ownerID).
		Scan(&attack, &defense, &reception, &setting, &serve, &block); err != nil {
		return res, fmt.Errorf("stats skill averages: %w", err)
	}
	res.SkillAverages = []entities.SkillAverage{
		{Skill: "attack", Average: attack},
		{Skill: "defense", Average: defense},
		{Skill: "reception", Average: reception},
		{Skill: "setting", Average: setting},
		{Skill: "serve", Average: serve},
		{Skill: "block", Average: block},
	}

	return res, nil
}
