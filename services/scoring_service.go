package services

import (
	"fmt"
	"math"
)

// AssessmentResult is the computed outcome of a readiness self-assessment.
type AssessmentResult struct {
	TotalScore     int    `json:"total_score"`
	MaxScore       int    `json:"max_score"`
	Percentage     int    `json:"percentage"`
	ReadinessLevel string `json:"readiness_level"`
	RankBand       string `json:"rank_band"`
}

type readinessTier struct {
	Threshold int
	Level     string
	RankBand  string
}

// Ordered highest threshold first; thresholds are inclusive lower bounds.
// The last entry is the fallback for everything below 30.
var readinessTiers = []readinessTier{
	{Threshold: 85, Level: "Excellent – NIRF Ready", RankBand: "Top 100"},
	{Threshold: 70, Level: "Strong – Focus on Research & Outreach", RankBand: "100–200"},
	{Threshold: 50, Level: "Average – Improve Outcomes & Perception", RankBand: "200–300"},
	{Threshold: 30, Level: "Developing – Needs Major Improvement", RankBand: "300+"},
	{Threshold: 0, Level: "Foundational Stage", RankBand: "Unranked"},
}

// ScoreAssessment computes the total score and readiness tier for a set of
// answers mapping question id to the chosen option value. Unanswered questions
// contribute zero. Answers referencing an unknown question or an option the
// question does not offer are rejected outright rather than scored as zero.
func ScoreAssessment(answers map[int]string) (AssessmentResult, error) {
	total := 0
	for id, value := range answers {
		question, ok := questionIndex[id]
		if !ok {
			return AssessmentResult{}, fmt.Errorf("unknown question id %d", id)
		}

		points, ok := optionPoints(question, value)
		if !ok {
			return AssessmentResult{}, fmt.Errorf("question %d has no option %q", id, value)
		}
		total += points
	}

	level, band := ReadinessFor(total)
	return AssessmentResult{
		TotalScore:     total,
		MaxScore:       MaxScore,
		Percentage:     Percentage(total),
		ReadinessLevel: level,
		RankBand:       band,
	}, nil
}

// Percentage expresses a total score as a rounded percentage of MaxScore.
func Percentage(score int) int {
	return int(math.Round(float64(score) / float64(MaxScore) * 100))
}

// ReadinessFor maps a total score to its readiness level and rank band.
func ReadinessFor(score int) (level, rankBand string) {
	for _, tier := range readinessTiers {
		if score >= tier.Threshold {
			return tier.Level, tier.RankBand
		}
	}
	last := readinessTiers[len(readinessTiers)-1]
	return last.Level, last.RankBand
}

func optionPoints(q Question, value string) (int, bool) {
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt.Points, true
		}
	}
	return 0, false
}
