package services

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/segunqa2/next-peptok-sub000/internal/models"
)

// ScoreWeights control the relative weight of each scoring factor. Weights
// are injected per call so the engine carries no mutable package state.
type ScoreWeights struct {
	Expertise  float64
	Experience float64
	Rating     float64
}

func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{Expertise: 0.5, Experience: 0.3, Rating: 0.2}
}

type ScoreResult struct {
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}

const (
	// Profiles with missing skill data get a neutral-low expertise score
	// instead of zero, so data-incomplete coaches are not hidden entirely.
	neutralExpertiseScore = 0.3

	// Applied when the coach's experience descriptor carries no number.
	neutralExperienceScore = 0.5

	// Assumed requirement when the request's experience descriptor carries
	// no number.
	defaultRequiredYears = 5

	// Every coach scores at least this, so nobody drops out of result sets.
	scoreFloor = 0.3
)

// ScoreCoach computes the compatibility score between one coach and one
// request. Pure and deterministic; malformed or missing profile fields
// degrade to neutral sub-scores, never to an error.
func ScoreCoach(
	coach models.CoachProfile,
	request models.RequestProfile,
	weights ScoreWeights,
) ScoreResult {
	expertise := expertiseScore(sliceValue(coach.Expertise), request.RequiredSkills)
	experience := experienceScore(stringValue(coach.Experience), request.RequiredExperience)
	rating := ratingScore(floatValue(coach.Rating))

	score := expertise*weights.Expertise + experience*weights.Experience + rating*weights.Rating
	score = math.Max(score, scoreFloor)
	score = math.Min(score, 1.0)

	return ScoreResult{
		Score:   score,
		Reasons: scoreReasons(score, expertise, experience, rating),
	}
}

// expertiseScore counts a required skill as matched when it and any coach
// skill contain each other case-insensitively, in either direction.
func expertiseScore(coachSkills, requiredSkills []string) float64 {
	if len(coachSkills) == 0 || len(requiredSkills) == 0 {
		return neutralExpertiseScore
	}

	matched := 0
	for _, required := range requiredSkills {
		req := strings.ToLower(strings.TrimSpace(required))
		if req == "" {
			continue
		}
		for _, skill := range coachSkills {
			have := strings.ToLower(strings.TrimSpace(skill))
			if have == "" {
				continue
			}
			if strings.Contains(have, req) || strings.Contains(req, have) {
				matched++
				break
			}
		}
	}

	return math.Min(float64(matched)/float64(len(requiredSkills)), 1.0)
}

// experienceScore compares the first integer found in each descriptor
// ("10+ years" reads as 10). A coach meeting the requirement scores 1.0,
// otherwise the ratio of years.
func experienceScore(coachExperience, requiredExperience string) float64 {
	coachYears, ok := firstInt(coachExperience)
	if !ok {
		return neutralExperienceScore
	}

	requiredYears, ok := firstInt(requiredExperience)
	if !ok {
		requiredYears = defaultRequiredYears
	}
	if requiredYears <= 0 {
		return 1.0
	}

	if coachYears >= requiredYears {
		return 1.0
	}
	return float64(coachYears) / float64(requiredYears)
}

func ratingScore(rating float64) float64 {
	if rating <= 0 {
		return 0
	}
	return math.Min(rating/5.0, 1.0)
}

func scoreReasons(score, expertise, experience, rating float64) []string {
	reasons := make([]string, 0, 3)
	if expertise > 0.7 {
		reasons = append(reasons, "Strong expertise alignment")
	}
	if experience > 0.8 {
		reasons = append(reasons, "Excellent experience match")
	}
	if rating > 0.9 {
		reasons = append(reasons, "Outstanding client ratings")
	}
	if len(reasons) == 0 {
		reasons = append(reasons, fmt.Sprintf("%d%% overall compatibility", int(math.Round(score*100))))
	}
	return reasons
}

// firstInt returns the first contiguous digit run in s.
func firstInt(s string) (int, bool) {
	start := -1
	for i, r := range s {
		if unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return parseDigits(s[start:i])
		}
	}
	if start >= 0 {
		return parseDigits(s[start:])
	}
	return 0, false
}

func parseDigits(digits string) (int, bool) {
	value := 0
	for _, r := range digits {
		value = value*10 + int(r-'0')
		if value > 1000 {
			// Experience descriptors never carry values this large; treat
			// them as unparseable rather than overflowing.
			return 0, false
		}
	}
	return value, true
}

func sliceValue(values *[]string) []string {
	if values == nil {
		return nil
	}
	return *values
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func floatValue(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}
