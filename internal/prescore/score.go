// Package prescore implements the deterministic resume pre-filter score.
// It is a cheap gate that runs before the expensive scoring-service call and
// rejects input that does not look like a resume at all.
package prescore

import (
	"regexp"
	"strings"
)

// MinAnalyzableScore is the threshold below which callers should reject
// analysis requests as incomplete or improperly formatted resumes.
const MinAnalyzableScore = 20

// Points awarded per signal. Each signal is independent and additive.
const (
	lengthPoints      = 10 // per word-count tier (>150, >300, >500)
	emailPoints       = 10
	phonePoints       = 10
	experiencePoints  = 2 // per experience keyword
	experienceCap     = 15
	educationPoints   = 5
	degreePoints      = 5
	skillsPoints      = 5
	technicalTermsCap = 5
	maxQuickScore     = 100
)

var experienceKeywords = []string{
	"experience", "worked", "managed", "led", "developed", "created", "achieved",
}

var technicalTerms = []string{
	"javascript", "python", "java", "sql", "excel", "project management", "leadership",
}

// phonePattern matches a 3-3-4 digit grouping with optional separators.
var phonePattern = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

// Score computes the 0-100 quick score for resume text. It is pure,
// deterministic, and matches case-insensitively.
func Score(text string) int {
	lower := strings.ToLower(text)
	score := 0

	score += computeLengthScore(text)
	score += computeContactScore(lower)
	score += computeExperienceScore(lower)
	score += computeEducationScore(lower)
	score += computeSkillsScore(lower)

	if score > maxQuickScore {
		score = maxQuickScore
	}
	if score < 0 {
		score = 0
	}
	return score
}

// computeLengthScore awards points per word-count tier.
func computeLengthScore(text string) int {
	words := len(strings.Fields(text))
	score := 0
	if words > 150 {
		score += lengthPoints
	}
	if words > 300 {
		score += lengthPoints
	}
	if words > 500 {
		score += lengthPoints
	}
	return score
}

// computeContactScore checks for an email marker and a phone-shaped substring.
func computeContactScore(lower string) int {
	score := 0
	if strings.Contains(lower, "@") || strings.Contains(lower, "email") {
		score += emailPoints
	}
	if phonePattern.MatchString(lower) {
		score += phonePoints
	}
	return score
}

// computeExperienceScore awards points per experience keyword, capped.
func computeExperienceScore(lower string) int {
	score := 0
	for _, keyword := range experienceKeywords {
		if strings.Contains(lower, keyword) {
			score += experiencePoints
		}
	}
	if score > experienceCap {
		score = experienceCap
	}
	return score
}

func computeEducationScore(lower string) int {
	score := 0
	if strings.Contains(lower, "education") || strings.Contains(lower, "degree") || strings.Contains(lower, "university") {
		score += educationPoints
	}
	if strings.Contains(lower, "bachelor") || strings.Contains(lower, "master") || strings.Contains(lower, "phd") {
		score += degreePoints
	}
	return score
}

// computeSkillsScore checks for a skills section marker and counts known
// technical terms, capped.
func computeSkillsScore(lower string) int {
	score := 0
	if strings.Contains(lower, "skills") || strings.Contains(lower, "technical") {
		score += skillsPoints
	}
	terms := 0
	for _, term := range technicalTerms {
		if strings.Contains(lower, term) {
			terms++
		}
	}
	if terms > technicalTermsCap {
		terms = technicalTermsCap
	}
	return score + terms
}
