package roles

import (
	"strings"

	"github.com/jonathan/resume-insight/internal/analysis"
)

// Enrich cross-references a normalized analysis against the catalog entry for
// jobRole. It is strictly additive: it appends missing skills and role
// recommendations and never lowers a score or removes an existing finding.
// An unknown role returns the analysis unchanged.
func Enrich(a *analysis.ResumeAnalysis, jobRole string, catalog *Catalog) *analysis.ResumeAnalysis {
	if a == nil || catalog == nil {
		return a
	}
	role, ok := catalog.Find(jobRole)
	if !ok {
		return a
	}

	appendMissingSkills(a, role)
	appendRecommendations(a, role)
	return a
}

// appendMissingSkills flags catalog skills absent from both the skills
// section's feedback text and the existing missing-skills list.
//
// The presence check is deliberately narrow: it only inspects the feedback of
// the first section whose name contains "skill", so a skill mentioned only in,
// say, a Projects section still counts as missing. Broadening this would
// change missing-skill output.
func appendMissingSkills(a *analysis.ResumeAnalysis, role *Role) {
	skillsText := strings.ToLower(skillsSectionFeedback(a))
	flagged := strings.ToLower(strings.Join(a.KeyFindings.MissingSkills, "\n"))

	for _, skill := range role.CommonSkills {
		needle := strings.ToLower(skill)
		if strings.Contains(skillsText, needle) || strings.Contains(flagged, needle) {
			continue
		}
		a.KeyFindings.MissingSkills = append(a.KeyFindings.MissingSkills, skill)
	}
}

// skillsSectionFeedback returns the joined feedback text of the first section
// whose name contains "skill".
func skillsSectionFeedback(a *analysis.ResumeAnalysis) string {
	for _, section := range a.Sections {
		if strings.Contains(strings.ToLower(section.Name), "skill") {
			return strings.Join(section.Feedback, "\n")
		}
	}
	return ""
}

// appendRecommendations adds up to three category-specific recommendations,
// skipping exact duplicates of ones already present.
func appendRecommendations(a *analysis.ResumeAnalysis, role *Role) {
	existing := make(map[string]bool, len(a.JobAlignment.Recommendations))
	for _, rec := range a.JobAlignment.Recommendations {
		existing[rec] = true
	}

	for _, rec := range categoryRecommendations(role, a) {
		if existing[rec] {
			continue
		}
		a.JobAlignment.Recommendations = append(a.JobAlignment.Recommendations, rec)
		existing[rec] = true
	}
}
