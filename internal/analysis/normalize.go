package analysis

import (
	"math"
	"strconv"
	"strings"
)

// NormalizePayload reshapes the weakly-typed scoring-service payload into the
// canonical ResumeAnalysis. It is total: any input, including nil, a truncated
// object, or adversarially mistyped fields, produces a valid aggregate with
// clamped scores and non-nil lists. It never panics and never returns an error.
func NormalizePayload(raw map[string]any) *ResumeAnalysis {
	out := &ResumeAnalysis{
		MaxOverallScore: MaxOverallScore,
		Summary:         FallbackSummary,
		Sections:        []SectionAssessment{},
		KeyFindings: KeyFindings{
			Strengths:           []string{},
			MajorIssues:         []string{},
			MissingSkills:       []string{},
			ImprovementPriority: []string{},
		},
		JobAlignment: JobAlignment{
			RelevantExperience: []string{},
			SkillGaps:          []string{},
			Recommendations:    []string{},
		},
	}
	if raw == nil {
		return out
	}

	out.OverallScore = clampInt(intField(raw, "overall_score"), 0, MaxOverallScore)

	if summary := strings.TrimSpace(stringField(raw, "summary")); summary != "" {
		out.Summary = summary
	}

	out.Sections = normalizeSections(raw["sections"])

	if findings, ok := raw["key_findings"].(map[string]any); ok {
		out.KeyFindings.Strengths = stringSliceField(findings, "strengths")
		out.KeyFindings.MajorIssues = stringSliceField(findings, "major_issues")
		out.KeyFindings.MissingSkills = stringSliceField(findings, "missing_skills")
		out.KeyFindings.ATSCompatibility = clampInt(intField(findings, "ats_compatibility"), 0, MaxSectionScore)
		out.KeyFindings.ImprovementPriority = stringSliceField(findings, "improvement_priority")
	}

	if alignment, ok := raw["job_alignment"].(map[string]any); ok {
		out.JobAlignment.MatchScore = clampInt(intField(alignment, "match_score"), 0, MaxSectionScore)
		out.JobAlignment.RelevantExperience = stringSliceField(alignment, "relevant_experience")
		out.JobAlignment.SkillGaps = stringSliceField(alignment, "skill_gaps")
		out.JobAlignment.Recommendations = stringSliceField(alignment, "recommendations")
	}

	return out
}

// normalizeSections applies the all-or-nothing sequence rule: a non-sequence
// value is replaced wholesale with an empty slice, and malformed entries
// within a sequence are skipped rather than partially recovered.
func normalizeSections(value any) []SectionAssessment {
	items, ok := value.([]any)
	if !ok {
		return []SectionAssessment{}
	}

	sections := make([]SectionAssessment, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		sections = append(sections, SectionAssessment{
			Name:        stringField(entry, "name"),
			Score:       clampInt(intField(entry, "score"), 0, MaxSectionScore),
			MaxScore:    MaxSectionScore,
			Feedback:    stringSliceField(entry, "feedback"),
			Suggestions: stringSliceField(entry, "suggestions"),
			Strengths:   stringSliceField(entry, "strengths"),
			Issues:      stringSliceField(entry, "issues"),
		})
	}
	return sections
}

// intField coerces a field to the nearest integer. JSON numbers arrive as
// float64; numeric strings are tolerated; anything else yields 0.
func intField(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return int(math.Round(v))
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return int(math.Round(f))
	default:
		return 0
	}
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// stringSliceField coerces a field to a string slice. A non-sequence value
// yields an empty slice; non-string items within a sequence are dropped.
func stringSliceField(m map[string]any, key string) []string {
	items, ok := m[key].([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
