// Package analysis turns resume text plus role context into a canonical,
// UI-safe quality assessment. It owns the boundary with the external scoring
// service: building the request, invoking the service, and defensively
// normalizing its schema-free output.
package analysis

// FallbackSummary is used when the scoring service returns no usable summary.
const FallbackSummary = "Unable to generate analysis summary."

// MaxOverallScore is the ceiling for the resume-wide score.
const MaxOverallScore = 100

// MaxSectionScore is the ceiling for per-section, ATS, and match scores.
const MaxSectionScore = 10

// SectionAssessment is the assessment of one resume section. Section names are
// whatever the scoring service identifies (Contact, Experience, Skills, ...),
// not a fixed enum.
type SectionAssessment struct {
	Name        string   `json:"name"`
	Score       int      `json:"score"`
	MaxScore    int      `json:"max_score"`
	Feedback    []string `json:"feedback"`
	Suggestions []string `json:"suggestions"`
	Strengths   []string `json:"strengths"`
	Issues      []string `json:"issues"`
}

// KeyFindings aggregates resume-wide findings.
type KeyFindings struct {
	Strengths           []string `json:"strengths"`
	MajorIssues         []string `json:"major_issues"`
	MissingSkills       []string `json:"missing_skills"`
	ATSCompatibility    int      `json:"ats_compatibility"`
	ImprovementPriority []string `json:"improvement_priority"`
}

// JobAlignment describes how the resume lines up with the target position.
type JobAlignment struct {
	MatchScore         int      `json:"match_score"`
	RelevantExperience []string `json:"relevant_experience"`
	SkillGaps          []string `json:"skill_gaps"`
	Recommendations    []string `json:"recommendations"`
}

// ResumeAnalysis is the canonical analysis aggregate returned to callers.
// Every score is clamped to its documented range and every list field is
// non-nil, so consumers never need bounds or nil checks.
type ResumeAnalysis struct {
	OverallScore    int                 `json:"overall_score"`
	MaxOverallScore int                 `json:"max_overall_score"`
	Summary         string              `json:"summary"`
	Sections        []SectionAssessment `json:"sections"`
	KeyFindings     KeyFindings         `json:"key_findings"`
	JobAlignment    JobAlignment        `json:"job_alignment"`
}
