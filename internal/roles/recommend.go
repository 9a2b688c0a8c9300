package roles

import (
	"github.com/jonathan/resume-insight/internal/analysis"
)

// Score thresholds gating conditional recommendations.
const (
	strongResumeScore = 80
	solidResumeScore  = 70
	weakATSScore      = 6
)

// maxRecommendations caps how many role recommendations one enrichment adds.
const maxRecommendations = 3

// categoryRecommendations produces role-category-specific recommendation
// strings from fixed per-category rule tables. Each rule is gated on score
// thresholds or the presence of specific findings.
func categoryRecommendations(role *Role, a *analysis.ResumeAnalysis) []string {
	var recs []string

	switch role.Category {
	case CategoryTechnology:
		if a.OverallScore < solidResumeScore {
			recs = append(recs, "Add a dedicated technical skills section grouping languages, frameworks, and tools by proficiency.")
		}
		if len(a.KeyFindings.MissingSkills) > 0 {
			recs = append(recs, "Show hands-on evidence (projects, contributions, certifications) for the skills this role screens for.")
		}
		recs = append(recs, "Quantify engineering impact with concrete metrics such as latency, throughput, uptime, or cost savings.")

	case CategoryManagement:
		if a.OverallScore < strongResumeScore {
			recs = append(recs, "Lead each role with team size, budget, and scope so reviewers can gauge the level you operated at.")
		}
		if len(a.JobAlignment.RelevantExperience) == 0 {
			recs = append(recs, "Surface cross-functional initiatives you drove end to end; management screens look for ownership, not participation.")
		}
		recs = append(recs, "Pair every leadership claim with a measurable outcome: delivery dates met, attrition reduced, revenue influenced.")

	case CategoryDesign:
		if a.KeyFindings.ATSCompatibility < weakATSScore {
			recs = append(recs, "Keep the resume itself ATS-parseable and put the visual craft in a linked portfolio instead.")
		}
		recs = append(recs, "Link a portfolio with 2-3 case studies walking through problem, process, and measured outcome.")
		if a.OverallScore < solidResumeScore {
			recs = append(recs, "Name the research and testing methods behind each design decision, not just the tools used.")
		}

	case CategoryMarketing:
		recs = append(recs, "Anchor each campaign bullet in numbers: conversion lift, audience growth, CAC, or pipeline generated.")
		if len(a.KeyFindings.MissingSkills) > 0 {
			recs = append(recs, "Call out hands-on experience with the analytics and automation stack this role expects.")
		}
		if a.OverallScore < solidResumeScore {
			recs = append(recs, "Organize experience by funnel stage or channel so scope is obvious at a glance.")
		}

	case CategorySales:
		recs = append(recs, "State quota attainment explicitly (e.g., 118% of quota FY24); it is the first thing sales screens look for.")
		if a.OverallScore < strongResumeScore {
			recs = append(recs, "Show deal mechanics: average deal size, sales cycle length, and the segments you sold into.")
		}

	case CategoryAnalysis:
		if a.OverallScore < solidResumeScore {
			recs = append(recs, "Frame each analysis as question, method, and business decision it informed rather than listing tools.")
		}
		if len(a.KeyFindings.MissingSkills) > 0 {
			recs = append(recs, "Demonstrate the querying and visualization stack for this role with specific datasets and dashboards you shipped.")
		}
		recs = append(recs, "Quantify the downstream effect of your analyses: decisions changed, hours saved, revenue found.")
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
