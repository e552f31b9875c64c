package quality

import (
	"regexp"
	"strings"

	"github.com/jonathan/jobmatch/internal/textnorm"
	"github.com/jonathan/jobmatch/internal/types"
)

var (
	emailRe        = regexp.MustCompile(`[\w.-]+@[\w.-]+`)
	phoneRe        = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	quantifiableRe = regexp.MustCompile(`\d+%|\$\d+|\d+\+`)
)

// standardSections are the headings an applicant-tracking system looks for.
var standardSections = []string{
	"education", "experience", "skills", "projects", "summary", "objective",
}

// ATS point values. The checks are additive and the total is clamped to
// [0, 100].
const (
	pointsFullContact    = 20
	pointsPartialContact = 10
	pointsSections       = 25
	pointsSomeSections   = 15
	pointsWordCount      = 15
	pointsActionVerbs    = 15
	pointsQuantifiable   = 10
	penaltyLayout        = 10

	minWordCount = 200
	maxWordCount = 600

	minSectionCount    = 3
	minActionVerbCount = 3
)

// AnalyzeATS scores how well resume text would survive automated
// applicant-tracking parsers: contact details, recognizable section
// headings, length, action verbs, quantified results, and layout
// characters that confuse column-based parsers.
func AnalyzeATS(resumeText string) types.ATSReport {
	report := types.ATSReport{
		WordCount:       textnorm.WordCount(resumeText),
		Warnings:        []string{},
		Recommendations: []string{},
	}
	lower := strings.ToLower(resumeText)
	score := 0

	hasEmail := emailRe.MatchString(resumeText)
	hasPhone := phoneRe.MatchString(resumeText)
	report.HasContactInfo = hasEmail && hasPhone
	switch {
	case hasEmail && hasPhone:
		score += pointsFullContact
	case hasEmail || hasPhone:
		score += pointsPartialContact
	default:
		report.Warnings = append(report.Warnings, "No contact information found. Include an email address and phone number.")
	}

	sectionCount := 0
	for _, section := range standardSections {
		if strings.Contains(lower, section) {
			sectionCount++
		}
	}
	report.UsesStandardSection = sectionCount >= 2
	switch {
	case sectionCount >= minSectionCount:
		score += pointsSections
	case sectionCount == 2:
		score += pointsSomeSections
		report.Warnings = append(report.Warnings, "Few standard section headings found. Use headings like Experience, Education, and Skills.")
	default:
		report.Warnings = append(report.Warnings, "Standard section headings are missing. ATS parsers rely on headings like Experience and Education.")
	}

	if report.WordCount >= minWordCount && report.WordCount <= maxWordCount {
		score += pointsWordCount
	} else if report.WordCount < minWordCount {
		report.Warnings = append(report.Warnings, "Resume is short. Aim for 200-600 words.")
	} else {
		report.Warnings = append(report.Warnings, "Resume is long. Aim for 200-600 words.")
	}

	verbCount := 0
	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			verbCount++
		}
	}
	if verbCount >= minActionVerbCount {
		score += pointsActionVerbs
	} else {
		report.Recommendations = append(report.Recommendations, "Use more action verbs such as 'developed', 'led', or 'implemented'.")
	}

	if quantifiableRe.MatchString(resumeText) {
		score += pointsQuantifiable
	} else {
		report.Recommendations = append(report.Recommendations, "Quantify achievements with numbers, percentages, or dollar amounts.")
	}

	if hasComplexLayout(resumeText) {
		score -= penaltyLayout
		report.Warnings = append(report.Warnings, "Tabs or multi-column spacing detected. Use a single-column layout for ATS compatibility.")
	}

	report.Score = clampATS(score)
	report.Summary = summarize(report.Score)
	return report
}

// hasComplexLayout detects tab characters or runs of spaces that usually
// indicate columns or tables, which ATS parsers mangle.
func hasComplexLayout(text string) bool {
	if strings.Contains(text, "\t") {
		return true
	}
	flat := strings.ReplaceAll(text, "\n", "")
	return strings.Contains(flat, "  ")
}

func summarize(score int) string {
	switch {
	case score >= 80:
		return "This resume is well optimized for applicant tracking systems."
	case score >= 60:
		return "This resume is reasonably ATS-friendly but has room for improvement."
	default:
		return "This resume is likely to be filtered out by applicant tracking systems."
	}
}

func clampATS(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
