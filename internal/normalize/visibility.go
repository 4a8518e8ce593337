package normalize

import "github.com/adaeze/cv-studio/internal/types"

// ApplyVisibility empties every section listed in the CV's hiddenSections and
// leaves everything else untouched. It runs as a pre-render transform so both
// renderer families see identical data. A CV without presentation preferences
// passes through unchanged.
func ApplyVisibility(cv types.CV) types.CV {
	if cv.Presentation == nil || len(cv.Presentation.HiddenSections) == 0 {
		return cv
	}

	out := cv
	for _, key := range cv.Presentation.HiddenSections {
		switch key {
		case types.SectionSummary:
			out.Summary = ""
		case types.SectionExperience:
			out.Experience = []types.WorkExperience{}
		case types.SectionEducation:
			out.Education = []types.Education{}
		case types.SectionSkills:
			out.Skills = []types.Skill{}
		case types.SectionCertifications:
			out.Certifications = []types.Certification{}
		case types.SectionLanguages:
			out.Languages = []types.Language{}
		case types.SectionReferees:
			out.Referees = []types.Referee{}
		}
	}
	return out
}

// SectionOrder returns the effective section order for rendering: the CV's
// normalized presentation order when present, the canonical order otherwise.
func SectionOrder(cv types.CV) []types.SectionKey {
	if cv.Presentation != nil && len(cv.Presentation.SectionOrder) == len(types.CanonicalSectionOrder()) {
		return cv.Presentation.SectionOrder
	}
	return types.CanonicalSectionOrder()
}
