package types

// SectionKey names one subdivision of CV content.
type SectionKey string

// The fixed section-key set, in canonical order.
const (
	SectionSummary        SectionKey = "summary"
	SectionExperience     SectionKey = "experience"
	SectionEducation      SectionKey = "education"
	SectionSkills         SectionKey = "skills"
	SectionCertifications SectionKey = "certifications"
	SectionLanguages      SectionKey = "languages"
	SectionReferees       SectionKey = "referees"
)

// CanonicalSectionOrder returns the full section-key set in canonical order.
func CanonicalSectionOrder() []SectionKey {
	return []SectionKey{
		SectionSummary,
		SectionExperience,
		SectionEducation,
		SectionSkills,
		SectionCertifications,
		SectionLanguages,
		SectionReferees,
	}
}

// ValidSectionKey reports whether k is one of the recognized section keys.
func ValidSectionKey(k SectionKey) bool {
	for _, s := range CanonicalSectionOrder() {
		if s == k {
			return true
		}
	}
	return false
}

// Density controls vertical spacing in rendered documents.
type Density string

// Density values.
const (
	DensityComfortable Density = "comfortable"
	DensityCompact     Density = "compact"
)

// FontScale controls the base font size step.
type FontScale string

// Font scale steps.
const (
	FontScaleSM FontScale = "sm"
	FontScaleMD FontScale = "md"
	FontScaleLG FontScale = "lg"
)

// CVPresentation holds per-CV display preferences. After normalization
// SectionOrder is a permutation of the full section-key set and
// HiddenSections contains only recognized, deduplicated keys.
type CVPresentation struct {
	SectionOrder   []SectionKey `json:"sectionOrder"`
	HiddenSections []SectionKey `json:"hiddenSections"`
	Density        Density      `json:"density"`
	FontScale      FontScale    `json:"fontScale"`
	AccentVariant  string       `json:"accentVariant"`
}
