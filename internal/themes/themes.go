// Package themes holds the declarative visual-parameter registry backing the
// fixed template set. A theme is pure data; renderers interpret it but no
// logic lives here.
package themes

import (
	"fmt"

	"github.com/adaeze/cv-studio/internal/types"
)

// Layout selects the page shape.
type Layout string

// Layout modes.
const (
	LayoutSingle Layout = "single" // one full-width column
	LayoutSplit  Layout = "split"  // main column plus sidebar
)

// Header selects the header treatment.
type Header string

// Header treatments.
const (
	HeaderPlain  Header = "plain"
	HeaderCenter Header = "center"
	HeaderAccent Header = "accent"
	HeaderDark   Header = "dark"
)

// SkillsMode selects how skills are rendered.
type SkillsMode string

// Skill rendering modes.
const (
	SkillsBadges SkillsMode = "badges"
	SkillsList   SkillsMode = "list"
	SkillsBars   SkillsMode = "bars"
)

// Palette is the color set for one theme. Values are CSS colors.
type Palette struct {
	Page       string
	Surface    string
	Text       string
	Muted      string
	Accent     string
	AccentSoft string
	Border     string
}

// Fonts pairs a body and heading font family.
type Fonts struct {
	Body    string
	Heading string
}

// Theme is the full visual-parameter record for one template id.
type Theme struct {
	ID          types.TemplateID
	Name        string
	Label       string // optional tagline, e.g. "Executive Resume"
	Layout      Layout
	Header      Header
	SkillsMode  SkillsMode
	Palette     Palette
	Fonts       Fonts
	UpperTitles bool
	TopRibbon   bool
	// Labels overrides section headings; keys absent here fall back to
	// DefaultSectionLabels.
	Labels map[types.SectionKey]string
}

// SectionLabel resolves the heading text for a section under this theme.
func (t Theme) SectionLabel(key types.SectionKey) string {
	if label, ok := t.Labels[key]; ok {
		return label
	}
	return DefaultSectionLabels[key]
}

// DefaultSectionLabels are the heading texts used when a theme does not
// override them.
var DefaultSectionLabels = map[types.SectionKey]string{
	types.SectionSummary:        "Professional Summary",
	types.SectionExperience:     "Work Experience",
	types.SectionEducation:      "Education",
	types.SectionSkills:         "Skills",
	types.SectionCertifications: "Certifications",
	types.SectionLanguages:      "Languages",
	types.SectionReferees:       "Referees",
}

var registry = map[types.TemplateID]Theme{
	types.TemplateModern: {
		ID:         types.TemplateModern,
		Name:       "Modern",
		Layout:     LayoutSingle,
		Header:     HeaderAccent,
		SkillsMode: SkillsBadges,
		Palette: Palette{
			Page:       "#f3f4f6",
			Surface:    "#ffffff",
			Text:       "#111827",
			Muted:      "#6b7280",
			Accent:     "#2563eb",
			AccentSoft: "#dbeafe",
			Border:     "#e5e7eb",
		},
		Fonts: Fonts{Body: "Inter, Helvetica, Arial, sans-serif", Heading: "Inter, Helvetica, Arial, sans-serif"},
	},
	types.TemplateProfessional: {
		ID:         types.TemplateProfessional,
		Name:       "Professional",
		Layout:     LayoutSingle,
		Header:     HeaderCenter,
		SkillsMode: SkillsList,
		Palette: Palette{
			Page:       "#f8fafc",
			Surface:    "#ffffff",
			Text:       "#1f2937",
			Muted:      "#4b5563",
			Accent:     "#0f172a",
			AccentSoft: "#e2e8f0",
			Border:     "#cbd5e1",
		},
		Fonts:       Fonts{Body: "Georgia, 'Times New Roman', serif", Heading: "Georgia, 'Times New Roman', serif"},
		UpperTitles: true,
	},
	types.TemplateCreative: {
		ID:         types.TemplateCreative,
		Name:       "Creative",
		Layout:     LayoutSplit,
		Header:     HeaderAccent,
		SkillsMode: SkillsBars,
		Palette: Palette{
			Page:       "#fdf4ff",
			Surface:    "#ffffff",
			Text:       "#27272a",
			Muted:      "#71717a",
			Accent:     "#a21caf",
			AccentSoft: "#fae8ff",
			Border:     "#f0abfc",
		},
		Fonts:     Fonts{Body: "'Segoe UI', Helvetica, sans-serif", Heading: "'Segoe UI', Helvetica, sans-serif"},
		TopRibbon: true,
		Labels: map[types.SectionKey]string{
			types.SectionSummary: "About Me",
		},
	},
	types.TemplateNigerian: {
		ID:         types.TemplateNigerian,
		Name:       "Nigerian Standard",
		Label:      "NYSC & Corporate Ready",
		Layout:     LayoutSingle,
		Header:     HeaderCenter,
		SkillsMode: SkillsList,
		Palette: Palette{
			Page:       "#f6fef8",
			Surface:    "#ffffff",
			Text:       "#14532d",
			Muted:      "#3f6212",
			Accent:     "#15803d",
			AccentSoft: "#dcfce7",
			Border:     "#bbf7d0",
		},
		Fonts:       Fonts{Body: "Arial, Helvetica, sans-serif", Heading: "Arial, Helvetica, sans-serif"},
		UpperTitles: true,
		Labels: map[types.SectionKey]string{
			types.SectionSummary: "Career Objective",
		},
	},
	types.TemplateMinimal: {
		ID:         types.TemplateMinimal,
		Name:       "Minimal",
		Layout:     LayoutSingle,
		Header:     HeaderPlain,
		SkillsMode: SkillsList,
		Palette: Palette{
			Page:       "#ffffff",
			Surface:    "#ffffff",
			Text:       "#18181b",
			Muted:      "#52525b",
			Accent:     "#18181b",
			AccentSoft: "#f4f4f5",
			Border:     "#d4d4d8",
		},
		Fonts: Fonts{Body: "Helvetica, Arial, sans-serif", Heading: "Helvetica, Arial, sans-serif"},
		Labels: map[types.SectionKey]string{
			types.SectionSummary: "Summary",
		},
	},
	types.TemplateExecutive: {
		ID:         types.TemplateExecutive,
		Name:       "Executive",
		Label:      "Executive Resume",
		Layout:     LayoutSplit,
		Header:     HeaderDark,
		SkillsMode: SkillsList,
		Palette: Palette{
			Page:       "#f5f5f4",
			Surface:    "#ffffff",
			Text:       "#1c1917",
			Muted:      "#57534e",
			Accent:     "#78350f",
			AccentSoft: "#fef3c7",
			Border:     "#d6d3d1",
		},
		Fonts:       Fonts{Body: "Garamond, Georgia, serif", Heading: "Garamond, Georgia, serif"},
		UpperTitles: true,
		Labels: map[types.SectionKey]string{
			types.SectionSummary:    "Executive Profile",
			types.SectionExperience: "Leadership Experience",
		},
	},
	types.TemplateTech: {
		ID:         types.TemplateTech,
		Name:       "Tech",
		Layout:     LayoutSplit,
		Header:     HeaderDark,
		SkillsMode: SkillsBars,
		Palette: Palette{
			Page:       "#f1f5f9",
			Surface:    "#ffffff",
			Text:       "#0f172a",
			Muted:      "#475569",
			Accent:     "#0d9488",
			AccentSoft: "#ccfbf1",
			Border:     "#cbd5e1",
		},
		Fonts:     Fonts{Body: "'JetBrains Mono', 'Courier New', monospace", Heading: "'JetBrains Mono', 'Courier New', monospace"},
		TopRibbon: true,
		Labels: map[types.SectionKey]string{
			types.SectionSummary:    "Profile",
			types.SectionExperience: "Experience",
			types.SectionSkills:     "Tech Stack",
		},
	},
}

// Get returns the theme for id. A missing entry is a programming error, not a
// recoverable condition: every id reaching renderer dispatch has been through
// normalization.
func Get(id types.TemplateID) (Theme, error) {
	theme, ok := registry[id]
	if !ok {
		return Theme{}, &UnknownTemplateError{ID: id}
	}
	return theme, nil
}

// UnknownTemplateError reports a template id outside the registry.
type UnknownTemplateError struct {
	ID types.TemplateID
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("no theme registered for template %q", e.ID)
}

// MustGet is Get for callers that have already normalized the template id.
func MustGet(id types.TemplateID) Theme {
	theme, err := Get(id)
	if err != nil {
		panic(err)
	}
	return theme
}

// All returns the themes in catalog order.
func All() []Theme {
	all := make([]Theme, 0, len(registry))
	for _, id := range types.TemplateIDs() {
		all = append(all, registry[id])
	}
	return all
}
