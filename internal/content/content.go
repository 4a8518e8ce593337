// Package content builds the renderer-neutral content model for a CV under a
// theme. Both the screen and export renderer families consume this model, so
// every content decision (section inclusion, ordering, labels, grouping) is
// made exactly once.
package content

import (
	"strings"

	"github.com/adaeze/cv-studio/internal/format"
	"github.com/adaeze/cv-studio/internal/normalize"
	"github.com/adaeze/cv-studio/internal/themes"
	"github.com/adaeze/cv-studio/internal/types"
)

// Region places a section in the page shape. Under a single-column layout
// every section is RegionMain.
type Region string

// Regions.
const (
	RegionMain Region = "main"
	RegionSide Region = "side"
)

// Document is the full content model for one CV + theme pairing.
type Document struct {
	Theme    themes.Theme
	Name     string
	Tagline  string
	Contacts []format.ContactItem
	Links    []format.LinkItem
	Sections []Section
}

// MainSections returns the sections placed in the main column, in order.
func (d Document) MainSections() []Section {
	return d.filter(RegionMain)
}

// SideSections returns the sidebar sections, in order.
func (d Document) SideSections() []Section {
	return d.filter(RegionSide)
}

func (d Document) filter(region Region) []Section {
	out := []Section{}
	for _, s := range d.Sections {
		if s.Region == region {
			out = append(out, s)
		}
	}
	return out
}

// Section is one included (non-empty) section. Exactly one payload field is
// populated, matching Key.
type Section struct {
	Key    types.SectionKey
	Label  string
	Region Region
	// SkillsMode is the theme's skill rendering mode, set on the skills
	// section only.
	SkillsMode themes.SkillsMode

	Paragraphs  []string     // summary
	Entries     []Entry      // experience, education
	SkillGroups []SkillGroup // skills
	Certs       []CertLine   // certifications
	Languages   []LangLine   // languages
	Referees    []RefLine    // referees
}

// Entry is one dated item in the experience or education sections.
type Entry struct {
	Title    string
	Subtitle string
	Meta     string // formatted date range
	Location string
	Lines    []string
}

// SkillGroup is one category of skills with the theme's rendering mode
// already resolved per item.
type SkillGroup struct {
	Label string
	Items []SkillItem
}

// SkillItem is one skill with its display label and bar percentage.
type SkillItem struct {
	Name    string
	Level   string
	Percent int
}

// CertLine is one certification row.
type CertLine struct {
	Name       string
	Issuer     string
	Meta       string // formatted date, plus expiry when present
	Credential string
}

// LangLine is one language row.
type LangLine struct {
	Name  string
	Level string
}

// RefLine is one referee row.
type RefLine struct {
	Name         string
	Role         string // position at company
	Contact      string // joined non-blank email/phone
	Relationship string
}

// Build computes the content model. Hidden sections are emptied first, the
// effective section order is applied, and empty sections are dropped so no
// renderer ever emits an empty heading. Entry order within sections follows
// storage order; most-recent-first is a data-entry convention, not enforced
// here.
func Build(cv types.CV, theme themes.Theme) Document {
	visible := normalize.ApplyVisibility(cv)

	doc := Document{
		Theme:    theme,
		Name:     format.FullName(visible.PersonalInfo),
		Tagline:  theme.Label,
		Contacts: format.ContactItems(visible.PersonalInfo),
		Links:    format.LinkItems(visible.PersonalInfo),
		Sections: []Section{},
	}

	for _, key := range normalize.SectionOrder(visible) {
		section, ok := buildSection(visible, theme, key)
		if !ok {
			continue
		}
		doc.Sections = append(doc.Sections, section)
	}
	return doc
}

// sidebarSections are the section keys routed to the sidebar under split
// layouts.
var sidebarSections = map[types.SectionKey]bool{
	types.SectionSkills:         true,
	types.SectionLanguages:      true,
	types.SectionCertifications: true,
}

func regionFor(theme themes.Theme, key types.SectionKey) Region {
	if theme.Layout == themes.LayoutSplit && sidebarSections[key] {
		return RegionSide
	}
	return RegionMain
}

func buildSection(cv types.CV, theme themes.Theme, key types.SectionKey) (Section, bool) {
	section := Section{
		Key:    key,
		Label:  theme.SectionLabel(key),
		Region: regionFor(theme, key),
	}

	switch key {
	case types.SectionSummary:
		summary := strings.TrimSpace(cv.Summary)
		if summary == "" {
			return Section{}, false
		}
		section.Paragraphs = format.FallbackDescriptionLines(summary)
	case types.SectionExperience:
		if len(cv.Experience) == 0 {
			return Section{}, false
		}
		for _, exp := range cv.Experience {
			section.Entries = append(section.Entries, Entry{
				Title:    exp.JobTitle,
				Subtitle: exp.Company,
				Meta:     format.DateRange(exp.StartDate, exp.EndDate, exp.Current),
				Location: exp.Location,
				Lines:    format.FallbackDescriptionLines(exp.Description),
			})
		}
	case types.SectionEducation:
		if len(cv.Education) == 0 {
			return Section{}, false
		}
		for _, edu := range cv.Education {
			entry := Entry{
				Title:    edu.Degree,
				Subtitle: edu.Institution,
				Meta:     format.DateRange(edu.StartDate, edu.EndDate, edu.Current),
				Location: edu.Location,
			}
			if field := strings.TrimSpace(edu.FieldOfStudy); field != "" {
				entry.Lines = []string{field}
			}
			section.Entries = append(section.Entries, entry)
		}
	case types.SectionSkills:
		groups := format.GroupSkills(cv.Skills)
		if len(groups.Technical) == 0 && len(groups.Soft) == 0 {
			return Section{}, false
		}
		section.SkillsMode = theme.SkillsMode
		if len(groups.Technical) > 0 {
			section.SkillGroups = append(section.SkillGroups, skillGroup("Technical Skills", groups.Technical))
		}
		if len(groups.Soft) > 0 {
			section.SkillGroups = append(section.SkillGroups, skillGroup("Soft Skills", groups.Soft))
		}
	case types.SectionCertifications:
		if len(cv.Certifications) == 0 {
			return Section{}, false
		}
		for _, cert := range cv.Certifications {
			section.Certs = append(section.Certs, CertLine{
				Name:       cert.Name,
				Issuer:     cert.Issuer,
				Meta:       certMeta(cert),
				Credential: strings.TrimSpace(cert.CredentialID),
			})
		}
	case types.SectionLanguages:
		if len(cv.Languages) == 0 {
			return Section{}, false
		}
		for _, lang := range cv.Languages {
			section.Languages = append(section.Languages, LangLine{
				Name:  lang.Language,
				Level: format.ProficiencyLabel(lang.Proficiency),
			})
		}
	case types.SectionReferees:
		if len(cv.Referees) == 0 {
			return Section{}, false
		}
		for _, ref := range cv.Referees {
			section.Referees = append(section.Referees, RefLine{
				Name:         ref.Name,
				Role:         refereeRole(ref),
				Contact:      joinNonBlank(" | ", ref.Email, ref.Phone),
				Relationship: ref.Relationship,
			})
		}
	default:
		return Section{}, false
	}

	return section, true
}

func skillGroup(label string, skills []types.Skill) SkillGroup {
	group := SkillGroup{Label: label}
	for _, s := range skills {
		group.Items = append(group.Items, SkillItem{
			Name:    s.Name,
			Level:   strings.TrimSpace(string(s.Level)),
			Percent: format.LevelToPercent(s.Level),
		})
	}
	return group
}

func certMeta(cert types.Certification) string {
	meta := format.MonthYear(cert.Date)
	if expiry := strings.TrimSpace(cert.ExpiryDate); expiry != "" {
		meta = joinNonBlank(" - ", meta, "Expires "+format.MonthYear(expiry))
	}
	return meta
}

func refereeRole(ref types.Referee) string {
	return joinNonBlank(", ", ref.Position, ref.Company)
}

func joinNonBlank(sep string, parts ...string) string {
	kept := []string{}
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, sep)
}
