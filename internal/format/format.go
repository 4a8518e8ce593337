// Package format provides pure presentation helpers shared by every template renderer.
package format

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/adaeze/cv-studio/internal/types"
)

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var monthYearPattern = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)

// MonthYear converts a "YYYY-MM" value to "Mon YYYY". Inputs that do not
// match the pattern, or whose month falls outside 1-12, are returned
// unchanged apart from trimming.
func MonthYear(value string) string {
	trimmed := strings.TrimSpace(value)
	m := monthYearPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return trimmed
	}
	month, err := strconv.Atoi(m[2])
	if err != nil || month < 1 || month > 12 {
		return trimmed
	}
	return monthNames[month-1] + " " + m[1]
}

// DateRange formats a start/end pair as "Mon YYYY - Mon YYYY". When current
// is true the end side is always "Present" regardless of the stored end
// value. A blank side is dropped; two blank sides yield an empty string.
func DateRange(start, end string, current bool) string {
	from := MonthYear(start)
	to := MonthYear(end)
	if current {
		to = "Present"
	}
	switch {
	case from == "" && to == "":
		return ""
	case from == "":
		return to
	case to == "":
		return from
	default:
		return from + " - " + to
	}
}

// FullName joins the trimmed first and last names. When both are blank it
// returns the literal placeholder "Your Name" so rendered headers never come
// out empty.
func FullName(info types.PersonalInfo) string {
	first := strings.TrimSpace(info.FirstName)
	last := strings.TrimSpace(info.LastName)
	name := strings.TrimSpace(first + " " + last)
	if name == "" {
		return "Your Name"
	}
	return name
}

// ContactItem is one contact line with a stable kind for styling.
type ContactItem struct {
	Kind  string // "email", "phone" or "address"
	Value string
}

// ContactItems returns the non-blank contact entries in fixed order.
func ContactItems(info types.PersonalInfo) []ContactItem {
	items := []ContactItem{}
	if v := strings.TrimSpace(info.Email); v != "" {
		items = append(items, ContactItem{Kind: "email", Value: v})
	}
	if v := strings.TrimSpace(info.Phone); v != "" {
		items = append(items, ContactItem{Kind: "phone", Value: v})
	}
	if v := strings.TrimSpace(info.Address); v != "" {
		items = append(items, ContactItem{Kind: "address", Value: v})
	}
	return items
}

// LinkItem is one external link with the original text preserved as label.
type LinkItem struct {
	Kind  string // "linkedin" or "portfolio"
	Label string
	Href  string
}

// LinkItems returns the non-blank LinkedIn/portfolio links. A stored value
// without a scheme gets an https:// absolute href while the original text is
// kept as the display label.
func LinkItems(info types.PersonalInfo) []LinkItem {
	items := []LinkItem{}
	if v := strings.TrimSpace(info.LinkedIn); v != "" {
		items = append(items, LinkItem{Kind: "linkedin", Label: v, Href: absoluteURL(v)})
	}
	if v := strings.TrimSpace(info.Portfolio); v != "" {
		items = append(items, LinkItem{Kind: "portfolio", Label: v, Href: absoluteURL(v)})
	}
	return items
}

func absoluteURL(value string) string {
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return value
	}
	return "https://" + value
}

var bulletGlyphs = strings.NewReplacer("•", "\n", "‣", "\n", "·", "\n")

// DescriptionLines splits free text into discrete bullet lines. Line endings
// are normalized, common bullet glyphs act as separators, leading "-"/"*"
// markers are stripped and empty results are dropped.
func DescriptionLines(text string) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	normalized = bulletGlyphs.Replace(normalized)

	lines := []string{}
	for _, raw := range strings.Split(normalized, "\n") {
		line := strings.TrimSpace(raw)
		line = strings.TrimLeft(line, "-*")
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// FallbackDescriptionLines behaves like DescriptionLines but never loses
// content: when splitting yields nothing it returns the trimmed whole text as
// a single line, or no lines when the text is blank.
func FallbackDescriptionLines(text string) []string {
	lines := DescriptionLines(text)
	if len(lines) > 0 {
		return lines
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return []string{}
	}
	return []string{trimmed}
}

// SkillGroups partitions skills by category.
type SkillGroups struct {
	Technical []types.Skill
	Soft      []types.Skill
}

// GroupSkills partitions skills into technical and soft, excluding entries
// with blank names.
func GroupSkills(skills []types.Skill) SkillGroups {
	groups := SkillGroups{Technical: []types.Skill{}, Soft: []types.Skill{}}
	for _, s := range skills {
		if strings.TrimSpace(s.Name) == "" {
			continue
		}
		if s.Category == types.SkillSoft {
			groups.Soft = append(groups.Soft, s)
		} else {
			groups.Technical = append(groups.Technical, s)
		}
	}
	return groups
}

// LevelToPercent maps the 4-step skill scale to a completion percentage used
// by progress-bar skill rendering. Unknown values default to 55.
func LevelToPercent(level types.SkillLevel) int {
	switch level {
	case types.SkillBeginner:
		return 35
	case types.SkillIntermediate:
		return 55
	case types.SkillAdvanced:
		return 78
	case types.SkillExpert:
		return 94
	default:
		return 55
	}
}

// ProficiencyLabel renders a language proficiency for display. The language
// scale has five steps and is deliberately not unified with the skill scale.
func ProficiencyLabel(p types.LanguageProficiency) string {
	switch p {
	case types.LangBeginner, types.LangIntermediate, types.LangAdvanced,
		types.LangFluent, types.LangNative:
		return strings.ToUpper(string(p)[:1]) + string(p)[1:]
	default:
		return strings.TrimSpace(string(p))
	}
}
