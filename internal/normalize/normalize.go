// Package normalize repairs possibly-partial or legacy CV data into
// structurally complete records. Normalization is total and idempotent: it
// never fails on malformed input and never drops user data, only repairs
// shape.
package normalize

import (
	"encoding/json"

	"github.com/adaeze/cv-studio/internal/types"
)

// Empty returns a fresh structurally complete CV with every slice allocated
// and the default template selected.
func Empty() types.CV {
	return types.CV{
		TemplateID:     types.TemplateModern,
		Experience:     []types.WorkExperience{},
		Education:      []types.Education{},
		Skills:         []types.Skill{},
		Certifications: []types.Certification{},
		Languages:      []types.Language{},
		Referees:       []types.Referee{},
	}
}

// DefaultPresentation returns the presentation record every partial input is
// overlaid onto.
func DefaultPresentation() types.CVPresentation {
	return types.CVPresentation{
		SectionOrder:   types.CanonicalSectionOrder(),
		HiddenSections: []types.SectionKey{},
		Density:        types.DensityComfortable,
		FontScale:      types.FontScaleMD,
	}
}

// Normalize produces a structurally complete CV from any input. Every
// top-level field present in raw is overlaid onto a fresh default; nested
// objects are overlaid onto their own defaults field by field; non-array
// collection values are replaced by empty slices; an unrecognized template id
// falls back to "modern". Fields whose JSON type does not match are left at
// their default, which is the repair, not an error.
func Normalize(raw any) types.CV {
	cv := Empty()
	if raw == nil {
		return cv
	}

	buf, err := json.Marshal(raw)
	if err != nil {
		return cv
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(buf, &fields); err != nil {
		// Not an object at all; nothing to overlay.
		return cv
	}

	overlayString(fields["id"], &cv.ID)
	overlayString(fields["summary"], &cv.Summary)
	overlayString(fields["createdAt"], &cv.CreatedAt)
	overlayString(fields["updatedAt"], &cv.UpdatedAt)

	var templateID types.TemplateID
	if overlayString(fields["templateId"], (*string)(&templateID)) && types.ValidTemplateID(templateID) {
		cv.TemplateID = templateID
	}

	overlayObject(fields["personalInfo"], &cv.PersonalInfo)

	cv.Experience = overlaySlice[types.WorkExperience](fields["experience"])
	cv.Education = overlaySlice[types.Education](fields["education"])
	cv.Skills = overlaySlice[types.Skill](fields["skills"])
	cv.Certifications = overlaySlice[types.Certification](fields["certifications"])
	cv.Languages = overlaySlice[types.Language](fields["languages"])
	cv.Referees = overlaySlice[types.Referee](fields["referees"])

	if isObject(fields["presentation"]) {
		p := DefaultPresentation()
		overlayObject(fields["presentation"], &p)
		p = NormalizePresentation(p)
		cv.Presentation = &p
	}
	if isObject(fields["targeting"]) {
		var t types.CVTargeting
		overlayObject(fields["targeting"], &t)
		if t.Keywords == nil {
			t.Keywords = []string{}
		}
		cv.Targeting = &t
	}
	if isObject(fields["variantMeta"]) {
		var v types.VariantMeta
		overlayObject(fields["variantMeta"], &v)
		cv.VariantMeta = &v
	}

	return cv
}

// NormalizePresentation repairs a presentation record. SectionOrder keeps
// only recognized, first-occurrence keys from the input and then appends any
// canonical key still missing, so the result is always a total order over all
// sections. HiddenSections keeps recognized keys, deduplicated, preserving
// order. Enum fields fall back to their defaults.
func NormalizePresentation(p types.CVPresentation) types.CVPresentation {
	seen := map[types.SectionKey]bool{}
	order := []types.SectionKey{}
	for _, key := range p.SectionOrder {
		if types.ValidSectionKey(key) && !seen[key] {
			seen[key] = true
			order = append(order, key)
		}
	}
	for _, key := range types.CanonicalSectionOrder() {
		if !seen[key] {
			order = append(order, key)
		}
	}

	hiddenSeen := map[types.SectionKey]bool{}
	hidden := []types.SectionKey{}
	for _, key := range p.HiddenSections {
		if types.ValidSectionKey(key) && !hiddenSeen[key] {
			hiddenSeen[key] = true
			hidden = append(hidden, key)
		}
	}

	density := p.Density
	if density != types.DensityComfortable && density != types.DensityCompact {
		density = types.DensityComfortable
	}
	fontScale := p.FontScale
	if fontScale != types.FontScaleSM && fontScale != types.FontScaleMD && fontScale != types.FontScaleLG {
		fontScale = types.FontScaleMD
	}

	return types.CVPresentation{
		SectionOrder:   order,
		HiddenSections: hidden,
		Density:        density,
		FontScale:      fontScale,
		AccentVariant:  p.AccentVariant,
	}
}

// overlayString copies a JSON string value into dst. Non-string values are
// ignored, which leaves the default in place.
func overlayString(raw json.RawMessage, dst *string) bool {
	if raw == nil {
		return false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return false
	}
	*dst = s
	return true
}

// overlayObject overlays a JSON object onto dst, which already holds the
// defaults. Mismatched fields inside the object keep their defaults:
// encoding/json fills everything it can before reporting the first type
// error, and that error is deliberately discarded here.
func overlayObject(raw json.RawMessage, dst any) {
	if !isObject(raw) {
		return
	}
	_ = json.Unmarshal(raw, dst)
}

// overlaySlice decodes a JSON array element by element. Anything that is not
// an array yields the empty slice. Elements with mismatched fields keep their
// zero values for those fields so no entry is ever dropped.
func overlaySlice[T any](raw json.RawMessage) []T {
	out := []T{}
	if raw == nil {
		return out
	}
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return out
	}
	for _, el := range elements {
		var item T
		_ = json.Unmarshal(el, &item)
		out = append(out, item)
	}
	return out
}

func isObject(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return b == '{'
		}
	}
	return false
}
