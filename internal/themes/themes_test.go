package themes

import (
	"testing"

	"github.com/adaeze/cv-studio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_EveryTemplateIDHasExactlyOneTheme(t *testing.T) {
	seen := map[types.TemplateID]bool{}
	for _, id := range types.TemplateIDs() {
		theme, err := Get(id)
		require.NoError(t, err)
		assert.Equal(t, id, theme.ID)
		assert.False(t, seen[id], "duplicate theme for %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, 7)
}

func TestGet_UnknownIDIsAnError(t *testing.T) {
	_, err := Get(types.TemplateID("bogus"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}

func TestMustGet_PanicsOnUnknownID(t *testing.T) {
	assert.Panics(t, func() { MustGet(types.TemplateID("bogus")) })
}

func TestSectionLabel_ThemeOverridesAndDefaults(t *testing.T) {
	nigerian := MustGet(types.TemplateNigerian)
	assert.Equal(t, "Career Objective", nigerian.SectionLabel(types.SectionSummary))
	assert.Equal(t, "Work Experience", nigerian.SectionLabel(types.SectionExperience))

	executive := MustGet(types.TemplateExecutive)
	assert.Equal(t, "Executive Profile", executive.SectionLabel(types.SectionSummary))
	assert.Equal(t, "Leadership Experience", executive.SectionLabel(types.SectionExperience))

	modern := MustGet(types.TemplateModern)
	assert.Equal(t, "Professional Summary", modern.SectionLabel(types.SectionSummary))
}

func TestThemes_RequiredParametersArePresent(t *testing.T) {
	for _, theme := range All() {
		assert.NotEmpty(t, theme.Name, "theme %s", theme.ID)
		assert.NotEmpty(t, theme.Layout, "theme %s", theme.ID)
		assert.NotEmpty(t, theme.Header, "theme %s", theme.ID)
		assert.NotEmpty(t, theme.SkillsMode, "theme %s", theme.ID)
		assert.NotEmpty(t, theme.Palette.Accent, "theme %s", theme.ID)
		assert.NotEmpty(t, theme.Palette.Text, "theme %s", theme.ID)
		assert.NotEmpty(t, theme.Fonts.Body, "theme %s", theme.ID)
	}
}

func TestAll_CatalogOrder(t *testing.T) {
	all := All()
	require.Len(t, all, 7)
	assert.Equal(t, types.TemplateModern, all[0].ID)
	assert.Equal(t, types.TemplateTech, all[6].ID)
}
