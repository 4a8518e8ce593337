package content

import (
	"testing"

	"github.com/adaeze/cv-studio/internal/normalize"
	"github.com/adaeze/cv-studio/internal/themes"
	"github.com/adaeze/cv-studio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCV() types.CV {
	cv := normalize.Empty()
	cv.PersonalInfo = types.PersonalInfo{
		FirstName: "Ada",
		LastName:  "Obi",
		Email:     "ada@example.com",
	}
	cv.Summary = "Backend engineer."
	cv.Experience = []types.WorkExperience{
		{ID: "e1", JobTitle: "Engineer", Company: "Acme", StartDate: "2022-03", Current: true,
			Description: "Built the billing service\nCut costs 20%"},
		{ID: "e2", JobTitle: "Junior Engineer", Company: "Kobo", StartDate: "2019-01", EndDate: "2022-02"},
	}
	cv.Education = []types.Education{
		{ID: "ed1", Degree: "B.Sc.", Institution: "UNILAG", StartDate: "2015-10", EndDate: "2019-07", FieldOfStudy: "CS"},
	}
	cv.Skills = []types.Skill{
		{ID: "s1", Name: "Go", Level: types.SkillExpert, Category: types.SkillTechnical},
		{ID: "s2", Name: "Mentoring", Level: types.SkillAdvanced, Category: types.SkillSoft},
	}
	cv.Languages = []types.Language{
		{ID: "l1", Language: "English", Proficiency: types.LangNative},
	}
	return cv
}

func sectionKeys(doc Document) []types.SectionKey {
	keys := []types.SectionKey{}
	for _, s := range doc.Sections {
		keys = append(keys, s.Key)
	}
	return keys
}

func TestBuild_OmitsEmptySections(t *testing.T) {
	doc := Build(sampleCV(), themes.MustGet(types.TemplateModern))

	keys := sectionKeys(doc)
	assert.NotContains(t, keys, types.SectionCertifications)
	assert.NotContains(t, keys, types.SectionReferees)
	assert.Contains(t, keys, types.SectionSummary)
	assert.Contains(t, keys, types.SectionExperience)
}

func TestBuild_AllEmptyCollectionsLeavesHeaderOnly(t *testing.T) {
	cv := normalize.Empty()
	cv.PersonalInfo.FirstName = "Ada"

	for _, theme := range themes.All() {
		doc := Build(cv, theme)
		assert.Empty(t, doc.Sections, "template %s", theme.ID)
		assert.Equal(t, "Ada", doc.Name)
	}
}

func TestBuild_BlankNamePlaceholder(t *testing.T) {
	doc := Build(normalize.Empty(), themes.MustGet(types.TemplateNigerian))
	assert.Equal(t, "Your Name", doc.Name)
}

func TestBuild_PreservesStoredEntryOrder(t *testing.T) {
	doc := Build(sampleCV(), themes.MustGet(types.TemplateMinimal))

	var experience *Section
	for i := range doc.Sections {
		if doc.Sections[i].Key == types.SectionExperience {
			experience = &doc.Sections[i]
		}
	}
	require.NotNil(t, experience)
	require.Len(t, experience.Entries, 2)
	assert.Equal(t, "Engineer", experience.Entries[0].Title)
	assert.Equal(t, "Junior Engineer", experience.Entries[1].Title)
	assert.Equal(t, "Mar 2022 - Present", experience.Entries[0].Meta)
}

func TestBuild_ExperienceDescriptionUsesFallbackLines(t *testing.T) {
	cv := sampleCV()
	cv.Experience = []types.WorkExperience{
		{ID: "e1", JobTitle: "Engineer", Company: "Acme", Description: "  single line, no bullets  "},
	}

	doc := Build(cv, themes.MustGet(types.TemplateModern))

	require.Len(t, doc.Sections[1].Entries, 1)
	assert.Equal(t, []string{"single line, no bullets"}, doc.Sections[1].Entries[0].Lines)
}

func TestBuild_SkillGroupsCarryPercentages(t *testing.T) {
	doc := Build(sampleCV(), themes.MustGet(types.TemplateTech))

	var skills *Section
	for i := range doc.Sections {
		if doc.Sections[i].Key == types.SectionSkills {
			skills = &doc.Sections[i]
		}
	}
	require.NotNil(t, skills)
	require.Len(t, skills.SkillGroups, 2)
	assert.Equal(t, "Tech Stack", skills.Label)
	assert.Equal(t, 94, skills.SkillGroups[0].Items[0].Percent)
}

func TestBuild_SplitLayoutRoutesSidebarSections(t *testing.T) {
	doc := Build(sampleCV(), themes.MustGet(types.TemplateExecutive))

	for _, s := range doc.SideSections() {
		assert.Contains(t, []types.SectionKey{
			types.SectionSkills, types.SectionLanguages, types.SectionCertifications,
		}, s.Key)
	}
	for _, s := range doc.MainSections() {
		assert.NotContains(t, []types.SectionKey{
			types.SectionSkills, types.SectionLanguages, types.SectionCertifications,
		}, s.Key)
	}
	assert.NotEmpty(t, doc.SideSections())
}

func TestBuild_SingleLayoutKeepsEverythingInMain(t *testing.T) {
	doc := Build(sampleCV(), themes.MustGet(types.TemplateProfessional))
	assert.Empty(t, doc.SideSections())
	assert.Len(t, doc.MainSections(), len(doc.Sections))
}

func TestBuild_RespectsPresentationSectionOrder(t *testing.T) {
	cv := sampleCV()
	p := normalize.NormalizePresentation(types.CVPresentation{
		SectionOrder: []types.SectionKey{types.SectionSkills, types.SectionSummary},
	})
	cv.Presentation = &p

	doc := Build(cv, themes.MustGet(types.TemplateMinimal))

	keys := sectionKeys(doc)
	require.NotEmpty(t, keys)
	assert.Equal(t, types.SectionSkills, keys[0])
	assert.Equal(t, types.SectionSummary, keys[1])
}

func TestBuild_HiddenSectionsAreDropped(t *testing.T) {
	cv := sampleCV()
	p := normalize.NormalizePresentation(types.CVPresentation{
		HiddenSections: []types.SectionKey{types.SectionSummary},
	})
	cv.Presentation = &p

	doc := Build(cv, themes.MustGet(types.TemplateModern))

	assert.NotContains(t, sectionKeys(doc), types.SectionSummary)
}

func TestBuild_RendersSomethingForMalformedContactData(t *testing.T) {
	cv := normalize.Empty()
	cv.PersonalInfo.Email = "not-an-email"
	cv.PersonalInfo.LinkedIn = "::::"

	doc := Build(cv, themes.MustGet(types.TemplateCreative))

	// Rendering tolerates malformed values; validation belongs to the form
	// boundary.
	require.Len(t, doc.Contacts, 1)
	assert.Equal(t, "not-an-email", doc.Contacts[0].Value)
	require.Len(t, doc.Links, 1)
	assert.Equal(t, "https://::::", doc.Links[0].Href)
}
