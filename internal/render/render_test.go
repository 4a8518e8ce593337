package render

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/adaeze/cv-studio/internal/normalize"
	"github.com/adaeze/cv-studio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func testCV() types.CV {
	cv := normalize.Empty()
	cv.PersonalInfo = types.PersonalInfo{
		FirstName: "Ada",
		LastName:  "Obi",
		Email:     "ada@example.com",
		LinkedIn:  "linkedin.com/in/ada",
	}
	cv.Summary = "Backend engineer focused on payments."
	cv.Experience = []types.WorkExperience{
		{ID: "e1", JobTitle: "Engineer", Company: "Acme", StartDate: "2022-03", Current: true,
			Description: "Built the billing service\nCut costs 20%"},
	}
	cv.Skills = []types.Skill{
		{ID: "s1", Name: "Go", Level: types.SkillExpert, Category: types.SkillTechnical},
	}
	return cv
}

func TestScreen_AllTemplatesRenderEmptyCVWithHeaderOnly(t *testing.T) {
	cv := normalize.Empty()

	for _, id := range types.TemplateIDs() {
		html, err := Screen(cv, id)
		require.NoError(t, err, "template %s", id)

		doc := parseHTML(t, html)
		assert.Equal(t, "Your Name", strings.TrimSpace(doc.Find("h1.name").Text()), "template %s", id)
		assert.Zero(t, doc.Find("section.sec").Length(), "template %s should render no empty headings", id)
		assert.NotContains(t, html, "undefined")
	}
}

func TestScreen_NigerianWithoutExperienceHasNoExperienceHeading(t *testing.T) {
	cv := normalize.Empty()
	cv.PersonalInfo.FirstName = "Ada"
	cv.PersonalInfo.Email = "ada@example.com"

	html, err := Screen(cv, types.TemplateNigerian)
	require.NoError(t, err)

	doc := parseHTML(t, html)
	assert.NotContains(t, doc.Text(), "Work Experience")
	assert.Equal(t, "Ada", strings.TrimSpace(doc.Find("h1.name").Text()))
	assert.Contains(t, doc.Find(".contacts").Text(), "ada@example.com")
}

func TestScreen_SectionLabelsFollowTheme(t *testing.T) {
	cv := testCV()

	html, err := Screen(cv, types.TemplateNigerian)
	require.NoError(t, err)
	assert.Contains(t, parseHTML(t, html).Find(".sec-summary .sec-title").Text(), "Career Objective")

	html, err = Screen(cv, types.TemplateExecutive)
	require.NoError(t, err)
	doc := parseHTML(t, html)
	assert.Contains(t, doc.Find(".sec-summary .sec-title").Text(), "Executive Profile")
	assert.Contains(t, doc.Find(".sec-experience .sec-title").Text(), "Leadership Experience")
}

func TestScreen_SkillsModeBadgesVsBars(t *testing.T) {
	cv := testCV()

	html, err := Screen(cv, types.TemplateModern)
	require.NoError(t, err)
	doc := parseHTML(t, html)
	assert.Positive(t, doc.Find(".badge").Length())
	assert.Zero(t, doc.Find(".bar-fill").Length())

	html, err = Screen(cv, types.TemplateTech)
	require.NoError(t, err)
	doc = parseHTML(t, html)
	assert.Positive(t, doc.Find(".bar-fill").Length())
	assert.Zero(t, doc.Find(".badge").Length())
}

func TestScreen_CurrentRoleShowsPresent(t *testing.T) {
	html, err := Screen(testCV(), types.TemplateModern)
	require.NoError(t, err)

	assert.Contains(t, parseHTML(t, html).Find(".entry-meta").Text(), "Mar 2022 - Present")
}

func TestScreen_LinkSynthesizesHrefKeepsLabel(t *testing.T) {
	html, err := Screen(testCV(), types.TemplateMinimal)
	require.NoError(t, err)

	link := parseHTML(t, html).Find("a.link-linkedin")
	require.Equal(t, 1, link.Length())
	href, _ := link.Attr("href")
	assert.Equal(t, "https://linkedin.com/in/ada", href)
	assert.Equal(t, "linkedin.com/in/ada", strings.TrimSpace(link.Text()))
}

func TestScreen_SplitTemplatesPlaceSkillsInSidebar(t *testing.T) {
	for _, id := range []types.TemplateID{types.TemplateCreative, types.TemplateExecutive, types.TemplateTech} {
		html, err := Screen(testCV(), id)
		require.NoError(t, err)

		doc := parseHTML(t, html)
		assert.Equal(t, 1, doc.Find("aside .sec-skills").Length(), "template %s", id)
		assert.Zero(t, doc.Find("main .sec-skills").Length(), "template %s", id)
	}
}

func TestScreen_EscapesUserContent(t *testing.T) {
	cv := testCV()
	cv.Summary = `<script>alert("x")</script>`

	html, err := Screen(cv, types.TemplateModern)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert")
}

func TestScreen_Deterministic(t *testing.T) {
	cv := testCV()
	first, err := Screen(cv, types.TemplateCreative)
	require.NoError(t, err)
	second, err := Screen(cv, types.TemplateCreative)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestScreen_UnknownTemplateIDIsAnError(t *testing.T) {
	_, err := Screen(testCV(), types.TemplateID("bogus"))
	require.Error(t, err)
}

func TestPreview_BackfillsDemoData(t *testing.T) {
	html, err := Preview(normalize.Empty(), types.TemplateProfessional)
	require.NoError(t, err)

	doc := parseHTML(t, html)
	assert.Equal(t, "Adaeze Okafor", strings.TrimSpace(doc.Find("h1.name").Text()))
	assert.Positive(t, doc.Find("section.sec").Length())
}

func TestPreview_UserDataWinsOverDemo(t *testing.T) {
	cv := normalize.Empty()
	cv.PersonalInfo.FirstName = "Ngozi"
	cv.PersonalInfo.LastName = "Bello"

	html, err := Preview(cv, types.TemplateModern)
	require.NoError(t, err)

	assert.Equal(t, "Ngozi Bello", strings.TrimSpace(parseHTML(t, html).Find("h1.name").Text()))
}
