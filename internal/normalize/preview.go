package normalize

import (
	"strings"

	"github.com/adaeze/cv-studio/internal/types"
)

// demoCV is the fixed underlay shown in template previews. Field values are
// deliberately plausible rather than lorem ipsum so previews read like a real
// document.
func demoCV() types.CV {
	return types.CV{
		TemplateID: types.TemplateModern,
		PersonalInfo: types.PersonalInfo{
			FirstName: "Adaeze",
			LastName:  "Okafor",
			Email:     "adaeze.okafor@example.com",
			Phone:     "+234 803 555 0192",
			Address:   "14 Admiralty Way, Lekki, Lagos",
			LinkedIn:  "linkedin.com/in/adaezeokafor",
			Portfolio: "adaezeokafor.dev",
		},
		Summary: "Product-minded software engineer with six years of experience building " +
			"payment and logistics platforms across West Africa. Comfortable owning features " +
			"from discovery through production support.",
		Experience: []types.WorkExperience{
			{
				ID:        "demo-exp-1",
				JobTitle:  "Senior Software Engineer",
				Company:   "PayStream Technologies",
				Location:  "Lagos, Nigeria",
				StartDate: "2021-04",
				Current:   true,
				Description: "Led the card-settlement rewrite that cut reconciliation time from hours to minutes\n" +
					"Mentored a team of four engineers through two major releases\n" +
					"Introduced contract tests that halved integration incidents",
			},
			{
				ID:        "demo-exp-2",
				JobTitle:  "Software Engineer",
				Company:   "Kobo Logistics",
				Location:  "Lagos, Nigeria",
				StartDate: "2018-09",
				EndDate:   "2021-03",
				Description: "Built the driver-dispatch API serving 40k requests per day\n" +
					"Reduced fleet idle time 18% with smarter job assignment",
			},
		},
		Education: []types.Education{
			{
				ID:           "demo-edu-1",
				Degree:       "B.Sc. Computer Science",
				Institution:  "University of Lagos",
				Location:     "Lagos, Nigeria",
				StartDate:    "2013-10",
				EndDate:      "2017-07",
				FieldOfStudy: "Computer Science",
			},
		},
		Skills: []types.Skill{
			{ID: "demo-skill-1", Name: "Go", Level: types.SkillExpert, Category: types.SkillTechnical},
			{ID: "demo-skill-2", Name: "PostgreSQL", Level: types.SkillAdvanced, Category: types.SkillTechnical},
			{ID: "demo-skill-3", Name: "Distributed Systems", Level: types.SkillAdvanced, Category: types.SkillTechnical},
			{ID: "demo-skill-4", Name: "Team Leadership", Level: types.SkillAdvanced, Category: types.SkillSoft},
			{ID: "demo-skill-5", Name: "Communication", Level: types.SkillExpert, Category: types.SkillSoft},
		},
		Certifications: []types.Certification{
			{
				ID:     "demo-cert-1",
				Name:   "AWS Certified Solutions Architect",
				Issuer: "Amazon Web Services",
				Date:   "2022-11",
			},
		},
		Languages: []types.Language{
			{ID: "demo-lang-1", Language: "English", Proficiency: types.LangNative},
			{ID: "demo-lang-2", Language: "Igbo", Proficiency: types.LangFluent},
		},
		Referees: []types.Referee{
			{
				ID:           "demo-ref-1",
				Name:         "Chinedu Eze",
				Position:     "VP of Engineering",
				Company:      "PayStream Technologies",
				Email:        "chinedu.eze@example.com",
				Relationship: "Direct manager",
			},
		},
	}
}

// BuildPreviewCV overlays the fixed demo CV under the user's data so template
// previews are never visibly empty. Non-empty user collections win wholesale;
// blank or whitespace-only text fields fall back to the demo value while
// non-blank text is kept verbatim.
func BuildPreviewCV(cv types.CV, templateID types.TemplateID) types.CV {
	demo := demoCV()
	out := cv

	out.TemplateID = templateID
	if !types.ValidTemplateID(out.TemplateID) {
		out.TemplateID = types.TemplateModern
	}

	out.PersonalInfo.FirstName = textOr(cv.PersonalInfo.FirstName, demo.PersonalInfo.FirstName)
	out.PersonalInfo.LastName = textOr(cv.PersonalInfo.LastName, demo.PersonalInfo.LastName)
	out.PersonalInfo.Email = textOr(cv.PersonalInfo.Email, demo.PersonalInfo.Email)
	out.PersonalInfo.Phone = textOr(cv.PersonalInfo.Phone, demo.PersonalInfo.Phone)
	out.PersonalInfo.Address = textOr(cv.PersonalInfo.Address, demo.PersonalInfo.Address)
	out.PersonalInfo.LinkedIn = textOr(cv.PersonalInfo.LinkedIn, demo.PersonalInfo.LinkedIn)
	out.PersonalInfo.Portfolio = textOr(cv.PersonalInfo.Portfolio, demo.PersonalInfo.Portfolio)
	out.Summary = textOr(cv.Summary, demo.Summary)

	if len(cv.Experience) == 0 {
		out.Experience = demo.Experience
	}
	if len(cv.Education) == 0 {
		out.Education = demo.Education
	}
	if len(cv.Skills) == 0 {
		out.Skills = demo.Skills
	}
	if len(cv.Certifications) == 0 {
		out.Certifications = demo.Certifications
	}
	if len(cv.Languages) == 0 {
		out.Languages = demo.Languages
	}
	if len(cv.Referees) == 0 {
		out.Referees = demo.Referees
	}

	return out
}

// textOr returns value unless it is blank, in which case fallback is used.
func textOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
