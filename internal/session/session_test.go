package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaeze/cv-studio/internal/normalize"
	"github.com/adaeze/cv-studio/internal/types"
)

func TestSession_AddExperienceAssignsID(t *testing.T) {
	s := New(normalize.Empty())
	cv := s.AddExperience(types.WorkExperience{JobTitle: "Engineer", Company: "Flutterwave"})
	require.Len(t, cv.Experience, 1)
	assert.NotEmpty(t, cv.Experience[0].ID)
	assert.Equal(t, "Engineer", cv.Experience[0].JobTitle)
}

func TestSession_UpdateExperience(t *testing.T) {
	s := New(normalize.Empty())
	cv := s.AddExperience(types.WorkExperience{JobTitle: "Engineer"})
	exp := cv.Experience[0]
	exp.JobTitle = "Senior Engineer"

	cv, err := s.UpdateExperience(exp)
	require.NoError(t, err)
	assert.Equal(t, "Senior Engineer", cv.Experience[0].JobTitle)
}

func TestSession_UpdateMissingIDFails(t *testing.T) {
	s := New(normalize.Empty())
	_, err := s.UpdateExperience(types.WorkExperience{ID: "ghost"})
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "ghost", nf.ID)
}

func TestSession_UpdateLanguage(t *testing.T) {
	s := New(normalize.Empty())
	cv := s.AddLanguage(types.Language{Language: "Igbo", Proficiency: types.LangFluent})
	lang := cv.Languages[0]
	lang.Proficiency = types.LangNative

	cv, err := s.UpdateLanguage(lang)
	require.NoError(t, err)
	assert.Equal(t, types.LangNative, cv.Languages[0].Proficiency)

	_, err = s.UpdateLanguage(types.Language{ID: "ghost"})
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestSession_UpdateCertification(t *testing.T) {
	s := New(normalize.Empty())
	cv := s.AddCertification(types.Certification{Name: "CKA", Issuer: "CNCF"})
	cert := cv.Certifications[0]
	cert.ExpiryDate = "2027-05"

	cv, err := s.UpdateCertification(cert)
	require.NoError(t, err)
	assert.Equal(t, "2027-05", cv.Certifications[0].ExpiryDate)
}

func TestSession_UpdateReferee(t *testing.T) {
	s := New(normalize.Empty())
	cv := s.AddReferee(types.Referee{Name: "Tunde Bakare", Company: "Kuda"})
	ref := cv.Referees[0]
	ref.Position = "Engineering Manager"

	cv, err := s.UpdateReferee(ref)
	require.NoError(t, err)
	assert.Equal(t, "Engineering Manager", cv.Referees[0].Position)
}

func TestSession_RemoveSkill(t *testing.T) {
	s := New(normalize.Empty())
	cv := s.AddSkill(types.Skill{Name: "Go", Level: types.SkillExpert})
	cv = s.AddSkill(types.Skill{Name: "SQL"})
	require.Len(t, cv.Skills, 2)

	cv, err := s.RemoveSkill(cv.Skills[0].ID)
	require.NoError(t, err)
	require.Len(t, cv.Skills, 1)
	assert.Equal(t, "SQL", cv.Skills[0].Name)

	_, err = s.RemoveSkill("ghost")
	require.Error(t, err)
}

func TestSession_SetTemplateRejectsUnknown(t *testing.T) {
	s := New(normalize.Empty())
	_, err := s.SetTemplate("futuristic")
	require.Error(t, err)
	assert.Equal(t, types.TemplateModern, s.Snapshot().TemplateID)

	cv, err := s.SetTemplate(types.TemplateExecutive)
	require.NoError(t, err)
	assert.Equal(t, types.TemplateExecutive, cv.TemplateID)
}

func TestSession_SetPresentationRepaired(t *testing.T) {
	s := New(normalize.Empty())
	cv := s.SetPresentation(types.CVPresentation{
		SectionOrder: []types.SectionKey{types.SectionSkills},
		Density:      "ultra",
	})
	assert.Equal(t, types.SectionSkills, cv.Presentation.SectionOrder[0])
	assert.Len(t, cv.Presentation.SectionOrder, len(types.CanonicalSectionOrder()))
	assert.Equal(t, types.DensityComfortable, cv.Presentation.Density)
}

func TestSession_Undo(t *testing.T) {
	s := New(normalize.Empty())
	assert.False(t, s.CanUndo())

	s.SetSummary("first")
	s.SetSummary("second")
	require.True(t, s.CanUndo())

	cv, err := s.Undo()
	require.NoError(t, err)
	assert.Equal(t, "first", cv.Summary)

	cv, err = s.Undo()
	require.NoError(t, err)
	assert.Empty(t, cv.Summary)

	_, err = s.Undo()
	require.Error(t, err)
}

func TestSession_FailedCommandLeavesNoHistory(t *testing.T) {
	s := New(normalize.Empty())
	_, err := s.RemoveReferee("ghost")
	require.Error(t, err)
	assert.False(t, s.CanUndo())
}

func TestSession_SnapshotIsIndependent(t *testing.T) {
	s := New(normalize.Empty())
	s.AddSkill(types.Skill{Name: "Go"})

	snap := s.Snapshot()
	snap.Skills[0].Name = "Rust"
	snap.Summary = "tampered"

	fresh := s.Snapshot()
	assert.Equal(t, "Go", fresh.Skills[0].Name)
	assert.Empty(t, fresh.Summary)
}
