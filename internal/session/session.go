// Package session implements an in-memory editing session over one CV. Every
// command produces a fresh normalized snapshot; callers never share backing
// storage with the session, so a returned snapshot stays stable while editing
// continues. A bounded undo history restores earlier snapshots.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/adaeze/cv-studio/internal/normalize"
	"github.com/adaeze/cv-studio/internal/types"
)

// historyLimit bounds how many snapshots Undo can walk back through.
const historyLimit = 50

// Session is a single-CV editor. Safe for concurrent use.
type Session struct {
	mu      sync.Mutex
	current types.CV
	history []types.CV
}

// New starts a session on a CV. The input is normalized, so a session always
// edits a well-formed document.
func New(cv types.CV) *Session {
	return &Session{current: normalize.Normalize(cv)}
}

// Snapshot returns the current document. The copy is independent of the
// session's internal state.
func (s *Session) Snapshot() types.CV {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.current)
}

// CanUndo reports whether an earlier snapshot exists.
func (s *Session) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history) > 0
}

// Undo restores the snapshot preceding the last command.
func (s *Session) Undo() (types.CV, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.history) == 0 {
		return types.CV{}, &CommandError{Message: "nothing to undo"}
	}
	s.current = s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	return clone(s.current), nil
}

// apply edits a copy of the current document and commits the normalized
// result, pushing the prior snapshot onto the undo history. The edit reports
// whether it found its target; a miss commits nothing.
func (s *Session) apply(edit func(cv *types.CV) bool) (types.CV, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := clone(s.current)
	if !edit(&next) {
		return types.CV{}, false
	}
	s.history = append(s.history, s.current)
	if len(s.history) > historyLimit {
		s.history = s.history[1:]
	}
	s.current = normalize.Normalize(next)
	return clone(s.current), true
}

func (s *Session) mustApply(edit func(cv *types.CV)) types.CV {
	cv, _ := s.apply(func(cv *types.CV) bool { edit(cv); return true })
	return cv
}

func (s *Session) applyByID(id string, edit func(cv *types.CV) bool) (types.CV, error) {
	cv, ok := s.apply(edit)
	if !ok {
		return types.CV{}, &NotFoundError{ID: id}
	}
	return cv, nil
}

// SetPersonalInfo replaces the personal details.
func (s *Session) SetPersonalInfo(info types.PersonalInfo) types.CV {
	return s.mustApply(func(cv *types.CV) { cv.PersonalInfo = info })
}

// SetSummary replaces the professional summary.
func (s *Session) SetSummary(summary string) types.CV {
	return s.mustApply(func(cv *types.CV) { cv.Summary = summary })
}

// SetTemplate switches the selected template. Unknown ids are rejected rather
// than silently replaced; the fallback is for stored data, not user commands.
func (s *Session) SetTemplate(id types.TemplateID) (types.CV, error) {
	if !types.ValidTemplateID(id) {
		return types.CV{}, &CommandError{Message: "unknown template id: " + string(id)}
	}
	return s.mustApply(func(cv *types.CV) { cv.TemplateID = id }), nil
}

// SetPresentation replaces the presentation settings; normalization repairs
// the section order and enum fields.
func (s *Session) SetPresentation(p types.CVPresentation) types.CV {
	return s.mustApply(func(cv *types.CV) { cv.Presentation = &p })
}

// AddExperience appends an employment entry, assigning an id when absent.
func (s *Session) AddExperience(exp types.WorkExperience) types.CV {
	ensureID(&exp.ID)
	return s.mustApply(func(cv *types.CV) { cv.Experience = append(cv.Experience, exp) })
}

// UpdateExperience replaces the entry with the same id.
func (s *Session) UpdateExperience(exp types.WorkExperience) (types.CV, error) {
	return s.applyByID(exp.ID, func(cv *types.CV) bool {
		return replaceItem(cv.Experience, exp, expID)
	})
}

// RemoveExperience deletes the entry with the id.
func (s *Session) RemoveExperience(id string) (types.CV, error) {
	return s.applyByID(id, func(cv *types.CV) (ok bool) {
		cv.Experience, ok = removeItem(cv.Experience, id, expID)
		return ok
	})
}

// AddEducation appends an education entry, assigning an id when absent.
func (s *Session) AddEducation(edu types.Education) types.CV {
	ensureID(&edu.ID)
	return s.mustApply(func(cv *types.CV) { cv.Education = append(cv.Education, edu) })
}

// UpdateEducation replaces the entry with the same id.
func (s *Session) UpdateEducation(edu types.Education) (types.CV, error) {
	return s.applyByID(edu.ID, func(cv *types.CV) bool {
		return replaceItem(cv.Education, edu, eduID)
	})
}

// RemoveEducation deletes the entry with the id.
func (s *Session) RemoveEducation(id string) (types.CV, error) {
	return s.applyByID(id, func(cv *types.CV) (ok bool) {
		cv.Education, ok = removeItem(cv.Education, id, eduID)
		return ok
	})
}

// AddSkill appends a skill, assigning an id when absent.
func (s *Session) AddSkill(skill types.Skill) types.CV {
	ensureID(&skill.ID)
	return s.mustApply(func(cv *types.CV) { cv.Skills = append(cv.Skills, skill) })
}

// UpdateSkill replaces the skill with the same id.
func (s *Session) UpdateSkill(skill types.Skill) (types.CV, error) {
	return s.applyByID(skill.ID, func(cv *types.CV) bool {
		return replaceItem(cv.Skills, skill, skillID)
	})
}

// RemoveSkill deletes the skill with the id.
func (s *Session) RemoveSkill(id string) (types.CV, error) {
	return s.applyByID(id, func(cv *types.CV) (ok bool) {
		cv.Skills, ok = removeItem(cv.Skills, id, skillID)
		return ok
	})
}

// AddLanguage appends a language, assigning an id when absent.
func (s *Session) AddLanguage(lang types.Language) types.CV {
	ensureID(&lang.ID)
	return s.mustApply(func(cv *types.CV) { cv.Languages = append(cv.Languages, lang) })
}

// UpdateLanguage replaces the language with the same id.
func (s *Session) UpdateLanguage(lang types.Language) (types.CV, error) {
	return s.applyByID(lang.ID, func(cv *types.CV) bool {
		return replaceItem(cv.Languages, lang, langID)
	})
}

// RemoveLanguage deletes the language with the id.
func (s *Session) RemoveLanguage(id string) (types.CV, error) {
	return s.applyByID(id, func(cv *types.CV) (ok bool) {
		cv.Languages, ok = removeItem(cv.Languages, id, langID)
		return ok
	})
}

// AddCertification appends a certification, assigning an id when absent.
func (s *Session) AddCertification(cert types.Certification) types.CV {
	ensureID(&cert.ID)
	return s.mustApply(func(cv *types.CV) { cv.Certifications = append(cv.Certifications, cert) })
}

// UpdateCertification replaces the certification with the same id.
func (s *Session) UpdateCertification(cert types.Certification) (types.CV, error) {
	return s.applyByID(cert.ID, func(cv *types.CV) bool {
		return replaceItem(cv.Certifications, cert, certID)
	})
}

// RemoveCertification deletes the certification with the id.
func (s *Session) RemoveCertification(id string) (types.CV, error) {
	return s.applyByID(id, func(cv *types.CV) (ok bool) {
		cv.Certifications, ok = removeItem(cv.Certifications, id, certID)
		return ok
	})
}

// AddReferee appends a referee, assigning an id when absent.
func (s *Session) AddReferee(ref types.Referee) types.CV {
	ensureID(&ref.ID)
	return s.mustApply(func(cv *types.CV) { cv.Referees = append(cv.Referees, ref) })
}

// UpdateReferee replaces the referee with the same id.
func (s *Session) UpdateReferee(ref types.Referee) (types.CV, error) {
	return s.applyByID(ref.ID, func(cv *types.CV) bool {
		return replaceItem(cv.Referees, ref, refID)
	})
}

// RemoveReferee deletes the referee with the id.
func (s *Session) RemoveReferee(id string) (types.CV, error) {
	return s.applyByID(id, func(cv *types.CV) (ok bool) {
		cv.Referees, ok = removeItem(cv.Referees, id, refID)
		return ok
	})
}

func expID(e types.WorkExperience) string { return e.ID }
func eduID(e types.Education) string      { return e.ID }
func skillID(s types.Skill) string        { return s.ID }
func langID(l types.Language) string      { return l.ID }
func certID(c types.Certification) string { return c.ID }
func refID(r types.Referee) string        { return r.ID }

func ensureID(id *string) {
	if *id == "" {
		*id = uuid.New().String()
	}
}

// replaceItem swaps the element with the matching id in place.
func replaceItem[T any](items []T, item T, getID func(T) string) bool {
	for i := range items {
		if getID(items[i]) == getID(item) {
			items[i] = item
			return true
		}
	}
	return false
}

// removeItem drops the element with the matching id.
func removeItem[T any](items []T, id string, getID func(T) string) ([]T, bool) {
	kept := make([]T, 0, len(items))
	found := false
	for _, item := range items {
		if getID(item) == id {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	return kept, found
}

// clone deep-copies via normalization, which rebuilds every slice and nested
// struct from a JSON round trip.
func clone(cv types.CV) types.CV {
	return normalize.Normalize(cv)
}
