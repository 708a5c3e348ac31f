package usecase

import (
	"resume-builder/internal/domain"
	"resume-builder/internal/editor"
)

// Action is one discrete edit. Applying an action is pure: it receives the
// current snapshot and returns the proposed next one.
type Action interface {
	apply(ed *editor.Editor, d domain.ResumeData) (domain.ResumeData, string, error)
}

// AddEntry appends a blank entry to a list section.
type AddEntry struct {
	Section domain.Section
}

// UpdateEntry replaces one field of one entry. For the personal section ID
// is ignored.
type UpdateEntry struct {
	Section domain.Section
	ID      string
	Field   string
	Value   any
}

// RemoveEntry drops an entry by id. Unknown ids are a no-op.
type RemoveEntry struct {
	Section domain.Section
	ID      string
}

type UpdatePersonal struct {
	Field string
	Value any
}

// SetSkillLevel sets a level, clamped to 1-5.
type SetSkillLevel struct {
	ID    string
	Level domain.Level
}

// AddSkill appends a named skill. A blank name adds nothing.
type AddSkill struct {
	Name  string
	Level domain.Level
}

// SetProfilePicture stores an already encoded picture. Empty clears it.
type SetProfilePicture struct {
	Picture string
}

// ReplaceAll swaps in a whole snapshot, e.g. after an import.
type ReplaceAll struct {
	Data domain.ResumeData
}

// Reset returns to the empty resume.
type Reset struct{}

func (a AddEntry) apply(ed *editor.Editor, d domain.ResumeData) (domain.ResumeData, string, error) {
	return ed.Add(d, a.Section)
}

func (a UpdateEntry) apply(_ *editor.Editor, d domain.ResumeData) (domain.ResumeData, string, error) {
	next, err := editor.Update(d, a.Section, a.ID, a.Field, a.Value)
	return next, a.ID, err
}

func (a RemoveEntry) apply(_ *editor.Editor, d domain.ResumeData) (domain.ResumeData, string, error) {
	next, err := editor.Remove(d, a.Section, a.ID)
	return next, a.ID, err
}

func (a UpdatePersonal) apply(_ *editor.Editor, d domain.ResumeData) (domain.ResumeData, string, error) {
	var err error
	d.PersonalInfo, err = editor.UpdatePersonal(d.PersonalInfo, a.Field, a.Value)
	return d, "", err
}

func (a SetSkillLevel) apply(_ *editor.Editor, d domain.ResumeData) (domain.ResumeData, string, error) {
	d.Skills = editor.SetSkillLevel(d.Skills, a.ID, a.Level)
	return d, a.ID, nil
}

func (a AddSkill) apply(ed *editor.Editor, d domain.ResumeData) (domain.ResumeData, string, error) {
	var id string
	d.Skills, id = ed.AddNamedSkill(d.Skills, a.Name, a.Level)
	return d, id, nil
}

func (a SetProfilePicture) apply(_ *editor.Editor, d domain.ResumeData) (domain.ResumeData, string, error) {
	d.PersonalInfo.ProfilePicture = a.Picture
	return d, "", nil
}

func (a ReplaceAll) apply(_ *editor.Editor, _ domain.ResumeData) (domain.ResumeData, string, error) {
	return a.Data.Clone(), "", nil
}

func (Reset) apply(_ *editor.Editor, _ domain.ResumeData) (domain.ResumeData, string, error) {
	return domain.Empty(), "", nil
}
