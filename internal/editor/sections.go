package editor

import (
	"fmt"

	"resume-builder/internal/domain"
)

// Add appends a blank entry to a list section of d and returns the new
// snapshot with the entry's id.
func (ed *Editor) Add(d domain.ResumeData, section domain.Section) (domain.ResumeData, string, error) {
	var id string
	switch section {
	case domain.SectionExperience:
		d.Experiences, id = ed.AddExperience(d.Experiences)
	case domain.SectionEducation:
		d.Education, id = ed.AddEducation(d.Education)
	case domain.SectionProjects:
		d.Projects, id = ed.AddProject(d.Projects)
	case domain.SectionSkills:
		d.Skills, id = ed.AddSkill(d.Skills)
	default:
		return d, "", fmt.Errorf("%w: %q has no entries", domain.ErrUnknownSection, section)
	}
	return d, id, nil
}

// Update replaces one field. The personal section ignores id.
func Update(d domain.ResumeData, section domain.Section, id, field string, value any) (domain.ResumeData, error) {
	var err error
	switch section {
	case domain.SectionPersonal:
		d.PersonalInfo, err = UpdatePersonal(d.PersonalInfo, field, value)
	case domain.SectionExperience:
		d.Experiences, err = UpdateExperience(d.Experiences, id, field, value)
	case domain.SectionEducation:
		d.Education, err = UpdateEducation(d.Education, id, field, value)
	case domain.SectionProjects:
		d.Projects, err = UpdateProject(d.Projects, id, field, value)
	case domain.SectionSkills:
		d.Skills, err = UpdateSkill(d.Skills, id, field, value)
	default:
		err = fmt.Errorf("%w: %q", domain.ErrUnknownSection, section)
	}
	return d, err
}

// Remove drops the entry with id from a list section. Unknown ids are a no-op.
func Remove(d domain.ResumeData, section domain.Section, id string) (domain.ResumeData, error) {
	switch section {
	case domain.SectionExperience:
		d.Experiences = RemoveExperience(d.Experiences, id)
	case domain.SectionEducation:
		d.Education = RemoveEducation(d.Education, id)
	case domain.SectionProjects:
		d.Projects = RemoveProject(d.Projects, id)
	case domain.SectionSkills:
		d.Skills = RemoveSkill(d.Skills, id)
	default:
		return d, fmt.Errorf("%w: %q has no entries", domain.ErrUnknownSection, section)
	}
	return d, nil
}
