package editor

import "resume-builder/internal/domain"

func projectID(p domain.Project) string { return p.ID }

func (ed *Editor) AddProject(list []domain.Project) ([]domain.Project, string) {
	id := ed.newID()
	return appendEntry(list, domain.Project{ID: id}), id
}

func UpdateProject(list []domain.Project, id, field string, value any) ([]domain.Project, error) {
	return replaceByID(list, id, projectID, func(p domain.Project) (domain.Project, error) {
		var err error
		switch field {
		case "name":
			p.Name, err = asString(field, value)
		case "description":
			p.Description, err = asString(field, value)
		case "technologies":
			p.Technologies, err = asString(field, value)
		case "link":
			p.Link, err = asString(field, value)
		default:
			err = unknownField("projects", field)
		}
		return p, err
	})
}

func RemoveProject(list []domain.Project, id string) []domain.Project {
	return removeByID(list, id, projectID)
}
