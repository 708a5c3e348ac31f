package editor

import "resume-builder/internal/domain"

func experienceID(e domain.Experience) string { return e.ID }

// AddExperience appends a blank entry and returns its id.
func (ed *Editor) AddExperience(list []domain.Experience) ([]domain.Experience, string) {
	id := ed.newID()
	return appendEntry(list, domain.Experience{ID: id}), id
}

// UpdateExperience replaces one field of the entry with the given id.
func UpdateExperience(list []domain.Experience, id, field string, value any) ([]domain.Experience, error) {
	return replaceByID(list, id, experienceID, func(e domain.Experience) (domain.Experience, error) {
		var err error
		switch field {
		case "company":
			e.Company, err = asString(field, value)
		case "position":
			e.Position, err = asString(field, value)
		case "startDate":
			e.StartDate, err = asString(field, value)
		case "endDate":
			e.EndDate, err = asString(field, value)
		case "current":
			e.Current, err = asBool(field, value)
		case "description":
			e.Description, err = asString(field, value)
		default:
			err = unknownField("experience", field)
		}
		return e, err
	})
}

func RemoveExperience(list []domain.Experience, id string) []domain.Experience {
	return removeByID(list, id, experienceID)
}
