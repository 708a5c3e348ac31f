package editor

import "resume-builder/internal/domain"

func educationID(e domain.Education) string { return e.ID }

func (ed *Editor) AddEducation(list []domain.Education) ([]domain.Education, string) {
	id := ed.newID()
	return appendEntry(list, domain.Education{ID: id}), id
}

func UpdateEducation(list []domain.Education, id, field string, value any) ([]domain.Education, error) {
	return replaceByID(list, id, educationID, func(e domain.Education) (domain.Education, error) {
		var err error
		switch field {
		case "institution":
			e.Institution, err = asString(field, value)
		case "degree":
			e.Degree, err = asString(field, value)
		case "field":
			e.Field, err = asString(field, value)
		case "graduationDate":
			e.GraduationDate, err = asString(field, value)
		case "currentlyStudying":
			e.CurrentlyStudying, err = asBool(field, value)
		case "gpa":
			e.GPA, err = asString(field, value)
		default:
			err = unknownField("education", field)
		}
		return e, err
	})
}

func RemoveEducation(list []domain.Education, id string) []domain.Education {
	return removeByID(list, id, educationID)
}
