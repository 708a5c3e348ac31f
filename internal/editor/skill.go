package editor

import (
	"fmt"
	"strings"

	"resume-builder/internal/domain"
)

func skillID(s domain.Skill) string { return s.ID }

// AddSkill appends an unnamed skill at the default level.
func (ed *Editor) AddSkill(list []domain.Skill) ([]domain.Skill, string) {
	id := ed.newID()
	return appendEntry(list, domain.Skill{ID: id, Level: domain.DefaultLevel}), id
}

// AddNamedSkill appends a skill with a trimmed name. A blank name leaves the
// list as it was and returns an empty id.
func (ed *Editor) AddNamedSkill(list []domain.Skill, name string, level domain.Level) ([]domain.Skill, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return list, ""
	}
	id := ed.newID()
	return appendEntry(list, domain.Skill{ID: id, Name: name, Level: level.Clamp()}), id
}

// UpdateSkill covers the text fields only; use SetSkillLevel for the level.
func UpdateSkill(list []domain.Skill, id, field string, value any) ([]domain.Skill, error) {
	return replaceByID(list, id, skillID, func(s domain.Skill) (domain.Skill, error) {
		var err error
		switch field {
		case "name":
			s.Name, err = asString(field, value)
		case "level":
			err = fmt.Errorf("%w: skills.level is set with SetSkillLevel", ErrUnknownField)
		default:
			err = unknownField("skills", field)
		}
		return s, err
	})
}

// SetSkillLevel is the only path that writes a level, and it always writes
// one of the five selectable values.
func SetSkillLevel(list []domain.Skill, id string, level domain.Level) []domain.Skill {
	out, _ := replaceByID(list, id, skillID, func(s domain.Skill) (domain.Skill, error) {
		s.Level = level.Clamp()
		return s, nil
	})
	return out
}

func RemoveSkill(list []domain.Skill, id string) []domain.Skill {
	return removeByID(list, id, skillID)
}
