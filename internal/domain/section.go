package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownSection = errors.New("unknown section")

type Section string

const (
	SectionPersonal   Section = "personal"
	SectionExperience Section = "experience"
	SectionEducation  Section = "education"
	SectionProjects   Section = "projects"
	SectionSkills     Section = "skills"
)

// ListSections are the sections backed by an ordered list of entries.
var ListSections = []Section{SectionExperience, SectionEducation, SectionProjects, SectionSkills}

// ParseSection accepts the section name plus the common plural/singular
// spellings used by the persisted JSON keys.
func ParseSection(s string) (Section, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "personal", "personalinfo":
		return SectionPersonal, nil
	case "experience", "experiences":
		return SectionExperience, nil
	case "education":
		return SectionEducation, nil
	case "project", "projects":
		return SectionProjects, nil
	case "skill", "skills":
		return SectionSkills, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, s)
}
