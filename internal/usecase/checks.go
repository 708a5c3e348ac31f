package usecase

import (
	"fmt"
	"strings"

	"resume-builder/internal/domain"
)

// SectionCheck lists the fields of one section that are still blank. It is
// informational; nothing refuses to render or save an incomplete resume.
type SectionCheck struct {
	Section domain.Section `json:"section"`
	Valid   bool           `json:"valid"`
	Missing []string       `json:"missing"`
}

type field struct {
	name  string
	value string
}

func (c *SectionCheck) require(prefix string, fields ...field) {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			c.Valid = false
			c.Missing = append(c.Missing, prefix+f.name)
		}
	}
}

func entryPrefix(section domain.Section, id string) string {
	return fmt.Sprintf("%s[%s].", section, id)
}

// CheckPresence reports blank required fields per section, in section order.
// An empty list section is complete.
func CheckPresence(d domain.ResumeData) []SectionCheck {
	out := make([]SectionCheck, 0, len(domain.ListSections)+1)

	personal := SectionCheck{Section: domain.SectionPersonal, Valid: true, Missing: []string{}}
	personal.require("",
		field{"fullName", d.PersonalInfo.FullName},
		field{"email", d.PersonalInfo.Email},
	)
	out = append(out, personal)

	for _, s := range domain.ListSections {
		c := SectionCheck{Section: s, Valid: true, Missing: []string{}}
		switch s {
		case domain.SectionExperience:
			for _, e := range d.Experiences {
				c.require(entryPrefix(s, e.ID),
					field{"company", e.Company},
					field{"position", e.Position},
					field{"startDate", e.StartDate},
				)
			}
		case domain.SectionEducation:
			for _, e := range d.Education {
				c.require(entryPrefix(s, e.ID),
					field{"institution", e.Institution},
					field{"degree", e.Degree},
				)
			}
		case domain.SectionProjects:
			for _, p := range d.Projects {
				c.require(entryPrefix(s, p.ID), field{"name", p.Name})
			}
		case domain.SectionSkills:
			for _, sk := range d.Skills {
				c.require(entryPrefix(s, sk.ID), field{"name", sk.Name})
			}
		}
		out = append(out, c)
	}
	return out
}
