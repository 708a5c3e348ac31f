package domain

import "strings"

// TemplateID names one of the visual templates. Unknown values are carried
// as-is and resolved to DefaultTemplate at render time.
type TemplateID string

const (
	TemplateClassic   TemplateID = "classic"
	TemplateModern    TemplateID = "modern"
	TemplateExecutive TemplateID = "executive"
	TemplateCreative  TemplateID = "creative"

	DefaultTemplate = TemplateClassic
)

// TemplateIDs is the closed set of known templates in selector order.
var TemplateIDs = []TemplateID{TemplateClassic, TemplateModern, TemplateExecutive, TemplateCreative}

func (t TemplateID) Known() bool {
	for _, id := range TemplateIDs {
		if id == t {
			return true
		}
	}
	return false
}

// ParseTemplateID trims and lowercases s. The result may still be unknown.
func ParseTemplateID(s string) TemplateID {
	return TemplateID(strings.ToLower(strings.TrimSpace(s)))
}
