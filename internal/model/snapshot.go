package model

import (
	"encoding/json"
	"errors"
	"fmt"

	"resume-builder/internal/domain"
)

var ErrInvalidSnapshot = errors.New("invalid resume snapshot")

// DecodeSnapshot parses persisted or imported resume JSON. The raw value goes
// through Normalize and the schema before it is bound to the typed model, so
// anything structurally incompatible is rejected with ErrInvalidSnapshot.
func DecodeSnapshot(raw []byte, newID func() string) (domain.ResumeData, error) {
	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return domain.Empty(), fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	m, ok := generic.(map[string]interface{})
	if !ok {
		return domain.Empty(), fmt.Errorf("%w: top level is %T, not an object", ErrInvalidSnapshot, generic)
	}

	m = Normalize(m, newID)
	if err := ValidateMap(m); err != nil {
		return domain.Empty(), fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	b, err := json.Marshal(m)
	if err != nil {
		return domain.Empty(), fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	var d domain.ResumeData
	if err := json.Unmarshal(b, &d); err != nil {
		return domain.Empty(), fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return fillLists(d), nil
}

// EncodeSnapshot serializes d with every list present, even when empty.
func EncodeSnapshot(d domain.ResumeData) ([]byte, error) {
	return json.Marshal(fillLists(d))
}

func fillLists(d domain.ResumeData) domain.ResumeData {
	if d.Experiences == nil {
		d.Experiences = []domain.Experience{}
	}
	if d.Education == nil {
		d.Education = []domain.Education{}
	}
	if d.Skills == nil {
		d.Skills = []domain.Skill{}
	}
	if d.Projects == nil {
		d.Projects = []domain.Project{}
	}
	return d
}
