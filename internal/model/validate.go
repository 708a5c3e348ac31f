package model

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// The schema checks shape only: types of fields and presence of entry ids.
// Value ranges (skill level, date formats) are deliberately left open.
//
//go:embed resume.schema.json
var resumeSchema string

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func loadSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(resumeSchema))
	})
	return schema, schemaErr
}

// ValidateMap validates a generic map against the embedded resume schema.
func ValidateMap(m map[string]interface{}) error {
	s, err := loadSchema()
	if err != nil {
		return fmt.Errorf("loading resume schema: %w", err)
	}

	res, err := s.Validate(gojsonschema.NewGoLoader(m))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}
