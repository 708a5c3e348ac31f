// Package editor holds the update logic for each resume section.
//
// Every operation takes the current value of a section and returns a new
// one; the input is never modified. Entries that an update does not touch
// are copied through unchanged and in their original order.
package editor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrUnknownField = errors.New("unknown field")
	ErrFieldType    = errors.New("wrong value type for field")
)

// IDFunc generates entry ids. It must not repeat within a session.
type IDFunc func() string

// NewID returns a time-ordered UUIDv7 string.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

type Editor struct {
	newID IDFunc
}

type Option func(*Editor)

// WithIDFunc replaces the id generator, mostly for tests.
func WithIDFunc(f IDFunc) Option {
	return func(e *Editor) {
		if f != nil {
			e.newID = f
		}
	}
}

func New(opts ...Option) *Editor {
	e := &Editor{newID: NewID}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewID exposes the editor's generator to callers that build entries
// outside the editors, such as import normalization.
func (ed *Editor) NewID() string { return ed.newID() }

func appendEntry[T any](list []T, entry T) []T {
	out := make([]T, len(list), len(list)+1)
	copy(out, list)
	return append(out, entry)
}

func replaceByID[T any](list []T, id string, idOf func(T) string, apply func(T) (T, error)) ([]T, error) {
	out := make([]T, len(list))
	copy(out, list)
	for i := range out {
		if idOf(out[i]) != id {
			continue
		}
		updated, err := apply(out[i])
		if err != nil {
			return list, err
		}
		out[i] = updated
	}
	return out, nil
}

func removeByID[T any](list []T, id string, idOf func(T) string) []T {
	out := make([]T, 0, len(list))
	for _, e := range list {
		if idOf(e) != id {
			out = append(out, e)
		}
	}
	return out
}

func asString(field string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s wants text, got %T", ErrFieldType, field, v)
	}
	return s, nil
}

// asBool also accepts the textual forms strconv understands, since CLI and
// form input arrive as strings.
func asBool(field string, v any) (bool, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		if err != nil {
			return false, fmt.Errorf("%w: %s wants true/false, got %q", ErrFieldType, field, t)
		}
		return b, nil
	}
	return false, fmt.Errorf("%w: %s wants true/false, got %T", ErrFieldType, field, v)
}

func unknownField(section, field string) error {
	return fmt.Errorf("%w: %s.%s", ErrUnknownField, section, field)
}
