package editor

import (
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"resume-builder/internal/domain"
)

func counterIDs() IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		id := NewID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %s after %d calls", id, i)
		}
		seen[id] = struct{}{}
	}
}

func TestAddExperience(t *testing.T) {
	ed := New(WithIDFunc(counterIDs()))

	orig := []domain.Experience{{ID: "x", Company: "Old"}}
	got, id := ed.AddExperience(orig)

	if id != "id-1" {
		t.Fatalf("wanted id-1, got %q", id)
	}
	if len(orig) != 1 {
		t.Fatalf("input list modified: %v", orig)
	}
	want := []domain.Experience{{ID: "x", Company: "Old"}, {ID: "id-1"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("\nwanted:\n%+v\ngot:\n%+v", want, got)
	}
}

func TestUpdateExperience(t *testing.T) {
	list := []domain.Experience{{ID: "a"}, {ID: "b", Company: "Keep"}}

	t.Run("replaces exactly one field", func(t *testing.T) {
		got, err := UpdateExperience(list, "a", "company", "Acme")
		if err != nil {
			t.Fatalf("wanted nil, got %v", err)
		}
		want := []domain.Experience{{ID: "a", Company: "Acme"}, {ID: "b", Company: "Keep"}}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("\nwanted:\n%+v\ngot:\n%+v", want, got)
		}
		if list[0].Company != "" {
			t.Fatal("input list modified")
		}
	})

	t.Run("accepts textual booleans", func(t *testing.T) {
		got, err := UpdateExperience(list, "a", "current", "true")
		if err != nil {
			t.Fatalf("wanted nil, got %v", err)
		}
		if !got[0].Current {
			t.Fatal("wanted current=true")
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		got, err := UpdateExperience(list, "zzz", "company", "Nope")
		if err != nil {
			t.Fatalf("wanted nil, got %v", err)
		}
		if !reflect.DeepEqual(got, list) {
			t.Fatalf("\nwanted:\n%+v\ngot:\n%+v", list, got)
		}
	})

	t.Run("rejects unknown field", func(t *testing.T) {
		got, err := UpdateExperience(list, "a", "salary", "1")
		if !errors.Is(err, ErrUnknownField) {
			t.Fatalf("wanted ErrUnknownField, got %v", err)
		}
		if !reflect.DeepEqual(got, list) {
			t.Fatal("wanted original list back on error")
		}
	})

	t.Run("rejects wrong type", func(t *testing.T) {
		if _, err := UpdateExperience(list, "a", "company", 42); !errors.Is(err, ErrFieldType) {
			t.Fatalf("wanted ErrFieldType, got %v", err)
		}
		if _, err := UpdateExperience(list, "a", "current", "sometimes"); !errors.Is(err, ErrFieldType) {
			t.Fatalf("wanted ErrFieldType, got %v", err)
		}
	})

	t.Run("id is not editable", func(t *testing.T) {
		if _, err := UpdateExperience(list, "a", "id", "b"); !errors.Is(err, ErrUnknownField) {
			t.Fatalf("wanted ErrUnknownField, got %v", err)
		}
	})
}

func TestRemove_Idempotent(t *testing.T) {
	list := []domain.Project{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	once := RemoveProject(list, "b")
	twice := RemoveProject(once, "b")

	want := []domain.Project{{ID: "a"}, {ID: "c"}}
	if !reflect.DeepEqual(once, want) {
		t.Fatalf("\nwanted:\n%+v\ngot:\n%+v", want, once)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("\nwanted:\n%+v\ngot:\n%+v", once, twice)
	}
	if len(list) != 3 {
		t.Fatal("input list modified")
	}
}

func TestEducationAndProjectFields(t *testing.T) {
	ed := New(WithIDFunc(counterIDs()))

	edu, id := ed.AddEducation(nil)
	for field, value := range map[string]any{
		"institution":       "MIT",
		"degree":            "BSc",
		"field":             "CS",
		"graduationDate":    "2020-06",
		"currentlyStudying": true,
		"gpa":               "3.9",
	} {
		var err error
		edu, err = UpdateEducation(edu, id, field, value)
		if err != nil {
			t.Fatalf("UpdateEducation(%s): %v", field, err)
		}
	}
	wantEdu := domain.Education{ID: id, Institution: "MIT", Degree: "BSc", Field: "CS", GraduationDate: "2020-06", CurrentlyStudying: true, GPA: "3.9"}
	if edu[0] != wantEdu {
		t.Fatalf("\nwanted:\n%+v\ngot:\n%+v", wantEdu, edu[0])
	}

	projects, pid := ed.AddProject(nil)
	for field, value := range map[string]any{
		"name":         "Site",
		"description":  "A site",
		"technologies": "Go, HTML",
		"link":         "https://example.com",
	} {
		var err error
		projects, err = UpdateProject(projects, pid, field, value)
		if err != nil {
			t.Fatalf("UpdateProject(%s): %v", field, err)
		}
	}
	wantProject := domain.Project{ID: pid, Name: "Site", Description: "A site", Technologies: "Go, HTML", Link: "https://example.com"}
	if projects[0] != wantProject {
		t.Fatalf("\nwanted:\n%+v\ngot:\n%+v", wantProject, projects[0])
	}
}

func TestSkills(t *testing.T) {
	ed := New(WithIDFunc(counterIDs()))

	t.Run("blank name is ignored", func(t *testing.T) {
		got, id := ed.AddNamedSkill(nil, "   ", domain.LevelExpert)
		if id != "" || len(got) != 0 {
			t.Fatalf("wanted no skill, got %+v (id %q)", got, id)
		}
	})

	t.Run("named skill is trimmed and clamped", func(t *testing.T) {
		got, id := ed.AddNamedSkill(nil, "  Go ", 11)
		want := []domain.Skill{{ID: id, Name: "Go", Level: domain.LevelExpert}}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("\nwanted:\n%+v\ngot:\n%+v", want, got)
		}
	})

	t.Run("default skill level", func(t *testing.T) {
		got, _ := ed.AddSkill(nil)
		if got[0].Level != domain.DefaultLevel {
			t.Fatalf("wanted level %d, got %d", domain.DefaultLevel, got[0].Level)
		}
	})

	t.Run("set level clamps", func(t *testing.T) {
		list := []domain.Skill{{ID: "a", Level: 3}, {ID: "b", Level: 2}}
		for _, tt := range []struct {
			in, want domain.Level
		}{{5, 5}, {1, 1}, {0, 1}, {-4, 1}, {6, 5}} {
			got := SetSkillLevel(list, "a", tt.in)
			if got[0].Level != tt.want {
				t.Fatalf("SetSkillLevel(%d) = %d, want %d", tt.in, got[0].Level, tt.want)
			}
			if got[1].Level != 2 {
				t.Fatal("other skill changed")
			}
		}
	})

	t.Run("generic update refuses level", func(t *testing.T) {
		list := []domain.Skill{{ID: "a", Level: 3}}
		if _, err := UpdateSkill(list, "a", "level", "5"); !errors.Is(err, ErrUnknownField) {
			t.Fatalf("wanted ErrUnknownField, got %v", err)
		}
	})
}

// A random walk of add/update/remove must keep ids unique and preserve
// insertion order minus removals.
func TestSectionOperations_RandomSequence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ed := New()
	d := domain.Empty()
	var order []string

	for step := 0; step < 500; step++ {
		switch op := rng.Intn(3); {
		case op == 0 || len(order) == 0:
			var id string
			var err error
			d, id, err = ed.Add(d, domain.SectionExperience)
			if err != nil {
				t.Fatalf("Add: %v", err)
			}
			order = append(order, id)
		case op == 1:
			id := order[rng.Intn(len(order))]
			var err error
			d, err = Update(d, domain.SectionExperience, id, "company", fmt.Sprintf("c%d", step))
			if err != nil {
				t.Fatalf("Update: %v", err)
			}
		default:
			i := rng.Intn(len(order))
			var err error
			d, err = Remove(d, domain.SectionExperience, order[i])
			if err != nil {
				t.Fatalf("Remove: %v", err)
			}
			order = append(order[:i], order[i+1:]...)
		}

		got := make([]string, 0, len(d.Experiences))
		seen := map[string]bool{}
		for _, e := range d.Experiences {
			if seen[e.ID] {
				t.Fatalf("step %d: duplicate id %s", step, e.ID)
			}
			seen[e.ID] = true
			got = append(got, e.ID)
		}
		if strings.Join(got, ",") != strings.Join(order, ",") {
			t.Fatalf("step %d: order mismatch\nwanted:\n%v\ngot:\n%v", step, order, got)
		}
	}
}

func TestSections_PersonalHasNoEntries(t *testing.T) {
	ed := New()
	if _, _, err := ed.Add(domain.Empty(), domain.SectionPersonal); !errors.Is(err, domain.ErrUnknownSection) {
		t.Fatalf("wanted ErrUnknownSection, got %v", err)
	}
	if _, err := Remove(domain.Empty(), domain.SectionPersonal, "x"); !errors.Is(err, domain.ErrUnknownSection) {
		t.Fatalf("wanted ErrUnknownSection, got %v", err)
	}
}
