package repository

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"resume-builder/internal/domain"
)

type failingStore struct{ MemoryStore }

func (failingStore) Get(context.Context, string) (string, error) { return "", errors.New("disk gone") }
func (failingStore) Set(context.Context, string, string) error    { return errors.New("disk full") }

func newTestAdapter(store Store) (*Adapter, *bytes.Buffer) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	return NewAdapter(store, log, func() string { return "generated" }), &buf
}

func TestAdapter_LoadDefaults(t *testing.T) {
	a, logs := newTestAdapter(NewMemoryStore())

	d, tpl := a.Load(context.Background())
	if !reflect.DeepEqual(d, domain.Empty()) {
		t.Fatalf("wanted empty resume, got %+v", d)
	}
	if tpl != domain.DefaultTemplate {
		t.Fatalf("wanted %s, got %s", domain.DefaultTemplate, tpl)
	}
	if logs.Len() != 0 {
		t.Fatalf("a fresh store should not log, got %q", logs.String())
	}
}

func TestAdapter_LoadInvalidJSON(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	store.Set(ctx, ResumeKey, `{"personalInfo": {"fullName": "Ja`)

	a, logs := newTestAdapter(store)
	d := a.LoadResume(ctx)

	if len(d.Experiences)+len(d.Education)+len(d.Projects)+len(d.Skills) != 0 {
		t.Fatalf("wanted zero entries, got %+v", d)
	}
	if d.PersonalInfo != (domain.PersonalInfo{}) {
		t.Fatalf("wanted empty personal info, got %+v", d.PersonalInfo)
	}
	if !strings.Contains(logs.String(), "level=WARN") {
		t.Fatalf("wanted a warning, got %q", logs.String())
	}
}

func TestAdapter_LoadKeepsResumeWithOddSkillLevels(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	store.Set(ctx, ResumeKey, `{"personalInfo":{"fullName":"Jane"},"experiences":[{"id":"1","company":"Acme"}],"skills":[{"id":"s","name":"Go","level":4.5},{"id":"t","name":"SQL","level":"4"}]}`)

	a, logs := newTestAdapter(store)
	d := a.LoadResume(ctx)

	if d.PersonalInfo.FullName != "Jane" || len(d.Experiences) != 1 {
		t.Fatalf("wanted saved resume kept, got %+v", d)
	}
	if len(d.Skills) != 2 || d.Skills[0].Level != 4 || d.Skills[1].Level != 4 {
		t.Fatalf("wanted both levels read as 4, got %+v", d.Skills)
	}
	if logs.Len() != 0 {
		t.Fatalf("wanted no warnings, got %q", logs.String())
	}
}

func TestAdapter_SaveLoadRoundTrip(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			a, _ := newTestAdapter(store)

			want := domain.Empty()
			want.PersonalInfo.FullName = "Jane Doe"
			want.Skills = []domain.Skill{{ID: "s1", Name: "Go", Level: domain.LevelAdvanced}}
			want.Experiences = []domain.Experience{{ID: "e1", Company: "Acme", Current: true}}

			a.Save(ctx, want)
			a.SaveTemplate(ctx, domain.TemplateExecutive)

			got, tpl := a.Load(ctx)
			if !reflect.DeepEqual(want, got) {
				t.Fatalf("\nwanted:\n%+v\ngot:\n%+v", want, got)
			}
			if tpl != domain.TemplateExecutive {
				t.Fatalf("wanted executive, got %s", tpl)
			}
		})
	}
}

func TestAdapter_UnknownTemplateIsKept(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	store.Set(ctx, TemplateKey, "minimal\n")

	a, _ := newTestAdapter(store)
	if got := a.LoadTemplate(ctx); got != "minimal" {
		t.Fatalf("wanted raw id minimal, got %q", got)
	}
}

func TestAdapter_StoreFailuresAreLogged(t *testing.T) {
	a, logs := newTestAdapter(&failingStore{})
	ctx := context.Background()

	a.Save(ctx, domain.Empty())
	a.SaveTemplate(ctx, domain.TemplateModern)
	d, tpl := a.Load(ctx)

	if !reflect.DeepEqual(d, domain.Empty()) || tpl != domain.DefaultTemplate {
		t.Fatalf("wanted defaults, got %+v / %s", d, tpl)
	}
	for _, want := range []string{"disk full", "disk gone"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("wanted %q logged, got %q", want, logs.String())
		}
	}
}
