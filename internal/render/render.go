// Package render turns a resume snapshot into a printable HTML document.
//
// Every template is a pure function of its input: the same snapshot always
// produces the same bytes, and nothing outside the snapshot is consulted.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"sync"

	"resume-builder/internal/domain"
)

//go:embed templates/*.html templates/*.css
var templateFS embed.FS

// Document is the rendered output of one template.
type Document struct {
	Template domain.TemplateID
	Title    string
	HTML     string
}

// Renderer maps a snapshot to a Document.
type Renderer interface {
	ID() domain.TemplateID
	Name() string
	Description() string
	Render(d domain.ResumeData) (Document, error)
}

// Info describes one entry of the template catalogue.
type Info struct {
	ID          domain.TemplateID `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
}

type htmlRenderer struct {
	info Info

	once sync.Once
	tpl  *template.Template
	css  template.CSS
	err  error
}

var catalogue = []*htmlRenderer{
	{info: Info{ID: domain.TemplateClassic, Name: "Classic", Description: "Traditional and professional"}},
	{info: Info{ID: domain.TemplateModern, Name: "Modern", Description: "Clean and contemporary"}},
	{info: Info{ID: domain.TemplateExecutive, Name: "Executive", Description: "Elegant and sophisticated"}},
	{info: Info{ID: domain.TemplateCreative, Name: "Creative", Description: "Bold and colourful"}},
}

var registry = func() map[domain.TemplateID]*htmlRenderer {
	m := make(map[domain.TemplateID]*htmlRenderer, len(catalogue))
	for _, r := range catalogue {
		m[r.info.ID] = r
	}
	return m
}()

func (r *htmlRenderer) ID() domain.TemplateID { return r.info.ID }
func (r *htmlRenderer) Name() string          { return r.info.Name }
func (r *htmlRenderer) Description() string   { return r.info.Description }

func (r *htmlRenderer) load() error {
	r.once.Do(func() {
		id := string(r.info.ID)
		tpl, err := template.New(id+".html").Funcs(funcs).ParseFS(templateFS,
			"templates/partials.html", "templates/"+id+".html")
		if err != nil {
			r.err = fmt.Errorf("parsing %s template: %w", id, err)
			return
		}
		base, err := templateFS.ReadFile("templates/base.css")
		if err != nil {
			r.err = fmt.Errorf("reading base stylesheet: %w", err)
			return
		}
		own, err := templateFS.ReadFile("templates/" + id + ".css")
		if err != nil {
			r.err = fmt.Errorf("reading %s stylesheet: %w", id, err)
			return
		}
		r.tpl = tpl
		r.css = template.CSS(string(base) + "\n" + string(own))
	})
	return r.err
}

func (r *htmlRenderer) Render(d domain.ResumeData) (Document, error) {
	if err := r.load(); err != nil {
		return Document{}, err
	}
	v := newView(d, r.css)

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, v); err != nil {
		return Document{}, fmt.Errorf("executing %s template: %w", r.info.ID, err)
	}
	return Document{Template: r.info.ID, Title: v.Title, HTML: buf.String()}, nil
}

// Lookup resolves id to its renderer. Unknown ids resolve to the classic
// template, never to an error.
func Lookup(id domain.TemplateID) Renderer {
	if r, ok := registry[domain.ParseTemplateID(string(id))]; ok {
		return r
	}
	return registry[domain.DefaultTemplate]
}

// Render renders d with the template named by id.
func Render(id domain.TemplateID, d domain.ResumeData) (Document, error) {
	return Lookup(id).Render(d)
}

// Templates lists the catalogue in display order.
func Templates() []Info {
	out := make([]Info, 0, len(catalogue))
	for _, r := range catalogue {
		out = append(out, r.info)
	}
	return out
}
