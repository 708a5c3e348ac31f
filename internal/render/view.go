package render

import (
	"html/template"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"

	"resume-builder/internal/domain"
)

const (
	placeholderName = "Your Name"
	ongoing         = "Present"
)

// view is the data every template executes against. All formatting
// decisions live here so the templates differ in chrome only.
type view struct {
	Title   string
	CSS     template.CSS
	Name    string
	Picture template.URL
	Email   string
	Phone   string
	Address string
	Summary string

	Experiences []experienceView
	Education   []educationView
	Projects    []projectView
	Skills      []skillView
}

type experienceView struct {
	Number      int
	Position    string
	Company     string
	Start       string
	End         string
	Description string
}

type educationView struct {
	Degree      string
	Field       string
	Institution string
	Date        string
	GPA         string
}

type projectView struct {
	Name         string
	Technologies string
	Description  string
	Link         string
	LinkLabel    string
}

type skillView struct {
	Name string
	Proficiency
}

// Proficiency is the display form of a skill level. Pips and Percent are
// clamped to the 1-5 scale; Level keeps the stored value.
type Proficiency struct {
	Level   domain.Level
	Pips    []bool
	Percent int
	Label   string
}

func newView(d domain.ResumeData, css template.CSS) view {
	p := d.PersonalInfo
	v := view{
		CSS:     css,
		Name:    strings.TrimSpace(p.FullName),
		Picture: pictureURL(p.ProfilePicture),
		Email:   p.Email,
		Phone:   p.Phone,
		Address: p.Address,
		Summary: p.Summary,
	}
	if v.Name == "" {
		v.Name = placeholderName
	}
	v.Title = v.Name + " - Resume"

	for i, e := range d.Experiences {
		end := FormatDate(e.EndDate)
		if e.Current {
			end = ongoing
		}
		v.Experiences = append(v.Experiences, experienceView{
			Number:      i + 1,
			Position:    e.Position,
			Company:     e.Company,
			Start:       FormatDate(e.StartDate),
			End:         end,
			Description: e.Description,
		})
	}
	for _, e := range d.Education {
		date := FormatDate(e.GraduationDate)
		if e.CurrentlyStudying {
			date = ongoing
		}
		v.Education = append(v.Education, educationView{
			Degree:      e.Degree,
			Field:       e.Field,
			Institution: e.Institution,
			Date:        date,
			GPA:         e.GPA,
		})
	}
	for _, pr := range d.Projects {
		v.Projects = append(v.Projects, projectView{
			Name:         pr.Name,
			Technologies: pr.Technologies,
			Description:  pr.Description,
			Link:         pr.Link,
			LinkLabel:    LinkLabel(pr.Link),
		})
	}
	for _, s := range d.Skills {
		v.Skills = append(v.Skills, skillView{Name: s.Name, Proficiency: NewProficiency(s.Level)})
	}
	return v
}

// FormatDate renders a stored year-month ("2021-01") or full date as
// "Jan 2021". Empty input gives an empty label; anything else that does not
// parse is returned unchanged.
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range []string{"2006-01", "2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return s
}

func NewProficiency(l domain.Level) Proficiency {
	p := Proficiency{Level: l, Pips: make([]bool, int(domain.MaxLevel)), Label: l.String()}
	for i := range p.Pips {
		p.Pips[i] = domain.Level(i+1) <= l
	}
	switch {
	case l < domain.MinLevel:
		p.Percent = 0
	case l > domain.MaxLevel:
		p.Percent = 100
	default:
		p.Percent = int(l) * 100 / int(domain.MaxLevel)
	}
	return p
}

// LinkLabel shortens a project link to its registrable domain, e.g.
// "https://www.github.com/x/y" becomes "github.com".
func LinkLabel(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	candidate := raw
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	u, err := url.Parse(candidate)
	if err != nil {
		return raw
	}
	host := u.Hostname()
	if host == "" {
		return raw
	}
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return strings.TrimPrefix(etld, "www.")
	}
	return strings.TrimPrefix(host, "www.")
}

// pictureURL marks inline image data as safe for src attributes. Plain web
// URLs pass through; anything else is dropped.
func pictureURL(s string) template.URL {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return ""
	case strings.HasPrefix(s, "data:image/"):
		return template.URL(s)
	case strings.HasPrefix(s, "https://"), strings.HasPrefix(s, "http://"):
		return template.URL(s)
	default:
		return ""
	}
}
