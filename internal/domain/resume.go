package domain

// ResumeData is one snapshot of a resume. Snapshots are replaced, never
// mutated in place; use Clone before handing one to code that might append.
type ResumeData struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Experiences  []Experience `json:"experiences"`
	Education    []Education  `json:"education"`
	Skills       []Skill      `json:"skills"`
	Projects     []Project    `json:"projects"`
}

type PersonalInfo struct {
	ProfilePicture string `json:"profilePicture"`
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	Summary        string `json:"summary"`
}

type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type Education struct {
	ID                string `json:"id"`
	Institution       string `json:"institution"`
	Degree            string `json:"degree"`
	Field             string `json:"field"`
	GraduationDate    string `json:"graduationDate"`
	CurrentlyStudying bool   `json:"currentlyStudying"`
	GPA               string `json:"gpa,omitempty"`
}

type Project struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	Link         string `json:"link,omitempty"`
}

type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level Level  `json:"level"`
}

// Empty returns the zero resume with non-nil lists so it serializes as [].
func Empty() ResumeData {
	return ResumeData{
		Experiences: []Experience{},
		Education:   []Education{},
		Skills:      []Skill{},
		Projects:    []Project{},
	}
}

// Clone copies every list so the result shares no backing arrays with d.
func (d ResumeData) Clone() ResumeData {
	return ResumeData{
		PersonalInfo: d.PersonalInfo,
		Experiences:  cloneList(d.Experiences),
		Education:    cloneList(d.Education),
		Skills:       cloneList(d.Skills),
		Projects:     cloneList(d.Projects),
	}
}

func cloneList[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
