package resume

// PersonalInfo holds the contact details and professional summary shown in
// the resume header and summary section. Every field defaults to the empty
// string; renderers decide what to show.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
	Summary  string `json:"summary"`
}

// Experience is a single work-experience entry. Description holds one
// string per bullet point; blank bullets are kept in the model and filtered
// at render time.
type Experience struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Company   string   `json:"company"`
	Location  string   `json:"location"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	// If true, EndDate is ignored and "Present" is shown.
	Current     bool     `json:"current"`
	Description []string `json:"description"`
}

// Education is a single education entry.
type Education struct {
	ID             string `json:"id"`
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	Location       string `json:"location"`
	GraduationDate string `json:"graduationDate"`
	GPA            string `json:"gpa,omitempty"`
}

// ResumeData is the complete resume payload: exactly one PersonalInfo plus
// the ordered experience, education and skill collections. This is the unit
// that gets rendered and persisted.
type ResumeData struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	Skills       []string     `json:"skills"`
}

// NewResumeData returns a blank slate used when starting a brand-new resume.
func NewResumeData() ResumeData {
	return ResumeData{
		Experience: []Experience{},
		Education:  []Education{},
		Skills:     []string{},
	}
}
