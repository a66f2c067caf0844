package models

// Academic reference data managed through the admin surface. The service
// nests these three levels: a department owns subjects, a subject owns
// courses (course codes), and sections group students.

type Department struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type Subject struct {
	ID         string   `json:"_id"`
	Name       string   `json:"name"`
	Department NamedRef `json:"department"`
}

type Course struct {
	ID      string   `json:"_id"`
	Name    string   `json:"name"`
	Subject NamedRef `json:"subject"`
}

type Section struct {
	ID       string   `json:"_id"`
	Name     string   `json:"name"`
	Students []string `json:"students,omitempty"`
}

// AcademicKind selects the record type of a manage-academic-data call.
type AcademicKind string

const (
	KindDepartment AcademicKind = "department"
	KindSubject    AcademicKind = "subject"
	KindCourse     AcademicKind = "course"
	KindSection    AcademicKind = "section"
)
