package model

import "time"

// Submission status values. Intake always creates submissions as pending;
// reviewers move them to approved or rejected through the admin API.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ValidStatus reports whether s is one of the recognised submission states.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// AdmissionForm is the application payload submitted by the public admission
// form. Field-level validation happens client side; the intake endpoint only
// requires the payload to be present and to carry an email, which it needs
// for rate-limit identifier construction.
type AdmissionForm struct {
	StudentName       string `json:"studentName"`
	DateOfBirth       string `json:"dateOfBirth"`
	Gender            string `json:"gender"`
	ContactNumber     string `json:"contactNumber"`
	Email             string `json:"email"`
	Address           string `json:"address"`
	ParentName        string `json:"parentName"`
	ParentContact     string `json:"parentContact"`
	Stream            string `json:"stream"`
	PreviousSchool    string `json:"previousSchool"`
	SSLCResult        string `json:"sslcResult"`
	PreferredLanguage string `json:"preferredLanguage"`
}

// Submission is one stored admission application. Rows are immutable after
// insert except for the status field, which the review workflow updates.
type Submission struct {
	ID                string    `json:"id" db:"id"`
	StudentName       string    `json:"student_name" db:"student_name"`
	DateOfBirth       string    `json:"date_of_birth" db:"date_of_birth"`
	Gender            string    `json:"gender" db:"gender"`
	ContactNumber     string    `json:"contact_number" db:"contact_number"`
	Email             string    `json:"email" db:"email"`
	Address           string    `json:"address" db:"address"`
	ParentName        string    `json:"parent_name" db:"parent_name"`
	ParentContact     string    `json:"parent_contact" db:"parent_contact"`
	Stream            string    `json:"stream" db:"stream"`
	PreviousSchool    string    `json:"previous_school" db:"previous_school"`
	SSLCResult        string    `json:"sslc_result" db:"sslc_result"`
	PreferredLanguage string    `json:"preferred_language" db:"preferred_language"`
	Status            string    `json:"status" db:"status"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

// NewSubmission builds a pending Submission from a form payload. The caller
// assigns the ID and timestamps at insert time.
func NewSubmission(form AdmissionForm) *Submission {
	return &Submission{
		StudentName:       form.StudentName,
		DateOfBirth:       form.DateOfBirth,
		Gender:            form.Gender,
		ContactNumber:     form.ContactNumber,
		Email:             form.Email,
		Address:           form.Address,
		ParentName:        form.ParentName,
		ParentContact:     form.ParentContact,
		Stream:            form.Stream,
		PreviousSchool:    form.PreviousSchool,
		SSLCResult:        form.SSLCResult,
		PreferredLanguage: form.PreferredLanguage,
		Status:            StatusPending,
	}
}
