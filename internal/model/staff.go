package model

import "time"

// Staff member categories used to group the public directory.
const (
	StaffAdministrator = "administrator"
	StaffLecturer      = "lecturer"
	StaffNonTeaching   = "non-teaching"
)

// ValidStaffType reports whether t is a recognised staff category.
func ValidStaffType(t string) bool {
	return t == StaffAdministrator || t == StaffLecturer || t == StaffNonTeaching
}

// StaffMember is one entry in the staff directory. Inactive members are
// hidden from the public listing but remain editable in the admin panel.
type StaffMember struct {
	ID            string    `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Position      string    `json:"position" db:"position"`
	Department    string    `json:"department" db:"department"`
	Qualification string    `json:"qualification" db:"qualification"`
	PhotoURL      string    `json:"photo_url" db:"photo_url"`
	StaffType     string    `json:"staff_type" db:"staff_type"`
	DisplayOrder  int       `json:"display_order" db:"display_order"`
	IsActive      bool      `json:"is_active" db:"is_active"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
