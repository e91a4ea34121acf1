package models

// User is the snapshot of the upstream OGEC user record cached inside the
// session. It is never authoritative: the upstream copy wins on every
// resume and profile update.
type User struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	Status         string `json:"status"`
	Gender         string `json:"gender,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Cin            string `json:"cin,omitempty"`
	DateNaissance  string `json:"date_naissance,omitempty"`
	Certification  string `json:"certification,omitempty"`
	Address        string `json:"address,omitempty"`
	JoinYear       int    `json:"join_year,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

func (u *User) IsActive() bool {
	return u != nil && u.Status == "active"
}
