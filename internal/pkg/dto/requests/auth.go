package requests

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Register struct {
	Name                 string `json:"name" validate:"required,max=255"`
	Email                string `json:"email" validate:"required,email,max=255"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
	Role                 string `json:"role" validate:"required,ogec_role"`
	Gender               string `json:"gender,omitempty" validate:"omitempty,oneof=M F"`
	Phone                string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Cin                  string `json:"cin,omitempty" validate:"omitempty,max=20"`
	DateNaissance        string `json:"date_naissance,omitempty"`
	Certification        string `json:"certification,omitempty"`
	Address              string `json:"address,omitempty"`
	JoinYear             int    `json:"join_year,omitempty" validate:"omitempty,gte=1900"`
	ProfilePicture       string `json:"profile_picture,omitempty"`
}

type UpdateProfile struct {
	Name           string `json:"name,omitempty" validate:"omitempty,max=255"`
	Email          string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Gender         string `json:"gender,omitempty" validate:"omitempty,oneof=M F"`
	Phone          string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Cin            string `json:"cin,omitempty" validate:"omitempty,max=20"`
	DateNaissance  string `json:"date_naissance,omitempty"`
	Certification  string `json:"certification,omitempty"`
	Address        string `json:"address,omitempty"`
	JoinYear       int    `json:"join_year,omitempty" validate:"omitempty,gte=1900"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

type ForgotPassword struct {
	Email string `json:"email" validate:"required,email"`
}

type ChangePassword struct {
	CurrentPassword         string `json:"current_password" validate:"required"`
	NewPassword             string `json:"new_password" validate:"required,min=8"`
	NewPasswordConfirmation string `json:"new_password_confirmation" validate:"required,eqfield=NewPassword"`
}
