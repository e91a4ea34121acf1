package responses

import "ogec-service/internal/app/models"

type Login struct {
	Token   string       `json:"token,omitempty"`
	User    *models.User `json:"user,omitempty"`
	Pending bool         `json:"pending,omitempty"`
}

type Register struct {
	Pending bool `json:"pending"`
}

type Profile struct {
	User      *models.User `json:"user"`
	Language  string       `json:"language"`
	Direction string       `json:"direction"`
	Theme     string       `json:"theme"`
}
