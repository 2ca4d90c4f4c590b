package models

// User represents a StudySpace account as returned by the users API.
type User struct {
	ID                     int    `json:"id"`
	FirstName              string `json:"firstName"`
	LastName               string `json:"lastName"`
	Email                  string `json:"email"`
	PhoneNumber            string `json:"phoneNumber,omitempty"`
	Role                   string `json:"role"` // USER or ADMIN
	EmailVerified          bool   `json:"emailVerified,omitempty"`
	ProfilePictureFilename string `json:"profilePictureFilename,omitempty"`
	CreatedAt              string `json:"createdAt,omitempty"`
	LastLogin              string `json:"lastLogin,omitempty"`
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the account-creation payload.
type Registration struct {
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role,omitempty"`
}

// UserUpdate carries the editable profile fields.
type UserUpdate struct {
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role,omitempty"`
	Password    string `json:"password,omitempty"`
}

// LoginResult is the remote API's login response.
type LoginResult struct {
	Token                  string `json:"token"`
	Role                   string `json:"role"`
	UserID                 int    `json:"userId"`
	ProfilePictureFilename string `json:"profilePictureFilename,omitempty"`
	Error                  string `json:"error,omitempty"`
}
