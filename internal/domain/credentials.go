package domain

// Credentials are held only for the duration of a login attempt.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
