package models

// LoginResponse is the body returned by POST /api/auth/login.
// Success is false when the credentials are rejected; Username echoes the
// authenticated login on success.
type LoginResponse struct {
	Success  bool   `json:"success"`
	Username string `json:"username,omitempty"`
}

// Ack is the generic acknowledgement body returned by write endpoints
// (entry deletion, reset).
type Ack struct {
	Success bool `json:"success"`
}
