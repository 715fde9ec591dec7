package entity

// Manager is an authorized store manager. Managers are provisioned
// out-of-band (see cmd/manager) and never created through the web surface.
type Manager struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password"` // salted bcrypt hash
}
