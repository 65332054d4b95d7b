package types

// DefaultApp is the application identifier sent with every login request.
const DefaultApp = "lms"

// Credentials holds marketplace login credentials for the process lifetime.
// Nothing here is persisted.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	App      string `json:"app,omitempty"`
}

// Configured reports whether the credentials are complete enough to attempt
// a login. Missing credentials degrade the fetch path to a reported failure,
// never a crash.
func (c Credentials) Configured() bool {
	return c.Email != "" && c.Password != ""
}

// AppOrDefault returns the configured app identifier, defaulting to "lms".
func (c Credentials) AppOrDefault() string {
	if c.App == "" {
		return DefaultApp
	}
	return c.App
}

// AuthSession carries the two opaque bearer credentials issued by a login.
// Sessions are created per fetch and never reused; expiry is service-defined
// and not tracked locally.
type AuthSession struct {
	PermissionToken string
	AuthToken       string
}
