package model

// Session is the explicit authenticated-caller value created at sign-in and
// carried through every layer instead of ambient global state. It is
// invalidated when the backend answers 401 or when the user signs out.
type Session struct {
	Token    string `json:"token"`
	Role     string `json:"rol"`
	UserID   int    `json:"id"`
	FullName string `json:"nombreCompleto"`
	Username string `json:"username,omitempty"`
}

// Session roles as the backend reports them.
const (
	SessionRoleAdmin     = "admin"
	SessionRoleSecretary = "secretaria"
	SessionRoleNurse     = "enfermera"
)

// Valid reports whether the session carries a usable bearer token.
func (s Session) Valid() bool {
	return s.Token != ""
}

// SignInRequest authenticates against the hospital backend.
type SignInRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
