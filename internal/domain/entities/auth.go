package entities

// Session is the authenticated state returned by a successful sign-in. The
// real backend identifies accounts by numeric ID; adapters normalize those to
// strings so both backends share one shape.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// LoginDocument is the mock login payload
type LoginDocument struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
