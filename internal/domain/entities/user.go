package entities

// UserRole is fixed at registration and never changes afterwards.
type UserRole string

const (
	RoleClient     UserRole = "CLIENT"
	RoleVeterinary UserRole = "VETERINARY"
)

// User represents an account in the system, either a pet owner or a clinic
type User struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Address       string   `json:"address,omitempty"`
	ImageURL      string   `json:"imageUrl,omitempty"`
	Role          UserRole `json:"role"`
	VeterinaryID  string   `json:"veterinaryId,omitempty"`
	License       string   `json:"license,omitempty"`
	ReviewCount   *int     `json:"reviewCount,omitempty"`
	FavoriteCount *int     `json:"favoriteCount,omitempty"`
	CreatedAt     string   `json:"createdAt"`
	LastLoginAt   string   `json:"lastLoginAt,omitempty"`
}

// IsVeterinary reports whether the account belongs to a clinic
func (u *User) IsVeterinary() bool {
	return u.Role == RoleVeterinary
}

// Credentials pairs a login with the user record it unlocks. Only present in
// the seeded mock document.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserID   string `json:"userId"`
}

// UserDocument is the shape of the mock users endpoint
type UserDocument struct {
	Users       []User              `json:"users"`
	Credentials CredentialsDocument `json:"credentials"`
}

// CredentialsDocument splits seeded credentials by account kind
type CredentialsDocument struct {
	Clients      []Credentials `json:"clients"`
	Veterinaries []Credentials `json:"veterinaries"`
}
