package vetapi

// Wire types for the real backend. Field names follow its JSON contract;
// numeric IDs stay int64 here and are normalized to strings by the adapters.

// SignInRequest is the sign-in payload
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpRequest is the registration payload. Role decides which optional
// field group the backend reads.
type SignUpRequest struct {
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`

	// CLIENT (pet owner)
	DNI     string `json:"dni,omitempty"`
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`

	// VETERINARY (vet center)
	VetCenterRUC        string `json:"vetCenterRuc,omitempty"`
	VetCenterClinicName string `json:"vetCenterClinicName,omitempty"`
	VetCenterLicense    string `json:"vetCenterLicense,omitempty"`
	VetCenterAddress    string `json:"vetCenterAddress,omitempty"`
	VetCenterPhone      string `json:"vetCenterPhone,omitempty"`
}

// AuthResponse is the authentication result
type AuthResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
	Role     string `json:"role"`
}

// ChangePasswordRequest is the change-password payload
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// BusinessHour is one schedule entry
type BusinessHour struct {
	Days  string `json:"days"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

// ContactInfo groups a clinic's contact channels
type ContactInfo struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// VetCenterResponse is a clinic record
type VetCenterResponse struct {
	ID            int64          `json:"id"`
	UserID        int64          `json:"user_id"`
	Name          string         `json:"name"`
	Address       string         `json:"address"`
	ImageProfile  string         `json:"imageProfile"`
	Description   string         `json:"description"`
	Rating        float64        `json:"rating"`
	TotalReviews  int            `json:"totalReviews"`
	BusinessHours []BusinessHour `json:"businessHours"`
	Contact       ContactInfo    `json:"contact"`
}

// UpdateVetCenterRequest is the clinic profile edit payload
type UpdateVetCenterRequest struct {
	Name          *string        `json:"name,omitempty"`
	Email         *string        `json:"email,omitempty"`
	RUC           *string        `json:"ruc,omitempty"`
	Phone         *string        `json:"phone,omitempty"`
	ImageProfile  *string        `json:"imageProfile,omitempty"`
	Description   *string        `json:"description,omitempty"`
	Address       *string        `json:"address,omitempty"`
	BusinessHours []BusinessHour `json:"businessHours,omitempty"`
}

// VetCenterImageResponse is one gallery image
type VetCenterImageResponse struct {
	VetCenterImageID int64  `json:"vetCenterImageId"`
	ImageURL         string `json:"imageUrl"`
}

// AddVetCenterImageRequest appends a gallery image
type AddVetCenterImageRequest struct {
	ImageURL string `json:"imageUrl"`
}

// PetOwnerResponse is a pet owner record
type PetOwnerResponse struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	DNI    string `json:"dni"`
	Phone  string `json:"phone"`
	Photo  string `json:"photo"`
}

// UpdatePetOwnerRequest is the pet owner edit payload
type UpdatePetOwnerRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	DNI   *string `json:"dni,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Photo *string `json:"photo,omitempty"`
}

// ReviewResponse is a review record
type ReviewResponse struct {
	ID           int64  `json:"id"`
	VeterinaryID int64  `json:"veterinaryId"`
	UserID       int64  `json:"userId"`
	UserName     string `json:"userName"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// CreateReviewRequest publishes a review
type CreateReviewRequest struct {
	VetCenterID int64  `json:"vetCenterId"`
	PetOwnerID  int64  `json:"petOwnerId"`
	Rating      int    `json:"rating"`
	Comments    string `json:"comments"`
}

// VetServiceResponse is a service record
type VetServiceResponse struct {
	ID           int64    `json:"id"`
	VeterinaryID int64    `json:"veterinaryId"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Duration     int      `json:"duration"`
	Category     string   `json:"category"`
	Features     []string `json:"features"`
	IsActive     bool     `json:"isActive"`
}

// CreateVetServiceRequest adds a service
type CreateVetServiceRequest struct {
	VetID       int64    `json:"vetId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Duration    int      `json:"duration"`
	Category    string   `json:"category"`
	Features    []string `json:"features"`
	IsActive    bool     `json:"isActive"`
}

// UpdateVetServiceRequest edits a service
type UpdateVetServiceRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Duration    int      `json:"duration"`
	Category    string   `json:"category"`
	Features    []string `json:"features"`
	IsActive    bool     `json:"isActive"`
}

// FavoriteResponse is a favorite record
type FavoriteResponse struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"userId"`
	VeterinaryID int64  `json:"veterinaryId"`
	CreatedAt    string `json:"createdAt"`
}

// CreateFavoriteRequest bookmarks a clinic
type CreateFavoriteRequest struct {
	UserID       int64  `json:"userId"`
	VeterinaryID int64  `json:"veterinaryId"`
}
