package entities

// Favorite bookmarks a clinic for a user. One per (user, clinic) pair.
type Favorite struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	VeterinaryID string `json:"veterinaryId"`
	CreatedAt    string `json:"createdAt"`
}

// FavoriteDocument is the shape of the mock favorites endpoint
type FavoriteDocument struct {
	Favorites []Favorite `json:"favorites"`
}
