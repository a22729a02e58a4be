package vetapi

import "fmt"

// Real backend endpoint paths, rooted at the API base URL.
const (
	SignInPath  = "/api/v1/authentication/sign-in"
	SignUpPath  = "/api/v1/authentication/sign-up"
	UsersPath   = "/api/v1/users"
	VetCenters  = "/api/v1/vet-centers"
	PetOwners   = "/api/v1/pet-owners"
	Reviews     = "/api/v1/reviews"
	VetServices = "/api/v1/vet-services"
	Favorites   = "/api/v1/favorites"
)

// ChangePasswordPath builds the change-password path for a user
func ChangePasswordPath(userID string) string {
	return fmt.Sprintf("/api/v1/authentication/%s/change-password", userID)
}

// UserPath builds the path of a single user
func UserPath(userID string) string {
	return fmt.Sprintf("%s/%s", UsersPath, userID)
}

// VetCenterPath builds the path of a single clinic
func VetCenterPath(id string) string {
	return fmt.Sprintf("%s/%s", VetCenters, id)
}

// VetCenterByNamePath builds the lookup-by-name path
func VetCenterByNamePath(name string) string {
	return fmt.Sprintf("%s/name/%s", VetCenters, name)
}

// VetCenterImagesPath builds the gallery path of a clinic
func VetCenterImagesPath(id string) string {
	return fmt.Sprintf("%s/%s/images", VetCenters, id)
}

// PetOwnerPath builds the path of a single pet owner
func PetOwnerPath(id string) string {
	return fmt.Sprintf("%s/%s", PetOwners, id)
}

// ReviewsByVetCenterPath builds the per-clinic reviews path
func ReviewsByVetCenterPath(vetCenterID string) string {
	return fmt.Sprintf("%s/vet-center/%s", Reviews, vetCenterID)
}

// VetServicePath builds the path of a single service
func VetServicePath(id string) string {
	return fmt.Sprintf("%s/%s", VetServices, id)
}

// VetServicesByVetCenterPath builds the per-clinic services path
func VetServicesByVetCenterPath(vetCenterID string) string {
	return fmt.Sprintf("%s/vet-center/%s", VetServices, vetCenterID)
}

// FavoritePath builds the path of a single favorite
func FavoritePath(id string) string {
	return fmt.Sprintf("%s/%s", Favorites, id)
}

// FavoritesByUserPath builds the per-user favorites path
func FavoritesByUserPath(userID string) string {
	return fmt.Sprintf("%s/by-user/%s", Favorites, userID)
}
