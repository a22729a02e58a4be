package restapi

import (
	"strconv"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
	"github.com/luciano/vetconnect-go/internal/infrastructure/clients/vetapi"
	apperrors "github.com/luciano/vetconnect-go/pkg/errors"
)

// The real backend keys everything by numeric ID; entities use strings so
// both backends share one shape. Conversion lives here and nowhere else.

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func parseID(id string) (int64, error) {
	parsed, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("Identificador inválido")
	}
	return parsed, nil
}

func vetCenterToEntity(v vetapi.VetCenterResponse) entities.Veterinary {
	hours := make([]entities.BusinessHours, 0, len(v.BusinessHours))
	for _, h := range v.BusinessHours {
		hours = append(hours, entities.BusinessHours{Days: h.Days, Open: h.Open, Close: h.Close})
	}

	vet := entities.Veterinary{
		ID:            formatID(v.ID),
		Name:          v.Name,
		Address:       v.Address,
		Rating:        v.Rating,
		TotalReviews:  v.TotalReviews,
		BusinessHours: hours,
	}
	if v.Contact.Phone != "" || v.Contact.Email != "" {
		vet.Contact = &entities.Contact{Phone: v.Contact.Phone, Email: v.Contact.Email}
	}
	return vet
}

func serviceToEntity(s vetapi.VetServiceResponse) entities.VeterinaryService {
	svc := entities.VeterinaryService{
		ID:           formatID(s.ID),
		VeterinaryID: formatID(s.VeterinaryID),
		Name:         s.Name,
		Description:  s.Description,
		Price:        s.Price,
		Category:     entities.ServiceCategory(s.Category),
		Features:     s.Features,
		IsActive:     s.IsActive,
	}
	if s.Duration > 0 {
		duration := s.Duration
		svc.Duration = &duration
	}
	return svc
}

func reviewToEntity(r vetapi.ReviewResponse) entities.Review {
	return entities.Review{
		ID:           formatID(r.ID),
		VeterinaryID: formatID(r.VeterinaryID),
		UserID:       formatID(r.UserID),
		UserName:     r.UserName,
		Rating:       r.Rating,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func favoriteToEntity(f vetapi.FavoriteResponse) entities.Favorite {
	return entities.Favorite{
		ID:           formatID(f.ID),
		UserID:       formatID(f.UserID),
		VeterinaryID: formatID(f.VeterinaryID),
		CreatedAt:    f.CreatedAt,
	}
}

func petOwnerToEntity(p vetapi.PetOwnerResponse) entities.User {
	return entities.User{
		ID:       formatID(p.ID),
		Name:     p.Name,
		Email:    p.Email,
		Phone:    p.Phone,
		ImageURL: p.Photo,
		Role:     entities.RoleClient,
	}
}

func sessionToEntity(a vetapi.AuthResponse) entities.Session {
	return entities.Session{
		Token: a.Token,
		User: entities.User{
			ID:   formatID(a.ID),
			Name: a.Username,
			Role: entities.UserRole(a.Role),
		},
	}
}
