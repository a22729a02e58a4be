package entities

// ServiceCategory mirrors the backend's fixed service categories
type ServiceCategory string

const (
	CategoryConsultas      ServiceCategory = "Consultas"
	CategoryGrooming       ServiceCategory = "Grooming"
	CategoryPrevencion     ServiceCategory = "Prevencion"
	CategoryEmergencias    ServiceCategory = "Emergencias"
	CategoryLaboratorio    ServiceCategory = "Laboratorio"
	CategoryCirugia        ServiceCategory = "Cirugia"
	CategoryDiagnostico    ServiceCategory = "Diagnostico"
	CategoryHospedaje      ServiceCategory = "Hospedaje"
	CategoryEspecialidades ServiceCategory = "Especialidades"
	CategoryDental         ServiceCategory = "Dental"
	CategoryRehabilitacion ServiceCategory = "Rehabilitacion"
)

// VeterinaryService represents one service offered by a single clinic
type VeterinaryService struct {
	ID           string          `json:"id"`
	VeterinaryID string          `json:"veterinaryId"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        float64         `json:"price"`
	Duration     *int            `json:"duration,omitempty"`
	Category     ServiceCategory `json:"category"`
	Features     []string        `json:"features,omitempty"`
	IsActive     bool            `json:"isActive"`
}

// ServiceDocument is the shape of the mock services endpoint
type ServiceDocument struct {
	Services []VeterinaryService `json:"services"`
}

// AveragePrice returns the mean price of the given services, 0 when empty
func AveragePrice(services []VeterinaryService) float64 {
	if len(services) == 0 {
		return 0
	}
	var sum float64
	for _, s := range services {
		sum += s.Price
	}
	return sum / float64(len(services))
}
