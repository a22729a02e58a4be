package entities

// Veterinary represents a veterinary clinic
type Veterinary struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Address       string            `json:"address"`
	Coordinates   *Coordinates      `json:"coordinates,omitempty"`
	Rating        float64           `json:"rating"`
	TotalReviews  int               `json:"totalReviews"`
	Contact       *Contact          `json:"contact,omitempty"`
	BusinessHours []BusinessHours   `json:"businessHours,omitempty"`
	Features      []string          `json:"features,omitempty"`
	ServiceIDs    []string          `json:"serviceIds,omitempty"`
	Images        []VeterinaryImage `json:"images,omitempty"`
}

// Contact groups a clinic's contact channels
type Contact struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
}

// Coordinates represents geographical coordinates
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// BusinessHours is one day-range entry of a clinic's schedule
type BusinessHours struct {
	Days  string `json:"days"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

// VeterinaryImage is one gallery image of a clinic
type VeterinaryImage struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Type string `json:"type,omitempty"`
}

// VeterinaryDocument is the shape of the mock veterinaries endpoint
type VeterinaryDocument struct {
	Veterinaries []Veterinary `json:"veterinaries"`
}

// VeterinaryWithServices pairs a clinic with its service list for result rows
type VeterinaryWithServices struct {
	Veterinary Veterinary          `json:"veterinary"`
	Services   []VeterinaryService `json:"services"`
}

// VeterinaryWithDetails is the aggregate shown on the clinic detail screen
type VeterinaryWithDetails struct {
	Veterinary Veterinary          `json:"veterinary"`
	Services   []VeterinaryService `json:"services"`
	Reviews    []Review            `json:"reviews"`
}
