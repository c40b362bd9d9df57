package bird

import (
	"errors"
	"time"
)

var (
	// ErrNotFound indicates a species could not be located.
	ErrNotFound = errors.New("bird not found")
	// ErrDuplicateSpecies signals a scientific name uniqueness breach.
	ErrDuplicateSpecies = errors.New("bird with scientific name already exists")
)

// Bird captures one species of the local catalog.
type Bird struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	ScientificName string    `json:"scientific_name"`
	Family         string    `json:"family"`
	Description    string    `json:"description"`
	Habitat        string    `json:"habitat"`
	ImageURL       string    `json:"image_url"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Update applies partial field updates to the species record.
func (b *Bird) Update(name, scientificName, family, description, habitat, imageURL *string) {
	if name != nil {
		b.Name = *name
	}
	if scientificName != nil {
		b.ScientificName = *scientificName
	}
	if family != nil {
		b.Family = *family
	}
	if description != nil {
		b.Description = *description
	}
	if habitat != nil {
		b.Habitat = *habitat
	}
	if imageURL != nil {
		b.ImageURL = *imageURL
	}
	b.UpdatedAt = time.Now().UTC()
}
