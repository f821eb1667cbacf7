package artworks

import "time"

// ---------- requests

type CreateArtworkRequest struct {
	Title           string     `json:"title" binding:"required,max=200"`
	ArtistID        *uint      `json:"artistId"`
	Medium          string     `json:"medium" binding:"max=120"`
	HeightCM        *float64   `json:"heightCM"`
	WidthCM         *float64   `json:"widthCM"`
	WeightKG        *float64   `json:"weightKG"`
	AcquisitionCost float64    `json:"acquisitionCost"`
	AcquisitionDate *time.Time `json:"acquisitionDate"`
	Provenance      string     `json:"provenance"`
	Status          string     `json:"status" binding:"max=40"`

	// First URL becomes the primary image.
	ImageURLs []string `json:"imageUrls"`
}

type ValuationUpdateRequest struct {
	NewValuation  float64   `json:"newValuation" binding:"required"`
	EffectiveDate time.Time `json:"effectiveDate" binding:"required"`
}

// ---------- responses

type ArtworkListItemDTO struct {
	ArtworkID       uint     `json:"artworkId"`
	Title           string   `json:"title"`
	ArtistID        *uint    `json:"artistId"`
	ArtistName      string   `json:"artistName"`
	Medium          string   `json:"medium,omitempty"`
	HeightCM        *float64 `json:"heightCM,omitempty"`
	WidthCM         *float64 `json:"widthCM,omitempty"`
	AcquisitionCost float64  `json:"acquisitionCost"`
	Status          string   `json:"status"`
	ImageURL        *string  `json:"imageUrl"`
	Collections     []string `json:"collections"`
}

type UserArtworkDTO struct {
	ArtworkID       uint    `json:"artworkId"`
	Title           string  `json:"title"`
	ArtistName      string  `json:"artistName"`
	AcquisitionCost float64 `json:"acquisitionCost"`
	Status          string  `json:"status"`
	ImageURL        *string `json:"imageUrl"`
}

type ArtworkImageDTO struct {
	ID        uint   `json:"id"`
	BlobURL   string `json:"blobUrl"`
	IsPrimary bool   `json:"isPrimary"`
}

type ArtworkDetailDTO struct {
	ArtworkID       uint              `json:"artworkId"`
	Title           string            `json:"title"`
	ArtistID        *uint             `json:"artistId"`
	ArtistName      string            `json:"artistName"`
	Medium          string            `json:"medium,omitempty"`
	HeightCM        *float64          `json:"heightCM,omitempty"`
	WidthCM         *float64          `json:"widthCM,omitempty"`
	WeightKG        *float64          `json:"weightKG,omitempty"`
	AcquisitionCost float64           `json:"acquisitionCost"`
	AcquisitionDate *time.Time        `json:"acquisitionDate,omitempty"`
	Provenance      string            `json:"provenance,omitempty"`
	Status          string            `json:"status"`
	ArtworkImages   []ArtworkImageDTO `json:"artworkImages"`
	Collections     []string          `json:"collections"`
}
