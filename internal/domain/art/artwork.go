package art

import "time"

type Artwork struct {
	ID    uint   `gorm:"primaryKey"`
	Title string `gorm:"not null"`

	ArtistID *uint   `gorm:"index"`
	Artist   *Artist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`

	Medium   string
	HeightCM *float64
	WidthCM  *float64
	WeightKG *float64

	AcquisitionCost float64 `gorm:"type:numeric(14,2)"`
	AcquisitionDate *time.Time

	Provenance string `gorm:"type:text"`
	Status     string

	// Stamped from the verified token on create, never from the body.
	CreatedByProfileID uint `gorm:"not null;index"`

	Images             []ArtworkImage      `gorm:"constraint:OnDelete:CASCADE;"`
	CollectionArtworks []CollectionArtwork `gorm:"constraint:OnDelete:CASCADE;"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
