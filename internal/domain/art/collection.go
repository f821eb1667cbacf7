package art

import "time"

type Collection struct {
	ID             uint   `gorm:"primaryKey"`
	CollectionName string `gorm:"not null"`
	Description    string `gorm:"type:text"`

	OwnerProfileID uint `gorm:"not null;index"`

	CollectionArtworks []CollectionArtwork `gorm:"constraint:OnDelete:CASCADE;"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CollectionArtwork links one artwork into one collection. The unique index
// on ArtworkID is what makes the move-on-create behavior a real rule: an
// artwork sits in at most one collection at a time.
type CollectionArtwork struct {
	ID           uint `gorm:"primaryKey"`
	CollectionID uint `gorm:"not null;index"`
	ArtworkID    uint `gorm:"not null;uniqueIndex:idx_collection_artworks_artwork"`

	Collection *Collection `gorm:"constraint:OnDelete:CASCADE;"`
	Artwork    *Artwork    `gorm:"constraint:OnDelete:CASCADE;"`

	AddedByProfileID uint
	AddedAt          time.Time `gorm:"autoCreateTime"`
}
