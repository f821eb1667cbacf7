package art

import "time"

type ArtworkImage struct {
	ID        uint   `gorm:"primaryKey"`
	ArtworkID uint   `gorm:"not null;index"`
	BlobURL   string `gorm:"not null"`
	IsPrimary bool   `gorm:"not null;default:false"`

	UploadedAt time.Time `gorm:"autoCreateTime"`
}
