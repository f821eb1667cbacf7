package art

import "time"

// Appraisal has no owner column of its own; ownership is derived through
// the referenced artwork's creator.
type Appraisal struct {
	ID        uint     `gorm:"primaryKey"`
	ArtworkID uint     `gorm:"not null;index"`
	Artwork   *Artwork `gorm:"constraint:OnDelete:CASCADE;"`

	ValuationAmount float64   `gorm:"type:numeric(14,2);not null"`
	CurrencyCode    string    `gorm:"type:varchar(3);not null"`
	ValuationDate   time.Time `gorm:"not null;index"`
	AppraiserName   string
	InsuranceValue  *float64 `gorm:"type:numeric(14,2)"`
	Notes           string   `gorm:"type:text"`

	CreatedAt time.Time
}
