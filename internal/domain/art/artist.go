package art

import "time"

type Artist struct {
	ID          uint   `gorm:"primaryKey" json:"artistId"`
	FirstName   string `gorm:"not null" json:"firstName"`
	LastName    string `gorm:"not null;index" json:"lastName"`
	Nationality string `json:"nationality,omitempty"`
	BirthYear   *int   `json:"birthYear,omitempty"`
	DeathYear   *int   `json:"deathYear,omitempty"`
	Biography   string `gorm:"type:text" json:"biography,omitempty"`

	Artworks []Artwork `gorm:"foreignKey:ArtistID" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
