package artists

type CreateArtistRequest struct {
	FirstName   string `json:"firstName" binding:"required,max=80"`
	LastName    string `json:"lastName" binding:"required,max=80"`
	Nationality string `json:"nationality" binding:"max=60"`
	BirthYear   *int   `json:"birthYear"`
	DeathYear   *int   `json:"deathYear"`
	Biography   string `json:"biography"`
}

type ArtworkSummaryDTO struct {
	ArtworkID       uint    `json:"artworkId"`
	Title           string  `json:"title"`
	Status          string  `json:"status"`
	AcquisitionCost float64 `json:"acquisitionCost"`
}

type ArtistDetailDTO struct {
	ArtistID    uint                `json:"artistId"`
	FirstName   string              `json:"firstName"`
	LastName    string              `json:"lastName"`
	Nationality string              `json:"nationality,omitempty"`
	BirthYear   *int                `json:"birthYear,omitempty"`
	DeathYear   *int                `json:"deathYear,omitempty"`
	Biography   string              `json:"biography,omitempty"`
	Artworks    []ArtworkSummaryDTO `json:"artworks"`
}
