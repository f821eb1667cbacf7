package collections

type CreateCollectionRequest struct {
	CollectionName string `json:"collectionName" binding:"required,max=100"`
	Description    string `json:"description"`

	// Artworks to place into the new collection. Each is moved out of any
	// collection it already sits in.
	ArtworkIDs []uint `json:"artworkIds"`
}

type CollectionListItemDTO struct {
	CollectionID   uint   `json:"collectionId"`
	CollectionName string `json:"collectionName"`
	Description    string `json:"description,omitempty"`
	ArtworkCount   int64  `json:"artworkCount"`
}

type CollectionArtworkDTO struct {
	ArtworkID       uint    `json:"artworkId"`
	Title           string  `json:"title"`
	Status          string  `json:"status"`
	AcquisitionCost float64 `json:"acquisitionCost"`
}

type CollectionDetailDTO struct {
	CollectionID   uint                   `json:"collectionId"`
	CollectionName string                 `json:"collectionName"`
	Description    string                 `json:"description,omitempty"`
	Artworks       []CollectionArtworkDTO `json:"artworks"`
}
