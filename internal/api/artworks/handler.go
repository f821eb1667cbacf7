package artworks

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"inventory-app/database"
	"inventory-app/internal/domain/access"
	"inventory-app/internal/domain/art"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func mustProfileID(c *gin.Context) (uint, bool) {
	profileID := c.GetUint("profile_id")
	if profileID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Security identity missing or invalid."})
		return 0, false
	}
	return profileID, true
}

func artistDisplayName(a *art.Artist) string {
	if a == nil {
		return "Unknown"
	}
	return a.FirstName + " " + a.LastName
}

// Primary-flagged image first, else the first image in insertion order.
func primaryImageURL(images []art.ArtworkImage) *string {
	for i := range images {
		if images[i].IsPrimary {
			return &images[i].BlobURL
		}
	}
	if len(images) > 0 {
		return &images[0].BlobURL
	}
	return nil
}

func collectionNames(links []art.CollectionArtwork) []string {
	names := make([]string, 0, len(links))
	for _, ca := range links {
		if ca.Collection != nil {
			names = append(names, ca.Collection.CollectionName)
		}
	}
	return names
}

func inCollectionFilter(q *gorm.DB, collectionID string) *gorm.DB {
	return q.Where("EXISTS (SELECT 1 FROM collection_artworks ca WHERE ca.artwork_id = artworks.id AND ca.collection_id = ?)", collectionID)
}

// ------------------------------
// GET /api/artworks?collectionId=&artistId=
// ------------------------------
func GetArtworks(c *gin.Context) {
	profileID, ok := mustProfileID(c)
	if !ok {
		return
	}

	q := access.OwnedArtworks(database.DB, profileID).
		Preload("Artist").
		Preload("Images").
		Preload("CollectionArtworks.Collection")

	if collectionID := c.Query("collectionId"); collectionID != "" {
		q = inCollectionFilter(q, collectionID)
	}
	if artistID := c.Query("artistId"); artistID != "" {
		q = q.Where("artworks.artist_id = ?", artistID)
	}

	var rows []art.Artwork
	if err := q.Find(&rows).Error; err != nil {
		log.Println("artwork listing failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load artworks"})
		return
	}

	out := make([]ArtworkListItemDTO, 0, len(rows))
	for _, a := range rows {
		out = append(out, ArtworkListItemDTO{
			ArtworkID:       a.ID,
			Title:           a.Title,
			ArtistID:        a.ArtistID,
			ArtistName:      artistDisplayName(a.Artist),
			Medium:          a.Medium,
			HeightCM:        a.HeightCM,
			WidthCM:         a.WidthCM,
			AcquisitionCost: a.AcquisitionCost,
			Status:          a.Status,
			ImageURL:        primaryImageURL(a.Images),
			Collections:     collectionNames(a.CollectionArtworks),
		})
	}

	c.JSON(http.StatusOK, out)
}

// ------------------------------
// GET /api/artworks/user?collectionId=
// Artworks reachable through collections the caller owns.
// ------------------------------
func GetUserArtworks(c *gin.Context) {
	profileID, ok := mustProfileID(c)
	if !ok {
		return
	}

	q := access.CollectionMemberArtworks(database.DB, profileID).
		Preload("Artist").
		Preload("Images")

	if collectionID := c.Query("collectionId"); collectionID != "" {
		q = inCollectionFilter(q, collectionID)
	}

	var rows []art.Artwork
	if err := q.Find(&rows).Error; err != nil {
		log.Println("user artwork listing failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load artworks"})
		return
	}

	out := make([]UserArtworkDTO, 0, len(rows))
	for _, a := range rows {
		out = append(out, UserArtworkDTO{
			ArtworkID:       a.ID,
			Title:           a.Title,
			ArtistName:      artistDisplayName(a.Artist),
			AcquisitionCost: a.AcquisitionCost,
			Status:          a.Status,
			ImageURL:        primaryImageURL(a.Images),
		})
	}

	c.JSON(http.StatusOK, out)
}

// ------------------------------
// GET /api/artworks/:id
// ------------------------------
func GetArtwork(c *gin.Context) {
	profileID, ok := mustProfileID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var artwork art.Artwork
	err := access.OwnedArtworks(database.DB, profileID).
		Preload("Artist").
		Preload("Images").
		Preload("CollectionArtworks.Collection").
		Where("artworks.id = ?", id).
		First(&artwork).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Artwork not found"})
			return
		}
		log.Println("artwork lookup failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load artwork"})
		return
	}

	images := make([]ArtworkImageDTO, 0, len(artwork.Images))
	for _, img := range artwork.Images {
		images = append(images, ArtworkImageDTO{ID: img.ID, BlobURL: img.BlobURL, IsPrimary: img.IsPrimary})
	}

	c.JSON(http.StatusOK, ArtworkDetailDTO{
		ArtworkID:       artwork.ID,
		Title:           artwork.Title,
		ArtistID:        artwork.ArtistID,
		ArtistName:      artistDisplayName(artwork.Artist),
		Medium:          artwork.Medium,
		HeightCM:        artwork.HeightCM,
		WidthCM:         artwork.WidthCM,
		WeightKG:        artwork.WeightKG,
		AcquisitionCost: artwork.AcquisitionCost,
		AcquisitionDate: artwork.AcquisitionDate,
		Provenance:      artwork.Provenance,
		Status:          artwork.Status,
		ArtworkImages:   images,
		Collections:     collectionNames(artwork.CollectionArtworks),
	})
}

// ------------------------------
// POST /api/artworks
// ------------------------------
func CreateArtwork(c *gin.Context) {
	var req CreateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	profileID, ok := mustProfileID(c)
	if !ok {
		return
	}

	var created art.Artwork
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		artwork := art.Artwork{
			Title:              req.Title,
			ArtistID:           req.ArtistID,
			Medium:             req.Medium,
			HeightCM:           req.HeightCM,
			WidthCM:            req.WidthCM,
			WeightKG:           req.WeightKG,
			AcquisitionCost:    req.AcquisitionCost,
			AcquisitionDate:    req.AcquisitionDate,
			Provenance:         req.Provenance,
			Status:             req.Status,
			CreatedByProfileID: profileID,
		}
		if err := tx.Create(&artwork).Error; err != nil {
			return err
		}

		for i, url := range req.ImageURLs {
			img := art.ArtworkImage{
				ArtworkID: artwork.ID,
				BlobURL:   url,
				IsPrimary: i == 0,
			}
			if err := tx.Create(&img).Error; err != nil {
				return err
			}
		}

		created = artwork
		return nil
	})
	if err != nil {
		log.Println("artwork insert failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create artwork"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"artworkId": created.ID})
}

// ------------------------------
// POST /api/artworks/update-valuation/:id
// ------------------------------
func UpdateValuation(c *gin.Context) {
	var req ValuationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	profileID, ok := mustProfileID(c)
	if !ok {
		return
	}

	artworkID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Asset not found in registry."})
		return
	}

	artwork, err := access.ArtworkOwnedBy(database.DB, profileID, uint(artworkID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Asset not found in registry."})
			return
		}
		log.Println("valuation target lookup failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update valuation"})
		return
	}

	updates := map[string]interface{}{
		"acquisition_cost": req.NewValuation,
		"acquisition_date": req.EffectiveDate,
		"updated_at":       time.Now().UTC(),
	}
	if err := database.DB.Model(&art.Artwork{}).Where("id = ?", artwork.ID).Updates(updates).Error; err != nil {
		// Details stay in the server log; the client gets a generic message.
		log.Println("valuation update failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error during valuation update."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Asset valuation updated successfully."})
}
