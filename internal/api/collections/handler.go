package collections

import (
	"errors"
	"log"
	"net/http"

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

// ------------------------------
// GET /api/collections
// GET /api/collections/user (same surface, both caller-scoped)
// ------------------------------
func GetCollections(c *gin.Context) {
	profileID, ok := mustProfileID(c)
	if !ok {
		return
	}

	var rows []art.Collection
	err := access.OwnedCollections(database.DB, profileID).
		Preload("CollectionArtworks").
		Order("collections.created_at ASC").
		Find(&rows).Error
	if err != nil {
		log.Println("collection listing failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load collections"})
		return
	}

	out := make([]CollectionListItemDTO, 0, len(rows))
	for _, col := range rows {
		out = append(out, CollectionListItemDTO{
			CollectionID:   col.ID,
			CollectionName: col.CollectionName,
			Description:    col.Description,
			ArtworkCount:   int64(len(col.CollectionArtworks)),
		})
	}

	c.JSON(http.StatusOK, out)
}

func GetUserCollections(c *gin.Context) {
	GetCollections(c)
}

// ------------------------------
// GET /api/collections/:id
// ------------------------------
func GetCollection(c *gin.Context) {
	profileID, ok := mustProfileID(c)
	if !ok {
		return
	}

	var col art.Collection
	err := access.OwnedCollections(database.DB, profileID).
		Preload("CollectionArtworks.Artwork").
		Where("collections.id = ?", c.Param("id")).
		First(&col).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Collection not found"})
			return
		}
		log.Println("collection lookup failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load collection"})
		return
	}

	out := CollectionDetailDTO{
		CollectionID:   col.ID,
		CollectionName: col.CollectionName,
		Description:    col.Description,
		Artworks:       make([]CollectionArtworkDTO, 0, len(col.CollectionArtworks)),
	}
	for _, ca := range col.CollectionArtworks {
		if ca.Artwork == nil {
			continue
		}
		out.Artworks = append(out.Artworks, CollectionArtworkDTO{
			ArtworkID:       ca.Artwork.ID,
			Title:           ca.Artwork.Title,
			Status:          ca.Artwork.Status,
			AcquisitionCost: ca.Artwork.AcquisitionCost,
		})
	}

	c.JSON(http.StatusOK, out)
}

// ------------------------------
// POST /api/collections
// Listed artworks are moved: any existing link rows for them are dropped
// before the new links go in, all inside one transaction.
// ------------------------------
func CreateCollection(c *gin.Context) {
	var req CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	profileID, ok := mustProfileID(c)
	if !ok {
		return
	}

	var created art.Collection
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if len(req.ArtworkIDs) > 0 {
			var owned int64
			if err := access.OwnedArtworks(tx, profileID).
				Where("artworks.id IN ?", req.ArtworkIDs).
				Count(&owned).Error; err != nil {
				return err
			}
			if owned != int64(len(req.ArtworkIDs)) {
				return gorm.ErrRecordNotFound
			}
		}

		col := art.Collection{
			CollectionName: req.CollectionName,
			Description:    req.Description,
			OwnerProfileID: profileID,
		}
		if err := tx.Create(&col).Error; err != nil {
			return err
		}

		if len(req.ArtworkIDs) > 0 {
			if err := tx.Where("artwork_id IN ?", req.ArtworkIDs).
				Delete(&art.CollectionArtwork{}).Error; err != nil {
				return err
			}
			for _, artworkID := range req.ArtworkIDs {
				link := art.CollectionArtwork{
					CollectionID:     col.ID,
					ArtworkID:        artworkID,
					AddedByProfileID: profileID,
				}
				if err := tx.Create(&link).Error; err != nil {
					return err
				}
			}
		}

		created = col
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Artwork not found"})
			return
		}
		log.Println("collection insert failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create collection"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"collectionId": created.ID})
}
