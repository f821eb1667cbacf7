package artists

import (
	"errors"
	"log"
	"net/http"

	"inventory-app/database"
	"inventory-app/internal/domain/art"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ------------------------------
// GET /api/artists
// ------------------------------
func ListArtists(c *gin.Context) {
	var result []art.Artist
	err := database.DB.
		Where("EXISTS (SELECT 1 FROM artworks WHERE artworks.artist_id = artists.id)").
		Order("last_name ASC, first_name ASC").
		Find(&result).Error
	if err != nil {
		log.Println("artist listing failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load artists"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ------------------------------
// GET /api/artists/:id
// ------------------------------
func GetArtist(c *gin.Context) {
	id := c.Param("id")

	var artist art.Artist
	err := database.DB.
		Preload("Artworks").
		First(&artist, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Artist not found"})
			return
		}
		log.Println("artist lookup failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load artist"})
		return
	}

	out := ArtistDetailDTO{
		ArtistID:    artist.ID,
		FirstName:   artist.FirstName,
		LastName:    artist.LastName,
		Nationality: artist.Nationality,
		BirthYear:   artist.BirthYear,
		DeathYear:   artist.DeathYear,
		Biography:   artist.Biography,
		Artworks:    make([]ArtworkSummaryDTO, 0, len(artist.Artworks)),
	}
	for _, a := range artist.Artworks {
		out.Artworks = append(out.Artworks, ArtworkSummaryDTO{
			ArtworkID:       a.ID,
			Title:           a.Title,
			Status:          a.Status,
			AcquisitionCost: a.AcquisitionCost,
		})
	}

	c.JSON(http.StatusOK, out)
}

// ------------------------------
// POST /api/artists
// ------------------------------
func CreateArtist(c *gin.Context) {
	var req CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	artist := art.Artist{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Nationality: req.Nationality,
		BirthYear:   req.BirthYear,
		DeathYear:   req.DeathYear,
		Biography:   req.Biography,
	}
	if err := database.DB.Create(&artist).Error; err != nil {
		log.Println("artist insert failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create artist"})
		return
	}

	c.JSON(http.StatusCreated, artist)
}
