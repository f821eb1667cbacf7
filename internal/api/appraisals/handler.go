package appraisals

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
// GET /api/appraisals
// Scoped through the appraised artwork's creator, most recent first.
// ------------------------------
func GetAppraisals(c *gin.Context) {
	profileID, ok := mustProfileID(c)
	if !ok {
		return
	}

	var rows []art.Appraisal
	err := access.OwnedAppraisals(database.DB, profileID).
		Preload("Artwork").
		Order("appraisals.valuation_date DESC").
		Find(&rows).Error
	if err != nil {
		log.Println("appraisal listing failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load appraisals"})
		return
	}

	out := make([]AppraisalDTO, 0, len(rows))
	for _, a := range rows {
		title := "Unassigned Asset"
		if a.Artwork != nil {
			title = a.Artwork.Title
		}
		out = append(out, AppraisalDTO{
			AppraisalID:     a.ID,
			ArtworkID:       a.ArtworkID,
			ArtworkTitle:    title,
			ValuationAmount: a.ValuationAmount,
			CurrencyCode:    a.CurrencyCode,
			ValuationDate:   a.ValuationDate,
			AppraiserName:   a.AppraiserName,
			InsuranceValue:  a.InsuranceValue,
			Notes:           a.Notes,
		})
	}

	c.JSON(http.StatusOK, out)
}

// ------------------------------
// POST /api/appraisals
// ------------------------------
func CreateAppraisal(c *gin.Context) {
	var req CreateAppraisalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	profileID, ok := mustProfileID(c)
	if !ok {
		return
	}

	if _, err := access.ArtworkOwnedBy(database.DB, profileID, req.ArtworkID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "You can only record valuations for assets in your own collection."})
			return
		}
		log.Println("appraisal target lookup failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create appraisal"})
		return
	}

	appraisal := art.Appraisal{
		ArtworkID:       req.ArtworkID,
		ValuationAmount: req.ValuationAmount,
		CurrencyCode:    req.CurrencyCode,
		ValuationDate:   req.ValuationDate,
		AppraiserName:   req.AppraiserName,
		InsuranceValue:  req.InsuranceValue,
		Notes:           req.Notes,
	}
	if err := database.DB.Create(&appraisal).Error; err != nil {
		log.Println("appraisal insert failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create appraisal"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"appraisalId": appraisal.ID})
}
