package users

import (
	"log"
	"net/http"

	"inventory-app/database"
	"inventory-app/internal/domain/users"

	"github.com/gin-gonic/gin"
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
// GET /api/user/profile
// ------------------------------
func GetProfile(c *gin.Context) {
	profileID, ok := mustProfileID(c)
	if !ok {
		return
	}

	var profile users.UserProfile
	if err := database.DB.First(&profile, "id = ?", profileID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, ProfileDTO{
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Email:     profile.Email,
		Phone:     profile.Phone,
		Username:  profile.Username,
		UserRole:  profile.UserRole,
	})
}

// ------------------------------
// PUT /api/user/profile
// Name and contact fields only; username, role and credentials are not
// client-writable.
// ------------------------------
func UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	profileID, ok := mustProfileID(c)
	if !ok {
		return
	}

	var profile users.UserProfile
	if err := database.DB.First(&profile, "id = ?", profileID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
		return
	}

	updates := map[string]interface{}{
		"first_name": req.FirstName,
		"last_name":  req.LastName,
		"email":      req.Email,
		"phone":      req.Phone,
	}
	if err := database.DB.Model(&profile).Updates(updates).Error; err != nil {
		log.Println("profile update failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully."})
}
