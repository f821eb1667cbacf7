package artworks

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"inventory-app/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ------------------------------
// POST /api/artworks/upload-images
// Multipart batch under the "files" field. Files land in UPLOAD_DIR with a
// generated name; the response lists public paths in submission order.
// ------------------------------
func UploadImages(c *gin.Context) {
	if _, ok := mustProfileID(c); !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid multipart form"})
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No files submitted"})
		return
	}

	if err := os.MkdirAll(config.UPLOAD_DIR, 0755); err != nil {
		log.Println("upload dir create failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store files"})
		return
	}

	paths := make([]string, 0, len(files))
	for _, file := range files {
		if file.Size == 0 {
			continue
		}

		name := uuid.NewString() + filepath.Ext(file.Filename)
		dst := filepath.Join(config.UPLOAD_DIR, name)
		if err := c.SaveUploadedFile(file, dst); err != nil {
			log.Println("upload save failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store files"})
			return
		}

		paths = append(paths, "/static/uploads/"+name)
	}

	c.JSON(http.StatusOK, paths)
}
