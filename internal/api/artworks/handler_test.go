package artworks_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"inventory-app/config"
	"inventory-app/internal/domain/art"
	"inventory-app/internal/testutil"

	"github.com/gin-gonic/gin"
)

func createArtwork(t *testing.T, r *gin.Engine, token, title string, extra map[string]any) uint {
	t.Helper()

	body := map[string]any{"title": title}
	for k, v := range extra {
		body[k] = v
	}
	w := testutil.DoJSON(t, r, http.MethodPost, "/api/artworks", token, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create artwork expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		ArtworkID uint `json:"artworkId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	return resp.ArtworkID
}

func TestArtworkListingIsOwnerScoped(t *testing.T) {
	r, db := testutil.SetupRouter(t)
	alice := testutil.CreateProfile(t, db, "alice", "gallery99pass")
	bob := testutil.CreateProfile(t, db, "bob", "gallery99pass")
	aliceToken := testutil.TokenFor(t, alice.ID)
	bobToken := testutil.TokenFor(t, bob.ID)

	createArtwork(t, r, aliceToken, "Water Lilies", nil)
	createArtwork(t, r, bobToken, "The Scream", nil)

	w := testutil.DoJSON(t, r, http.MethodGet, "/api/artworks", aliceToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list expected 200, got %d", w.Code)
	}
	var list []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("alice sees %d artworks, want 1", len(list))
	}
	if list[0]["title"] != "Water Lilies" {
		t.Fatalf("alice sees %v", list[0]["title"])
	}
}

func TestArtworkByIDRequiresOwnership(t *testing.T) {
	r, db := testutil.SetupRouter(t)
	alice := testutil.CreateProfile(t, db, "alice", "gallery99pass")
	bob := testutil.CreateProfile(t, db, "bob", "gallery99pass")
	aliceToken := testutil.TokenFor(t, alice.ID)
	bobToken := testutil.TokenFor(t, bob.ID)

	id := createArtwork(t, r, bobToken, "The Scream", nil)

	w := testutil.DoJSON(t, r, http.MethodGet, fmt.Sprintf("/api/artworks/%d", id), aliceToken, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("foreign artwork fetch expected 404, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoJSON(t, r, http.MethodGet, fmt.Sprintf("/api/artworks/%d", id), bobToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("own artwork fetch expected 200, got %d", w.Code)
	}
}

func TestCreateArtworkFlagsFirstImagePrimary(t *testing.T) {
	r, db := testutil.SetupRouter(t)
	alice := testutil.CreateProfile(t, db, "alice", "gallery99pass")
	token := testutil.TokenFor(t, alice.ID)

	id := createArtwork(t, r, token, "Water Lilies", map[string]any{
		"imageUrls": []string{"/static/uploads/a.jpg", "/static/uploads/b.jpg", "/static/uploads/c.jpg"},
	})

	var images []art.ArtworkImage
	if err := db.Where("artwork_id = ?", id).Order("id ASC").Find(&images).Error; err != nil {
		t.Fatalf("load images: %v", err)
	}
	if len(images) != 3 {
		t.Fatalf("persisted %d images, want 3", len(images))
	}
	for i, img := range images {
		if img.IsPrimary != (i == 0) {
			t.Fatalf("image %d primary=%v", i, img.IsPrimary)
		}
	}

	w := testutil.DoJSON(t, r, http.MethodGet, "/api/artworks", token, nil)
	var list []struct {
		ImageURL *string `json:"imageUrl"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 || list[0].ImageURL == nil || *list[0].ImageURL != "/static/uploads/a.jpg" {
		t.Fatalf("listing image url = %+v, want primary a.jpg", list)
	}
}

func TestListingFallsBackToFirstImageWhenNonePrimary(t *testing.T) {
	r, db := testutil.SetupRouter(t)
	alice := testutil.CreateProfile(t, db, "alice", "gallery99pass")
	token := testutil.TokenFor(t, alice.ID)

	id := createArtwork(t, r, token, "Water Lilies", nil)
	for _, url := range []string{"/static/uploads/x.jpg", "/static/uploads/y.jpg"} {
		img := art.ArtworkImage{ArtworkID: id, BlobURL: url, IsPrimary: false}
		if err := db.Create(&img).Error; err != nil {
			t.Fatalf("insert image: %v", err)
		}
	}

	w := testutil.DoJSON(t, r, http.MethodGet, "/api/artworks", token, nil)
	var list []struct {
		ImageURL *string `json:"imageUrl"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 || list[0].ImageURL == nil || *list[0].ImageURL != "/static/uploads/x.jpg" {
		t.Fatalf("listing image url = %+v, want first image x.jpg", list)
	}
}

func TestUpdateValuationRequiresOwnership(t *testing.T) {
	r, db := testutil.SetupRouter(t)
	alice := testutil.CreateProfile(t, db, "alice", "gallery99pass")
	bob := testutil.CreateProfile(t, db, "bob", "gallery99pass")
	aliceToken := testutil.TokenFor(t, alice.ID)
	bobToken := testutil.TokenFor(t, bob.ID)

	id := createArtwork(t, r, bobToken, "The Scream", map[string]any{"acquisitionCost": 1000.0})

	update := map[string]any{
		"newValuation":  250000.0,
		"effectiveDate": "2024-03-01T00:00:00Z",
	}

	w := testutil.DoJSON(t, r, http.MethodPost, fmt.Sprintf("/api/artworks/update-valuation/%d", id), aliceToken, update)
	if w.Code != http.StatusNotFound {
		t.Fatalf("foreign valuation update expected 404, got %d: %s", w.Code, w.Body.String())
	}

	var unchanged art.Artwork
	if err := db.First(&unchanged, id).Error; err != nil {
		t.Fatalf("reload artwork: %v", err)
	}
	if unchanged.AcquisitionCost != 1000.0 {
		t.Fatalf("valuation changed by non-owner: %v", unchanged.AcquisitionCost)
	}

	w = testutil.DoJSON(t, r, http.MethodPost, fmt.Sprintf("/api/artworks/update-valuation/%d", id), bobToken, update)
	if w.Code != http.StatusOK {
		t.Fatalf("owner valuation update expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated art.Artwork
	if err := db.First(&updated, id).Error; err != nil {
		t.Fatalf("reload artwork: %v", err)
	}
	if updated.AcquisitionCost != 250000.0 {
		t.Fatalf("valuation = %v, want 250000", updated.AcquisitionCost)
	}
}

func TestUploadImagesRejectsEmptyBatch(t *testing.T) {
	r, db := testutil.SetupRouter(t)
	alice := testutil.CreateProfile(t, db, "alice", "gallery99pass")
	token := testutil.TokenFor(t, alice.ID)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/artworks/upload-images", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty batch expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUploadImagesStoresEveryFileInOrder(t *testing.T) {
	r, db := testutil.SetupRouter(t)
	alice := testutil.CreateProfile(t, db, "alice", "gallery99pass")
	token := testutil.TokenFor(t, alice.ID)

	contents := []string{"first-bytes", "second-bytes", "third-bytes"}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for i, data := range contents {
		part, err := mw.CreateFormFile("files", fmt.Sprintf("photo-%d.jpg", i))
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := io.Copy(part, strings.NewReader(data)); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/artworks/upload-images", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("upload expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var paths []string
	if err := json.Unmarshal(w.Body.Bytes(), &paths); err != nil {
		t.Fatalf("decode paths: %v", err)
	}
	if len(paths) != len(contents) {
		t.Fatalf("got %d paths, want %d", len(paths), len(contents))
	}

	for i, p := range paths {
		if !strings.HasPrefix(p, "/static/uploads/") {
			t.Fatalf("path %q not under /static/uploads/", p)
		}
		if filepath.Ext(p) != ".jpg" {
			t.Fatalf("path %q lost the original extension", p)
		}
		data, err := os.ReadFile(filepath.Join(config.UPLOAD_DIR, filepath.Base(p)))
		if err != nil {
			t.Fatalf("read stored file %q: %v", p, err)
		}
		if string(data) != contents[i] {
			t.Fatalf("file %d content = %q, want %q", i, data, contents[i])
		}
	}
}
