package collections_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"inventory-app/internal/domain/art"
	"inventory-app/internal/testutil"

	"github.com/gin-gonic/gin"
)

func createArtwork(t *testing.T, r *gin.Engine, token, title string) uint {
	t.Helper()

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/artworks", token, map[string]any{"title": title})
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

func createCollection(t *testing.T, r *gin.Engine, token, name string, artworkIDs []uint) uint {
	t.Helper()

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/collections", token, map[string]any{
		"collectionName": name,
		"artworkIds":     artworkIDs,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create collection expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		CollectionID uint `json:"collectionId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	return resp.CollectionID
}

func TestCreateCollectionMovesAlreadyPlacedArtworks(t *testing.T) {
	r, db := testutil.SetupRouter(t)
	alice := testutil.CreateProfile(t, db, "alice", "gallery99pass")
	token := testutil.TokenFor(t, alice.ID)

	placed := createArtwork(t, r, token, "Water Lilies")
	fresh := createArtwork(t, r, token, "Haystacks")

	first := createCollection(t, r, token, "Early Works", []uint{placed})
	second := createCollection(t, r, token, "Impressionists", []uint{placed, fresh})

	var links []art.CollectionArtwork
	if err := db.Where("artwork_id = ?", placed).Find(&links).Error; err != nil {
		t.Fatalf("load links: %v", err)
	}
	if len(links) != 1 || links[0].CollectionID != second {
		t.Fatalf("placed artwork links = %+v, want single link to collection %d", links, second)
	}

	var freshLinks []art.CollectionArtwork
	if err := db.Where("artwork_id = ?", fresh).Find(&freshLinks).Error; err != nil {
		t.Fatalf("load links: %v", err)
	}
	if len(freshLinks) != 1 || freshLinks[0].CollectionID != second {
		t.Fatalf("fresh artwork links = %+v", freshLinks)
	}

	// the first collection is now empty
	w := testutil.DoJSON(t, r, http.MethodGet, "/api/collections", token, nil)
	var list []struct {
		CollectionID uint  `json:"collectionId"`
		ArtworkCount int64 `json:"artworkCount"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	counts := map[uint]int64{}
	for _, c := range list {
		counts[c.CollectionID] = c.ArtworkCount
	}
	if counts[first] != 0 || counts[second] != 2 {
		t.Fatalf("counts = %v, want first=0 second=2", counts)
	}
}

func TestCollectionsAreOwnerScoped(t *testing.T) {
	r, db := testutil.SetupRouter(t)
	alice := testutil.CreateProfile(t, db, "alice", "gallery99pass")
	bob := testutil.CreateProfile(t, db, "bob", "gallery99pass")
	aliceToken := testutil.TokenFor(t, alice.ID)
	bobToken := testutil.TokenFor(t, bob.ID)

	createCollection(t, r, aliceToken, "Alice's Wall", nil)
	bobCollection := createCollection(t, r, bobToken, "Bob's Vault", nil)

	w := testutil.DoJSON(t, r, http.MethodGet, "/api/collections", aliceToken, nil)
	var list []struct {
		CollectionName string `json:"collectionName"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 || list[0].CollectionName != "Alice's Wall" {
		t.Fatalf("alice sees %+v", list)
	}

	w = testutil.DoJSON(t, r, http.MethodGet, fmt.Sprintf("/api/collections/%d", bobCollection), aliceToken, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("foreign collection fetch expected 404, got %d", w.Code)
	}
}

func TestCreateCollectionRejectsForeignArtworks(t *testing.T) {
	r, db := testutil.SetupRouter(t)
	alice := testutil.CreateProfile(t, db, "alice", "gallery99pass")
	bob := testutil.CreateProfile(t, db, "bob", "gallery99pass")
	aliceToken := testutil.TokenFor(t, alice.ID)
	bobToken := testutil.TokenFor(t, bob.ID)

	bobArtwork := createArtwork(t, r, bobToken, "The Scream")

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/collections", aliceToken, map[string]any{
		"collectionName": "Stolen Goods",
		"artworkIds":     []uint{bobArtwork},
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}

	var links []art.CollectionArtwork
	if err := db.Where("artwork_id = ?", bobArtwork).Find(&links).Error; err != nil {
		t.Fatalf("load links: %v", err)
	}
	if len(links) != 0 {
		t.Fatalf("foreign artwork was linked: %+v", links)
	}
}

func TestUserArtworksListThroughOwnedCollections(t *testing.T) {
	r, db := testutil.SetupRouter(t)
	alice := testutil.CreateProfile(t, db, "alice", "gallery99pass")
	token := testutil.TokenFor(t, alice.ID)

	shown := createArtwork(t, r, token, "Water Lilies")
	createArtwork(t, r, token, "Unfiled Sketch")
	collectionID := createCollection(t, r, token, "On Display", []uint{shown})

	w := testutil.DoJSON(t, r, http.MethodGet, "/api/artworks/user", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("user listing expected 200, got %d", w.Code)
	}
	var list []struct {
		ArtworkID uint   `json:"artworkId"`
		Title     string `json:"title"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 || list[0].ArtworkID != shown {
		t.Fatalf("user listing = %+v, want only the collected artwork", list)
	}

	w = testutil.DoJSON(t, r, http.MethodGet, fmt.Sprintf("/api/artworks/user?collectionId=%d", collectionID), token, nil)
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode filtered list: %v", err)
	}
	if len(list) != 1 || list[0].Title != "Water Lilies" {
		t.Fatalf("filtered listing = %+v", list)
	}
}
