package access

import (
	"inventory-app/internal/domain/art"

	"gorm.io/gorm"
)

// Every handler answers "can profile P see/touch resource R" through this
// package. Rows the caller does not own are indistinguishable from rows
// that do not exist: the point lookups return gorm.ErrRecordNotFound for
// both.

func OwnedArtworks(db *gorm.DB, profileID uint) *gorm.DB {
	return db.Model(&art.Artwork{}).
		Where("artworks.created_by_profile_id = ?", profileID)
}

func OwnedCollections(db *gorm.DB, profileID uint) *gorm.DB {
	return db.Model(&art.Collection{}).
		Where("collections.owner_profile_id = ?", profileID)
}

// OwnedAppraisals scopes transitively through the appraised artwork's
// creator.
func OwnedAppraisals(db *gorm.DB, profileID uint) *gorm.DB {
	return db.Model(&art.Appraisal{}).
		Select("appraisals.*").
		Joins("JOIN artworks ON artworks.id = appraisals.artwork_id").
		Where("artworks.created_by_profile_id = ?", profileID)
}

// CollectionMemberArtworks returns artworks reachable through collections
// the profile owns, regardless of who created the artwork row.
func CollectionMemberArtworks(db *gorm.DB, profileID uint) *gorm.DB {
	return db.Model(&art.Artwork{}).
		Where(`EXISTS (
			SELECT 1 FROM collection_artworks ca
			JOIN collections c ON c.id = ca.collection_id
			WHERE ca.artwork_id = artworks.id AND c.owner_profile_id = ?)`, profileID)
}

func ArtworkOwnedBy(db *gorm.DB, profileID, artworkID uint) (*art.Artwork, error) {
	var a art.Artwork
	if err := OwnedArtworks(db, profileID).Where("artworks.id = ?", artworkID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func CollectionOwnedBy(db *gorm.DB, profileID, collectionID uint) (*art.Collection, error) {
	var c art.Collection
	if err := OwnedCollections(db, profileID).Where("collections.id = ?", collectionID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
