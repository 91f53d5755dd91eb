package services

import (
	"time"

	"github.com/inkstream/inkstream/pkg/internal/database"
	"github.com/inkstream/inkstream/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// PostDefaultOrder keeps every listing deterministic: published time first,
// row id as the same-second tie break.
const PostDefaultOrder = "published_at DESC, id DESC"

func FilterPostWithGroup(tx *gorm.DB, groupID uint) *gorm.DB {
	return tx.Where("group_id = ?", groupID)
}

func FilterPostWithAuthor(tx *gorm.DB, authorID uint) *gorm.DB {
	return tx.Where("author_id = ?", authorID)
}

// FilterPostFollowed narrows the listing to posts authored by anyone the
// viewer follows. The viewer's own posts only appear if they follow
// themselves, which FollowAccount never allows.
func FilterPostFollowed(tx *gorm.DB, viewer models.Account) *gorm.DB {
	return tx.Where(
		"author_id IN (?)",
		database.C.Model(&models.Follow{}).
			Select("following_id").
			Where("follower_id = ?", viewer.ID),
	)
}

func PreloadGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Author").
		Preload("Group")
}

func GetPost(tx *gorm.DB, id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadGeneral(tx).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func ListPost(tx *gorm.DB, order any) ([]models.Post, error) {
	var items []models.Post
	if err := PreloadGeneral(tx.Model(&models.Post{})).
		Order(order).
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

// NewPost persists a post on behalf of user. The author and publish time
// always come from here, never from the submitted data.
func NewPost(user models.Account, item models.Post) (models.Post, error) {
	item.AuthorID = user.ID
	item.PublishedAt = time.Now()
	item.Language = DetectLanguage(item.Text)

	if err := database.C.Save(&item).Error; err != nil {
		return item, err
	}

	log.Debug().Uint("id", item.ID).Uint("author", item.AuthorID).Msg("New post has been published.")
	return item, nil
}

// EditPost updates the mutable fields of an existing post. The caller is
// responsible for the author check; author and published time stay as they
// were loaded.
func EditPost(item models.Post) (models.Post, error) {
	item.Language = DetectLanguage(item.Text)

	err := database.C.Save(&item).Error

	return item, err
}

func DeletePost(item models.Post) error {
	return database.C.Delete(&item).Error
}
