package services

import (
	"github.com/inkstream/inkstream/pkg/internal/database"
	"github.com/inkstream/inkstream/pkg/internal/models"
)

func ListComment(post models.Post) ([]models.Comment, error) {
	var comments []models.Comment
	if err := database.C.
		Where("post_id = ?", post.ID).
		Preload("Author").
		Order("created_at ASC, id ASC").
		Find(&comments).Error; err != nil {
		return comments, err
	}

	return comments, nil
}

// NewComment attaches a comment to post on behalf of user; both ends of the
// relation come from the resolved entities, never from the submission.
func NewComment(user models.Account, post models.Post, text string) (models.Comment, error) {
	comment := models.Comment{
		Text:     text,
		PostID:   post.ID,
		AuthorID: user.ID,
	}

	err := database.C.Save(&comment).Error

	return comment, err
}
