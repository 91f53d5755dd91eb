package services

import (
	"errors"
	"fmt"

	"github.com/inkstream/inkstream/pkg/internal/database"
	"github.com/inkstream/inkstream/pkg/internal/models"
	"gorm.io/gorm"
)

var (
	ErrCannotFollowSelf = errors.New("cannot follow yourself")
	ErrNotFollowing     = errors.New("not following this account")
)

func GetFollow(user models.Account, target models.Account) (*models.Follow, error) {
	var follow models.Follow
	if err := database.C.Where("follower_id = ? AND following_id = ?", user.ID, target.ID).First(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to get follow edge: %v", err)
	}
	return &follow, nil
}

// FollowAccount is get-or-create: following someone twice leaves exactly one
// edge behind.
func FollowAccount(user models.Account, target models.Account) (models.Follow, error) {
	var follow models.Follow
	if user.ID == target.ID {
		return follow, ErrCannotFollowSelf
	}

	if err := database.C.Where("follower_id = ? AND following_id = ?", user.ID, target.ID).First(&follow).Error; err == nil {
		return follow, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return follow, fmt.Errorf("unable to check follow edge: %v", err)
	}

	follow = models.Follow{
		FollowerID:  user.ID,
		FollowingID: target.ID,
	}

	err := database.C.Save(&follow).Error
	return follow, err
}

func UnfollowAccount(user models.Account, target models.Account) error {
	var follow models.Follow
	if err := database.C.Where("follower_id = ? AND following_id = ?", user.ID, target.ID).First(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFollowing
		}
		return fmt.Errorf("unable to check follow edge: %v", err)
	}

	// Hard delete so the unique edge index never collides with a re-follow.
	err := database.C.Unscoped().Delete(&follow).Error
	return err
}

func CountFollower(target models.Account) (int64, error) {
	var count int64
	err := database.C.Model(&models.Follow{}).
		Where("following_id = ?", target.ID).
		Count(&count).Error

	return count, err
}
