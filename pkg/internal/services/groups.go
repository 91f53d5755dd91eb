package services

import (
	"fmt"

	"github.com/inkstream/inkstream/pkg/internal/database"
	"github.com/inkstream/inkstream/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func ListGroup() ([]models.Group, error) {
	var groups []models.Group
	err := database.C.Order("title ASC").Find(&groups).Error

	return groups, err
}

func GetGroup(slug string) (models.Group, error) {
	var group models.Group
	if err := database.C.Where(models.Group{Slug: slug}).First(&group).Error; err != nil {
		return group, err
	}
	return group, nil
}

func GetGroupWithID(id uint) (models.Group, error) {
	var group models.Group
	if err := database.C.Where(models.Group{
		BaseModel: models.BaseModel{ID: id},
	}).First(&group).Error; err != nil {
		return group, err
	}
	return group, nil
}

// NewGroup backs the administrative seed path; the web surface only reads
// groups.
func NewGroup(slug, title, description string) (models.Group, error) {
	group := models.Group{
		Slug:        slug,
		Title:       title,
		Description: description,
	}

	err := database.C.Save(&group).Error

	return group, err
}

func EditGroup(group models.Group, title, description string) (models.Group, error) {
	group.Title = title
	group.Description = description

	err := database.C.Save(&group).Error

	return group, err
}

// SyncSeedGroups creates the groups declared in settings that do not exist
// yet. Slugs are immutable, so existing groups are left untouched.
func SyncSeedGroups() error {
	var seeds []struct {
		Slug        string `mapstructure:"slug"`
		Title       string `mapstructure:"title"`
		Description string `mapstructure:"description"`
	}
	if err := viper.UnmarshalKey("seed.groups", &seeds); err != nil {
		return fmt.Errorf("unable to read seed groups: %v", err)
	}

	for _, seed := range seeds {
		var count int64
		if err := database.C.Model(&models.Group{}).
			Where("slug = ?", seed.Slug).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		if _, err := NewGroup(seed.Slug, seed.Title, seed.Description); err != nil {
			return err
		}
		log.Info().Str("slug", seed.Slug).Msg("Created one seed group.")
	}

	return nil
}
