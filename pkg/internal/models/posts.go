package models

import (
	"time"

	"gorm.io/datatypes"
)

type Post struct {
	BaseModel

	Text     string            `json:"text"`
	Language string            `json:"language"`
	Image    datatypes.JSONMap `json:"image"`

	// PublishedAt is set once when the post is created and survives edits.
	PublishedAt time.Time `json:"published_at"`

	GroupID *uint  `json:"group_id"`
	Group   *Group `json:"group"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`

	Comments []Comment `json:"comments" gorm:"foreignKey:PostID"`
}

// PostImageMeta describes one uploaded illustration. It is flattened into
// the post's image JSON column the same way request bodies become maps.
type PostImageMeta struct {
	Path string `json:"path"`
	Mime string `json:"mime"`
	Size int64  `json:"size"`
}
