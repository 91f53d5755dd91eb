package models

type Comment struct {
	BaseModel

	Text string `json:"text"`

	PostID uint `json:"post_id"`
	Post   Post `json:"post"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`
}
