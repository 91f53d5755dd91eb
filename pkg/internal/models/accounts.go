package models

type Account struct {
	BaseModel

	Name        string `json:"name" gorm:"uniqueIndex" validate:"lowercase,alphanum"`
	Nick        string `json:"nick"`
	Description string `json:"description"`
	Password    string `json:"-"`

	Posts    []Post    `json:"posts" gorm:"foreignKey:AuthorID"`
	Comments []Comment `json:"comments" gorm:"foreignKey:AuthorID"`

	Following []Follow `json:"following" gorm:"foreignKey:FollowerID"`
	Followers []Follow `json:"followers" gorm:"foreignKey:FollowingID"`
}
