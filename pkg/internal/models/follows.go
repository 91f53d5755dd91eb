package models

// Follow is the directed edge meaning follower receives following's posts
// in their personal feed. The composite unique index closes the race
// between two concurrent follow requests for the same pair.
type Follow struct {
	BaseModel

	FollowerID uint    `json:"follower_id" gorm:"index;uniqueIndex:idx_follows_edge"`
	Follower   Account `json:"follower"`

	FollowingID uint    `json:"following_id" gorm:"index;uniqueIndex:idx_follows_edge"`
	Following   Account `json:"following"`
}
