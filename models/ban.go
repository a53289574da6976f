package models

// Ban suppresses one user's ability to comment on one specific post.
// The composite index keeps at most one active ban per (post, user) pair.
type Ban struct {
	ID     uint `json:"id" gorm:"primarykey"`
	PostID uint `json:"post_id" gorm:"not null;uniqueIndex:idx_bans_post_user"`
	UserID uint `json:"user_id" gorm:"not null;uniqueIndex:idx_bans_post_user"`
	Post   Post `json:"-" gorm:"foreignKey:PostID"`
	User   User `json:"-" gorm:"foreignKey:UserID"`
}
