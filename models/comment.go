package models

import "time"

type Comment struct {
	ID      uint      `json:"id" gorm:"primarykey"`
	Body    string    `json:"body" gorm:"type:text;not null"`
	PubDate time.Time `json:"pub_date" gorm:"not null"`
	UserID  uint      `json:"user_id" gorm:"not null"`
	PostID  uint      `json:"post_id" gorm:"not null"`
	User    User      `json:"-" gorm:"foreignKey:UserID"`
	Post    Post      `json:"-" gorm:"foreignKey:PostID"`
}
