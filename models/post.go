package models

import "time"

type Post struct {
	ID      uint      `json:"id" gorm:"primarykey"`
	Title   string    `json:"title" gorm:"not null;size:50"`
	Body    string    `json:"body" gorm:"type:text;not null"`
	PubDate time.Time `json:"pub_date" gorm:"not null"`
	UserID  uint      `json:"user_id" gorm:"not null"`
	User    User      `json:"-" gorm:"foreignKey:UserID"`
	Tags    []Tag     `json:"tags" gorm:"many2many:tag_post;"`
}
