package models

type Tag struct {
	ID   uint   `json:"id" gorm:"primarykey"`
	Name string `json:"name" gorm:"uniqueIndex;not null;size:50"`
}
