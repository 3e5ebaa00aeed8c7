package models

type Category struct {
	CategoryID int    `gorm:"primaryKey;column:category_id" json:"category_id"`
	Name       string `gorm:"column:name;size:80;unique" json:"name"`
	Slug       string `gorm:"column:slug;size:80;unique" json:"slug"`
}

func (Category) TableName() string {
	return "categories"
}
