package models

type Category struct {
	ID            uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string        `gorm:"unique;not null" json:"name"`
	Description   string        `json:"description"`
	BannerURL     string        `json:"banner_url"`
	SubCategories []SubCategory `gorm:"foreignKey:CategoryID" json:"subcategories,omitempty"`
}

type SubCategory struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null;uniqueIndex:idx_subcategory_name" json:"name"` // unique within its category
	CategoryID  uint      `gorm:"not null;uniqueIndex:idx_subcategory_name;index" json:"category_id"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Products    []Product `gorm:"foreignKey:SubCategoryID" json:"products,omitempty"`
}
