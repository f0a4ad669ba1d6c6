package models

import "time"

// Favorite is a server-owned (user, product) annotation. Toggling the same
// pair twice leaves the set unchanged.
type Favorite struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"userId" gorm:"uniqueIndex:idx_user_product;type:varchar(36)"`
	ProductID string    `json:"productId" gorm:"uniqueIndex:idx_user_product;type:varchar(36)"`
	CreatedAt time.Time `json:"-"`
}
