package models

import (
	"time"

	uuid "github.com/satori/go.uuid"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4()" json:"id"`
	Username       string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"username"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password       string    `gorm:"not null" json:"-"`
	Role           Role      `gorm:"type:varchar(16);not null;default:'USER'" json:"role"`
	Bio            string    `gorm:"type:text" json:"bio,omitempty"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	Posts          []Post    `gorm:"foreignKey:UserID" json:"posts,omitempty"`
	Comments       []Comment `gorm:"foreignKey:UserID" json:"comments,omitempty"`
	Likes          []Like    `gorm:"foreignKey:UserID" json:"likes,omitempty"`
	Ratings        []Rating  `gorm:"foreignKey:UserID" json:"ratings,omitempty"`
}
