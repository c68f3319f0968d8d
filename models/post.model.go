package models

import (
	"time"

	uuid "github.com/satori/go.uuid"
)

type Post struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	MediaFile string    `gorm:"not null" json:"media_file"`
	Caption   *string   `gorm:"type:text" json:"caption,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Comments  []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	Likes     []Like    `gorm:"foreignKey:PostID" json:"likes,omitempty"`
	Ratings   []Rating  `gorm:"foreignKey:PostID" json:"ratings,omitempty"`
}

// Comment threads through the optional ParentID link. The link is weak:
// deleting a parent leaves its replies in place.
type Comment struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4()" json:"id"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	PostID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"post_id"`
	Post      *Post      `gorm:"foreignKey:PostID" json:"post,omitempty"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null" json:"user_id"`
	User      User       `gorm:"foreignKey:UserID" json:"user"`
	ParentID  *uuid.UUID `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	Parent    *Comment   `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Replies   []Comment  `gorm:"foreignKey:ParentID" json:"replies,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Like carries no (user, post) uniqueness constraint; the same user may like
// a post more than once. Unliking removes every like the user left on it.
type Like struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4()" json:"id"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;index" json:"post_id"`
	Post      *Post     `gorm:"foreignKey:PostID" json:"post,omitempty"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

type Rating struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4()" json:"id"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;index" json:"post_id"`
	Post      *Post     `gorm:"foreignKey:PostID" json:"post,omitempty"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	Value     int       `gorm:"not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
}
