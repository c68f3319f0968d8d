// Package store is the entity store facade. The content services only ever
// talk to the Store interface; the GORM implementation backs it in
// production and the in-memory implementation backs it in tests.
package store

import (
	"errors"

	uuid "github.com/satori/go.uuid"

	"snapgram/models"
)

// ErrNotFound is returned by single-entity lookups when no row matches.
var ErrNotFound = errors.New("record not found")

type Store interface {
	CreateUser(user *models.User) error
	UserByID(id uuid.UUID) (*models.User, error)
	UserByEmail(email string) (*models.User, error)
	UserByUsername(username string) (*models.User, error)
	Users() ([]models.User, error)

	CreatePost(post *models.Post) error
	SavePost(post *models.Post) error
	PostByID(id uuid.UUID) (*models.Post, error)
	PostWithAuthor(id uuid.UUID) (*models.Post, error)
	PostWithRelations(id uuid.UUID) (*models.Post, error)
	Posts() ([]models.Post, error)
	DeletePost(id uuid.UUID) error

	CreateComment(comment *models.Comment) error
	CommentByID(id uuid.UUID) (*models.Comment, error)
	CommentWithRelations(id uuid.UUID) (*models.Comment, error)
	CommentsByPost(postID uuid.UUID) ([]models.Comment, error)
	DeleteComment(id uuid.UUID) error
	DeleteCommentsByPost(postID uuid.UUID) error

	CreateLike(like *models.Like) error
	LikeWithRelations(id uuid.UUID) (*models.Like, error)
	DeleteLikesByPostAndUser(postID, userID uuid.UUID) (int64, error)
	DeleteLikesByPost(postID uuid.UUID) error

	CreateRating(rating *models.Rating) error
	RatingWithRelations(id uuid.UUID) (*models.Rating, error)
	DeleteRatingsByPost(postID uuid.UUID) error

	// Transact runs fn against a store whose writes commit together or not
	// at all, where the backend supports it.
	Transact(fn func(Store) error) error
}
