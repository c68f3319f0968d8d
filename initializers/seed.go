package initializers

import (
	"errors"
	"time"

	uuid "github.com/satori/go.uuid"

	"snapgram/auth"
	"snapgram/models"
	"snapgram/store"
)

// Seed loads the demo dataset: two users, a post, and one comment, like and
// rating on it. It is a no-op when the demo users already exist.
func Seed(st store.Store, hasher auth.Hasher) error {
	if _, err := st.UserByEmail("alice@example.com"); err == nil {
		return nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	digest, err := hasher.Hash("password123")
	if err != nil {
		return err
	}

	alice := &models.User{
		ID:             uuid.NewV4(),
		Username:       "alice",
		Email:          "alice@example.com",
		Password:       digest,
		Role:           models.RoleUser,
		Bio:            "Loves photography",
		ProfilePicture: "alice.jpg",
		CreatedAt:      time.Now(),
	}
	bob := &models.User{
		ID:             uuid.NewV4(),
		Username:       "bob",
		Email:          "bob@example.com",
		Password:       digest,
		Role:           models.RoleAdmin,
		Bio:            "Video enthusiast",
		ProfilePicture: "bob.jpg",
		CreatedAt:      time.Now(),
	}
	for _, user := range []*models.User{alice, bob} {
		if err := st.CreateUser(user); err != nil {
			return err
		}
	}

	caption := "Beautiful sunset"
	post := &models.Post{
		ID:        uuid.NewV4(),
		UserID:    alice.ID,
		MediaFile: "photo1.jpg",
		Caption:   &caption,
		CreatedAt: time.Now(),
	}
	if err := st.CreatePost(post); err != nil {
		return err
	}

	comment := &models.Comment{
		ID:        uuid.NewV4(),
		Content:   "Amazing view!",
		PostID:    post.ID,
		UserID:    bob.ID,
		CreatedAt: time.Now(),
	}
	if err := st.CreateComment(comment); err != nil {
		return err
	}

	like := &models.Like{
		ID:        uuid.NewV4(),
		PostID:    post.ID,
		UserID:    bob.ID,
		CreatedAt: time.Now(),
	}
	if err := st.CreateLike(like); err != nil {
		return err
	}

	rating := &models.Rating{
		ID:        uuid.NewV4(),
		PostID:    post.ID,
		UserID:    bob.ID,
		Value:     5,
		CreatedAt: time.Now(),
	}
	return st.CreateRating(rating)
}
