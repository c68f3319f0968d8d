package services

import (
	"testing"
	"time"

	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"snapgram/auth"
	"snapgram/models"
	"snapgram/store"
)

// recordSink captures audit events so tests can assert on them.
type recordSink struct {
	infos  []string
	errors []string
}

func (s *recordSink) Info(message string)  { s.infos = append(s.infos, message) }
func (s *recordSink) Error(message string) { s.errors = append(s.errors, message) }

func newTestContent(t *testing.T) (*Content, *store.Memory, *recordSink) {
	t.Helper()
	st := store.NewMemory()
	sink := &recordSink{}
	hasher := &auth.BcryptHasher{Cost: bcrypt.MinCost}
	tokens := auth.NewTokenMaker("test-secret", time.Hour)
	return New(st, hasher, tokens, sink), st, sink
}

func addUser(t *testing.T, st *store.Memory, username string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		ID:        uuid.NewV4(),
		Username:  username,
		Email:     username + "@example.com",
		Password:  "irrelevant",
		Role:      role,
		CreatedAt: time.Now(),
	}
	require.NoError(t, st.CreateUser(user))
	return user
}

func identOf(user *models.User) *auth.Identity {
	return &auth.Identity{ID: user.ID, Role: user.Role}
}

func addPost(t *testing.T, st *store.Memory, author *models.User) *models.Post {
	t.Helper()
	caption := "hello"
	post := &models.Post{
		ID:        uuid.NewV4(),
		UserID:    author.ID,
		MediaFile: "photo.jpg",
		Caption:   &caption,
		CreatedAt: time.Now(),
	}
	require.NoError(t, st.CreatePost(post))
	return post
}

func addComment(t *testing.T, st *store.Memory, author *models.User, post *models.Post, parentID *uuid.UUID) *models.Comment {
	t.Helper()
	comment := &models.Comment{
		ID:        uuid.NewV4(),
		Content:   "nice",
		PostID:    post.ID,
		UserID:    author.ID,
		ParentID:  parentID,
		CreatedAt: time.Now(),
	}
	require.NoError(t, st.CreateComment(comment))
	return comment
}
