package services

import (
	"testing"

	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapgram/apperr"
	"snapgram/models"
)

func TestLikePostRequiresIdentity(t *testing.T) {
	content, st, _ := newTestContent(t)
	alice := addUser(t, st, "alice", models.RoleUser)
	post := addPost(t, st, alice)

	_, err := content.LikePost(nil, post.ID)
	assert.Equal(t, apperr.Unauthenticated, apperr.KindOf(err))
}

func TestLikePostMissing(t *testing.T) {
	content, st, _ := newTestContent(t)
	alice := addUser(t, st, "alice", models.RoleUser)

	_, err := content.LikePost(identOf(alice), uuid.NewV4())
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestDuplicateLikesAllowed(t *testing.T) {
	content, st, _ := newTestContent(t)
	alice := addUser(t, st, "alice", models.RoleUser)
	bob := addUser(t, st, "bob", models.RoleUser)
	post := addPost(t, st, alice)

	for i := 0; i < 2; i++ {
		like, err := content.LikePost(identOf(bob), post.ID)
		require.NoError(t, err)
		assert.Equal(t, bob.ID, like.UserID)
	}

	got, err := content.Post(post.ID)
	require.NoError(t, err)
	assert.Len(t, got.Likes, 2)
}

func TestUnlikeRemovesAllOwnLikes(t *testing.T) {
	content, st, _ := newTestContent(t)
	alice := addUser(t, st, "alice", models.RoleUser)
	bob := addUser(t, st, "bob", models.RoleUser)
	post := addPost(t, st, alice)

	for i := 0; i < 2; i++ {
		_, err := content.LikePost(identOf(bob), post.ID)
		require.NoError(t, err)
	}
	_, err := content.LikePost(identOf(alice), post.ID)
	require.NoError(t, err)

	ok, err := content.UnlikePost(identOf(bob), post.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := content.Post(post.ID)
	require.NoError(t, err)
	require.Len(t, got.Likes, 1)
	assert.Equal(t, alice.ID, got.Likes[0].UserID)
}

func TestRatePostRange(t *testing.T) {
	content, st, _ := newTestContent(t)
	alice := addUser(t, st, "alice", models.RoleUser)
	bob := addUser(t, st, "bob", models.RoleUser)
	post := addPost(t, st, alice)

	for _, value := range []int{0, 6} {
		_, err := content.RatePost(identOf(bob), post.ID, value)
		assert.Equal(t, apperr.InvalidArgument, apperr.KindOf(err))
	}

	for _, value := range []int{1, 2, 3, 4, 5} {
		rating, err := content.RatePost(identOf(bob), post.ID, value)
		require.NoError(t, err)
		assert.Equal(t, value, rating.Value)
	}

	got, err := content.Post(post.ID)
	require.NoError(t, err)
	assert.Len(t, got.Ratings, 5)
}

func TestRatePostMissing(t *testing.T) {
	content, st, _ := newTestContent(t)
	alice := addUser(t, st, "alice", models.RoleUser)

	_, err := content.RatePost(identOf(alice), uuid.NewV4(), 3)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}
