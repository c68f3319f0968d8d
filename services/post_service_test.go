package services

import (
	"testing"

	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapgram/apperr"
	"snapgram/models"
)

func TestCreatePostRequiresIdentity(t *testing.T) {
	content, _, sink := newTestContent(t)

	_, err := content.CreatePost(nil, CreatePostInput{MediaFile: "photo.jpg"})
	assert.Equal(t, apperr.Unauthenticated, apperr.KindOf(err))

	// No write, no success event.
	posts, err := content.Posts()
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.Empty(t, sink.infos)
}

func TestCreatePost(t *testing.T) {
	content, st, _ := newTestContent(t)
	alice := addUser(t, st, "alice", models.RoleUser)

	caption := "sunset"
	post, err := content.CreatePost(identOf(alice), CreatePostInput{MediaFile: "photo.jpg", Caption: &caption})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, post.UserID)
	assert.Equal(t, "alice", post.User.Username)
	require.NotNil(t, post.Caption)
	assert.Equal(t, "sunset", *post.Caption)
}

func TestCreatePostRequiresMediaFile(t *testing.T) {
	content, st, _ := newTestContent(t)
	alice := addUser(t, st, "alice", models.RoleUser)

	_, err := content.CreatePost(identOf(alice), CreatePostInput{})
	assert.Equal(t, apperr.InvalidArgument, apperr.KindOf(err))
}

func TestUpdatePostOwnership(t *testing.T) {
	content, st, _ := newTestContent(t)
	alice := addUser(t, st, "alice", models.RoleUser)
	mallory := addUser(t, st, "mallory", models.RoleUser)
	post := addPost(t, st, alice)

	caption := "stolen"
	_, err := content.UpdatePost(identOf(mallory), post.ID, UpdatePostInput{Caption: &caption, HasCaption: true})
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))

	// Unchanged for the non-owner.
	reloaded, err := content.Post(post.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.Caption)
	assert.Equal(t, "hello", *reloaded.Caption)

	newCaption := "updated"
	updated, err := content.UpdatePost(identOf(alice), post.ID, UpdatePostInput{Caption: &newCaption, HasCaption: true})
	require.NoError(t, err)
	require.NotNil(t, updated.Caption)
	assert.Equal(t, "updated", *updated.Caption)
}

func TestUpdatePostOmittedCaptionLeavesItUnchanged(t *testing.T) {
	content, st, _ := newTestContent(t)
	alice := addUser(t, st, "alice", models.RoleUser)
	post := addPost(t, st, alice)

	updated, err := content.UpdatePost(identOf(alice), post.ID, UpdatePostInput{})
	require.NoError(t, err)
	require.NotNil(t, updated.Caption)
	assert.Equal(t, "hello", *updated.Caption)
}

func TestUpdatePostExplicitNullClearsCaption(t *testing.T) {
	content, st, _ := newTestContent(t)
	alice := addUser(t, st, "alice", models.RoleUser)
	post := addPost(t, st, alice)

	updated, err := content.UpdatePost(identOf(alice), post.ID, UpdatePostInput{HasCaption: true})
	require.NoError(t, err)
	assert.Nil(t, updated.Caption)
}

func TestUpdatePostMissing(t *testing.T) {
	content, st, _ := newTestContent(t)
	alice := addUser(t, st, "alice", models.RoleUser)

	caption := "x"
	_, err := content.UpdatePost(identOf(alice), uuid.NewV4(), UpdatePostInput{Caption: &caption, HasCaption: true})
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestDeletePostIdempotence(t *testing.T) {
	content, st, _ := newTestContent(t)
	alice := addUser(t, st, "alice", models.RoleUser)
	post := addPost(t, st, alice)

	ok, err := content.DeletePost(identOf(alice), post.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// Second delete: the post is gone, so the result is NotFound.
	_, err = content.DeletePost(identOf(alice), post.ID)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestDeletePostOwnership(t *testing.T) {
	content, st, _ := newTestContent(t)
	alice := addUser(t, st, "alice", models.RoleUser)
	mallory := addUser(t, st, "mallory", models.RoleUser)
	post := addPost(t, st, alice)

	_, err := content.DeletePost(identOf(mallory), post.ID)
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))

	_, err = content.DeletePost(nil, post.ID)
	assert.Equal(t, apperr.Unauthenticated, apperr.KindOf(err))

	// Still there.
	_, err = content.Post(post.ID)
	assert.NoError(t, err)
}

func TestRemovePostCascades(t *testing.T) {
	content, st, _ := newTestContent(t)
	alice := addUser(t, st, "alice", models.RoleUser)
	bob := addUser(t, st, "bob", models.RoleAdmin)
	post := addPost(t, st, alice)

	parent := addComment(t, st, bob, post, nil)
	addComment(t, st, alice, post, &parent.ID)
	addComment(t, st, alice, post, nil)
	for i := 0; i < 2; i++ {
		_, err := content.LikePost(identOf(bob), post.ID)
		require.NoError(t, err)
	}
	_, err := content.RatePost(identOf(bob), post.ID, 4)
	require.NoError(t, err)

	ok, err := content.RemovePost(identOf(bob), post.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = content.Post(post.ID)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	comments, err := content.Comments(post.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	// Recreate the post row: the relation load must come back empty for
	// every dependent kind, proving the likes and ratings went too.
	require.NoError(t, st.CreatePost(post))
	got, err := content.Post(post.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Comments)
	assert.Empty(t, got.Likes)
	assert.Empty(t, got.Ratings)
}

func TestRemovePostRequiresAdmin(t *testing.T) {
	content, st, _ := newTestContent(t)
	alice := addUser(t, st, "alice", models.RoleUser)
	post := addPost(t, st, alice)

	// Ownership does not matter for moderation: the author is still denied.
	_, err := content.RemovePost(identOf(alice), post.ID)
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))

	_, err = content.RemovePost(nil, post.ID)
	assert.Equal(t, apperr.Unauthenticated, apperr.KindOf(err))
}

func TestPostQuery(t *testing.T) {
	content, st, _ := newTestContent(t)
	alice := addUser(t, st, "alice", models.RoleUser)
	post := addPost(t, st, alice)
	addComment(t, st, alice, post, nil)

	got, err := content.Post(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.User.Username)
	assert.Len(t, got.Comments, 1)

	_, err = content.Post(uuid.NewV4())
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}
