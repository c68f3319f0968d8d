package services

import (
	"fmt"
	"time"

	uuid "github.com/satori/go.uuid"

	"snapgram/apperr"
	"snapgram/auth"
	"snapgram/models"
	"snapgram/policy"
	"snapgram/store"
)

type CreatePostInput struct {
	MediaFile string  `json:"media_file" validate:"required"`
	Caption   *string `json:"caption"`
}

// UpdatePostInput distinguishes an omitted caption from an explicit null:
// omitted leaves the caption as it is, null clears it.
type UpdatePostInput struct {
	Caption    *string
	HasCaption bool
}

func (c *Content) Posts() ([]models.Post, error) {
	posts, err := c.store.Posts()
	if err != nil {
		return nil, c.internal("posts: list", err)
	}
	return posts, nil
}

func (c *Content) Post(id uuid.UUID) (*models.Post, error) {
	post, err := c.store.PostWithRelations(id)
	if notFoundErr(err) {
		return nil, apperr.New(apperr.NotFound, "post not found")
	}
	if err != nil {
		return nil, c.internal("post: load", err)
	}
	return post, nil
}

func (c *Content) CreatePost(ident *auth.Identity, in CreatePostInput) (*models.Post, error) {
	if d := policy.Authorize(ident, policy.CreatePost, nil); !d.Allow() {
		return nil, decisionErr(d, "post")
	}
	if err := c.checkInput(in); err != nil {
		return nil, err
	}

	post := &models.Post{
		ID:        uuid.NewV4(),
		UserID:    ident.ID,
		MediaFile: in.MediaFile,
		Caption:   in.Caption,
		CreatedAt: time.Now(),
	}
	if err := c.store.CreatePost(post); err != nil {
		return nil, c.internal("createPost: create", err)
	}

	created, err := c.store.PostWithAuthor(post.ID)
	if err != nil {
		return nil, c.internal("createPost: reload", err)
	}

	c.audit.Info(fmt.Sprintf("Post created by %s", ident.ID))
	return created, nil
}

func (c *Content) UpdatePost(ident *auth.Identity, postID uuid.UUID, in UpdatePostInput) (*models.Post, error) {
	post, target, err := c.loadPostTarget(postID)
	if err != nil {
		return nil, err
	}
	if d := policy.Authorize(ident, policy.UpdatePost, target); !d.Allow() {
		return nil, decisionErr(d, "post")
	}
	if post == nil {
		return nil, apperr.New(apperr.NotFound, "post not found")
	}

	if in.HasCaption {
		post.Caption = in.Caption
	}
	if err := c.store.SavePost(post); err != nil {
		return nil, c.internal("updatePost: save", err)
	}

	updated, err := c.store.PostWithAuthor(postID)
	if err != nil {
		return nil, c.internal("updatePost: reload", err)
	}

	c.audit.Info(fmt.Sprintf("Post updated: %s", postID))
	return updated, nil
}

func (c *Content) DeletePost(ident *auth.Identity, postID uuid.UUID) (bool, error) {
	post, target, err := c.loadPostTarget(postID)
	if err != nil {
		return false, err
	}
	if d := policy.Authorize(ident, policy.DeleteOwnPost, target); !d.Allow() {
		return false, decisionErr(d, "post")
	}
	if post == nil {
		return false, apperr.New(apperr.NotFound, "post not found")
	}

	if err := c.purgePost(postID); err != nil {
		return false, c.internal("deletePost: purge", err)
	}

	c.audit.Info(fmt.Sprintf("Post deleted: %s", postID))
	return true, nil
}

// RemovePost is the moderation variant: admin identity instead of ownership.
func (c *Content) RemovePost(ident *auth.Identity, postID uuid.UUID) (bool, error) {
	post, _, err := c.loadPostTarget(postID)
	if err != nil {
		return false, err
	}
	if d := policy.Authorize(ident, policy.ModeratePost, nil); !d.Allow() {
		return false, decisionErr(d, "post")
	}
	if post == nil {
		return false, apperr.New(apperr.NotFound, "post not found")
	}

	if err := c.purgePost(postID); err != nil {
		return false, c.internal("removePost: purge", err)
	}

	c.audit.Info(fmt.Sprintf("Post removed by admin: %s", postID))
	return true, nil
}

// loadPostTarget fetches the post named by a mutation. A missing post is not
// an error here: the policy still sees the identity first, so an anonymous
// caller gets Unauthenticated rather than NotFound.
func (c *Content) loadPostTarget(postID uuid.UUID) (*models.Post, *policy.Target, error) {
	post, err := c.store.PostByID(postID)
	if notFoundErr(err) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, c.internal("load post", err)
	}
	return post, &policy.Target{AuthorID: post.UserID}, nil
}

// purgePost deletes a post and its dependents in dependency order, inside a
// single store transaction: comments, then likes, then ratings, then the
// post itself.
func (c *Content) purgePost(postID uuid.UUID) error {
	return c.store.Transact(func(s store.Store) error {
		if err := s.DeleteCommentsByPost(postID); err != nil {
			return err
		}
		if err := s.DeleteLikesByPost(postID); err != nil {
			return err
		}
		if err := s.DeleteRatingsByPost(postID); err != nil {
			return err
		}
		return s.DeletePost(postID)
	})
}
