package services

import (
	"fmt"
	"time"

	uuid "github.com/satori/go.uuid"

	"snapgram/apperr"
	"snapgram/auth"
	"snapgram/models"
	"snapgram/policy"
)

// LikePost records a like. Nothing prevents the same user liking a post
// twice; UnlikePost removes all of them at once.
func (c *Content) LikePost(ident *auth.Identity, postID uuid.UUID) (*models.Like, error) {
	if d := policy.Authorize(ident, policy.CreateLike, nil); !d.Allow() {
		return nil, decisionErr(d, "post")
	}
	if _, err := c.store.PostByID(postID); notFoundErr(err) {
		return nil, apperr.New(apperr.NotFound, "post not found")
	} else if err != nil {
		return nil, c.internal("likePost: load post", err)
	}

	like := &models.Like{
		ID:        uuid.NewV4(),
		PostID:    postID,
		UserID:    ident.ID,
		CreatedAt: time.Now(),
	}
	if err := c.store.CreateLike(like); err != nil {
		return nil, c.internal("likePost: create", err)
	}

	created, err := c.store.LikeWithRelations(like.ID)
	if err != nil {
		return nil, c.internal("likePost: reload", err)
	}

	c.audit.Info(fmt.Sprintf("Post liked: %s by %s", postID, ident.ID))
	return created, nil
}

func (c *Content) UnlikePost(ident *auth.Identity, postID uuid.UUID) (bool, error) {
	if d := policy.Authorize(ident, policy.RemoveOwnLikes, nil); !d.Allow() {
		return false, decisionErr(d, "post")
	}
	if _, err := c.store.PostByID(postID); notFoundErr(err) {
		return false, apperr.New(apperr.NotFound, "post not found")
	} else if err != nil {
		return false, c.internal("unlikePost: load post", err)
	}

	if _, err := c.store.DeleteLikesByPostAndUser(postID, ident.ID); err != nil {
		return false, c.internal("unlikePost: delete", err)
	}

	c.audit.Info(fmt.Sprintf("Post unliked: %s by %s", postID, ident.ID))
	return true, nil
}

func (c *Content) RatePost(ident *auth.Identity, postID uuid.UUID, value int) (*models.Rating, error) {
	if d := policy.Authorize(ident, policy.CreateRating, nil); !d.Allow() {
		return nil, decisionErr(d, "post")
	}
	if _, err := c.store.PostByID(postID); notFoundErr(err) {
		return nil, apperr.New(apperr.NotFound, "post not found")
	} else if err != nil {
		return nil, c.internal("ratePost: load post", err)
	}
	if value < 1 || value > 5 {
		return nil, apperr.New(apperr.InvalidArgument, "rating must be between 1 and 5")
	}

	rating := &models.Rating{
		ID:        uuid.NewV4(),
		PostID:    postID,
		UserID:    ident.ID,
		Value:     value,
		CreatedAt: time.Now(),
	}
	if err := c.store.CreateRating(rating); err != nil {
		return nil, c.internal("ratePost: create", err)
	}

	created, err := c.store.RatingWithRelations(rating.ID)
	if err != nil {
		return nil, c.internal("ratePost: reload", err)
	}

	c.audit.Info(fmt.Sprintf("Post rated: %s by %s (%d)", postID, ident.ID, value))
	return created, nil
}
