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

type CreateCommentInput struct {
	PostID   uuid.UUID  `json:"post_id"`
	Content  string     `json:"content" validate:"required"`
	ParentID *uuid.UUID `json:"parent_id"`
}

// Comments lists a post's comments with their author and direct replies.
// An unknown post id yields an empty list, matching the list-query contract.
func (c *Content) Comments(postID uuid.UUID) ([]models.Comment, error) {
	comments, err := c.store.CommentsByPost(postID)
	if err != nil {
		return nil, c.internal("comments: list", err)
	}
	return comments, nil
}

func (c *Content) CreateComment(ident *auth.Identity, in CreateCommentInput) (*models.Comment, error) {
	if d := policy.Authorize(ident, policy.CreateComment, nil); !d.Allow() {
		return nil, decisionErr(d, "post")
	}
	if err := c.checkInput(in); err != nil {
		return nil, err
	}

	if _, err := c.store.PostByID(in.PostID); notFoundErr(err) {
		return nil, apperr.New(apperr.NotFound, "post not found")
	} else if err != nil {
		return nil, c.internal("createComment: load post", err)
	}

	if in.ParentID != nil {
		parent, err := c.store.CommentByID(*in.ParentID)
		if notFoundErr(err) {
			return nil, apperr.New(apperr.NotFound, "parent comment not found")
		}
		if err != nil {
			return nil, c.internal("createComment: load parent", err)
		}
		if !uuid.Equal(parent.PostID, in.PostID) {
			return nil, apperr.New(apperr.InvalidArgument, "parent comment belongs to another post")
		}
	}

	comment := &models.Comment{
		ID:        uuid.NewV4(),
		Content:   in.Content,
		PostID:    in.PostID,
		UserID:    ident.ID,
		ParentID:  in.ParentID,
		CreatedAt: time.Now(),
	}
	if err := c.store.CreateComment(comment); err != nil {
		return nil, c.internal("createComment: create", err)
	}

	created, err := c.store.CommentWithRelations(comment.ID)
	if err != nil {
		return nil, c.internal("createComment: reload", err)
	}

	c.audit.Info(fmt.Sprintf("Comment created by %s on post %s", ident.ID, in.PostID))
	return created, nil
}

// DeleteComment removes the caller's own comment. Replies are left in place
// with a dangling parent reference.
func (c *Content) DeleteComment(ident *auth.Identity, commentID uuid.UUID) (bool, error) {
	comment, target, err := c.loadCommentTarget(commentID)
	if err != nil {
		return false, err
	}
	if d := policy.Authorize(ident, policy.DeleteOwnComment, target); !d.Allow() {
		return false, decisionErr(d, "comment")
	}
	if comment == nil {
		return false, apperr.New(apperr.NotFound, "comment not found")
	}

	if err := c.store.DeleteComment(commentID); err != nil {
		return false, c.internal("deleteComment: delete", err)
	}

	c.audit.Info(fmt.Sprintf("Comment deleted: %s", commentID))
	return true, nil
}

func (c *Content) RemoveComment(ident *auth.Identity, commentID uuid.UUID) (bool, error) {
	comment, _, err := c.loadCommentTarget(commentID)
	if err != nil {
		return false, err
	}
	if d := policy.Authorize(ident, policy.ModerateComment, nil); !d.Allow() {
		return false, decisionErr(d, "comment")
	}
	if comment == nil {
		return false, apperr.New(apperr.NotFound, "comment not found")
	}

	if err := c.store.DeleteComment(commentID); err != nil {
		return false, c.internal("removeComment: delete", err)
	}

	c.audit.Info(fmt.Sprintf("Comment removed by admin: %s", commentID))
	return true, nil
}

func (c *Content) loadCommentTarget(commentID uuid.UUID) (*models.Comment, *policy.Target, error) {
	comment, err := c.store.CommentByID(commentID)
	if notFoundErr(err) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, c.internal("load comment", err)
	}
	return comment, &policy.Target{AuthorID: comment.UserID}, nil
}
