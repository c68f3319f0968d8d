package store

import (
	"sort"
	"sync"

	uuid "github.com/satori/go.uuid"

	"snapgram/models"
)

// Memory is an in-process Store used by tests and local experiments. It
// mirrors the relation-loading behavior of the GORM implementation. Transact
// is best-effort: writes apply directly, with no rollback on failure.
type Memory struct {
	mu       sync.RWMutex
	users    map[uuid.UUID]models.User
	posts    map[uuid.UUID]models.Post
	comments map[uuid.UUID]models.Comment
	likes    map[uuid.UUID]models.Like
	ratings  map[uuid.UUID]models.Rating
}

func NewMemory() *Memory {
	return &Memory{
		users:    make(map[uuid.UUID]models.User),
		posts:    make(map[uuid.UUID]models.Post),
		comments: make(map[uuid.UUID]models.Comment),
		likes:    make(map[uuid.UUID]models.Like),
		ratings:  make(map[uuid.UUID]models.Rating),
	}
}

func (s *Memory) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = stripUser(*user)
	return nil
}

func (s *Memory) UserByID(id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *Memory) UserByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) UserByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) Users() ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	return users, nil
}

func (s *Memory) CreatePost(post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[post.ID] = stripPost(*post)
	return nil
}

func (s *Memory) SavePost(post *models.Post) error {
	return s.CreatePost(post)
}

func (s *Memory) PostByID(id uuid.UUID) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	post, ok := s.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &post, nil
}

func (s *Memory) PostWithAuthor(id uuid.UUID) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	post, ok := s.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	post.User = s.users[post.UserID]
	return &post, nil
}

func (s *Memory) PostWithRelations(id uuid.UUID) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	post, ok := s.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	post.User = s.users[post.UserID]
	post.Comments = s.commentsOf(id, true)
	post.Likes = s.likesOf(id)
	post.Ratings = s.ratingsOf(id)
	return &post, nil
}

func (s *Memory) Posts() ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	posts := make([]models.Post, 0, len(s.posts))
	for id, post := range s.posts {
		post.User = s.users[post.UserID]
		post.Comments = s.commentsOf(id, false)
		post.Likes = s.likesOf(id)
		post.Ratings = s.ratingsOf(id)
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	return posts, nil
}

func (s *Memory) DeletePost(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.posts, id)
	return nil
}

func (s *Memory) CreateComment(comment *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments[comment.ID] = stripComment(*comment)
	return nil
}

func (s *Memory) CommentByID(id uuid.UUID) (*models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	comment, ok := s.comments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &comment, nil
}

func (s *Memory) CommentWithRelations(id uuid.UUID) (*models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	comment, ok := s.comments[id]
	if !ok {
		return nil, ErrNotFound
	}
	comment.User = s.users[comment.UserID]
	if post, ok := s.posts[comment.PostID]; ok {
		comment.Post = &post
	}
	if comment.ParentID != nil {
		if parent, ok := s.comments[*comment.ParentID]; ok {
			comment.Parent = &parent
		}
	}
	return &comment, nil
}

func (s *Memory) CommentsByPost(postID uuid.UUID) ([]models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.commentsOf(postID, true), nil
}

func (s *Memory) DeleteComment(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.comments, id)
	return nil
}

func (s *Memory) DeleteCommentsByPost(postID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, comment := range s.comments {
		if uuid.Equal(comment.PostID, postID) {
			delete(s.comments, id)
		}
	}
	return nil
}

func (s *Memory) CreateLike(like *models.Like) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.likes[like.ID] = stripLike(*like)
	return nil
}

func (s *Memory) LikeWithRelations(id uuid.UUID) (*models.Like, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	like, ok := s.likes[id]
	if !ok {
		return nil, ErrNotFound
	}
	like.User = s.users[like.UserID]
	if post, ok := s.posts[like.PostID]; ok {
		like.Post = &post
	}
	return &like, nil
}

func (s *Memory) DeleteLikesByPostAndUser(postID, userID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int64
	for id, like := range s.likes {
		if uuid.Equal(like.PostID, postID) && uuid.Equal(like.UserID, userID) {
			delete(s.likes, id)
			removed++
		}
	}
	return removed, nil
}

func (s *Memory) DeleteLikesByPost(postID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, like := range s.likes {
		if uuid.Equal(like.PostID, postID) {
			delete(s.likes, id)
		}
	}
	return nil
}

func (s *Memory) CreateRating(rating *models.Rating) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ratings[rating.ID] = stripRating(*rating)
	return nil
}

func (s *Memory) RatingWithRelations(id uuid.UUID) (*models.Rating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rating, ok := s.ratings[id]
	if !ok {
		return nil, ErrNotFound
	}
	rating.User = s.users[rating.UserID]
	if post, ok := s.posts[rating.PostID]; ok {
		rating.Post = &post
	}
	return &rating, nil
}

func (s *Memory) DeleteRatingsByPost(postID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, rating := range s.ratings {
		if uuid.Equal(rating.PostID, postID) {
			delete(s.ratings, id)
		}
	}
	return nil
}

func (s *Memory) Transact(fn func(Store) error) error {
	return fn(s)
}

// commentsOf returns the comments of a post ordered by creation time, each
// with its author and, when withReplies is set, its direct replies only.
func (s *Memory) commentsOf(postID uuid.UUID, withReplies bool) []models.Comment {
	var comments []models.Comment
	for _, comment := range s.comments {
		if !uuid.Equal(comment.PostID, postID) {
			continue
		}
		comment.User = s.users[comment.UserID]
		if withReplies {
			comment.Replies = s.repliesOf(comment.ID)
		}
		comments = append(comments, comment)
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].CreatedAt.Before(comments[j].CreatedAt) })
	return comments
}

func (s *Memory) repliesOf(parentID uuid.UUID) []models.Comment {
	var replies []models.Comment
	for _, comment := range s.comments {
		if comment.ParentID != nil && uuid.Equal(*comment.ParentID, parentID) {
			replies = append(replies, comment)
		}
	}
	sort.Slice(replies, func(i, j int) bool { return replies[i].CreatedAt.Before(replies[j].CreatedAt) })
	return replies
}

func (s *Memory) likesOf(postID uuid.UUID) []models.Like {
	var likes []models.Like
	for _, like := range s.likes {
		if uuid.Equal(like.PostID, postID) {
			like.User = s.users[like.UserID]
			likes = append(likes, like)
		}
	}
	return likes
}

func (s *Memory) ratingsOf(postID uuid.UUID) []models.Rating {
	var ratings []models.Rating
	for _, rating := range s.ratings {
		if uuid.Equal(rating.PostID, postID) {
			rating.User = s.users[rating.UserID]
			ratings = append(ratings, rating)
		}
	}
	return ratings
}

// strip* drop loaded relations before storing so stale copies are never
// served back on later reads.

func stripUser(u models.User) models.User {
	u.Posts, u.Comments, u.Likes, u.Ratings = nil, nil, nil, nil
	return u
}

func stripPost(p models.Post) models.Post {
	p.User = models.User{}
	p.Comments, p.Likes, p.Ratings = nil, nil, nil
	return p
}

func stripComment(c models.Comment) models.Comment {
	c.User = models.User{}
	c.Post, c.Parent, c.Replies = nil, nil, nil
	return c
}

func stripLike(l models.Like) models.Like {
	l.User = models.User{}
	l.Post = nil
	return l
}

func stripRating(r models.Rating) models.Rating {
	r.User = models.User{}
	r.Post = nil
	return r
}
