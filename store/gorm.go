package store

import (
	"errors"

	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"

	"snapgram/models"
)

// Gorm implements Store on a relational database through GORM.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Gorm) CreateUser(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *Gorm) UserByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *Gorm) UserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *Gorm) UserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *Gorm) Users() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Gorm) CreatePost(post *models.Post) error {
	return s.db.Create(post).Error
}

func (s *Gorm) SavePost(post *models.Post) error {
	return s.db.Save(post).Error
}

func (s *Gorm) PostByID(id uuid.UUID) (*models.Post, error) {
	var post models.Post
	if err := s.db.Where("id = ?", id).First(&post).Error; err != nil {
		return nil, notFound(err)
	}
	return &post, nil
}

func (s *Gorm) PostWithAuthor(id uuid.UUID) (*models.Post, error) {
	var post models.Post
	if err := s.db.Where("id = ?", id).Preload("User").First(&post).Error; err != nil {
		return nil, notFound(err)
	}
	return &post, nil
}

func (s *Gorm) PostWithRelations(id uuid.UUID) (*models.Post, error) {
	var post models.Post
	err := s.db.Where("id = ?", id).
		Preload("User").
		Preload("Comments").
		Preload("Comments.Replies").
		Preload("Likes").
		Preload("Ratings").
		First(&post).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &post, nil
}

func (s *Gorm) Posts() ([]models.Post, error) {
	var posts []models.Post
	err := s.db.
		Preload("User").
		Preload("Comments").
		Preload("Likes").
		Preload("Ratings").
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *Gorm) DeletePost(id uuid.UUID) error {
	return s.db.Where("id = ?", id).Delete(&models.Post{}).Error
}

func (s *Gorm) CreateComment(comment *models.Comment) error {
	return s.db.Create(comment).Error
}

func (s *Gorm) CommentByID(id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, notFound(err)
	}
	return &comment, nil
}

func (s *Gorm) CommentWithRelations(id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	err := s.db.Where("id = ?", id).
		Preload("User").
		Preload("Post").
		Preload("Parent").
		First(&comment).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &comment, nil
}

func (s *Gorm) CommentsByPost(postID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.Where("post_id = ?", postID).
		Preload("User").
		Preload("Replies").
		Order("created_at").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *Gorm) DeleteComment(id uuid.UUID) error {
	return s.db.Where("id = ?", id).Delete(&models.Comment{}).Error
}

func (s *Gorm) DeleteCommentsByPost(postID uuid.UUID) error {
	return s.db.Where("post_id = ?", postID).Delete(&models.Comment{}).Error
}

func (s *Gorm) CreateLike(like *models.Like) error {
	return s.db.Create(like).Error
}

func (s *Gorm) LikeWithRelations(id uuid.UUID) (*models.Like, error) {
	var like models.Like
	err := s.db.Where("id = ?", id).
		Preload("User").
		Preload("Post").
		First(&like).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &like, nil
}

func (s *Gorm) DeleteLikesByPostAndUser(postID, userID uuid.UUID) (int64, error) {
	res := s.db.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.Like{})
	return res.RowsAffected, res.Error
}

func (s *Gorm) DeleteLikesByPost(postID uuid.UUID) error {
	return s.db.Where("post_id = ?", postID).Delete(&models.Like{}).Error
}

func (s *Gorm) CreateRating(rating *models.Rating) error {
	return s.db.Create(rating).Error
}

func (s *Gorm) RatingWithRelations(id uuid.UUID) (*models.Rating, error) {
	var rating models.Rating
	err := s.db.Where("id = ?", id).
		Preload("User").
		Preload("Post").
		First(&rating).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &rating, nil
}

func (s *Gorm) DeleteRatingsByPost(postID uuid.UUID) error {
	return s.db.Where("post_id = ?", postID).Delete(&models.Rating{}).Error
}

func (s *Gorm) Transact(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewGorm(tx))
	})
}
