package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/devconnect/backend/internal/models"
)

// PostService owns posts and their like and comment lists. Posts snapshot
// the author's name and avatar at creation time.
type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// Create persists a post under the caller's identity.
func (s *PostService) Create(ctx context.Context, userID uuid.UUID, text string) (*models.Post, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	post := models.Post{
		UserID: userID,
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.db.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, post.ID.String())
}

// List returns all posts, most recent first.
func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.WithContext(ctx).
		Preload("Likes", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Get looks a post up by its id. A malformed id and an absent id both
// come back as ErrNotFound; callers cannot distinguish the two.
func (s *PostService) Get(ctx context.Context, postID string) (*models.Post, error) {
	id, err := uuid.Parse(postID)
	if err != nil {
		return nil, ErrNotFound
	}

	var post models.Post
	err = s.db.WithContext(ctx).
		Preload("Likes", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Delete removes a post. Only the author may delete it.
func (s *PostService) Delete(ctx context.Context, userID uuid.UUID, postID string) error {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return ErrForbidden
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, "id = ?", post.ID).Error
	})
}

// Like prepends a like entry for the caller. Liking a post twice fails
// with ErrAlreadyLiked.
func (s *PostService) Like(ctx context.Context, userID uuid.UUID, postID string) ([]models.Like, error) {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Like{}).
		Where("post_id = ? AND user_id = ?", post.ID, userID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyLiked
	}

	like := models.Like{PostID: post.ID, UserID: userID}
	if err := s.db.WithContext(ctx).Create(&like).Error; err != nil {
		return nil, err
	}
	return s.likes(ctx, post.ID)
}

// Unlike removes the caller's like. Unliking without a prior like fails
// with ErrNotLiked.
func (s *PostService) Unlike(ctx context.Context, userID uuid.UUID, postID string) ([]models.Like, error) {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	res := s.db.WithContext(ctx).Where("post_id = ? AND user_id = ?", post.ID, userID).Delete(&models.Like{})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotLiked
	}
	return s.likes(ctx, post.ID)
}

func (s *PostService) likes(ctx context.Context, postID uuid.UUID) ([]models.Like, error) {
	var likes []models.Like
	if err := s.db.WithContext(ctx).Where("post_id = ?", postID).Order("created_at DESC").Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

// AddComment prepends a comment snapshotting the commenter's current name
// and avatar.
func (s *PostService) AddComment(ctx context.Context, userID uuid.UUID, postID, text string) ([]models.Comment, error) {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comment := models.Comment{
		PostID: post.ID,
		UserID: userID,
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, err
	}
	return s.comments(ctx, post.ID)
}

// DeleteComment removes the comment located by commentID. Only the
// comment's author may delete it.
func (s *PostService) DeleteComment(ctx context.Context, userID uuid.UUID, postID, commentID string) ([]models.Comment, error) {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	cid, err := uuid.Parse(commentID)
	if err != nil {
		return nil, ErrNotFound
	}

	var comment models.Comment
	if err := s.db.WithContext(ctx).Where("id = ? AND post_id = ?", cid, post.ID).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if comment.UserID != userID {
		return nil, ErrForbidden
	}

	if err := s.db.WithContext(ctx).Delete(&comment).Error; err != nil {
		return nil, err
	}
	return s.comments(ctx, post.ID)
}

func (s *PostService) comments(ctx context.Context, postID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.db.WithContext(ctx).Where("post_id = ?", postID).Order("created_at DESC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
