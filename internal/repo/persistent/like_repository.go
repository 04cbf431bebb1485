package persistent

import (
	"errors"

	"simple-sns/internal/entity"
	"simple-sns/internal/model"

	"gorm.io/gorm"
)

type LikeRepository interface {
	Create(like *entity.Like) error
	GetByUserAndPost(userID, postID uint) (*entity.Like, error)
	CountByPost(postID uint) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(like *entity.Like) error {
	likeModel := &model.LikeModel{
		UserID: like.UserID,
		PostID: like.PostID,
	}
	if err := r.db.Create(likeModel).Error; err != nil {
		// A concurrent like beat this one to the partial unique index on
		// (user_id, post_id); liking is idempotent, so that is a success.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	*like = *ToLikeEntity(likeModel)
	return nil
}

func (r *likeRepository) GetByUserAndPost(userID, postID uint) (*entity.Like, error) {
	var likeModel model.LikeModel
	if err := r.db.Where("user_id = ? AND post_id = ?", userID, postID).First(&likeModel).Error; err != nil {
		return nil, err
	}
	return ToLikeEntity(&likeModel), nil
}

func (r *likeRepository) CountByPost(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
