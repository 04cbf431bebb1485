package persistent

import (
	"simple-sns/internal/entity"
	"simple-sns/internal/model"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *entity.Post) error
	GetByID(id uint) (*entity.Post, error)
	List(page, size int) ([]*entity.Post, int64, error)
	ListByUser(userID uint, page, size int) ([]*entity.Post, int64, error)
	Update(post *entity.Post) error
	Delete(id uint) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *entity.Post) error {
	postModel := ToPostModel(post)
	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}
	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(id uint) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.Preload("User").Where("id = ?", id).First(&postModel).Error; err != nil {
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) List(page, size int) ([]*entity.Post, int64, error) {
	var total int64
	if err := r.db.Model(&model.PostModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var postModels []model.PostModel
	query := r.db.Preload("User").Order("created_at DESC")
	if size > 0 {
		query = query.Limit(size).Offset(page * size)
	}
	if err := query.Find(&postModels).Error; err != nil {
		return nil, 0, err
	}

	return toPostEntities(postModels), total, nil
}

func (r *postRepository) ListByUser(userID uint, page, size int) ([]*entity.Post, int64, error) {
	var total int64
	if err := r.db.Model(&model.PostModel{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var postModels []model.PostModel
	query := r.db.Preload("User").Where("user_id = ?", userID).Order("created_at DESC")
	if size > 0 {
		query = query.Limit(size).Offset(page * size)
	}
	if err := query.Find(&postModels).Error; err != nil {
		return nil, 0, err
	}

	return toPostEntities(postModels), total, nil
}

func toPostEntities(postModels []model.PostModel) []*entity.Post {
	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts
}

func (r *postRepository) Update(post *entity.Post) error {
	postModel := ToPostModel(post)
	if err := r.db.Save(postModel).Error; err != nil {
		return err
	}
	post.UpdatedAt = postModel.UpdatedAt
	return nil
}

func (r *postRepository) Delete(id uint) error {
	return r.db.Delete(&model.PostModel{}, "id = ?", id).Error
}
