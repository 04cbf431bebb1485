package usecase

import (
	"errors"

	"simple-sns/internal/entity"
	"simple-sns/internal/repo/persistent"
	"simple-sns/pkg/apperrors"
	"simple-sns/pkg/logger"

	"gorm.io/gorm"
)

type LikeUseCase interface {
	Like(postID uint, username string) error
	CountLikes(postID uint) (int64, error)
}

type likeUseCase struct {
	likeRepo persistent.LikeRepository
	postRepo persistent.PostRepository
	userRepo persistent.UserRepository
	logger   *logger.Logger
}

func NewLikeUseCase(likeRepo persistent.LikeRepository, postRepo persistent.PostRepository, userRepo persistent.UserRepository, logger *logger.Logger) LikeUseCase {
	return &likeUseCase{
		likeRepo: likeRepo,
		postRepo: postRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Like is idempotent: liking a post the user already likes is a no-op.
func (uc *likeUseCase) Like(postID uint, username string) error {
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.KindUserNotFound, "%s not found", username)
		}
		uc.logger.Error("Failed to look up user %s: %v", username, err)
		return apperrors.New(apperrors.KindInternal, "failed to look up username")
	}

	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.KindPostNotFound, "post %d not found", postID)
		}
		uc.logger.Error("Failed to look up post %d: %v", postID, err)
		return apperrors.New(apperrors.KindInternal, "failed to look up post")
	}

	_, err = uc.likeRepo.GetByUserAndPost(user.ID, post.ID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		uc.logger.Error("Failed to look up like for user %d post %d: %v", user.ID, post.ID, err)
		return apperrors.New(apperrors.KindInternal, "failed to look up like")
	}

	like := &entity.Like{UserID: user.ID, PostID: post.ID}
	if err := uc.likeRepo.Create(like); err != nil {
		uc.logger.Error("Failed to create like for user %d post %d: %v", user.ID, post.ID, err)
		return apperrors.New(apperrors.KindInternal, "failed to create like")
	}
	return nil
}

func (uc *likeUseCase) CountLikes(postID uint) (int64, error) {
	_, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.New(apperrors.KindPostNotFound, "post %d not found", postID)
		}
		uc.logger.Error("Failed to look up post %d: %v", postID, err)
		return 0, apperrors.New(apperrors.KindInternal, "failed to look up post")
	}

	count, err := uc.likeRepo.CountByPost(postID)
	if err != nil {
		uc.logger.Error("Failed to count likes for post %d: %v", postID, err)
		return 0, apperrors.New(apperrors.KindInternal, "failed to count likes")
	}
	return count, nil
}
