package usecase

import (
	"errors"

	"simple-sns/internal/entity"
	"simple-sns/internal/repo/persistent"
	"simple-sns/pkg/apperrors"
	"simple-sns/pkg/logger"

	"gorm.io/gorm"
)

type PostUseCase interface {
	Create(title, body, username string) error
	Modify(title, body, username string, postID uint) (*entity.Post, error)
	Delete(postID uint, username string) error
	List(page, size int) (*entity.PostPage, error)
	ListMine(username string, page, size int) (*entity.PostPage, error)
}

type postUseCase struct {
	postRepo persistent.PostRepository
	userRepo persistent.UserRepository
	logger   *logger.Logger
}

func NewPostUseCase(postRepo persistent.PostRepository, userRepo persistent.UserRepository, logger *logger.Logger) PostUseCase {
	return &postUseCase{
		postRepo: postRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *postUseCase) Create(title, body, username string) error {
	user, err := uc.resolveUser(username)
	if err != nil {
		return err
	}

	post := &entity.Post{
		Title:  title,
		Body:   body,
		UserID: user.ID,
	}
	if err := uc.postRepo.Create(post); err != nil {
		uc.logger.Error("Failed to create post for %s: %v", username, err)
		return apperrors.New(apperrors.KindInternal, "failed to create post")
	}
	return nil
}

func (uc *postUseCase) Modify(title, body, username string, postID uint) (*entity.Post, error) {
	user, err := uc.resolveUser(username)
	if err != nil {
		return nil, err
	}

	post, err := uc.resolvePost(postID)
	if err != nil {
		return nil, err
	}

	// Ownership is identity of the resolved rows, not a username comparison.
	if post.UserID != user.ID {
		return nil, apperrors.New(apperrors.KindInvalidPermission, "%s has no permission with post %d", username, postID)
	}

	// Title and body are always overwritten together.
	post.Title = title
	post.Body = body

	if err := uc.postRepo.Update(post); err != nil {
		uc.logger.Error("Failed to update post %d: %v", postID, err)
		return nil, apperrors.New(apperrors.KindInternal, "failed to update post")
	}

	return post, nil
}

func (uc *postUseCase) Delete(postID uint, username string) error {
	user, err := uc.resolveUser(username)
	if err != nil {
		return err
	}

	post, err := uc.resolvePost(postID)
	if err != nil {
		return err
	}

	if post.UserID != user.ID {
		return apperrors.New(apperrors.KindInvalidPermission, "%s has no permission with post %d", username, postID)
	}

	if err := uc.postRepo.Delete(postID); err != nil {
		uc.logger.Error("Failed to delete post %d: %v", postID, err)
		return apperrors.New(apperrors.KindInternal, "failed to delete post")
	}
	return nil
}

func (uc *postUseCase) List(page, size int) (*entity.PostPage, error) {
	posts, total, err := uc.postRepo.List(page, size)
	if err != nil {
		uc.logger.Error("Failed to list posts: %v", err)
		return nil, apperrors.New(apperrors.KindInternal, "failed to list posts")
	}

	return &entity.PostPage{Posts: posts, Page: page, Size: size, Total: total}, nil
}

func (uc *postUseCase) ListMine(username string, page, size int) (*entity.PostPage, error) {
	user, err := uc.resolveUser(username)
	if err != nil {
		return nil, err
	}

	posts, total, err := uc.postRepo.ListByUser(user.ID, page, size)
	if err != nil {
		uc.logger.Error("Failed to list posts for %s: %v", username, err)
		return nil, apperrors.New(apperrors.KindInternal, "failed to list posts")
	}

	return &entity.PostPage{Posts: posts, Page: page, Size: size, Total: total}, nil
}

func (uc *postUseCase) resolveUser(username string) (*entity.User, error) {
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindUserNotFound, "%s not found", username)
		}
		uc.logger.Error("Failed to look up user %s: %v", username, err)
		return nil, apperrors.New(apperrors.KindInternal, "failed to look up username")
	}
	return user, nil
}

func (uc *postUseCase) resolvePost(postID uint) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindPostNotFound, "post %d not found", postID)
		}
		uc.logger.Error("Failed to look up post %d: %v", postID, err)
		return nil, apperrors.New(apperrors.KindInternal, "failed to look up post")
	}
	return post, nil
}
