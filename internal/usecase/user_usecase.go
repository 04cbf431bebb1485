package usecase

import (
	"errors"

	"simple-sns/internal/entity"
	"simple-sns/internal/repo/persistent"
	"simple-sns/pkg/apperrors"
	"simple-sns/pkg/jwt"
	"simple-sns/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserUseCase interface {
	Register(username, password string) (*entity.User, error)
	Login(username, password string) (string, error)
}

type userUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewUserUseCase(userRepo persistent.UserRepository, jwtService *jwt.Service, logger *logger.Logger) UserUseCase {
	return &userUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *userUseCase) Register(username, password string) (*entity.User, error) {
	_, err := uc.userRepo.GetByUsername(username)
	if err == nil {
		return nil, apperrors.New(apperrors.KindDuplicateUsername, "%s is duplicated", username)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		uc.logger.Error("Failed to look up user %s: %v", username, err)
		return nil, apperrors.New(apperrors.KindInternal, "failed to look up username")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, apperrors.New(apperrors.KindInternal, "failed to process registration")
	}

	user := &entity.User{
		Username: username,
		Password: string(hashedPassword),
		Role:     entity.RoleUser,
	}

	if err := uc.userRepo.Create(user); err != nil {
		// A racing registration may land between the lookup and the insert;
		// the partial unique index reports it as a duplicate key.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.New(apperrors.KindDuplicateUsername, "%s is duplicated", username)
		}
		uc.logger.Error("Failed to create user %s: %v", username, err)
		return nil, apperrors.New(apperrors.KindInternal, "failed to create user")
	}

	return user, nil
}

func (uc *userUseCase) Login(username, password string) (string, error) {
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.New(apperrors.KindUserNotFound, "%s not found", username)
		}
		uc.logger.Error("Failed to look up user %s: %v", username, err)
		return "", apperrors.New(apperrors.KindInternal, "failed to look up username")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperrors.New(apperrors.KindInvalidPassword, "password mismatch for %s", username)
	}

	token, err := uc.jwtService.GenerateToken(username)
	if err != nil {
		uc.logger.Error("Failed to generate token for %s: %v", username, err)
		return "", apperrors.New(apperrors.KindInternal, "failed to generate token")
	}

	return token, nil
}
