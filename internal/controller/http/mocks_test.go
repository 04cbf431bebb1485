package http

import (
	"simple-sns/internal/entity"
	"simple-sns/internal/usecase"

	"github.com/stretchr/testify/mock"
)

type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) Register(username, password string) (*entity.User, error) {
	args := m.Called(username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) Login(username, password string) (string, error) {
	args := m.Called(username, password)
	return args.String(0), args.Error(1)
}

var _ usecase.UserUseCase = (*MockUserUseCase)(nil)

type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) Create(title, body, username string) error {
	args := m.Called(title, body, username)
	return args.Error(0)
}

func (m *MockPostUseCase) Modify(title, body, username string, postID uint) (*entity.Post, error) {
	args := m.Called(title, body, username, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) Delete(postID uint, username string) error {
	args := m.Called(postID, username)
	return args.Error(0)
}

func (m *MockPostUseCase) List(page, size int) (*entity.PostPage, error) {
	args := m.Called(page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PostPage), args.Error(1)
}

func (m *MockPostUseCase) ListMine(username string, page, size int) (*entity.PostPage, error) {
	args := m.Called(username, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PostPage), args.Error(1)
}

var _ usecase.PostUseCase = (*MockPostUseCase)(nil)

type MockLikeUseCase struct {
	mock.Mock
}

func (m *MockLikeUseCase) Like(postID uint, username string) error {
	args := m.Called(postID, username)
	return args.Error(0)
}

func (m *MockLikeUseCase) CountLikes(postID uint) (int64, error) {
	args := m.Called(postID)
	return args.Get(0).(int64), args.Error(1)
}

var _ usecase.LikeUseCase = (*MockLikeUseCase)(nil)
