package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"simple-sns/internal/entity"
	"simple-sns/pkg/apperrors"
	"simple-sns/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// postRouter wires the handler behind a stand-in for the auth middleware.
func postRouter(handler *PostHandler, username string) *gin.Engine {
	router := setupTestRouter()
	router.Use(func(c *gin.Context) {
		c.Set("username", username)
	})
	router.POST("/posts", handler.Create)
	router.GET("/posts", handler.List)
	router.GET("/posts/my", handler.ListMine)
	router.PUT("/posts/:postId", handler.Modify)
	router.DELETE("/posts/:postId", handler.Delete)
	router.POST("/posts/:postId/likes", handler.Like)
	router.GET("/posts/:postId/likes", handler.CountLikes)
	return router
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCreatePost(t *testing.T) {
	mockPosts := new(MockPostUseCase)
	mockLikes := new(MockLikeUseCase)
	handler := NewPostHandler(mockPosts, mockLikes, logger.New())
	router := postRouter(handler, "alice")

	mockPosts.On("Create", "hello", "world", "alice").Return(nil)

	w := doJSON(router, "POST", "/posts", PostCreateRequest{Title: "hello", Body: "world"})

	assert.Equal(t, http.StatusOK, w.Code)
	mockPosts.AssertExpectations(t)
}

func TestCreatePost_UserNotFound(t *testing.T) {
	mockPosts := new(MockPostUseCase)
	mockLikes := new(MockLikeUseCase)
	handler := NewPostHandler(mockPosts, mockLikes, logger.New())
	router := postRouter(handler, "ghost")

	mockPosts.On("Create", "hello", "world", "ghost").
		Return(apperrors.New(apperrors.KindUserNotFound, "ghost not found"))

	w := doJSON(router, "POST", "/posts", PostCreateRequest{Title: "hello", Body: "world"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "USER_NOT_FOUND")
}

func TestModifyPost(t *testing.T) {
	mockPosts := new(MockPostUseCase)
	mockLikes := new(MockLikeUseCase)
	handler := NewPostHandler(mockPosts, mockLikes, logger.New())
	router := postRouter(handler, "alice")

	post := &entity.Post{
		ID:     7,
		Title:  "new title",
		Body:   "new body",
		UserID: 1,
		User:   &entity.User{ID: 1, Username: "alice", Password: "hashed"},
	}
	mockPosts.On("Modify", "new title", "new body", "alice", uint(7)).Return(post, nil)

	w := doJSON(router, "PUT", "/posts/7", PostModifyRequest{Title: "new title", Body: "new body"})

	assert.Equal(t, http.StatusOK, w.Code)

	var response PostResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, uint(7), response.ID)
	assert.Equal(t, "new title", response.Title)
	assert.Equal(t, "new body", response.Body)
	assert.Equal(t, "alice", response.User.Username)
	assert.NotContains(t, w.Body.String(), "hashed")
}

func TestModifyPost_InvalidPermission(t *testing.T) {
	mockPosts := new(MockPostUseCase)
	mockLikes := new(MockLikeUseCase)
	handler := NewPostHandler(mockPosts, mockLikes, logger.New())
	router := postRouter(handler, "bob")

	mockPosts.On("Modify", "t", "b", "bob", uint(7)).
		Return(nil, apperrors.New(apperrors.KindInvalidPermission, "bob has no permission with post 7"))

	w := doJSON(router, "PUT", "/posts/7", PostModifyRequest{Title: "t", Body: "b"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_PERMISSION")
}

func TestModifyPost_InvalidID(t *testing.T) {
	mockPosts := new(MockPostUseCase)
	mockLikes := new(MockLikeUseCase)
	handler := NewPostHandler(mockPosts, mockLikes, logger.New())
	router := postRouter(handler, "alice")

	w := doJSON(router, "PUT", "/posts/not-a-number", PostModifyRequest{Title: "t", Body: "b"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockPosts.AssertNotCalled(t, "Modify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeletePost(t *testing.T) {
	mockPosts := new(MockPostUseCase)
	mockLikes := new(MockLikeUseCase)
	handler := NewPostHandler(mockPosts, mockLikes, logger.New())
	router := postRouter(handler, "alice")

	mockPosts.On("Delete", uint(7), "alice").Return(nil)

	w := doJSON(router, "DELETE", "/posts/7", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	mockPosts.AssertExpectations(t)
}

func TestDeletePost_NotFound(t *testing.T) {
	mockPosts := new(MockPostUseCase)
	mockLikes := new(MockLikeUseCase)
	handler := NewPostHandler(mockPosts, mockLikes, logger.New())
	router := postRouter(handler, "alice")

	mockPosts.On("Delete", uint(7), "alice").
		Return(apperrors.New(apperrors.KindPostNotFound, "post 7 not found"))

	w := doJSON(router, "DELETE", "/posts/7", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "POST_NOT_FOUND")
}

func TestListPosts(t *testing.T) {
	mockPosts := new(MockPostUseCase)
	mockLikes := new(MockLikeUseCase)
	handler := NewPostHandler(mockPosts, mockLikes, logger.New())
	router := postRouter(handler, "alice")

	page := &entity.PostPage{
		Posts: []*entity.Post{
			{ID: 1, Title: "hello", Body: "world", UserID: 1, User: &entity.User{ID: 1, Username: "alice"}},
		},
		Page:  0,
		Size:  20,
		Total: 1,
	}
	mockPosts.On("List", 0, 20).Return(page, nil)

	w := doJSON(router, "GET", "/posts", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var response PostPageResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response.Posts, 1)
	assert.Equal(t, "hello", response.Posts[0].Title)
	assert.Equal(t, "alice", response.Posts[0].User.Username)
	assert.Equal(t, int64(1), response.Total)
}

func TestListPosts_PageParams(t *testing.T) {
	mockPosts := new(MockPostUseCase)
	mockLikes := new(MockLikeUseCase)
	handler := NewPostHandler(mockPosts, mockLikes, logger.New())
	router := postRouter(handler, "alice")

	empty := &entity.PostPage{Posts: []*entity.Post{}, Page: 2, Size: 5}
	mockPosts.On("List", 2, 5).Return(empty, nil)

	w := doJSON(router, "GET", "/posts?page=2&size=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	mockPosts.AssertCalled(t, "List", 2, 5)
}

func TestListMine(t *testing.T) {
	mockPosts := new(MockPostUseCase)
	mockLikes := new(MockLikeUseCase)
	handler := NewPostHandler(mockPosts, mockLikes, logger.New())
	router := postRouter(handler, "alice")

	page := &entity.PostPage{
		Posts: []*entity.Post{{ID: 1, Title: "mine", UserID: 1, User: &entity.User{ID: 1, Username: "alice"}}},
		Size:  20,
		Total: 1,
	}
	mockPosts.On("ListMine", "alice", 0, 20).Return(page, nil)

	w := doJSON(router, "GET", "/posts/my", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var response PostPageResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response.Posts, 1)
}

func TestLikePost(t *testing.T) {
	mockPosts := new(MockPostUseCase)
	mockLikes := new(MockLikeUseCase)
	handler := NewPostHandler(mockPosts, mockLikes, logger.New())
	router := postRouter(handler, "bob")

	mockLikes.On("Like", uint(7), "bob").Return(nil)

	w := doJSON(router, "POST", "/posts/7/likes", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	mockLikes.AssertExpectations(t)
}

func TestLikePost_PostNotFound(t *testing.T) {
	mockPosts := new(MockPostUseCase)
	mockLikes := new(MockLikeUseCase)
	handler := NewPostHandler(mockPosts, mockLikes, logger.New())
	router := postRouter(handler, "bob")

	mockLikes.On("Like", uint(404), "bob").
		Return(apperrors.New(apperrors.KindPostNotFound, "post 404 not found"))

	w := doJSON(router, "POST", "/posts/404/likes", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "POST_NOT_FOUND")
}

func TestCountLikes(t *testing.T) {
	mockPosts := new(MockPostUseCase)
	mockLikes := new(MockLikeUseCase)
	handler := NewPostHandler(mockPosts, mockLikes, logger.New())
	router := postRouter(handler, "alice")

	mockLikes.On("CountLikes", uint(7)).Return(int64(3), nil)

	w := doJSON(router, "GET", "/posts/7/likes", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var response LikeCountResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, int64(3), response.Count)
}
