package http

import (
	"time"

	"simple-sns/internal/entity"
)

type UserJoinRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
}

type UserLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserJoinResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type UserLoginResponse struct {
	Token string `json:"token"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type PostCreateRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type PostModifyRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type PostResponse struct {
	ID        uint         `json:"id"`
	Title     string       `json:"title"`
	Body      string       `json:"body"`
	User      UserResponse `json:"user"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type PostPageResponse struct {
	Posts []PostResponse `json:"posts"`
	Page  int            `json:"page"`
	Size  int            `json:"size"`
	Total int64          `json:"total"`
}

type LikeCountResponse struct {
	Count int64 `json:"count"`
}

// The mapping functions below are total: every outward field is always
// populated, and the password hash never leaves the boundary.

func NewUserJoinResponse(user *entity.User) UserJoinResponse {
	return UserJoinResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	}
}

func NewUserResponse(user *entity.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
	}
}

func NewPostResponse(post *entity.Post) PostResponse {
	return PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Body:      post.Body,
		User:      NewUserResponse(post.User),
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

func NewPostPageResponse(page *entity.PostPage) PostPageResponse {
	posts := make([]PostResponse, len(page.Posts))
	for i, post := range page.Posts {
		posts[i] = NewPostResponse(post)
	}
	return PostPageResponse{
		Posts: posts,
		Page:  page.Page,
		Size:  page.Size,
		Total: page.Total,
	}
}
