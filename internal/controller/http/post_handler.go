package http

import (
	"net/http"
	"strconv"

	"simple-sns/internal/usecase"
	"simple-sns/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	likeUseCase usecase.LikeUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, likeUseCase usecase.LikeUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		likeUseCase: likeUseCase,
		logger:      logger,
	}
}

// Create godoc
// @Summary      Create a post
// @Description  Create a text post owned by the authenticated user
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body PostCreateRequest true "Post content"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) Create(c *gin.Context) {
	username := c.GetString("username")

	var req PostCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.postUseCase.Create(req.Title, req.Body, username); err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post created"})
}

// Modify godoc
// @Summary      Modify a post
// @Description  Overwrite the title and body of a post owned by the authenticated user
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId path int true "Post ID"
// @Param        request body PostModifyRequest true "New content"
// @Success      200  {object}  PostResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{postId} [put]
func (h *PostHandler) Modify(c *gin.Context) {
	username := c.GetString("username")

	postID, ok := h.postIDParam(c)
	if !ok {
		return
	}

	var req PostModifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUseCase.Modify(req.Title, req.Body, username, postID)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, NewPostResponse(post))
}

// Delete godoc
// @Summary      Delete a post
// @Description  Soft-delete a post owned by the authenticated user
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId path int true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{postId} [delete]
func (h *PostHandler) Delete(c *gin.Context) {
	username := c.GetString("username")

	postID, ok := h.postIDParam(c)
	if !ok {
		return
	}

	if err := h.postUseCase.Delete(postID, username); err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

// List godoc
// @Summary      List posts
// @Description  List all active posts, newest first
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number (0-based)"
// @Param        size query int false "Page size (max 100)"
// @Success      200  {object}  PostPageResponse
// @Router       /posts [get]
func (h *PostHandler) List(c *gin.Context) {
	page, size := h.pageParams(c)

	result, err := h.postUseCase.List(page, size)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, NewPostPageResponse(result))
}

// ListMine godoc
// @Summary      List my posts
// @Description  List active posts owned by the authenticated user, newest first
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number (0-based)"
// @Param        size query int false "Page size (max 100)"
// @Success      200  {object}  PostPageResponse
// @Failure      404  {object}  map[string]string
// @Router       /posts/my [get]
func (h *PostHandler) ListMine(c *gin.Context) {
	username := c.GetString("username")
	page, size := h.pageParams(c)

	result, err := h.postUseCase.ListMine(username, page, size)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, NewPostPageResponse(result))
}

// Like godoc
// @Summary      Like a post
// @Description  Like a post; liking an already-liked post is a no-op
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId path int true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{postId}/likes [post]
func (h *PostHandler) Like(c *gin.Context) {
	username := c.GetString("username")

	postID, ok := h.postIDParam(c)
	if !ok {
		return
	}

	if err := h.likeUseCase.Like(postID, username); err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post liked"})
}

// CountLikes godoc
// @Summary      Count likes
// @Description  Count the active likes on a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId path int true "Post ID"
// @Success      200  {object}  LikeCountResponse
// @Failure      404  {object}  map[string]string
// @Router       /posts/{postId}/likes [get]
func (h *PostHandler) CountLikes(c *gin.Context) {
	postID, ok := h.postIDParam(c)
	if !ok {
		return
	}

	count, err := h.likeUseCase.CountLikes(postID)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, LikeCountResponse{Count: count})
}

func (h *PostHandler) postIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("postId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return 0, false
	}
	return uint(id), true
}

func (h *PostHandler) pageParams(c *gin.Context) (int, int) {
	page := 0
	size := defaultPageSize

	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p >= 0 {
			page = p
		}
	}
	if sizeStr := c.Query("size"); sizeStr != "" {
		if s, err := strconv.Atoi(sizeStr); err == nil && s > 0 && s <= maxPageSize {
			size = s
		}
	}
	return page, size
}
