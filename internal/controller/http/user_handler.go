package http

import (
	"net/http"

	"simple-sns/internal/usecase"
	"simple-sns/pkg/logger"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *logger.Logger
}

func NewUserHandler(userUseCase usecase.UserUseCase, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// Join godoc
// @Summary      Register a new user
// @Description  Register a new user with a unique username
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body UserJoinRequest true "Registration data"
// @Success      200  {object}  UserJoinResponse
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /users/join [post]
func (h *UserHandler) Join(c *gin.Context) {
	var req UserJoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUseCase.Register(req.Username, req.Password)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, NewUserJoinResponse(user))
}

// Login godoc
// @Summary      Login
// @Description  Authenticate a user and return a bearer token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body UserLoginRequest true "Login credentials"
// @Success      200  {object}  UserLoginResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.userUseCase.Login(req.Username, req.Password)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, UserLoginResponse{Token: token})
}
