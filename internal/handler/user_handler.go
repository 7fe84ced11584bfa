package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"xogame/internal/errors"
	"xogame/internal/model"
	"xogame/internal/service"
)

// UserHandler handles user and score endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Message is a bilingual response message.
type Message struct {
	En string `json:"en"`
	Th string `json:"th"`
}

var (
	msgScoreIncreased = Message{En: "Score increased", Th: "เพิ่มคะแนนสำเร็จ"}
	msgScoreDecreased = Message{En: "Score decreased", Th: "ลดคะแนนสำเร็จ"}
	msgScoreReset     = Message{En: "Score reset", Th: "รีเซ็ตคะแนนสำเร็จ"}
)

// CreateUserRequest represents a user creation payload.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	GoogleID string `json:"googleId" validate:"required"`
	Picture  string `json:"picture"`
	Scores   *int   `json:"scores"`
}

// IncrementScoreRequest carries the caller's pre-update score hint.
type IncrementScoreRequest struct {
	CurrentScore *int `json:"currentScore" validate:"required"`
}

// ScoreResponse is returned by decrement and reset.
type ScoreResponse struct {
	Message Message     `json:"message"`
	User    *model.User `json:"user"`
}

// IncrementScoreResponse is returned by the increment endpoints.
type IncrementScoreResponse struct {
	Message              Message     `json:"message"`
	User                 *model.User `json:"user"`
	MaxWinsStreakUpdated bool        `json:"maxWinsStreakUpdated"`
}

// CreateUser godoc
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User payload"
// @Success 201 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := service.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		GoogleID: req.GoogleID,
		Picture:  req.Picture,
	}
	if req.Scores != nil {
		in.Scores = *req.Scores
	}

	user, err := h.userService.CreateUser(c.Request().Context(), in)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, user)
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseUserID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetUser(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}

// GetUserScores godoc
// @Summary Current-score leaderboard
// @Tags users
// @Produce json
// @Param page query int false "1-indexed page, defaults to 1"
// @Success 200 {object} service.ScoresPage
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/scores [get]
func (h *UserHandler) GetUserScores(c echo.Context) error {
	page := pageParam(c)
	result, err := h.userService.GetUserScores(c.Request().Context(), page, service.DefaultPageSize)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, result)
}

// GetMaxWinsStreaks godoc
// @Summary Peak-score leaderboard
// @Tags users
// @Produce json
// @Param page query int false "1-indexed page, defaults to 1"
// @Success 200 {object} service.MaxWinsStreaksPage
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/max-wins-streak [get]
func (h *UserHandler) GetMaxWinsStreaks(c echo.Context) error {
	page := pageParam(c)
	result, err := h.userService.GetUserMaxWinsStreaks(c.Request().Context(), page, service.DefaultPageSize)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, result)
}

// IncrementScore godoc
// @Summary Add one point to a user's score
// @Tags scores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body IncrementScoreRequest true "Pre-update score"
// @Success 200 {object} IncrementScoreResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/{id}/scores/increment [patch]
func (h *UserHandler) IncrementScore(c echo.Context) error {
	return h.incrementScore(c, 1)
}

// IncrementScoreDouble godoc
// @Summary Add two points to a user's score
// @Tags scores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body IncrementScoreRequest true "Pre-update score"
// @Success 200 {object} IncrementScoreResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/{id}/scores/increment-2 [patch]
func (h *UserHandler) IncrementScoreDouble(c echo.Context) error {
	return h.incrementScore(c, 2)
}

func (h *UserHandler) incrementScore(c echo.Context, points int) error {
	id, err := parseUserID(c)
	if err != nil {
		return err
	}

	var req IncrementScoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrMissingCurrentScore)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	user, streakUpdated, err := h.userService.IncrementScore(c.Request().Context(), id, points, *req.CurrentScore)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, IncrementScoreResponse{
		Message:              msgScoreIncreased,
		User:                 user,
		MaxWinsStreakUpdated: streakUpdated,
	})
}

// DecrementScore godoc
// @Summary Subtract one point from a user's score
// @Tags scores
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} ScoreResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/{id}/scores/decrement [patch]
func (h *UserHandler) DecrementScore(c echo.Context) error {
	id, err := parseUserID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.DecrementScore(c.Request().Context(), id, 1)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, ScoreResponse{
		Message: msgScoreDecreased,
		User:    user,
	})
}

// ResetScore godoc
// @Summary Reset a user's score to zero
// @Tags scores
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} ScoreResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/{id}/scores/reset [patch]
func (h *UserHandler) ResetScore(c echo.Context) error {
	id, err := parseUserID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.ResetScore(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, ScoreResponse{
		Message: msgScoreReset,
		User:    user,
	})
}

func parseUserID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid user ID",
			Code:  "INVALID_UUID",
		})
	}
	return id, nil
}

// pageParam reads the 1-indexed page query parameter. Missing, malformed or
// out-of-range values default to page 1, never an error.
func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
