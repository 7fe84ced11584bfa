package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"xogame/internal/config"
	"xogame/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/v1")

	// Public routes
	v1.GET("/auth/hello", authHandler.Hello)
	v1.GET("/auth/google", authHandler.GoogleLogin)
	v1.GET("/auth/google/callback", authHandler.GoogleCallback)

	v1.POST("/users", userHandler.CreateUser)
	v1.GET("/users/scores", userHandler.GetUserScores)
	v1.GET("/users/max-wins-streak", userHandler.GetMaxWinsStreaks)
	v1.GET("/users/:id", userHandler.GetUser)

	// Secured routes (require a session token from the Authorization header
	// or the login cookie)
	secured := v1.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:Authorization:Bearer ,cookie:token",
	}))

	secured.GET("/me", func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		claims, _ := token.Claims.(jwt.MapClaims)
		return c.JSON(http.StatusOK, echo.Map{"token_claims": claims})
	})

	// Score routes
	secured.PATCH("/users/:id/scores/increment", userHandler.IncrementScore)
	secured.PATCH("/users/:id/scores/increment-2", userHandler.IncrementScoreDouble)
	secured.PATCH("/users/:id/scores/decrement", userHandler.DecrementScore)
	secured.PATCH("/users/:id/scores/reset", userHandler.ResetScore)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
