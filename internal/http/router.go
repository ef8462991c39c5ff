package httpx

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/LeonardoBai12/PokemonSimplifiedAPI/internal/http/handlers"
	"github.com/LeonardoBai12/PokemonSimplifiedAPI/internal/http/middleware"
)

func BuildRouter(ah *handlers.AccountHandlers, ch *handlers.CardHandlers, jwtmw *middleware.AuthMW, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	api := r.Group("/api")
	api.POST("/signUp", ah.SignUp)
	api.POST("/login", ah.Login)
	api.POST("/requestSmsLogin", ah.RequestSmsLogin)
	api.POST("/loginBySms", ah.LoginBySms)

	protected := api.Group("/").Use(jwtmw.WithJWT())
	protected.GET("/user", ah.GetUser)
	protected.PUT("/updateUser", ah.UpdateUser)
	protected.PUT("/updatePassword", ah.UpdatePassword)
	protected.DELETE("/deleteUser", ah.DeleteUser)
	protected.GET("/logout", ah.Logout)
	protected.GET("/pokemon", ch.Random)

	return r
}
