package handlers

import (
	"net/http"

	"coursecms/internal/middleware"
	"coursecms/internal/platform/logger"

	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	AuthHandler      *AuthHandler
	CourseHandler    *CourseHandler
	ChallengeHandler *ChallengeHandler
	Gate             middleware.Authorizer
	Log              *logger.Logger
	AllowedOrigins   []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.CORS(cfg.AllowedOrigins),
		middleware.RequestLogger(cfg.Log),
		middleware.Recovery(cfg.Log),
	)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/courses", cfg.CourseHandler.ListPublic)
		api.GET("/lesson/:lessonId/redirect", cfg.CourseHandler.Redirect)
		api.GET("/challenge", cfg.ChallengeHandler.GetPublic)

		api.POST("/admin/login", cfg.AuthHandler.Login)

		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuth(cfg.Gate))
		{
			admin.POST("/courses", cfg.CourseHandler.ListAdmin)
			admin.POST("/courses/create", cfg.CourseHandler.Create)
			admin.POST("/courses/update", cfg.CourseHandler.Update)
			admin.POST("/courses/delete", cfg.CourseHandler.Delete)

			admin.POST("/lessons/create", cfg.CourseHandler.CreateLesson)
			admin.POST("/lessons/update", cfg.CourseHandler.UpdateLesson)
			admin.POST("/lessons/delete", cfg.CourseHandler.DeleteLesson)

			admin.POST("/challenge", cfg.ChallengeHandler.GetAdmin)
			admin.POST("/challenge/save", cfg.ChallengeHandler.Save)
			admin.POST("/challenge/delete", cfg.ChallengeHandler.Delete)
		}
	}

	return r
}
