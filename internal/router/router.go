package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devtrack-dev/devtrack/internal/auth"
	"github.com/devtrack-dev/devtrack/internal/handlers"
	"github.com/devtrack-dev/devtrack/internal/middleware"
)

func NewRouter(conn *gorm.DB, tokens *auth.TokenManager, fallbackAdminEmail string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authHandler := handlers.NewAuthHandler(conn, tokens)
	projectHandler := handlers.NewProjectHandler(conn)
	cohortHandler := handlers.NewCohortHandler(conn)
	classHandler := handlers.NewClassHandler(conn)
	memberHandler := handlers.NewProjectMemberHandler(conn)
	projectCohortHandler := handlers.NewProjectCohortHandler(conn)
	userHandler := handlers.NewUserHandler(conn, fallbackAdminEmail)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	api := r.Group("/api")
	{
		api.GET("/ping", handlers.Ping)

		protected := api.Group("", middleware.AuthMiddleware(tokens))
		{
			projects := protected.Group("/projects")
			{
				projects.GET("", projectHandler.ListProjects)
				projects.GET("/:id", projectHandler.GetProject)
				projects.POST("", projectHandler.CreateProject)
				projects.PUT("/:id", projectHandler.UpdateProject)
				projects.DELETE("/:id", projectHandler.DeleteProject)
			}

			cohorts := protected.Group("/cohorts")
			{
				cohorts.GET("", cohortHandler.ListCohorts)
				cohorts.POST("", cohortHandler.CreateCohort)
			}

			classes := protected.Group("/classes")
			{
				classes.GET("", classHandler.ListClasses)
				classes.POST("", classHandler.CreateClass)
			}

			members := protected.Group("/project_members")
			{
				members.GET("", memberHandler.ListProjectMembers)
				members.POST("", memberHandler.CreateProjectMember)
			}

			projectCohorts := protected.Group("/project_cohorts")
			{
				projectCohorts.GET("", projectCohortHandler.ListProjectCohorts)
				projectCohorts.POST("", projectCohortHandler.CreateProjectCohort)
			}

			users := protected.Group("/users")
			{
				users.GET("", userHandler.ListUsers)
				users.DELETE("/:id", userHandler.DeleteUser)
				users.GET("/:id/projects", userHandler.GetUserProjects)
			}
		}
	}

	return r
}
