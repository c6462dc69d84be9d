package router

import (
	"levelup-go/internal/config"
	"levelup-go/internal/handler"
	"levelup-go/internal/middleware"
	"levelup-go/internal/repository"
	"levelup-go/internal/service"
	"levelup-go/internal/utils"
	"levelup-go/pkg/tokenstore"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRouter 设置路由
func SetupRouter(
	cfg *config.Config,
	jwtManager *utils.JWTManager,
	logger *logrus.Logger,
	db *gorm.DB,
	tokens *tokenstore.TokenStore,
) *gin.Engine {
	if cfg.Server.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg))

	// 健康检查
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "LevelUP 学习管理 API",
			"version": "1.0.0",
		})
	})

	// 初始化Repository
	userRepo := repository.NewUserRepository(db)
	targetRepo := repository.NewTargetRepository(db)
	roadmapRepo := repository.NewRoadmapRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	todoRepo := repository.NewTodoRepository(db)

	// 初始化Service
	authService := service.NewAuthService(userRepo, jwtManager)
	targetService := service.NewTargetService(targetRepo)
	roadmapService := service.NewRoadmapService(roadmapRepo)
	noteService := service.NewNoteService(noteRepo)
	todoService := service.NewTodoService(todoRepo)

	// 初始化Handler
	authHandler := handler.NewAuthHandler(authService, jwtManager, tokens)
	targetHandler := handler.NewTargetHandler(targetService)
	roadmapHandler := handler.NewRoadmapHandler(roadmapService)
	noteHandler := handler.NewNoteHandler(noteService)
	todoHandler := handler.NewTodoHandler(todoService)

	// 公开路由
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/check_login", authHandler.CheckLogin)

	// 认证路由
	authorized := r.Group("")
	authorized.Use(middleware.AuthMiddleware(jwtManager, tokens))
	{
		authorized.POST("/logout", authHandler.Logout)

		// 学习目标
		authorized.GET("/targets", targetHandler.List)
		authorized.POST("/targets", targetHandler.Create)
		authorized.PUT("/targets/:id", targetHandler.Update)
		authorized.DELETE("/targets/:id", targetHandler.Delete)
		authorized.GET("/search", targetHandler.Search)

		// 学习路径
		authorized.GET("/roadmap", roadmapHandler.GetRoadmap)
		authorized.POST("/roadmap/main", roadmapHandler.AddMainNode)
		authorized.POST("/roadmap/branch", roadmapHandler.AddBranchNode)
		authorized.PUT("/roadmap/main/:id", roadmapHandler.UpdateMainNode)
		authorized.DELETE("/roadmap/main/:id", roadmapHandler.DeleteMainNode)
		authorized.PUT("/roadmap/branch/:id", roadmapHandler.UpdateBranchNode)
		authorized.DELETE("/roadmap/branch/:id", roadmapHandler.DeleteBranchNode)
		authorized.GET("/roadmap/search", roadmapHandler.SearchNodes)
		authorized.GET("/roadmap/get_main_nodes", roadmapHandler.GetMainNodes)
		authorized.GET("/roadmap/get_branch_nodes", roadmapHandler.GetBranchNodes)

		// md笔记
		authorized.GET("/api/files", noteHandler.List)
		authorized.POST("/api/files", noteHandler.Create)
		authorized.GET("/api/files/search", noteHandler.Search)
		authorized.GET("/api/files/:id", noteHandler.Get)
		authorized.PUT("/api/files/:id", noteHandler.Update)
		authorized.DELETE("/api/files/:id", noteHandler.Delete)
		authorized.GET("/api/roadmap_progress", roadmapHandler.GetProgress)

		// 待办事项
		authorized.GET("/todos", todoHandler.List)
		authorized.POST("/todos", todoHandler.Create)
		authorized.PUT("/todos/:id", todoHandler.Update)
		authorized.DELETE("/todos/:id", todoHandler.Delete)

		// 用户设置
		authorized.PUT("/api/user/username", authHandler.UpdateUsername)
		authorized.PUT("/api/user/password", authHandler.UpdatePassword)
	}

	return r
}
