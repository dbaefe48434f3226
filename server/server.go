package server

import (
	"kanban-server/confs"
	"kanban-server/db"
	"kanban-server/handlers"
	httpHandler "kanban-server/handlers/http"
	"kanban-server/repositories"
	"kanban-server/services"
	"kanban-server/usecases"
	"kanban-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	db  db.Database
	cfg *confs.Config
}

func NewServer(database db.Database, cfg *confs.Config) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
		cfg: cfg,
	}
}

func (s *Server) Start() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true // Allow all origins for development
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	taskRepo := repositories.NewTaskPgRepository(s.db)

	// Initialize services
	hasher := services.NewBcryptHasher()
	tokens := services.NewJWTTokenGenerator(s.cfg.JWT)

	// Initialize use cases
	userUseCase := usecases.NewUserUseCase(userRepo, hasher)
	loginUseCase := usecases.NewLoginUseCase(userRepo, hasher, tokens)
	taskUseCase := usecases.NewTaskUseCase(taskRepo, userRepo)

	// Board event hub and handler
	manager := ws.NewManager()
	wsHandler := handlers.NewWSHandler(manager, tokens)

	// Initialize handlers
	userHandler := httpHandler.NewUserHandler(userUseCase)
	loginHandler := httpHandler.NewLoginHandler(loginUseCase)
	taskHandler := httpHandler.NewTaskHandler(taskUseCase, manager)

	// Setup API routes
	api := s.app.Group("/api/v1")
	{
		// Public routes
		api.POST("/users", userHandler.CreateUser)

		auth := api.Group("/auth")
		{
			auth.POST("/login", loginHandler.Login)
		}

		// Task routes require a valid session token
		tasks := api.Group("/tasks")
		tasks.Use(httpHandler.AuthRequired(tokens))
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("", taskHandler.ListTasks)
			tasks.GET("/kanban", taskHandler.GetBoard)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.PATCH("/:id/move", taskHandler.MoveTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}
	}

	s.app.GET("/ws", wsHandler.HandleBoardWS)

	if err := s.app.Run(s.cfg.ServerAddr); err != nil {
		panic(err)
	}
}
