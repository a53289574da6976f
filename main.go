package main

import (
	"log"
	"net/http"
	"os"

	"blog-api/config"
	"blog-api/handlers"
	"blog-api/repositories"
	"blog-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	banRepo := repositories.NewBanRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo)
	tagService := services.NewTagService(tagRepo)
	postService := services.NewPostService(postRepo, userRepo, tagService)
	commentService := services.NewCommentService(commentRepo, banRepo, userRepo, postRepo)
	banService := services.NewBanService(banRepo, userRepo, postRepo)
	searchService := services.NewSearchService(postRepo)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	postHandler := handlers.NewPostHandler(postService)
	commentHandler := handlers.NewCommentHandler(commentService)
	banHandler := handlers.NewBanHandler(banService)
	searchHandler := handlers.NewSearchHandler(searchService)

	router := setupRouter(userHandler, postHandler, commentHandler, banHandler, searchHandler)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}

func setupRouter(
	userHandler *handlers.UserHandler,
	postHandler *handlers.PostHandler,
	commentHandler *handlers.CommentHandler,
	banHandler *handlers.BanHandler,
	searchHandler *handlers.SearchHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())

	// Any unhandled fault surfaces as a generic JSON error, never a raw trace.
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}))

	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/v1")
	{
		v1.POST("/users", userHandler.CreateUser)
		v1.GET("/users/:user_id", userHandler.GetUser)

		users := v1.Group("/users/:user_id")
		{
			users.POST("/posts", postHandler.CreatePost)
			users.GET("/posts", postHandler.GetUserPosts)

			posts := users.Group("/posts/:post_id")
			{
				posts.POST("/comments", commentHandler.CreateComment)
				posts.GET("/comments", commentHandler.GetComments)

				posts.POST("/bans", banHandler.CreateBan)
				posts.DELETE("/bans/:ban_id", banHandler.DeleteBan)
			}
		}

		v1.GET("/search", searchHandler.Search)
	}

	return router
}
