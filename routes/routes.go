package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Alexander2005-rgb/Quiz-application/auth"
	"github.com/Alexander2005-rgb/Quiz-application/config"
	"github.com/Alexander2005-rgb/Quiz-application/controllers"
	"github.com/Alexander2005-rgb/Quiz-application/middleware"
	"github.com/Alexander2005-rgb/Quiz-application/quiz"
	"github.com/Alexander2005-rgb/Quiz-application/storage"
)

func SetupRoutes(app *fiber.App, store storage.Storage, cfg *config.Config) {
	authService := auth.NewService(store, auth.NewBcryptHasher(), auth.NewTokenService(cfg.JWTSecret, auth.DefaultTokenTTL))
	quizService := quiz.NewService(store, store)

	authController := controllers.NewAuthController(authService)
	quizController := controllers.NewQuizController(quizService)
	resultController := controllers.NewResultController(quizService)

	authMiddleware := middleware.AuthMiddleware(authService)
	adminMiddleware := middleware.AdminMiddleware()

	api := app.Group("/api")

	// Auth routes
	api.Post("/auth/register", authController.Register)
	api.Post("/auth/login", authController.Login)

	// Question routes
	questions := api.Group("/questions", authMiddleware)
	questions.Get("/", quizController.GetQuestions)
	questions.Post("/", adminMiddleware, quizController.InsertDefault)
	questions.Delete("/", adminMiddleware, quizController.DropQuestions)
	questions.Post("/add", adminMiddleware, quizController.AddQuestion)

	// Result routes
	results := api.Group("/result", authMiddleware)
	results.Get("/", resultController.GetResults)
	results.Post("/", resultController.StoreResult)
	results.Delete("/", adminMiddleware, resultController.DropResults)

	// Quiz management routes
	quizzes := api.Group("/quizzes", authMiddleware)
	quizzes.Get("/", quizController.GetQuizzes)
	quizzes.Post("/", quizController.CreateQuiz)
}
