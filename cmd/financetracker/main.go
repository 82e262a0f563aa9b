package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	database "github.com/katzyx/finances-tracker/internal/db"
	"github.com/katzyx/finances-tracker/internal/finance/application"
	"github.com/katzyx/finances-tracker/internal/finance/infrastructure"
	"github.com/katzyx/finances-tracker/internal/finance/interfaces"
	"github.com/katzyx/finances-tracker/pkg/logging"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// loggingMiddleware tags every request with a request id and logs method,
// path, status and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(recorder, r)

		slog.Info("Request completed",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.status,
			"duration", time.Since(start),
		)
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusNotFound, map[string]interface{}{
		"status":  "error",
		"message": "Path not found",
		"code":    http.StatusNotFound,
	})
}

func checkConfiguration() error {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, continuing with system environment variables")
	}
	if os.Getenv("DB_CONNECTION_STRING") == "" {
		return errors.New("no DB_CONNECTION_STRING provided")
	}
	return nil
}

type Server struct {
	router             *http.ServeMux
	dbService          *database.DBService
	userHandler        *interfaces.UserHandler
	accountHandler     *interfaces.AccountHandler
	categoryHandler    *interfaces.CategoryHandler
	debtHandler        *interfaces.DebtHandler
	transactionHandler *interfaces.TransactionHandler
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.dbService.Health())
}

func (s *Server) RegisterRoutes() {
	router := http.NewServeMux()

	router.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	router.Handle("GET /api/users/{userID}", http.HandlerFunc(s.userHandler.GetUserByID))

	router.Handle("GET /api/accounts", http.HandlerFunc(s.accountHandler.GetAllAccounts))
	router.Handle("GET /api/accounts/{accountID}", http.HandlerFunc(s.accountHandler.GetAccountByID))
	router.Handle("GET /api/accounts/user/{userID}", http.HandlerFunc(s.accountHandler.GetAccountsByUserID))
	router.Handle("GET /api/accounts/name/{accountName}", http.HandlerFunc(s.accountHandler.GetAccountByName))
	router.Handle("POST /api/accounts", http.HandlerFunc(s.accountHandler.CreateAccount))
	router.Handle("PUT /api/accounts/{accountID}", http.HandlerFunc(s.accountHandler.UpdateAccount))
	router.Handle("DELETE /api/accounts/{accountID}", http.HandlerFunc(s.accountHandler.DeleteAccount))

	router.Handle("GET /api/categories", http.HandlerFunc(s.categoryHandler.GetAllCategories))
	router.Handle("GET /api/categories/{categoryID}", http.HandlerFunc(s.categoryHandler.GetCategoryByID))
	router.Handle("GET /api/categories/name/{categoryName}", http.HandlerFunc(s.categoryHandler.GetCategoryByName))
	router.Handle("POST /api/categories", http.HandlerFunc(s.categoryHandler.CreateCategory))
	router.Handle("PUT /api/categories/{categoryID}", http.HandlerFunc(s.categoryHandler.UpdateCategory))
	router.Handle("DELETE /api/categories/{categoryID}", http.HandlerFunc(s.categoryHandler.DeleteCategory))

	router.Handle("GET /api/debts", http.HandlerFunc(s.debtHandler.GetAllDebts))
	router.Handle("GET /api/debts/{debtID}", http.HandlerFunc(s.debtHandler.GetDebtByID))
	router.Handle("GET /api/debts/user/{userID}", http.HandlerFunc(s.debtHandler.GetDebtsByUserID))
	router.Handle("GET /api/debts/user/{userID}/active", http.HandlerFunc(s.debtHandler.GetActiveDebtsByUserID))
	router.Handle("GET /api/debts/user/{userID}/paid-off", http.HandlerFunc(s.debtHandler.GetPaidOffDebtsByUserID))
	router.Handle("GET /api/debts/user/{userID}/total-remaining", http.HandlerFunc(s.debtHandler.GetTotalRemainingDebt))
	router.Handle("POST /api/debts", http.HandlerFunc(s.debtHandler.CreateDebt))
	router.Handle("POST /api/debts/{debtID}/payment", http.HandlerFunc(s.debtHandler.MakePayment))
	router.Handle("PUT /api/debts/{debtID}", http.HandlerFunc(s.debtHandler.UpdateDebt))
	router.Handle("DELETE /api/debts/{debtID}", http.HandlerFunc(s.debtHandler.DeleteDebt))

	router.Handle("GET /api/transactions", http.HandlerFunc(s.transactionHandler.GetAllTransactions))
	router.Handle("GET /api/transactions/{transactionID}", http.HandlerFunc(s.transactionHandler.GetTransactionByID))
	router.Handle("GET /api/transactions/account/{accountID}", http.HandlerFunc(s.transactionHandler.GetTransactionsByAccountID))
	router.Handle("GET /api/transactions/category/{categoryID}", http.HandlerFunc(s.transactionHandler.GetTransactionsByCategoryID))
	router.Handle("GET /api/transactions/debt/{debtID}", http.HandlerFunc(s.transactionHandler.GetTransactionsByDebtID))
	router.Handle("GET /api/transactions/user/{userID}", http.HandlerFunc(s.transactionHandler.GetTransactionsByUserID))
	router.Handle("GET /api/transactions/date/{transactionDate}", http.HandlerFunc(s.transactionHandler.GetTransactionsByDate))
	router.Handle("GET /api/transactions/type/{type}", http.HandlerFunc(s.transactionHandler.GetTransactionsByType))
	router.Handle("GET /api/transactions/recurrence/{recurrence}", http.HandlerFunc(s.transactionHandler.GetTransactionsByRecurrence))
	router.Handle("POST /api/transactions", http.HandlerFunc(s.transactionHandler.CreateTransaction))
	router.Handle("PUT /api/transactions/{transactionID}", http.HandlerFunc(s.transactionHandler.UpdateTransaction))
	router.Handle("DELETE /api/transactions/{transactionID}", http.HandlerFunc(s.transactionHandler.DeleteTransaction))

	router.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = router
}

func main() {
	logging.Setup()

	if err := checkConfiguration(); err != nil {
		slog.Error("Missing configuration, update to start server", "error", err)
		os.Exit(1)
	}

	dbService, err := database.NewDBService()
	if err != nil {
		slog.Error("Could not initialize database", "error", err)
		os.Exit(1)
	}
	defer dbService.Close()

	if err := infrastructure.EnsureSchema(dbService.DB); err != nil {
		slog.Error("Could not create schema", "error", err)
		os.Exit(1)
	}

	userRepo := infrastructure.NewUserRepository(dbService.DB)
	accountRepo := infrastructure.NewAccountRepository(dbService.DB)
	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	debtRepo := infrastructure.NewDebtRepository(dbService.DB)
	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)

	userService := application.NewUserService(userRepo)
	accountService := application.NewAccountService(accountRepo, userService)
	categoryService := application.NewCategoryService(categoryRepo)
	debtService := application.NewDebtService(debtRepo, userService)
	transactionService := application.NewTransactionService(
		transactionRepo, userService, accountService, categoryService, debtService)

	seedService := application.NewSeedService(userRepo, accountRepo, categoryRepo)
	if err := seedService.Run(); err != nil {
		slog.Error("Could not initialize sample data", "error", err)
		os.Exit(1)
	}

	server := &Server{
		dbService:          dbService,
		userHandler:        interfaces.NewUserHandler(userService, respondJSON),
		accountHandler:     interfaces.NewAccountHandler(accountService, respondJSON),
		categoryHandler:    interfaces.NewCategoryHandler(categoryService, respondJSON),
		debtHandler:        interfaces.NewDebtHandler(debtService, respondJSON),
		transactionHandler: interfaces.NewTransactionHandler(transactionService, respondJSON),
	}
	server.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	slog.Info("Server starting", "port", port)
	if err := http.ListenAndServe(":"+port, loggingMiddleware(server.router)); err != nil {
		slog.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}
