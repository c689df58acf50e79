package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	database "github.com/ulil-albab/MasjidManager/db"
	"github.com/ulil-albab/MasjidManager/internal/auth"
	"github.com/ulil-albab/MasjidManager/internal/finance/application"
	"github.com/ulil-albab/MasjidManager/internal/finance/infrastructure"
	"github.com/ulil-albab/MasjidManager/internal/finance/interfaces"
	"github.com/ulil-albab/MasjidManager/internal/finance/pdf"
	"github.com/ulil-albab/MasjidManager/internal/news"
	"github.com/ulil-albab/MasjidManager/internal/user"
)

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

type Server struct {
	router             *http.ServeMux
	authService        *auth.Service
	userHandler        *user.Handler
	transactionHandler *interfaces.TransactionHandler
	reportHandler      *interfaces.ReportHandler
	newsHandler        *news.Handler
	dbHealth           func() map[string]string
	assetDir           string
}

func NewServer(
	authService *auth.Service,
	userHandler *user.Handler,
	transactionHandler *interfaces.TransactionHandler,
	reportHandler *interfaces.ReportHandler,
	newsHandler *news.Handler,
	dbHealth func() map[string]string,
	assetDir string,
) *Server {
	return &Server{
		router:             http.NewServeMux(),
		authService:        authService,
		userHandler:        userHandler,
		transactionHandler: transactionHandler,
		reportHandler:      reportHandler,
		newsHandler:        newsHandler,
		dbHealth:           dbHealth,
		assetDir:           assetDir,
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(map[string]string{"message": "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET provided")
	}
	if os.Getenv("DB_CONNECTION_STRING") == "" {
		return errors.New("no DB_CONNECTION_STRING provided")
	}
	return nil
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	health := s.dbHealth()
	status := http.StatusOK
	if health["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(health)
}

func (s *Server) RegisterRoutes() {
	mux := http.NewServeMux()

	// Account routes
	mux.Handle("POST /user/register", http.HandlerFunc(s.userHandler.Register))
	mux.Handle("POST /user/login", http.HandlerFunc(s.userHandler.Login))
	mux.Handle("POST /user/logout", http.HandlerFunc(s.userHandler.Logout))
	mux.Handle("GET /user/profile", s.authService.Authenticate(http.HandlerFunc(s.userHandler.CurrentUser)))

	// Transaction mutations are restricted to the pengurus account.
	mux.Handle("POST /finance/incomes/create", s.authService.RequirePengurus(http.HandlerFunc(s.transactionHandler.CreateIncome)))
	mux.Handle("PUT /finance/incomes/{id}", s.authService.RequirePengurus(http.HandlerFunc(s.transactionHandler.UpdateIncome)))
	mux.Handle("DELETE /finance/incomes/{id}", s.authService.RequirePengurus(http.HandlerFunc(s.transactionHandler.DeleteIncome)))

	mux.Handle("POST /finance/expenses/create", s.authService.RequirePengurus(http.HandlerFunc(s.transactionHandler.CreateExpense)))
	mux.Handle("PUT /finance/expenses/{id}", s.authService.RequirePengurus(http.HandlerFunc(s.transactionHandler.UpdateExpense)))
	mux.Handle("DELETE /finance/expenses/{id}", s.authService.RequirePengurus(http.HandlerFunc(s.transactionHandler.DeleteExpense)))

	// Reports are readable by anyone.
	mux.Handle("GET /finance/report/weekly-auto", http.HandlerFunc(s.reportHandler.WeeklyReport))
	mux.Handle("GET /finance/report/monthly-auto", http.HandlerFunc(s.reportHandler.MonthlyReport))
	mux.Handle("GET /finance/report/yearly-auto", http.HandlerFunc(s.reportHandler.YearlyReport))

	mux.Handle("GET /finance/report/weekly/pdf", http.HandlerFunc(s.reportHandler.WeeklyReportPDF))
	mux.Handle("GET /finance/report/monthly/pdf", http.HandlerFunc(s.reportHandler.MonthlyReportPDF))
	mux.Handle("GET /finance/report/yearly/pdf", http.HandlerFunc(s.reportHandler.YearlyReportPDF))

	// News routes
	mux.Handle("GET /news", http.HandlerFunc(s.newsHandler.List))
	mux.Handle("GET /news/{id}", http.HandlerFunc(s.newsHandler.GetByID))
	mux.Handle("POST /news", s.authService.RequirePengurus(http.HandlerFunc(s.newsHandler.Create)))
	mux.Handle("PUT /news/{id}", s.authService.RequirePengurus(http.HandlerFunc(s.newsHandler.Update)))
	mux.Handle("DELETE /news/{id}", s.authService.RequirePengurus(http.HandlerFunc(s.newsHandler.Delete)))

	// Uploaded images and other public assets
	imagesDir := filepath.Join(s.assetDir, "images")
	mux.Handle("GET /images/", http.StripPrefix("/images/", http.FileServer(http.Dir(imagesDir))))

	mux.Handle("GET /ready", http.HandlerFunc(s.handleReady))
	mux.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mux
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server: %v", err)
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := database.RunMigrations(dbService.DB); err != nil {
		log.Fatalf("Could not run migrations: %v", err)
	}

	assetDir := os.Getenv("ASSET_DIR")
	if assetDir == "" {
		assetDir = "./public"
	}

	jwtManager := auth.NewJWTManager(os.Getenv("JWT_SECRET"))

	userRepo := user.NewPostgresRepository(dbService.DB)
	userService := user.NewService(userRepo)
	authService := auth.NewService(jwtManager, userService)
	userHandler := user.NewHandler(userService, jwtManager, interfaces.RespondJSON, interfaces.RespondError)

	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	balanceRepo := infrastructure.NewBalanceRepository(dbService.DB)
	balanceService := application.NewBalanceService(balanceRepo, transactionRepo)
	transactionService := application.NewTransactionService(transactionRepo, balanceService)
	reportService := application.NewReportService(transactionRepo, balanceService)

	renderer := pdf.NewRenderer(assetDir)
	transactionHandler := interfaces.NewTransactionHandler(transactionService, interfaces.RespondJSON, interfaces.RespondError)
	reportHandler := interfaces.NewReportHandler(reportService, renderer, interfaces.RespondJSON, interfaces.RespondError)

	newsRepo := news.NewPostgresRepository(dbService.DB)
	newsService := news.NewService(newsRepo, news.NewDiskImageStore(assetDir))
	newsHandler := news.NewHandler(newsService, interfaces.RespondJSON, interfaces.RespondError)

	server := NewServer(authService, userHandler, transactionHandler, reportHandler, newsHandler, dbService.Health, assetDir)
	server.RegisterRoutes()

	if err := StartLedgerScheduler(balanceService); err != nil {
		log.Fatalf("Scheduler didn't start, stopping the app ...")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	handler := loggingMiddleware(server.router)
	log.Printf("Server starting on port %s...", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

// StartLedgerScheduler periodically reconciles the cached balance against the
// transaction store.
func StartLedgerScheduler(balanceService *application.BalanceService) error {
	c := cron.New()
	_, err := c.AddFunc("@every 6h", func() {
		if err := balanceService.Reconcile(); err != nil {
			log.Printf("Error reconciling ledger: %v", err)
		} else {
			log.Println("Ledger reconciled successfully.")
		}
	})
	if err != nil {
		return err
	}
	c.Start()
	return nil
}
