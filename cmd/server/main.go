package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/legal-suite/backend/internal/auth"
	"github.com/legal-suite/backend/internal/billing"
	"github.com/legal-suite/backend/internal/court"
	"github.com/legal-suite/backend/internal/database"
	"github.com/legal-suite/backend/internal/library"
	"github.com/legal-suite/backend/internal/mail"
	"github.com/legal-suite/backend/internal/middleware"
	"github.com/legal-suite/backend/internal/office"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize handlers
	authHandler := auth.NewHandler(db)

	officeStore := office.NewStore(db)
	officeHandler := office.NewHandler(officeStore)

	mailStore := mail.NewStore(db)
	mailSender := mail.NewSMTPSender(mail.SMTPConfigFromEnv())
	mailHandler := mail.NewHandler(db, mailStore, mailSender, officeStore.CreateNotification)

	billingStore := billing.NewStore(db)
	billingHandler := billing.NewHandler(billingStore)

	libraryStore := library.NewStore(db)
	libraryHandler := library.NewHandler(libraryStore, library.NewAssistant())

	catalog := court.NewCatalog()
	courtStore := court.NewStore(db)
	courtService := court.NewService(catalog, courtStore)
	courtHandler := court.NewHandler(catalog, courtService)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(db))
	protected.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")
	protected.HandleFunc("/auth/change-password", authHandler.ChangePassword).Methods("POST")

	// Employees
	protected.HandleFunc("/employees", officeHandler.ListEmployees).Methods("GET")
	protected.HandleFunc("/employees", authHandler.CreateStaff).Methods("POST")
	protected.HandleFunc("/users/{id}", officeHandler.DeleteUser).Methods("DELETE")

	// Client requests
	protected.HandleFunc("/client-requests", officeHandler.ListRequests).Methods("GET")
	protected.HandleFunc("/client-requests", officeHandler.CreateRequest).Methods("POST")
	protected.HandleFunc("/client-requests/{id}/status", officeHandler.UpdateRequestStatus).Methods("PUT")
	protected.HandleFunc("/client-requests/{id}", officeHandler.DeleteRequest).Methods("DELETE")

	// Tasks
	protected.HandleFunc("/tasks", officeHandler.ListTasks).Methods("GET")
	protected.HandleFunc("/tasks", officeHandler.CreateTask).Methods("POST")
	protected.HandleFunc("/tasks/{id}/status", officeHandler.UpdateTaskStatus).Methods("PUT")
	protected.HandleFunc("/my-tasks", officeHandler.ListMyTasks).Methods("GET")

	// Attendance
	protected.HandleFunc("/attendance/today", officeHandler.GetTodayAttendance).Methods("GET")
	protected.HandleFunc("/attendance/clock-in", officeHandler.ClockIn).Methods("POST")
	protected.HandleFunc("/attendance/clock-out", officeHandler.ClockOut).Methods("POST")
	protected.HandleFunc("/attendance", officeHandler.ListAttendance).Methods("GET")

	// Notifications
	protected.HandleFunc("/notifications", officeHandler.ListNotifications).Methods("GET")
	protected.HandleFunc("/notifications/unread-count", officeHandler.GetUnreadCount).Methods("GET")
	protected.HandleFunc("/notifications/{id}/read", officeHandler.MarkNotificationRead).Methods("PUT")
	protected.HandleFunc("/notifications/read-all", officeHandler.MarkAllNotificationsRead).Methods("PUT")

	// Internal + external mail
	protected.HandleFunc("/emails/inbox", mailHandler.GetInbox).Methods("GET")
	protected.HandleFunc("/emails/sent", mailHandler.GetSent).Methods("GET")
	protected.HandleFunc("/emails/stats", mailHandler.GetStats).Methods("GET")
	protected.HandleFunc("/emails/send", mailHandler.SendInternal).Methods("POST")
	protected.HandleFunc("/emails/external/send", mailHandler.SendExternal).Methods("POST")
	protected.HandleFunc("/emails/{id}/read", mailHandler.MarkRead).Methods("PUT")

	// Billing
	protected.HandleFunc("/billing/invoices", billingHandler.ListInvoices).Methods("GET")
	protected.HandleFunc("/billing/invoices", billingHandler.CreateInvoice).Methods("POST")
	protected.HandleFunc("/billing/invoices/{id}", billingHandler.GetInvoice).Methods("GET")
	protected.HandleFunc("/billing/invoices/{id}/status", billingHandler.UpdateInvoiceStatus).Methods("PUT")
	protected.HandleFunc("/billing/invoices/{id}", billingHandler.DeleteInvoice).Methods("DELETE")
	protected.HandleFunc("/billing/invoices/{id}/pdf", billingHandler.GetInvoicePDF).Methods("GET")

	// Legal library + assistant
	protected.HandleFunc("/library/documents", libraryHandler.ListDocuments).Methods("GET")
	protected.HandleFunc("/library/documents", libraryHandler.CreateDocument).Methods("POST")
	protected.HandleFunc("/library/documents/{id}", libraryHandler.GetDocument).Methods("GET")
	protected.HandleFunc("/library/documents/{id}", libraryHandler.UpdateDocument).Methods("PUT")
	protected.HandleFunc("/library/documents/{id}", libraryHandler.DeleteDocument).Methods("DELETE")
	protected.HandleFunc("/library/chat", libraryHandler.Chat).Methods("POST")

	// Virtual court
	protected.HandleFunc("/virtual-court/prosecutor-game/scenarios", courtHandler.ListAccusationScenarios).Methods("GET")
	protected.HandleFunc("/virtual-court/prosecutor-game/scenarios/{id}", courtHandler.GetAccusationScenario).Methods("GET")
	protected.HandleFunc("/virtual-court/prosecutor-game/submit", courtHandler.SubmitAccusation).Methods("POST")
	protected.HandleFunc("/virtual-court/golden-pleading/scenarios", courtHandler.ListPleadingScenarios).Methods("GET")
	protected.HandleFunc("/virtual-court/golden-pleading/scenarios/{id}", courtHandler.GetPleadingScenario).Methods("GET")
	protected.HandleFunc("/virtual-court/golden-pleading/submit", courtHandler.SubmitPleading).Methods("POST")
	protected.HandleFunc("/virtual-court/procedural-error/scenarios", courtHandler.ListProceduralScenarios).Methods("GET")
	protected.HandleFunc("/virtual-court/procedural-error/scenarios/{id}", courtHandler.GetProceduralScenario).Methods("GET")
	protected.HandleFunc("/virtual-court/procedural-error/submit", courtHandler.SubmitProcedural).Methods("POST")
	protected.HandleFunc("/virtual-court/leaderboard", courtHandler.GetLeaderboard).Methods("GET")
	protected.HandleFunc("/virtual-court/my-profile", courtHandler.GetMyProfile).Methods("GET")

	// Dashboard
	protected.HandleFunc("/stats/dashboard", officeHandler.GetDashboardStats).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"degraded","database":"down"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
