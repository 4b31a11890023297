package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"sharedspaces/internal/api"
	"sharedspaces/internal/auth"
	"sharedspaces/internal/repository"
	"sharedspaces/internal/service"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	reservationRepo := repository.NewReservationRepository(db)
	waitingRepo := repository.NewWaitingRepository(db)
	actorRepo := repository.NewActorRepository(db)
	spaceRepo := repository.NewSpaceRepository(db)
	adminAuthRepo := repository.NewAdminAuthRepository(db)

	notifier := service.NewEmailNotifier()
	reservationSvc := service.NewReservationService(reservationRepo, waitingRepo, actorRepo, spaceRepo, notifier)
	waitlistSvc := service.NewWaitlistService(waitingRepo, reservationRepo, actorRepo, spaceRepo)
	adminAuthSvc := service.NewAdminAuthService(adminAuthRepo)
	jobSvc := service.NewJobService(waitingRepo)

	reservationHandler := api.NewReservationHandler(reservationSvc)
	waitlistHandler := api.NewWaitlistHandler(waitlistSvc)
	adminHandler := api.NewAdminHandler(waitlistSvc)
	adminAuthHandler := api.NewAdminAuthHandler(adminAuthSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/spaces", reservationHandler.ListSpaces).Methods("GET")
	r.HandleFunc("/api/reservations", reservationHandler.ListReservations).Methods("GET")
	r.HandleFunc("/api/reservations", reservationHandler.CreateReservation).Methods("POST")
	r.HandleFunc("/api/reservations", reservationHandler.DeleteReservationBySlot).Methods("DELETE")
	r.HandleFunc("/api/reservations/{id:[0-9]+}", reservationHandler.DeleteReservationByID).Methods("DELETE")
	r.HandleFunc("/api/reservations/user", reservationHandler.ListUserReservations).Methods("GET")
	r.HandleFunc("/api/reservations/responsible", reservationHandler.ListResponsibleReservations).Methods("GET")
	r.HandleFunc("/api/waitlist", waitlistHandler.JoinWaitlist).Methods("POST")
	r.HandleFunc("/api/waitlist/user", waitlistHandler.ListUserWaitlist).Methods("GET")
	r.HandleFunc("/admin/login", adminAuthHandler.Login).Methods("POST")
	r.HandleFunc("/admin/register", adminAuthHandler.Register).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/waitlist", adminHandler.ListWaitlist).Methods("GET")

	// Stale waitlist claims are purged nightly.
	c := cron.New()
	if _, err := c.AddFunc("0 3 * * *", func() {
		if err := jobSvc.PurgeExpiredWaitlist(); err != nil {
			log.Printf("Cron Job error: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule waitlist purge: %v", err)
	}
	c.Start()

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, cors(r))))
}
