package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/lucilles-catering/crm-sync/internal/infra/database"
	"github.com/lucilles-catering/crm-sync/internal/infra/http/handlers"
	"github.com/lucilles-catering/crm-sync/internal/infra/http/middleware"
	"github.com/lucilles-catering/crm-sync/internal/infra/integration/calendar"
	"github.com/lucilles-catering/crm-sync/internal/infra/mail"
	"github.com/lucilles-catering/crm-sync/internal/infra/queue"
	"github.com/lucilles-catering/crm-sync/internal/infra/worker"
	"github.com/lucilles-catering/crm-sync/internal/usecase"
)

func main() {
	godotenv.Load()

	ctx := context.Background()

	// 1. Store: Postgres when configured, memory for local dev.
	var db *sql.DB
	var store usecase.TableStore

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		var err error
		db, err = database.NewDBConnection(dsn)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()

		pgStore := database.NewTableStore(db, usecase.LeadTable, usecase.DealTable)
		if err := pgStore.Init(ctx); err != nil {
			log.Fatal(err)
		}
		store = pgStore
	} else {
		log.Println("DATABASE_URL not set, using in-memory store")
		store = database.NewMemoryTableStore(usecase.LeadTable, usecase.DealTable)
	}

	// 2. RabbitMQ (optional): follow-up events + consumer worker.
	var amqpConn *amqp.Connection
	var producer usecase.QueueProducerInterface

	if host := os.Getenv("RABBITMQ_HOST"); host != "" {
		rabbitMQ, err := queue.NewRabbitMQ(
			os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"),
			host, envOrDefault("RABBITMQ_PORT", "5672"),
		)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		amqpConn = rabbitMQ.Conn
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		mailPort, _ := strconv.Atoi(envOrDefault("MAIL_PORT", "587"))
		mailSender := mail.NewEmailSender(
			os.Getenv("MAIL_HOST"), mailPort, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		)

		followUpWorker := queue.NewWorker(rabbitMQ.Ch, mailSender)
		go followUpWorker.Start(queue.QueueName)
	} else {
		log.Println("RABBITMQ_HOST not set, follow-up events disabled")
	}

	// 3. Calendar client (optional).
	var calendarClient usecase.CalendarService
	if url := os.Getenv("CALENDAR_API_URL"); url != "" {
		calendarClient = calendar.NewClient(url, os.Getenv("CALENDAR_API_KEY"))
	}

	// 4. Sync engine.
	syncService := usecase.NewSyncService(store, producer, calendarClient)

	// 5. Audit worker for duplicate latest-entry rows.
	auditWorker := worker.NewLatestAuditWorker(store, usecase.DealTable)
	go auditWorker.Start(ctx)

	// 6. Handlers
	syncHandler := handlers.NewSyncHandler(syncService)
	leadHandler := handlers.NewLeadHandler(syncService)
	dealHandler := handlers.NewDealHandler(syncService)
	healthHandler := handlers.NewHealthHandler(db, amqpConn)

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Get("/sync", syncHandler.Handle)
	r.Post("/leads", leadHandler.Create)
	r.Put("/deals/{refNumber}", dealHandler.Upsert)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + envOrDefault("PORT", "8080")
	log.Printf("🔥 CRM sync service listening on %s", port)
	http.ListenAndServe(port, r)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
