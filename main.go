package main

import (
	"log"
	"net/http"
	"os"

	"tickoff/handlers"
	"tickoff/ui"
	"tickoff/utils"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, continuing..")
		}
	}
	log.Println("environment:", os.Getenv("APP_ENV"))

	dsn := os.Getenv("DATABASE_URL")

	// Initialize the database connection pool
	dbPool, err := utils.OpenDB(dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if err := utils.RunMigrations(dsn); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	redisClient := utils.OpenRedisPool(os.Getenv("REDIS_URL"))
	defer redisClient.Close()

	store := utils.NewPostgresTodoStore(dbPool)
	flash := utils.NewRedisFlashStore(redisClient)
	mailer := utils.SendGridMailer{}

	// Set up the HTTP server and handlers
	mux := http.NewServeMux()

	// File server for static files
	mux.Handle("/static/", http.StripPrefix("/static", http.FileServer(http.FS(ui.Static()))))

	// HTTP handlers
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		handlers.ListTodos(w, r, store, flash)
	})
	mux.HandleFunc("/create", func(w http.ResponseWriter, r *http.Request) {
		handlers.CreateTodo(w, r, store, flash)
	})
	mux.HandleFunc("/edit/", func(w http.ResponseWriter, r *http.Request) {
		handlers.EditTodo(w, r, store, flash)
	})
	mux.HandleFunc("/delete/", func(w http.ResponseWriter, r *http.Request) {
		handlers.DeleteTodo(w, r, store, flash)
	})
	mux.HandleFunc("/toggle/", func(w http.ResponseWriter, r *http.Request) {
		handlers.ToggleTodo(w, r, store, flash)
	})
	mux.HandleFunc("/remind", func(w http.ResponseWriter, r *http.Request) {
		handlers.RemindTodos(w, r, store, flash, mailer)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start the server
	log.Println("Starting server on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, mux))
}
