package main

import (
	"net/http"
	"os"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"
)

var MANAGER *TransitManager

func main() {
	godotenv.Load()
	slog.SetDefault(slog.New(NewLogHandler(os.Stdout, slog.LevelInfo)))

	config := ReadConfig("./config.yaml")
	if port := os.Getenv("TRANSIT_PORT"); port != "" {
		config.Server.Port = port
	}

	MANAGER = NewTransitManager(config)

	router := mux.NewRouter()
	MapPost(router, "/v0/routes", HandleRoutesRequest)
	MapPost(router, "/v0/receipts", HandleReceiptRequest)
	MapGet(router, "/v0/receipts/summary", HandleReceiptSummaryRequest)

	handler := cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	})(router)

	slog.Info("server listening on :" + config.Server.Port)
	http.ListenAndServe(":"+config.Server.Port, handler)
}
