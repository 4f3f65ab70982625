package handler

import (
	"net/http"

	"westwood/config"
	"westwood/di"
	"westwood/shared/logger"
)

// Handler adapts the service for serverless deployments.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	service := di.InitializeService()
	service.Handler().ServeHTTP(w, r)
}
