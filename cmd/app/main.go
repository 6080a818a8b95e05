package main

import (
	"atrium/config"
	"atrium/di"
	"atrium/shared/logger"

	_ "atrium/docs"
)

// @title Atrium API
// @version 1.0
// @description Congregation administration service: auditorium scheduling, finances, talks and field service requests.
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
