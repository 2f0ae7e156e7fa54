package main

import (
	"log"

	"github.com/WelcomeWebWorks/Boiler-Plate/internal/config"
	"github.com/WelcomeWebWorks/Boiler-Plate/internal/handler"
	"github.com/WelcomeWebWorks/Boiler-Plate/internal/router"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	api := handler.NewAPI(cfg)

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(cfg, api)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
