package main

import (
	"context"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"juarapay/cmd/fx/db_fx"
	"juarapay/cmd/fx/gateway_fx"
	"juarapay/cmd/fx/payment_fx"
	"juarapay/internal/api/controllers"
	"juarapay/internal/config"
	"juarapay/pkg/middleware"
	"log"
	"net/http"
	"os"
)

func main() {
	// Load .env if present without overwriting already-set environment
	// variables, so container env always wins.
	if envMap, err := godotenv.Read(); err == nil {
		for k, v := range envMap {
			if os.Getenv(k) == "" {
				os.Setenv(k, v)
			}
		}
	}

	app := fx.New(
		fx.Provide(config.Load),
		db_fx.Module,
		gateway_fx.Module,
		payment_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
				log.Printf("Starting HTTP server at %s", addr)
				if err := engine.Run(addr); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(paymentController *controllers.PaymentController) *gin.Engine {

	r := gin.Default()
	r.HandleMethodNotAllowed = true
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, paymentController)

	return r
}

func RegisterRoutes(r *gin.Engine, paymentController *controllers.PaymentController) {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	paymentsGroup := r.Group("/payments")
	paymentsGroup.POST("/create-transaction", middleware.JWTAuthMiddleware(), paymentController.CreateTransaction)
	paymentsGroup.POST("/notification", paymentController.HandleNotification)
	paymentsGroup.GET("/client-config", paymentController.GetClientConfig)
}
