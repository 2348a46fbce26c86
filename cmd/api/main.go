package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	_ "github.com/saulo-duarte/tutor-lambda/docs"
	"github.com/saulo-duarte/tutor-lambda/internal/config"
	"github.com/saulo-duarte/tutor-lambda/internal/container"
	"github.com/saulo-duarte/tutor-lambda/internal/router"
)

// @title        AI Tutor API
// @version      1.0
// @description  Explanations and multiple-choice quizzes generated by a configurable language model.
// @BasePath     /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := config.Logger()

	c, err := container.New(ctx)
	if err != nil {
		log.WithError(err).Fatal("Failed to build application container")
	}

	handler := router.New(router.RouterConfig{
		AIQuizHandler:  c.AIQuizContainer.Handler,
		TutorHandler:   c.TutorContainer.Handler,
		ProviderName:   c.Provider.Name(),
		AllowedOrigins: c.Settings.AllowedOrigins,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		log.Info("Starting Lambda handler")
		lambda.Start(httpadapter.New(handler).ProxyWithContext)
		return
	}

	srv := &http.Server{
		Addr:              ":" + c.Settings.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Listening on %s with %s provider", srv.Addr, c.Provider.Name())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
}
