package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"VoiceCommerce/internal/config"
	"VoiceCommerce/internal/events"
	"VoiceCommerce/pkg/log"
	"VoiceCommerce/pkg/transcribe"

	"github.com/joho/godotenv"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Warnf("No .env file loaded: %v", err)
	}

	validator := config.NewValidator()
	source := transcribe.NewLineSource(os.Stdin)

	app, err := config.NewApp(
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithGeminiClient(),
		config.WithProfileRepository(),
		config.WithTranscriptSource(source),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	app.RegisterServices()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("Shutting down assistant...")
		cancel()
	}()

	feedback, stopFeedback := app.Bus().Subscribe()
	defer stopFeedback()
	go printFeedback(feedback)

	routes, stopRoutes := app.Navigator().Subscribe()
	defer stopRoutes()
	go printRoutes(routes)

	logger.Info("Assistant started, speak your commands (one per line)")

	if err := app.Run(ctx); err != nil && err != context.Canceled {
		logger.Fatalf("Assistant stopped: %v", err)
	}
}

func printFeedback(feedback <-chan events.Event) {
	for event := range feedback {
		status := "ok"
		if !event.Success && event.Topic == events.TopicLastAction {
			status = "failed"
		}
		fmt.Printf("[%s] %s (%s)\n", event.Topic, event.Message, status)
	}
}

func printRoutes(routes <-chan string) {
	for path := range routes {
		fmt.Printf("-> now on %s\n", path)
	}
}
