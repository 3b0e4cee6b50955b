package main

import (
	"log"
	"net/http"
	"time"

	"credit-memo-service/internal/config"
	"credit-memo-service/internal/gateway"
	"credit-memo-service/internal/server"
	"credit-memo-service/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// --- Dependency Injection (Wiring the application) ---
	// In a larger app, this might be done with a DI container.
	// Here, we do it manually, which is clear and simple.

	// 1. Create the model provider client (the outermost layer)
	llmClient := gateway.NewOpenAIClient(cfg.LLM.BaseURL, cfg.LLM.APIKey)

	// 2. Wrap it in the gateway that owns prompting concerns
	llmGateway := gateway.NewLLMGateway(llmClient, cfg.LLM.Model)

	// 3. Create the usecase and inject the gateway (the core logic layer)
	creditMemoUseCase := usecase.NewCreditMemoUseCase(llmGateway, cfg.LLM.Model)

	// 4. Mount the HTTP layer on top
	srv := server.New(creditMemoUseCase)

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("credit memo service listening on %s (model %s)", cfg.Addr, cfg.LLM.Model)
	if err := httpServer.ListenAndServe(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
