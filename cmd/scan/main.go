package main

import (
	"bufio"
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Skbaji74/scan-nourish-ai/internal/config"
	"github.com/Skbaji74/scan-nourish-ai/internal/domain"
	"github.com/Skbaji74/scan-nourish-ai/internal/llm"
	"github.com/Skbaji74/scan-nourish-ai/internal/service"
)

// Cliente de terminal: analiza una imagen de etiqueta local y luego permite
// conversar sobre el resultado. Mismo flujo que la app web, sin HTTP local.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: scan <image-file>")
		os.Exit(1)
	}
	imagePath := os.Args[1]

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	imageData, err := os.ReadFile(imagePath)
	if err != nil {
		log.Fatalf("read image: %v", err)
	}
	imageURL := dataURL(imagePath, imageData)

	llmLog := zap.NewStdLog(logger)
	visionClient := llm.NewHTTPVisionClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMVisionModel, llmLog)
	chatClient := llm.NewGeminiHTTPClient(cfg.GeminiBaseURL, cfg.ChatAPIKey(), cfg.GeminiModel, llmLog)

	scanSvc := service.NewScanService(visionClient, nil, logger, cfg.LLMAPIKey)
	chatSvc := service.NewChatService(chatClient, logger, cfg.ChatAPIKey())

	ctx := context.Background()

	fmt.Println("Analyzing label...")
	result, err := scanSvc.AnalyzeFood(ctx, imageURL, domain.HealthProfile{})
	if err != nil {
		log.Fatalf("analyze: %v", err)
	}

	fmt.Printf("\nHealth Score: %d/100\n", result.Score)
	if len(result.Ingredients) > 0 {
		fmt.Printf("Ingredients: %s\n", strings.Join(result.Ingredients, ", "))
	}
	for _, h := range result.Highlights {
		fmt.Printf("- %s\n", h)
	}
	fmt.Printf("\n%s\n\n", result.Summary)

	fmt.Println("Ask about this food (empty line to quit):")
	reader := bufio.NewReader(os.Stdin)
	history := []domain.ChatMessage{}

	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}

		history = append(history, domain.ChatMessage{ID: uuid.NewString(), Role: domain.RoleUser, Content: line})

		reply, err := chatSvc.Chat(ctx, history, &result)
		if err != nil {
			log.Printf("chat: %v", err)
			continue
		}

		history = append(history, domain.ChatMessage{ID: uuid.NewString(), Role: domain.RoleAssistant, Content: reply})
		fmt.Printf("\n%s\n\n", reply)
	}
}

// dataURL arma el data URL que espera el gateway multimodal.
func dataURL(path string, data []byte) string {
	mime := "image/jpeg"
	if strings.EqualFold(filepath.Ext(path), ".png") {
		mime = "image/png"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
