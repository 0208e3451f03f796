package utils

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"learnhub/config"
	"learnhub/logger"
	"learnhub/models"
)

// AIApology is the fixed reply whenever the AI collaborator is missing or
// failing. The chat must degrade, never error.
const AIApology = "Sorry, I can't help with that right now. Please try again in a little while."

// ChatMessage is one turn of conversation history
type ChatMessage struct {
	Role string `json:"role"` // user | assistant
	Text string `json:"text"`
}

// ChatContext is the data payload handed to the AI service alongside the
// user's message. All of it comes from the gateway.
type ChatContext struct {
	Courses     []models.Course     `json:"courses"`
	User        models.Student      `json:"user"`
	Enrollments []models.Enrollment `json:"enrollments"`
	Leaderboard []models.Student    `json:"leaderboard"`
}

// AskAssistant sends a chat turn to the external AI service and returns its
// free-text reply, or the apology string on any failure.
func AskAssistant(ctx context.Context, message string, chatCtx ChatContext, history []ChatMessage) string {
	cfg := config.AppConfig
	if cfg.AiApiUrl == "" || cfg.AiApiKey == "" {
		logger.Infof("ai: no AI service configured, replying with apology")
		return AIApology
	}

	var result struct {
		Reply string `json:"reply"`
	}
	client := resty.New()
	resp, err := client.R().
		SetContext(ctx).
		SetAuthToken(cfg.AiApiKey).
		SetBody(map[string]interface{}{
			"message": message,
			"context": chatCtx,
			"history": history,
		}).
		SetResult(&result).
		Post(cfg.AiApiUrl)
	if err != nil {
		logger.Warnf("ai: request failed: %v", err)
		return AIApology
	}
	if resp.IsError() {
		logger.Warnf("ai: request failed: %v", fmt.Errorf("status %d", resp.StatusCode()))
		return AIApology
	}
	if result.Reply == "" {
		return AIApology
	}
	return result.Reply
}
