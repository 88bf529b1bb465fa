package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/dreamcatcher-app/dreamcatcher-server/internal/logger"
)

// Chatter defines the interface that the assistant service must implement.
type Chatter interface {
	Chat(ctx context.Context, userID uuid.UUID, query string) (string, error)
}

// ChatRequest represents the JSON body of an assistant query
// swagger:model ChatRequest
type ChatRequest struct {
	// Natural-language request
	// required: true
	// default: What plans do I have this week?
	Query string `json:"query"`
}

// ChatResponse represents the assistant's answer
// swagger:model ChatResponse
type ChatResponse struct {
	Response string `json:"response"`
	Success  bool   `json:"success"`
	Message  string `json:"message"`
}

// NewChatHandler returns an HTTP handler for the conversational assistant.
// Assistant failures are reported inside a 200 body with success=false so
// one failed turn never breaks the conversational channel.
// @Summary Assistant chat
// @Description Runs one conversational turn. The assistant manages the caller's plans through tool calls under the caller's identity.
// @Tags llm
// @Accept json
// @Produce json
// @Param chatRequest body handlers.ChatRequest true "Query"
// @Success 200 {object} handlers.ChatResponse "Answer, or apologetic failure with success=false"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /llm/chat [post]
// @Security BearerAuth
func NewChatHandler(svc Chatter, tokener ClaimsTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(w, r, tokener)
		if claims == nil {
			return
		}

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		answer, err := svc.Chat(r.Context(), claims.UserID, req.Query)
		if err != nil {
			logger.Log.Errorw("assistant turn failed", "user_id", claims.UserID, "error", err)
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(ChatResponse{
				Response: "Sorry, something went wrong while handling your request. Please try again.",
				Success:  false,
				Message:  "assistant error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ChatResponse{
			Response: answer,
			Success:  true,
			Message:  "ok",
		})
	}
}

// HealthResponse reports assistant availability
// swagger:model HealthResponse
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// NewChatHealthHandler returns a trivial liveness probe for the assistant.
// @Summary Assistant health
// @Tags llm
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service status"
// @Router /llm/health [get]
func NewChatHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HealthResponse{
			Status:  "healthy",
			Service: "assistant",
		})
	}
}
