// Package server provides the HTTP transport for the guardian service.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/savvyai/guardian/chat"
	"github.com/savvyai/guardian/llm"
	"github.com/savvyai/guardian/retriever"
)

// ChatService is the orchestration capability the server exposes.
type ChatService interface {
	Chat(ctx context.Context, messages []llm.ChatMessage, maxTokens int) (*chat.Response, error)
}

// ModelInfo describes the configured generation backend.
type ModelInfo struct {
	ModelType string `json:"model_type"`
	ModelName string `json:"model_name"`
}

// Server is the HTTP server for the chat API.
type Server struct {
	service   ChatService
	modelInfo ModelInfo
	addr      string
	logger    *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New creates a new Server.
func New(service ChatService, modelInfo ModelInfo, addr string, opts ...Option) *Server {
	s := &Server{
		service:   service,
		modelInfo: modelInfo,
		addr:      addr,
		logger:    slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Handler returns the HTTP handler with all routes and middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/chat", s.handleChat)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/models/info", s.handleModelInfo)

	return corsMiddleware(s.loggingMiddleware(mux))
}

// Start runs the HTTP server until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         s.addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 300 * time.Second,
	}

	s.logger.Info("server starting", "addr", s.addr,
		"model_type", s.modelInfo.ModelType, "model_name", s.modelInfo.ModelName)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// chatRequest is the wire format of POST /chat.
type chatRequest struct {
	Messages  []llm.ChatMessage `json:"messages"`
	MaxTokens int               `json:"max_tokens"`
}

// chatResponse is the wire format of a successful POST /chat.
type chatResponse struct {
	Message llm.ChatMessage    `json:"message"`
	Sources []retriever.Source `json:"sources,omitempty"`
}

// errorResponse is the wire format of an error.
type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = chat.DefaultMaxTokens
	}

	resp, err := s.service.Chat(r.Context(), req.Messages, req.MaxTokens)
	if err != nil {
		if errors.Is(err, chat.ErrInvalidConversation) {
			writeError(w, http.StatusBadRequest, "Last message must be from user")
			return
		}
		s.logger.Error("chat request failed", "error", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Error processing request: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Message: resp.Message,
		Sources: resp.Sources,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleModelInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.modelInfo)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}
