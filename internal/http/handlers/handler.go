package handlers

import (
	"taskmanager/internal/auth"
	"taskmanager/internal/config"
	"taskmanager/internal/repository"
)

// Handler carries the dependencies shared by the API endpoints.
type Handler struct {
	Store  repository.TaskStore
	Tokens *auth.TokenManager

	// Expected login pair. Placeholder auth: compared literally, no user
	// store behind it.
	username string
	password string
}

func NewHandler(store repository.TaskStore, tokens *auth.TokenManager, cfg *config.Config) *Handler {
	return &Handler{
		Store:    store,
		Tokens:   tokens,
		username: cfg.AuthUsername,
		password: cfg.AuthPassword,
	}
}
