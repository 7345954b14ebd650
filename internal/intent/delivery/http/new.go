package http

import (
	"study-copilot/internal/intent"
	"study-copilot/pkg/log"
)

type handler struct {
	l  log.Logger
	uc intent.UseCase
}

// New creates the HTTP handler for the intent domain.
func New(l log.Logger, uc intent.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
