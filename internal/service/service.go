package service

import (
	"github.com/carson-networks/audit-sampler/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Ledger   *LedgerService
	Analysis *AnalysisService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Ledger:   NewLedgerService(store),
		Analysis: NewAnalysisService(store),
	}
}
