package services

import (
	"context"
	"sync"
	"time"

	"github.com/jsenjoyer123/OptiFi/configs"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/downstreams"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/mockdata"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/models"
)

// HealthService probes every configured partner bank concurrently and
// reports a per-bank reachability summary.
type HealthService struct {
	banks   []configs.ExternalBank
	timeout time.Duration
	useMock bool
	probe   func(ctx context.Context, bank configs.ExternalBank, timeout time.Duration) models.BankHealth
}

func NewHealthService(banks []configs.ExternalBank, timeout time.Duration, useMock bool) *HealthService {
	return &HealthService{
		banks:   banks,
		timeout: timeout,
		useMock: useMock,
		probe:   downstreams.ProbeBankHealth,
	}
}

func (s *HealthService) BanksHealth(ctx context.Context) []models.BankHealth {
	if s.useMock {
		return mockdata.GetMockBankStatus()
	}

	results := make([]models.BankHealth, len(s.banks))
	var wg sync.WaitGroup
	for i, bank := range s.banks {
		wg.Add(1)
		go func(i int, bank configs.ExternalBank) {
			defer wg.Done()
			results[i] = s.probe(ctx, bank, s.timeout)
		}(i, bank)
	}
	wg.Wait()

	if results == nil {
		results = []models.BankHealth{}
	}
	return results
}
