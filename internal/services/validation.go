package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/oguardiao/guardiao-api/internal/models"
	"github.com/oguardiao/guardiao-api/internal/utils"
	"github.com/sirupsen/logrus"
)

const verdictKeyPrefix = "cnpj:"

// VerdictKey is the cache key of an identifier's verdict
func VerdictKey(cleaned string) string {
	return verdictKeyPrefix + cleaned
}

// ValidationService computes CNPJ verdicts and caches the complete ones
// under the cache's default TTL.
type ValidationService struct {
	cache   CacheServiceInterface
	logger  *logrus.Logger
	metrics *MetricsService
}

// NewValidationService creates a new validation service
func NewValidationService(cache CacheServiceInterface, metrics *MetricsService, logger *logrus.Logger) *ValidationService {
	return &ValidationService{
		cache:   cache,
		logger:  logger,
		metrics: metrics,
	}
}

// Validate returns the verdict for cnpj. Only identifiers with the full 14
// digits go through the cache; anything shorter is answered directly.
func (s *ValidationService) Validate(ctx context.Context, cnpj string) (*models.CNPJVerdict, bool, error) {
	cleaned := utils.CleanCNPJ(cnpj)
	logger := s.logger.WithField("cnpj", cleaned)

	if len(cleaned) != utils.CNPJLength {
		return s.verdict(cnpj), false, nil
	}

	key := VerdictKey(cleaned)
	if cached, err := s.cache.Get(ctx, key); err == nil {
		var verdict models.CNPJVerdict
		if err := json.Unmarshal([]byte(cached), &verdict); err == nil {
			s.metrics.RecordCacheHit(CacheOpVerdict, true)
			verdict.Original = cnpj
			verdict.Cached = true
			logger.Debug("CNPJ verdict found in cache")
			return &verdict, true, nil
		}
		logger.Warn("Failed to unmarshal cached CNPJ verdict")
	}
	s.metrics.RecordCacheHit(CacheOpVerdict, false)

	verdict := s.verdict(cnpj)

	if data, err := json.Marshal(verdict); err == nil {
		if err := s.cache.Set(ctx, key, string(data)); err != nil {
			logger.WithError(err).Warn("Failed to cache CNPJ verdict")
		}
	}

	logger.WithField("valid", verdict.Valid).Debug("CNPJ verdict computed")
	return verdict, false, nil
}

func (s *ValidationService) verdict(cnpj string) *models.CNPJVerdict {
	return &models.CNPJVerdict{
		CNPJInfo:  utils.AnalyzeCNPJ(cnpj),
		CheckedAt: time.Now(),
	}
}

// batchConcurrency bounds the cache round trips in flight for one batch
const batchConcurrency = 8

// ValidateBatch validates every identifier; results keep the input order
func (s *ValidationService) ValidateBatch(ctx context.Context, cnpjs []string) (*models.BatchResponse, error) {
	start := time.Now()
	results := make([]models.CNPJVerdict, len(cnpjs))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, batchConcurrency)

	for i, cnpj := range cnpjs {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}

		wg.Add(1)
		go func(index int, cnpj string) {
			defer wg.Done()

			semaphore <- struct{}{}        // Acquire
			defer func() { <-semaphore }() // Release

			verdict, _, err := s.Validate(ctx, cnpj)
			if err != nil {
				verdict = s.verdict(cnpj)
			}
			results[index] = *verdict
		}(i, cnpj)
	}

	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	response := &models.BatchResponse{
		Results: results,
		Total:   len(cnpjs),
	}
	for _, verdict := range results {
		if verdict.Valid {
			response.Valid++
		} else {
			response.Invalid++
		}
	}
	response.DurationMs = time.Since(start).Milliseconds()
	response.Timestamp = time.Now()

	s.logger.WithFields(logrus.Fields{
		"total":   response.Total,
		"valid":   response.Valid,
		"invalid": response.Invalid,
	}).Info("Batch validation completed")

	return response, nil
}

// Extract finds the valid identifiers embedded in text
func (s *ValidationService) Extract(_ context.Context, text string) []string {
	found := utils.ExtractCNPJFromText(text)
	if found == nil {
		return []string{}
	}
	return found
}

// Forget drops the cached verdict of cnpj and reports whether one existed
func (s *ValidationService) Forget(ctx context.Context, cnpj string) (bool, error) {
	key := VerdictKey(utils.CleanCNPJ(cnpj))

	exists, err := s.cache.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to look up cached verdict: %w", err)
	}
	if !exists {
		return false, nil
	}

	if err := s.cache.Delete(ctx, key); err != nil {
		return false, fmt.Errorf("failed to delete cached verdict: %w", err)
	}
	return true, nil
}
