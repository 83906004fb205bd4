package services

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/SAP-F-2025/item-analysis-service/internal/cache"
	"github.com/SAP-F-2025/item-analysis-service/internal/events"
	"github.com/SAP-F-2025/item-analysis-service/internal/extract"
	"github.com/SAP-F-2025/item-analysis-service/internal/merge"
	"github.com/SAP-F-2025/item-analysis-service/internal/models"
	"github.com/SAP-F-2025/item-analysis-service/internal/sheet"
	"github.com/SAP-F-2025/item-analysis-service/internal/stats"
	"github.com/SAP-F-2025/item-analysis-service/internal/utils"
)

// AnalysisService runs the full pipeline for one request: layout inference,
// extraction, reconciliation, band classification and item statistics.
type AnalysisService interface {
	Analyze(ctx context.Context, req *AnalysisRequest) (*AnalysisResult, error)
	ExportResults(ctx context.Context, result *AnalysisResult) ([]byte, error)
}

type analysisService struct {
	cache     cache.CacheService
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *utils.Validator
}

func NewAnalysisService(cache cache.CacheService, publisher events.EventPublisher, logger *slog.Logger, validator *utils.Validator) AnalysisService {
	return &analysisService{
		cache:     cache,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

// ===== REQUEST / RESULT =====

// NamedFile is one uploaded spreadsheet held in memory.
type NamedFile struct {
	Name    string
	Content []byte
}

type AnalysisRequest struct {
	ItemInfo     *NamedFile // item-metadata sheet; optional for roster-only runs
	AnswerSheets []NamedFile
	GradeRosters []NamedFile
	Config       models.AnalysisConfig `validate:"required"`
}

type AnalysisResult struct {
	AnalysisID    string                        `json:"analysis_id"`
	Mode          merge.Mode                    `json:"mode"`
	Items         []models.ItemDefinition       `json:"items"`
	Students      []models.StudentRecord        `json:"students"`
	ItemStats     []models.ItemStatistic        `json:"item_stats"`
	Distributions []models.ResponseDistribution `json:"distributions"`
	Summary       []models.AchievementSummary   `json:"summary"`
	Reliability   float64                       `json:"reliability"` // KR-20
	Excluded      []string                      `json:"excluded"`
	Diagnostics   []models.Diagnostic           `json:"diagnostics"`
	GeneratedAt   time.Time                     `json:"generated_at"`
}

// cacheTTL bounds how long a completed analysis is reusable; the reconciled
// dataset is disposable state, not a record.
const cacheTTL = time.Hour

// ===== ANALYZE =====

func (s *analysisService) Analyze(ctx context.Context, req *AnalysisRequest) (*AnalysisResult, error) {
	if req.ItemInfo == nil && len(req.AnswerSheets) == 0 && len(req.GradeRosters) == 0 {
		return nil, ErrNoInputFiles
	}
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	key := cacheKey(req)
	var cached AnalysisResult
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		s.logger.Info("Analysis served from cache", "analysis_id", cached.AnalysisID)
		return &cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("Cache lookup failed, recomputing", "error", err)
	}

	result := &AnalysisResult{
		AnalysisID:  uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
	}

	// 1. Item-metadata sheet (the one fixed-layout input).
	if req.ItemInfo != nil {
		info, err := sheet.Read(bytes.NewReader(req.ItemInfo.Content))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrItemInfoInvalid,
				NewFileError(req.ItemInfo.Name, "read", err.Error()))
		}
		result.Items = extract.ItemInfo(info)
		if len(result.Items) == 0 {
			result.Diagnostics = append(result.Diagnostics, models.NewDiagnostic(
				models.SeverityWarning, req.ItemInfo.Name,
				"no valid item rows found in item-metadata sheet"))
		}
		for _, item := range result.Items {
			if err := s.validator.ValidateStruct(item); err != nil {
				result.Diagnostics = append(result.Diagnostics, models.NewDiagnostic(
					models.SeverityWarning, req.ItemInfo.Name,
					"item %d failed validation: %v", item.Number, err))
			}
		}
	}

	// 2. Answer sheets, processed independently; a malformed file contributes
	// zero rows, never aborts the batch.
	var answers []models.RawStudentResponse
	for _, f := range req.AnswerSheets {
		ws, err := sheet.Read(bytes.NewReader(f.Content))
		if err != nil {
			s.logger.Warn("Answer sheet unreadable", "file", f.Name, "error", err)
			result.Diagnostics = append(result.Diagnostics, models.NewDiagnostic(
				models.SeverityWarning, f.Name, "file could not be read: %v", err))
			continue
		}
		extracted := extract.AnswerSheet(ws, f.Name, req.Config)
		answers = append(answers, extracted.Rows...)
		result.Diagnostics = append(result.Diagnostics, extracted.Diagnostics...)
		s.logger.Info("Answer sheet extracted",
			"file", f.Name,
			"rows", len(extracted.Rows),
			"strategy", extracted.Strategy)
	}

	// 3. Grade rosters. A roster whose headers cannot be located is skipped;
	// when every roster fails the run degrades to answers-only mode.
	var grades []models.GradeRecord
	rosterFailures := 0
	for _, f := range req.GradeRosters {
		ws, err := sheet.Read(bytes.NewReader(f.Content))
		if err != nil {
			rosterFailures++
			result.Diagnostics = append(result.Diagnostics, models.NewDiagnostic(
				models.SeverityError, f.Name, "file could not be read: %v", err))
			continue
		}
		extracted, ok := extract.GradeRoster(ws, f.Name, req.Config)
		result.Diagnostics = append(result.Diagnostics, extracted.Diagnostics...)
		if !ok {
			rosterFailures++
			continue
		}
		for _, g := range extracted.Rows {
			if err := s.validator.ValidateStruct(g); err != nil {
				result.Diagnostics = append(result.Diagnostics, models.NewDiagnostic(
					models.SeverityWarning, f.Name,
					"roster row for %q failed validation: %v", g.Name, err))
			}
		}
		grades = append(grades, extracted.Rows...)
	}
	if len(req.GradeRosters) > 0 && rosterFailures == len(req.GradeRosters) {
		result.Diagnostics = append(result.Diagnostics, models.NewDiagnostic(
			models.SeverityWarning, "",
			"no roster could be loaded; continuing in answers-only mode"))
	}

	if len(answers) == 0 && len(grades) == 0 {
		return nil, ErrNoUsableData
	}

	// 4. Reconcile and classify.
	merged := merge.Reconcile(answers, grades, req.Config)
	result.Mode = merged.Mode
	result.Excluded = merged.Excluded
	result.Diagnostics = append(result.Diagnostics, merged.Diagnostics...)
	result.Students = stats.ClassifyByCutPoints(merged.Students, req.Config)

	// 5. Item statistics (skipped for roster-only runs, which carry no
	// response data).
	if len(result.Items) > 0 && len(result.Students) > 0 && merged.Mode != merge.ModeRosterOnly {
		result.ItemStats = stats.ItemStatistics(result.Students, result.Items, req.Config)
		result.Reliability = stats.KR20(result.Students, len(result.Items))
		for _, item := range result.Items {
			result.Distributions = append(result.Distributions,
				stats.ResponseDistribution(result.Students, item))
		}
	}
	result.Summary = stats.AchievementSummaries(result.Students, req.Config)

	if err := s.cache.Set(ctx, key, result, cacheTTL); err != nil {
		s.logger.Warn("Failed to cache analysis result", "error", err)
	}

	s.publishCompleted(ctx, result)

	s.logger.Info("Analysis completed",
		"analysis_id", result.AnalysisID,
		"mode", result.Mode,
		"students", len(result.Students),
		"items", len(result.Items),
		"excluded", len(result.Excluded))

	return result, nil
}

func (s *analysisService) publishCompleted(ctx context.Context, result *AnalysisResult) {
	event := events.CompletedEventFor(
		result.AnalysisID,
		string(result.Mode),
		len(result.Items),
		len(result.Students),
		result.Excluded,
		result.Reliability,
		result.Diagnostics,
	)
	if err := s.publisher.PublishAnalysisEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish analysis event",
			"analysis_id", result.AnalysisID,
			"error", err)
	}
}

// cacheKey identifies an input file set plus configuration. File digests are
// sorted so the key is stable under upload reordering.
func cacheKey(req *AnalysisRequest) string {
	var digests []string
	add := func(f NamedFile, role string) {
		sum := sha256.Sum256(f.Content)
		digests = append(digests, role+":"+hex.EncodeToString(sum[:]))
	}
	if req.ItemInfo != nil {
		add(*req.ItemInfo, "info")
	}
	for _, f := range req.AnswerSheets {
		add(f, "answers")
	}
	for _, f := range req.GradeRosters {
		add(f, "roster")
	}
	sort.Strings(digests)

	cfgJSON, _ := json.Marshal(req.Config)
	h := sha256.New()
	for _, d := range digests {
		h.Write([]byte(d))
	}
	h.Write(cfgJSON)
	return "analysis:" + hex.EncodeToString(h.Sum(nil))
}
