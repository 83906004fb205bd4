package models

type AchievementLevel string

const (
	LevelA          AchievementLevel = "A"
	LevelB          AchievementLevel = "B"
	LevelC          AchievementLevel = "C"
	LevelD          AchievementLevel = "D"
	LevelE          AchievementLevel = "E"
	LevelNotReached AchievementLevel = "미도달"
)

// BandScheme selects which closed set of achievement levels a run uses.
type BandScheme string

const (
	Bands3           BandScheme = "3-level"             // A, B, C
	Bands5           BandScheme = "5-level"             // A..E
	Bands5NotReached BandScheme = "5-level+not-reached" // A..E, 미도달
)

// Levels returns the ordered level set for the scheme, best first.
func (s BandScheme) Levels() []AchievementLevel {
	switch s {
	case Bands3:
		return []AchievementLevel{LevelA, LevelB, LevelC}
	case Bands5NotReached:
		return []AchievementLevel{LevelA, LevelB, LevelC, LevelD, LevelE, LevelNotReached}
	default:
		return []AchievementLevel{LevelA, LevelB, LevelC, LevelD, LevelE}
	}
}

// CutPoints holds score thresholds between adjacent achievement levels.
// AB and BC are always required; CD/DE apply to the 5-level schemes and EI
// (E / not-reached) only to the 5-level+not-reached scheme.
type CutPoints struct {
	AB float64  `json:"ab" validate:"min=0"`
	BC float64  `json:"bc" validate:"min=0"`
	CD *float64 `json:"cd,omitempty"`
	DE *float64 `json:"de,omitempty"`
	EI *float64 `json:"ei,omitempty"`
}

// Scheme derives the band scheme implied by which cut points are set.
func (c *CutPoints) Scheme() BandScheme {
	if c.CD == nil {
		return Bands3
	}
	if c.EI == nil {
		return Bands5
	}
	return Bands5NotReached
}

// AnalysisConfig is the immutable per-run configuration threaded through the
// extractors, reconciler and statistics engine. It is never read from ambient
// state; callers build one (usually from DefaultAnalysisConfig) and pass it down.
type AnalysisConfig struct {
	// MaxItems is the configured maximum item count N; item columns are
	// inferred for numbers 1..MaxItems.
	MaxItems int `json:"max_items" validate:"required,min=1,max=50"`

	// GradeDigit prefixes every student ID derived from a class/seat code.
	GradeDigit int `json:"grade_digit" validate:"min=1,max=9"`

	// Preview window sizes for header inference.
	PreviewRows       int `json:"preview_rows" validate:"min=5,max=100"`
	RosterPreviewRows int `json:"roster_preview_rows" validate:"min=5,max=100"`

	// Column validation thresholds: a candidate column is accepted when at
	// least MinHits of up to SampleSize sampled cells satisfy the predicate.
	SampleSize        int `json:"sample_size" validate:"min=1"`
	NameMinHits       int `json:"name_min_hits" validate:"min=1"`
	ItemHeaderMinHits int `json:"item_header_min_hits" validate:"min=1"`

	// Quantile is the top/bottom group fraction for the discrimination index.
	Quantile float64 `json:"quantile" validate:"gt=0,lte=0.5"`

	// CutPoints enables score-based band classification; nil means the
	// roster-supplied achievement band is authoritative.
	CutPoints *CutPoints `json:"cut_points,omitempty" validate:"omitempty,cut_points"`

	// RoundScoresBeforeCut rounds total scores half-away-from-zero before
	// comparing against cut points. Schools differ on whether a 79.5 counts
	// as an 80, so this is an explicit switch.
	RoundScoresBeforeCut bool `json:"round_scores_before_cut"`

	// ScoreRatio converts total scores to semester scores (percent weight).
	ScoreRatio float64 `json:"score_ratio" validate:"gt=0,lte=100"`
}

// DefaultAnalysisConfig returns the settings matching a standard NEIS export:
// 16 items, grade 2, 25% discrimination groups, roster-supplied bands.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		MaxItems:          16,
		GradeDigit:        2,
		PreviewRows:       20,
		RosterPreviewRows: 30,
		SampleSize:        10,
		NameMinHits:       3,
		ItemHeaderMinHits: 4,
		Quantile:          0.25,
		ScoreRatio:        100,
	}
}

// Scheme returns the band scheme for this run: cut-point derived when cut
// points are configured, the full 5-level+not-reached set otherwise (roster
// bands may carry any of those values).
func (c AnalysisConfig) Scheme() BandScheme {
	if c.CutPoints != nil {
		return c.CutPoints.Scheme()
	}
	return Bands5NotReached
}
