package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing so that the same
// (company, concept) pair always maps to the same identifier.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// ConceptIDFor derives the canonical ID for a company's business concept.
func ConceptIDFor(companyCode, conceptName string) ID {
	return IDFromContent(companyCode + "|" + conceptName)
}

// ConceptCategory classifies how a business concept relates to the
// company's disclosed strategy.
type ConceptCategory int

const (
	// CategoryCore marks an established main line of business.
	CategoryCore ConceptCategory = iota + 1
	// CategoryEmerging marks a business the company is building up.
	CategoryEmerging
	// CategoryStrategic marks a forward-looking strategic bet.
	CategoryStrategic
)

// String returns the lowercase label used in extraction output and logs.
func (c ConceptCategory) String() string {
	switch c {
	case CategoryCore:
		return "core"
	case CategoryEmerging:
		return "emerging"
	case CategoryStrategic:
		return "strategic"
	default:
		return "unknown"
	}
}

// ParseConceptCategory maps an extraction label to a ConceptCategory.
// Labels are matched case-insensitively.
func ParseConceptCategory(label string) (ConceptCategory, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "core":
		return CategoryCore, nil
	case "emerging":
		return CategoryEmerging, nil
	case "strategic":
		return CategoryStrategic, nil
	}
	return 0, ErrInvalidCategory
}

// DevelopmentStage captures how far along a business concept is.
type DevelopmentStage int

const (
	StageExploring DevelopmentStage = iota + 1
	StageGrowing
	StageMature
	StageDeclining
)

// String returns the lowercase label used in extraction output and logs.
func (s DevelopmentStage) String() string {
	switch s {
	case StageExploring:
		return "exploring"
	case StageGrowing:
		return "growing"
	case StageMature:
		return "mature"
	case StageDeclining:
		return "declining"
	default:
		return "unknown"
	}
}

// ParseDevelopmentStage maps an extraction label to a DevelopmentStage.
// Labels are matched case-insensitively.
func ParseDevelopmentStage(label string) (DevelopmentStage, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "exploring":
		return StageExploring, nil
	case "growing":
		return StageGrowing, nil
	case "mature":
		return StageMature, nil
	case "declining":
		return StageDeclining, nil
	}
	return 0, ErrInvalidStage
}

// Timeline holds the point-in-time narrative of a business concept.
type Timeline struct {
	Established string // When the business line was established, free-form
	RecentEvent string // Most recent disclosed event, overwritten on merge
}

// Relations holds the cumulative relationship sets of a business concept.
// All three fields have set semantics: merging unions them without duplicates.
type Relations struct {
	Customers    []string
	Partners     []string
	Subsidiaries []string
}

// ConceptDetails is the structured detail bag of a master concept.
// Time-sensitive fields (Metrics, Timeline.RecentEvent) are overwritten by
// newer extractions; cumulative fields (Relations, SourceSentences) are
// unioned. Extras carries truly unstructured leftovers from extraction.
type ConceptDetails struct {
	Description     string
	Timeline        Timeline
	Metrics         map[string]float64
	Relations       Relations
	SourceSentences []string
	Extras          map[string]string
}

// MasterConcept is the versioned canonical record of one company's one
// business concept, fused from possibly many source documents over time.
//
// Version starts at 1 and strictly increases on every successful update.
// Writers must present the version they read; the store rejects writes
// against a stale version.
type MasterConcept struct {
	Id               ID
	CompanyCode      string
	CompanyName      string
	ConceptName      string
	Category         ConceptCategory
	ImportanceScore  float64 // in [0,1]
	Stage            DevelopmentStage
	Details          ConceptDetails
	Vector           []float32 // Embedding vector, normalized to unit length
	Version          int64
	IsActive         bool
	LastUpdatedDocId string
	InsertedAt       time.Time
	UpdatedAt        time.Time
}

// Tuple returns the canonical identity string "companyCode|conceptName".
// This is used for generating deterministic IDs.
func (c *MasterConcept) Tuple() string {
	return c.CompanyCode + "|" + c.ConceptName
}

// Company is a listed company known to the system.
type Company struct {
	Code      string // Exchange code, e.g. "600519"
	Name      string
	ShortName string
}

// ExtractedConcept is a business concept as it comes out of document
// extraction, before fusion into a master record.
type ExtractedConcept struct {
	Name            string
	Category        ConceptCategory
	ImportanceScore float64
	Stage           DevelopmentStage
	Details         ConceptDetails
}

// ConceptExtraction is the staged output of extracting one document:
// the owning company plus all concepts found in it.
type ConceptExtraction struct {
	DocId       string
	CompanyCode string
	CompanyName string
	Concepts    []ExtractedConcept
	ExtractedAt time.Time
}

// CandidateHit is a single k-NN match for one source concept.
// Immutable value, produced per query and never persisted.
type CandidateHit struct {
	ConceptId       ID
	CompanyCode     string
	CompanyName     string
	ConceptName     string
	Category        ConceptCategory
	ImportanceScore float64
	SimilarityScore float64 // in [0,1]
	SourceConceptId ID      // which of the source company's concepts produced this hit
}

// ScoredHit is a CandidateHit with its combined ranking score.
type ScoredHit struct {
	CandidateHit
	FinalScore  float64  // in [0,1]
	RerankScore *float64 // nil when the reranker produced no score for this hit
}

// AggregatedCompany groups the scored hits belonging to one company.
// Hits are ordered best first.
type AggregatedCompany struct {
	CompanyCode      string
	CompanyName      string
	CompanyNameShort string
	RelevanceScore   float64
	Hits             []ScoredHit
}

// MarketData is a company's market snapshot. Absent fields mean
// "no data", not zero; the pipeline must tolerate both being nil.
type MarketData struct {
	CompanyCode   string
	MarketCapCny  *float64
	AvgVolume5Day *float64
}

// ScoredCompany is an AggregatedCompany enriched with market sub-scores
// and the composite L score used for the final ordering.
type ScoredCompany struct {
	AggregatedCompany
	MarketCapScore       float64
	VolumeScore          float64
	RelevanceCoefficient float64
	FinalScore           float64 // L = RelevanceCoefficient * (MarketCapScore + VolumeScore)
	HasMarketData        bool
}
