package fusion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/kindred/core"
)

func extracted(name string) core.ExtractedConcept {
	return core.ExtractedConcept{
		Name:            name,
		Category:        core.CategoryCore,
		ImportanceScore: 0.8,
		Stage:           core.StageGrowing,
		Details: core.ConceptDetails{
			Description: "initial description",
			Timeline:    core.Timeline{Established: "2015", RecentEvent: "plant opened"},
			Metrics:     map[string]float64{"revenue_share": 0.4},
			Relations: core.Relations{
				Customers: []string{"X"},
			},
			SourceSentences: []string{"sentence one"},
		},
	}
}

func TestCreateFromNew(t *testing.T) {
	t.Run("starts at version 1", func(t *testing.T) {
		concept, err := CreateFromNew(extracted("retail banking"), "600100", "Alpha Industrial", "doc-1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), concept.Version)
		assert.True(t, concept.IsActive)
		assert.Equal(t, "doc-1", concept.LastUpdatedDocId)
		assert.Equal(t, core.ConceptIDFor("600100", "retail banking"), concept.Id)
		assert.False(t, concept.InsertedAt.IsZero())
	})

	t.Run("empty company code", func(t *testing.T) {
		_, err := CreateFromNew(extracted("retail banking"), "", "Alpha", "doc-1")
		assert.ErrorIs(t, err, core.ErrEmptyCompanyCode)
	})

	t.Run("empty concept name", func(t *testing.T) {
		_, err := CreateFromNew(extracted(""), "600100", "Alpha", "doc-1")
		assert.ErrorIs(t, err, core.ErrEmptyConceptName)
	})
}

func TestMerge(t *testing.T) {
	newExisting := func(t *testing.T) *core.MasterConcept {
		t.Helper()
		c, err := CreateFromNew(extracted("retail banking"), "600100", "Alpha Industrial", "doc-1")
		require.NoError(t, err)
		return c
	}

	t.Run("version increments", func(t *testing.T) {
		existing := newExisting(t)
		existing.Version = 7

		merged, err := Merge(existing, extracted("retail banking"), "doc-2")
		require.NoError(t, err)
		assert.Equal(t, int64(8), merged.Version)
		assert.Equal(t, int64(7), existing.Version, "existing record must not be modified")
		assert.Equal(t, "doc-2", merged.LastUpdatedDocId)
	})

	t.Run("union law for cumulative sets", func(t *testing.T) {
		existing := newExisting(t)

		incoming := extracted("retail banking")
		incoming.Details.Relations.Customers = []string{"X", "Y"}
		incoming.Details.SourceSentences = []string{"sentence one", "sentence two"}

		merged, err := Merge(existing, incoming, "doc-2")
		require.NoError(t, err)
		// X must survive exactly once, Y must be added, order preserved.
		assert.Equal(t, []string{"X", "Y"}, merged.Details.Relations.Customers)
		assert.Equal(t, []string{"sentence one", "sentence two"}, merged.Details.SourceSentences)
	})

	t.Run("point-in-time fields overwritten", func(t *testing.T) {
		existing := newExisting(t)

		incoming := extracted("retail banking")
		incoming.ImportanceScore = 0.95
		incoming.Stage = core.StageMature
		incoming.Details.Metrics = map[string]float64{"revenue_share": 0.55}
		incoming.Details.Timeline.RecentEvent = "acquisition announced"

		merged, err := Merge(existing, incoming, "doc-2")
		require.NoError(t, err)
		assert.Equal(t, 0.95, merged.ImportanceScore)
		assert.Equal(t, core.StageMature, merged.Stage)
		assert.Equal(t, 0.55, merged.Details.Metrics["revenue_share"])
		assert.Equal(t, "acquisition announced", merged.Details.Timeline.RecentEvent)
	})

	t.Run("longer description wins", func(t *testing.T) {
		existing := newExisting(t)

		shorter := extracted("retail banking")
		shorter.Details.Description = "short"
		merged, err := Merge(existing, shorter, "doc-2")
		require.NoError(t, err)
		assert.Equal(t, "initial description", merged.Details.Description)

		longer := extracted("retail banking")
		longer.Details.Description = "a considerably longer and more detailed description"
		merged, err = Merge(existing, longer, "doc-3")
		require.NoError(t, err)
		assert.Equal(t, longer.Details.Description, merged.Details.Description)
	})

	t.Run("established kept unless empty", func(t *testing.T) {
		existing := newExisting(t)
		incoming := extracted("retail banking")
		incoming.Details.Timeline.Established = "1999"

		merged, err := Merge(existing, incoming, "doc-2")
		require.NoError(t, err)
		assert.Equal(t, "2015", merged.Details.Timeline.Established)

		existing.Details.Timeline.Established = ""
		merged, err = Merge(existing, incoming, "doc-2")
		require.NoError(t, err)
		assert.Equal(t, "1999", merged.Details.Timeline.Established)
	})

	t.Run("vector carried over", func(t *testing.T) {
		existing := newExisting(t)
		existing.Vector = []float32{1, 0, 0}

		merged, err := Merge(existing, extracted("retail banking"), "doc-2")
		require.NoError(t, err)
		assert.Equal(t, existing.Vector, merged.Vector)
	})

	t.Run("tuple mismatch", func(t *testing.T) {
		existing := newExisting(t)
		_, err := Merge(existing, extracted("cold storage"), "doc-2")
		assert.ErrorIs(t, err, ErrTupleMismatch)
	})

	t.Run("inactive existing", func(t *testing.T) {
		existing := newExisting(t)
		existing.IsActive = false
		_, err := Merge(existing, extracted("retail banking"), "doc-2")
		assert.ErrorIs(t, err, ErrInactiveExisting)
	})

	t.Run("nil existing", func(t *testing.T) {
		_, err := Merge(nil, extracted("retail banking"), "doc-2")
		assert.ErrorIs(t, err, ErrTupleMismatch)
	})
}

func TestConvertExtracted(t *testing.T) {
	t.Run("valid labels", func(t *testing.T) {
		converted, err := ConvertExtracted(aiConcept("retail banking", "core", "growing", 0.8))
		require.NoError(t, err)
		assert.Equal(t, core.CategoryCore, converted.Category)
		assert.Equal(t, core.StageGrowing, converted.Stage)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := ConvertExtracted(aiConcept("x", "pivotal", "growing", 0.8))
		assert.ErrorIs(t, err, core.ErrInvalidCategory)
	})

	t.Run("unknown stage", func(t *testing.T) {
		_, err := ConvertExtracted(aiConcept("x", "core", "booming", 0.8))
		assert.ErrorIs(t, err, core.ErrInvalidStage)
	})

	t.Run("importance out of range", func(t *testing.T) {
		_, err := ConvertExtracted(aiConcept("x", "core", "growing", 1.3))
		assert.ErrorIs(t, err, core.ErrScoreOutOfRange)
	})

	t.Run("relations deduplicated", func(t *testing.T) {
		c := aiConcept("x", "core", "growing", 0.8)
		c.Customers = []string{"A", "A", " B ", "B"}
		converted, err := ConvertExtracted(c)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, converted.Details.Relations.Customers)
	})
}

func TestNormalizeVector(t *testing.T) {
	t.Run("normalizes to unit length", func(t *testing.T) {
		v := NormalizeVector([]float32{3, 4})
		assert.InDelta(t, 0.6, v[0], 1e-6)
		assert.InDelta(t, 0.8, v[1], 1e-6)
	})

	t.Run("zero vector stays zero", func(t *testing.T) {
		v := NormalizeVector([]float32{0, 0, 0})
		assert.Equal(t, []float32{0, 0, 0}, v)
	})

	t.Run("empty vector", func(t *testing.T) {
		assert.Empty(t, NormalizeVector(nil))
	})
}
