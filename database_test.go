package kindred

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/kindred/ai"
)

func TestNewDatabase(t *testing.T) {
	t.Run("create new database", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		db, err := NewDatabase(tmpDir)
		require.NoError(t, err)
		require.NotNil(t, db)
		defer db.Close()

		// Verify components are initialized
		assert.NotNil(t, db.ConceptRepository())
		assert.NotNil(t, db.CompanyRepository())
		assert.NotNil(t, db.MarketDataRepository())
		assert.NotNil(t, db.DocumentRepository())
		assert.NotNil(t, db.backend)
		assert.NotNil(t, db.breaker)
		assert.NotNil(t, db.logger)
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// Try to create a database at a file path instead of directory
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		db, err := NewDatabase(tmpFile)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("rerank host enables the reranker", func(t *testing.T) {
		config := ai.DefaultConfig()
		config.RerankHost = "http://localhost:9800"
		db, err := NewDatabase(filepath.Join(t.TempDir(), "db"), WithAIConfig(config))
		require.NoError(t, err)
		defer db.Close()
		assert.NotNil(t, db.reranker)
	})
}

func TestDatabase_Close(t *testing.T) {
	tmpDir := t.TempDir()
	db, err := NewDatabase(tmpDir)
	require.NoError(t, err)
	require.NotNil(t, db)

	err = db.Close()
	assert.NoError(t, err)
}

func TestDatabase_FactoryMethods(t *testing.T) {
	tmpDir := t.TempDir()
	db, err := NewDatabase(tmpDir)
	require.NoError(t, err)
	require.NotNil(t, db)
	defer db.Close()

	t.Run("can create search service", func(t *testing.T) {
		service, err := db.NewSearchService()
		require.NoError(t, err)
		require.NotNil(t, service)
	})

	t.Run("can create updater", func(t *testing.T) {
		updater, err := db.NewUpdater()
		require.NoError(t, err)
		require.NotNil(t, updater)
		updater.Release()
	})
}
