package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveQuery_ShapeClassification(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		isCode bool
	}{
		{"a-share code", "600519", true},
		{"shenzhen code", "000001", true},
		{"chinext code", "300750", true},
		{"beijing code", "920001", true},
		{"short digits", "1234", true},
		{"short letters", "AAPL", true},
		{"six digit non a-share prefix", "123456", false},
		{"long letters", "ALPHABET", false},
		{"mixed", "Acme Robotics", false},
		{"cjk name", "贵州茅台", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := ResolveQuery(tt.query, nil)
			assert.Equal(t, tt.isCode, parsed.IsCode)
			if tt.isCode {
				assert.Equal(t, tt.query, parsed.CompanyCode)
			} else {
				assert.Equal(t, tt.query, parsed.CompanyName)
			}
		})
	}
}

func TestResolveQuery_WithResults(t *testing.T) {
	candidates := []QueryCandidate{
		{CompanyCode: "600519", CompanyName: "Kweichow Moutai", Score: 0.97},
		{CompanyCode: "600200", CompanyName: "Near Robotics", Score: 0.80},
	}

	t.Run("exact code match wins", func(t *testing.T) {
		parsed := ResolveQuery("600200", candidates)
		assert.True(t, parsed.IsCode)
		assert.Equal(t, "600200", parsed.CompanyCode)
		assert.Equal(t, "Near Robotics", parsed.CompanyName)
	})

	t.Run("code match ignores case for letter tickers", func(t *testing.T) {
		listed := []QueryCandidate{{CompanyCode: "BABA", CompanyName: "Alibaba Group", Score: 0.70}}
		parsed := ResolveQuery("baba", listed)
		assert.True(t, parsed.IsCode)
		assert.Equal(t, "BABA", parsed.CompanyCode, "canonical listed code is kept")
		assert.Equal(t, "Alibaba Group", parsed.CompanyName)
	})

	t.Run("name match", func(t *testing.T) {
		parsed := ResolveQuery("moutai", candidates)
		assert.False(t, parsed.IsCode)
		assert.Equal(t, "600519", parsed.CompanyCode)
	})

	t.Run("short query with confident top result is inferred", func(t *testing.T) {
		parsed := ResolveQuery("KM", candidates)
		assert.Equal(t, "600519", parsed.CompanyCode)
		assert.Equal(t, "Kweichow Moutai", parsed.CompanyName)
	})

	t.Run("low confidence leaves shape classification", func(t *testing.T) {
		low := []QueryCandidate{{CompanyCode: "600200", CompanyName: "Near Robotics", Score: 0.6}}
		parsed := ResolveQuery("XY", low)
		assert.True(t, parsed.IsCode)
		assert.Equal(t, "XY", parsed.CompanyCode)
		assert.Empty(t, parsed.CompanyName)
	})

	t.Run("long unmatched query stays a name", func(t *testing.T) {
		parsed := ResolveQuery("Unrelated Industries", candidates)
		assert.False(t, parsed.IsCode)
		assert.Equal(t, "Unrelated Industries", parsed.CompanyName)
		assert.Empty(t, parsed.CompanyCode)
	})

	t.Run("whitespace trimmed", func(t *testing.T) {
		parsed := ResolveQuery("  600519  ", candidates)
		assert.True(t, parsed.IsCode)
		assert.Equal(t, "600519", parsed.CompanyCode)
	})
}
