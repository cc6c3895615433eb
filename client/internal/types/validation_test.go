package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanTargets(t *testing.T) {
	t.Parallel()

	t.Run("empty list rejected", func(t *testing.T) {
		_, err := CleanTargets(nil)
		require.Error(t, err)
		assert.IsType(t, &ValidationError{}, err)
	})

	t.Run("target without identifiers rejected", func(t *testing.T) {
		_, err := CleanTargets([]EnrichmentTarget{{Email: "a@b.com"}, {}})
		require.Error(t, err)
		assert.IsType(t, &ValidationError{}, err)
	})

	t.Run("whitespace-only counts as blank", func(t *testing.T) {
		_, err := CleanTargets([]EnrichmentTarget{{Email: "  \t"}})
		require.Error(t, err)
	})

	t.Run("blank fields stripped, order preserved", func(t *testing.T) {
		details, err := CleanTargets([]EnrichmentTarget{
			{Email: "a@b.com", LinkedInURL: "  "},
			{LinkedInURL: "https://linkedin.com/in/b"},
		})
		require.NoError(t, err)
		require.Len(t, details, 2)
		assert.Equal(t, map[string]string{"email": "a@b.com"}, details[0])
		assert.Equal(t, map[string]string{"linkedin_url": "https://linkedin.com/in/b"}, details[1])
	})
}
