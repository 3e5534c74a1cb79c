package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "retireplan/pkg/domain-errors"
)

func TestCheckStringLength(t *testing.T) {
	t.Run("at limit passes", func(t *testing.T) {
		assert.NoError(t, CheckStringLength("full_name", strings.Repeat("a", MaxNameLength), MaxNameLength))
	})

	t.Run("over limit fails with validation code", func(t *testing.T) {
		err := CheckStringLength("full_name", strings.Repeat("a", MaxNameLength+1), MaxNameLength)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		assert.Equal(t, "full_name exceeds max length of 200", err.Error())
	})
}

func TestCheckOptionalStringLength(t *testing.T) {
	assert.NoError(t, CheckOptionalStringLength("other_goals", nil, MaxFreeTextLength))

	long := strings.Repeat("x", MaxFreeTextLength+1)
	err := CheckOptionalStringLength("other_goals", &long, MaxFreeTextLength)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}
