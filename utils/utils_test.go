package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTernary(t *testing.T) {
	assert.Equal(t, "a", Ternary(true, "a", "b").(string))
	assert.Equal(t, "b", Ternary(false, "a", "b").(string))
}

func TestArrayContains(t *testing.T) {
	idx, found := ArrayContains([]string{"instruments", "quotes"}, func(elem string) bool {
		return elem == "quotes"
	})
	assert.True(t, found)
	assert.Equal(t, 1, idx)

	_, found = ArrayContains([]string{"instruments"}, func(elem string) bool {
		return elem == "quotes"
	})
	assert.False(t, found)
}

func TestWriteAndUnmarshalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	type payload struct {
		Token string `json:"token"`
		Limit int    `json:"limit"`
	}
	require.NoError(t, WriteFile(path, payload{Token: "abc", Limit: 100}))

	var got payload
	require.NoError(t, UnmarshalFile(path, &got))
	assert.Equal(t, payload{Token: "abc", Limit: 100}, got)

	// no temp file left behind
	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	assert.Error(t, UnmarshalFile(filepath.Join(t.TempDir(), "missing.json"), &got))
}

func TestValidate(t *testing.T) {
	type config struct {
		AccessToken string `json:"access_token" validate:"required"`
	}

	assert.NoError(t, Validate(config{AccessToken: "tok"}))

	err := Validate(config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access_token")
}
