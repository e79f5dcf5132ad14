package fib

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewConfigMatchesSpecDefaults(t *testing.T) {
	c := NewConfig()
	require.EqualValues(t, HashDefOrder, c.HashOrder)
	require.Equal(t, MaxThreads, c.MaxThreads)
	require.Equal(t, 30*time.Second, c.ReclaimInterval)
}

func TestWithDefaultsFillsZeroValues(t *testing.T) {
	var c Config
	c = c.withDefaults()
	require.EqualValues(t, HashDefOrder, c.HashOrder)
	require.Equal(t, MaxThreads, c.MaxThreads)
	require.Equal(t, defaultReclaimInterval, c.ReclaimInterval)
}

func TestWithDefaultsClampsOversizedMaxThreads(t *testing.T) {
	c := Config{MaxThreads: 9999}
	c = c.withDefaults()
	require.Equal(t, MaxThreads, c.MaxThreads)
}

func TestLoadConfigYAML(t *testing.T) {
	yaml := []byte(`
hash_order: 12
max_threads: 16
reclaim_interval: 5s
entries_min_ratio: 0.1
`)
	c, err := LoadConfigYAML(yaml)
	require.NoError(t, err)
	require.EqualValues(t, 12, c.HashOrder)
	require.Equal(t, 16, c.MaxThreads)
	require.Equal(t, 5*time.Second, c.ReclaimInterval)
	require.Equal(t, 0.1, c.EntriesMinRatio)
}

func TestLoadConfigYAMLAppliesDefaultsToMissingFields(t *testing.T) {
	c, err := LoadConfigYAML([]byte(`max_threads: 4`))
	require.NoError(t, err)
	require.EqualValues(t, HashDefOrder, c.HashOrder)
	require.Equal(t, 4, c.MaxThreads)
	require.Equal(t, defaultReclaimInterval, c.ReclaimInterval)
}

func TestLoadConfigYAMLRejectsInvalidYAML(t *testing.T) {
	_, err := LoadConfigYAML([]byte("not: valid: yaml: at: all:"))
	require.Error(t, err)
}
