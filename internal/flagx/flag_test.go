package flagx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	args := []string{"-a", "https://api.example.com", "-x", "ignored"}
	got := FilterArgs(args, []string{"-a"})
	require.Equal(t, []string{"-a", "https://api.example.com"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	args := []string{"--config=conf.json", "-a=addr", "-b=skip"}
	got := FilterArgs(args, []string{"--config", "-a"})
	require.Equal(t, []string{"--config=conf.json", "-a=addr"}, got)
}

func TestFilterArgs_FlagFollowedByFlag(t *testing.T) {
	// the next argument is another flag, not a value
	args := []string{"-a", "-t", "5"}
	got := FilterArgs(args, []string{"-a"})
	require.Equal(t, []string{"-a"}, got)
}

func TestFilterArgs_Empty(t *testing.T) {
	got := FilterArgs(nil, []string{"-a"})
	require.Empty(t, got)
}
