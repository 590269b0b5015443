package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		allowed  []string
		expected []string
	}{
		{
			name:     "separate value form",
			args:     []string{"-a", "http://x", "-z", "nope"},
			allowed:  []string{"-a"},
			expected: []string{"-a", "http://x"},
		},
		{
			name:     "equals form",
			args:     []string{"--config=conf.json", "-a=1"},
			allowed:  []string{"--config"},
			expected: []string{"--config=conf.json"},
		},
		{
			name:     "flag without value followed by another flag",
			args:     []string{"-a", "-b", "v"},
			allowed:  []string{"-a", "-b"},
			expected: []string{"-a", "-b", "v"},
		},
		{
			name:     "nothing allowed",
			args:     []string{"-a", "1"},
			allowed:  nil,
			expected: []string{},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, FilterArgs(tc.args, tc.allowed))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()

	os.Args = []string{"console", "-c", "conf.json", "-a", "http://x"}
	require.Equal(t, "conf.json", ConfigFileFlag())

	os.Args = []string{"console"}
	require.Equal(t, "", ConfigFileFlag())
}
