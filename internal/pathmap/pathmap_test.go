package pathmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediareap/mediareap/internal/pathmap"
)

func TestParseRules(t *testing.T) {
	t.Run("SplitsOnLastColon", func(t *testing.T) {
		rules := pathmap.ParseRules(`F:\emby:/media/emby`)
		require.Len(t, rules, 1)
		assert.Equal(t, "F:/emby", rules[0].Source)
		assert.Equal(t, "/media/emby", rules[0].Canonical)
	})

	t.Run("PreservesOrder", func(t *testing.T) {
		rules := pathmap.ParseRules("/mnt/a:/media/a\n/mnt:/media")
		require.Len(t, rules, 2)
		assert.Equal(t, "/mnt/a", rules[0].Source)
		assert.Equal(t, "/mnt", rules[1].Source)
	})

	t.Run("SkipsInvalidLines", func(t *testing.T) {
		tests := []struct {
			name string
			text string
		}{
			{name: "no colon", text: "just-a-path"},
			{name: "empty source", text: ":/media/emby"},
			{name: "blank lines", text: "\n\n   \n"},
			{name: "empty input", text: ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Empty(t, pathmap.ParseRules(tt.text))
			})
		}
	})

	t.Run("MixedValidAndInvalid", func(t *testing.T) {
		rules := pathmap.ParseRules("garbage\nD:\\tv:/media/tv\n:broken")
		require.Len(t, rules, 1)
		assert.Equal(t, "D:/tv", rules[0].Source)
	})
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		rules    string
		expected string
	}{
		{
			name:     "windows drive letter prefix",
			path:     `F:\emby\show\ep.mkv`,
			rules:    `F:\emby:/media/emby`,
			expected: "/media/emby/show/ep.mkv",
		},
		{
			name:     "no rules returns normalized path",
			path:     "/already/canonical/x.mkv",
			rules:    "",
			expected: "/already/canonical/x.mkv",
		},
		{
			name:     "case insensitive prefix match",
			path:     `f:\EMBY\Movies\Foo.mkv`,
			rules:    `F:\emby:/media/emby`,
			expected: "/media/emby/Movies/Foo.mkv",
		},
		{
			name:     "first matching rule wins",
			path:     "/mnt/media/tv/ep.mkv",
			rules:    "/mnt/media:/library\n/mnt:/other",
			expected: "/library/tv/ep.mkv",
		},
		{
			name:     "double slash collapsed after substitution",
			path:     `G:\/film.mkv`,
			rules:    `G:\:/media/`,
			expected: "/media/film.mkv",
		},
		{
			name:     "no match falls back to normalized input",
			path:     `C:\other\file.mkv`,
			rules:    `F:\emby:/media/emby`,
			expected: "C:/other/file.mkv",
		},
		{
			name:     "empty path unchanged",
			path:     "",
			rules:    `F:\emby:/media/emby`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := pathmap.ParseRules(tt.rules)
			assert.Equal(t, tt.expected, pathmap.Translate(tt.path, rules))
		})
	}

	t.Run("IdempotentOnceCanonical", func(t *testing.T) {
		rules := pathmap.ParseRules(`F:\emby:/media/emby`)
		once := pathmap.Translate(`F:\emby\show\ep.mkv`, rules)
		assert.Equal(t, once, pathmap.Translate(once, rules))
	})
}
