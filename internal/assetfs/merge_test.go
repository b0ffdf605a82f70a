package assetfs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/thoreinstein/aisync/internal/model"
)

func TestMergeByName(t *testing.T) {
	older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	core := model.NewCommand("deploy", []byte("core"), "core/deploy.md", older)
	cache := model.NewCommand("deploy", []byte("cache"), "cache/deploy.md", newer)
	other := model.NewCommand("build", []byte("build"), "core/build.md", older)

	tests := []struct {
		name   string
		items  []model.Command
		policy DuplicatePolicy
		want   map[string]string
	}{
		{
			name:   "first wins keeps earliest item",
			items:  []model.Command{core, other, cache},
			policy: FirstWins,
			want:   map[string]string{"build": "build", "deploy": "core"},
		},
		{
			name:   "newest wins keeps greater mtime",
			items:  []model.Command{core, cache},
			policy: NewestWins,
			want:   map[string]string{"deploy": "cache"},
		},
		{
			name:   "newest wins keeps first on equal mtime",
			items:  []model.Command{core, model.NewCommand("deploy", []byte("tie"), "x", older)},
			policy: NewestWins,
			want:   map[string]string{"deploy": "core"},
		},
		{
			name:   "newest wins ignores older later item",
			items:  []model.Command{cache, core},
			policy: NewestWins,
			want:   map[string]string{"deploy": "cache"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeByName(tt.items, tt.policy)
			assert.Len(t, got, len(tt.want))
			for _, c := range got {
				assert.Equal(t, tt.want[c.Name], string(c.Content), c.Name)
			}
		})
	}
}

func TestMergeByName_SortedOutput(t *testing.T) {
	now := time.Now()
	got := MergeByName([]model.Command{
		model.NewCommand("zeta", nil, "", now),
		model.NewCommand("alpha", nil, "", now),
		model.NewCommand("mid/nested", nil, "", now),
	}, FirstWins)
	assert.Equal(t, []string{"alpha", "mid/nested", "zeta"}, model.Names(got))
}

func TestMergeByName_Empty(t *testing.T) {
	assert.Nil(t, MergeByName(nil, FirstWins))
}
