package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		date    string
		want    string
	}{
		{
			name:    "dev build without commit",
			version: "dev",
			want:    "cosmos-dungeon dev",
		},
		{
			name:    "tagged release",
			version: "v0.3.0",
			commit:  "abc1234",
			date:    "2026-08-31T00:00:00Z",
			want:    "cosmos-dungeon v0.3.0 (abc1234, 2026-08-31T00:00:00Z)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			oldV, oldC, oldD := Version, Commit, BuildDate
			defer func() { Version, Commit, BuildDate = oldV, oldC, oldD }()

			Version, Commit, BuildDate = tt.version, tt.commit, tt.date

			if got := String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGet(t *testing.T) {
	info := Get()
	if info.Version == "" {
		t.Error("expected a non-empty version")
	}
	if !strings.HasPrefix(String(), "cosmos-dungeon ") {
		t.Errorf("expected the banner to name the project, got %q", String())
	}
}
