package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriority(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		platformKey string
		want        int
	}{
		{
			name:        "linux musl is preferred",
			filename:    "ripgrep-x86_64-unknown-linux-musl.tar.gz",
			platformKey: "linux-x86_64",
			want:        3,
		},
		{
			name:        "linux gnu ranks below musl",
			filename:    "ripgrep-x86_64-unknown-linux-gnu.tar.gz",
			platformKey: "linux-x86_64",
			want:        2,
		},
		{
			name:        "linux without toolchain marker",
			filename:    "gitui-linux.tar.gz",
			platformKey: "linux-x86_64",
			want:        1,
		},
		{
			name:        "linux musleabihf ranks like musl",
			filename:    "tool-armv7-unknown-linux-musleabihf.tar.gz",
			platformKey: "linux-armv7",
			want:        3,
		},
		{
			name:        "linux gnueabihf ranks like gnu",
			filename:    "tool-armv7-unknown-linux-gnueabihf.tar.gz",
			platformKey: "linux-armv7",
			want:        2,
		},
		{
			name:        "windows msvc is preferred",
			filename:    "ripgrep-x86_64-pc-windows-msvc.zip",
			platformKey: "windows-x86_64",
			want:        3,
		},
		{
			name:        "windows gnu ranks in the middle",
			filename:    "ripgrep-x86_64-pc-windows-gnu.zip",
			platformKey: "windows-x86_64",
			want:        2,
		},
		{
			name:        "windows musl ranks last",
			filename:    "tool-x86_64-pc-windows-musl.zip",
			platformKey: "windows-x86_64",
			want:        1,
		},
		{
			name:        "windows without toolchain marker",
			filename:    "tool-windows.zip",
			platformKey: "windows-x86_64",
			want:        1,
		},
		{
			name:        "darwin has no recognized variants",
			filename:    "bat-x86_64-apple-darwin.tar.gz",
			platformKey: "darwin-x86_64",
			want:        1,
		},
		{
			name:        "freebsd has no recognized variants",
			filename:    "tool-freebsd-gnu.tar.gz",
			platformKey: "freebsd-x86_64",
			want:        1,
		},
		{
			name:        "key without architecture segment",
			filename:    "gitui-mac.tar.gz",
			platformKey: "darwin",
			want:        1,
		},
		{
			name:        "case-insensitive toolchain match",
			filename:    "Ripgrep-X86_64-PC-Windows-MSVC.zip",
			platformKey: "windows-x86_64",
			want:        3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Priority(tt.filename, tt.platformKey))
		})
	}
}

func TestPriorityHighestMatchWins(t *testing.T) {
	// A name matching several markers gets the best applicable rank.
	got := Priority("tool-linux-musl-gnu.tar.gz", "linux-x86_64")
	assert.Equal(t, 3, got)
}
