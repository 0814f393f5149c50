package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gridlined/Itemizer/internal/utils"
)

func TestCleanDirname(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercases", input: "Trader Joes", want: "trader_joes"},
		{name: "keeps digits underscores and hyphens", input: "store-42_a", want: "store-42_a"},
		{name: "replaces punctuation", input: "Bob's Burgers & Fries!", want: "bob_s_burgers___fries_"},
		{name: "idempotent", input: "already_clean-1", want: "already_clean-1"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.CleanDirname(tt.input))
		})
	}
}

func TestBuildImagePath(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		segments []string
		want     string
	}{
		{
			name:     "no segments returns filename unchanged",
			filename: "/path/to/image.gif",
			want:     "/path/to/image.gif",
		},
		{
			name:     "single segment gains the extension",
			filename: "/path/to/image.gif",
			segments: []string{"new"},
			want:     "new.gif",
		},
		{
			name:     "segments join as a path",
			filename: "/path/to/image.gif",
			segments: []string{"new", "path", "parts"},
			want:     "new/path/parts.gif",
		},
		{
			name:     "last segment with an extension stacks both",
			filename: "/path/to/image.gif",
			segments: []string{"new", "parts.jpg"},
			want:     "new/parts.jpg.gif",
		},
		{
			name:     "filename without extension",
			filename: "upload",
			segments: []string{"a", "b"},
			want:     "a/b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.BuildImagePath(tt.filename, tt.segments...))
		})
	}
}

func TestReceiptImagePath(t *testing.T) {
	date := time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC)
	got := utils.ReceiptImagePath("abc-123", "Trader Joes", date, "scan.jpeg")
	assert.Equal(t, "receipt/2024/05/03/abc-123_trader_joes.jpeg", got)
}

func TestProductImagePath(t *testing.T) {
	on := time.Date(2024, time.May, 3, 14, 30, 0, 0, time.UTC)
	got := utils.ProductImagePath("prod-9", "Olive Oil", "photo.png", on)
	assert.Equal(t, "product/prod-9/2024-05-03_olive_oil.png", got)
}
