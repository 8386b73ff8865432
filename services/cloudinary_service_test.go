package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestImageKey(t *testing.T) {
	now := time.UnixMilli(1717000000123)

	assert.Equal(t, "1717000000123_tapas", ImageKey("tapas.jpg", now))
	assert.Equal(t, "1717000000123_tortilla_de_patatas", ImageKey("tortilla de patatas.png", now))
	assert.Equal(t, "1717000000123_menu", ImageKey("/tmp/upload/menu.webp", now))
	assert.Equal(t, "1717000000123_noext", ImageKey("noext", now))
}

func TestImageKeyDistinctAcrossTime(t *testing.T) {
	a := ImageKey("tapas.jpg", time.UnixMilli(1717000000123))
	b := ImageKey("tapas.jpg", time.UnixMilli(1717000000124))
	assert.NotEqual(t, a, b)
}

func TestPublicIDFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
		ok   bool
	}{
		{
			name: "versioned delivery URL",
			url:  "https://res.cloudinary.com/demo/image/upload/v1717000000/categories/1717000000123_tapas.jpg",
			want: "categories/1717000000123_tapas",
			ok:   true,
		},
		{
			name: "no version segment",
			url:  "https://res.cloudinary.com/demo/image/upload/products/1717000000123_menu.png",
			want: "products/1717000000123_menu",
			ok:   true,
		},
		{
			name: "transformation before version",
			url:  "https://res.cloudinary.com/demo/image/upload/c_fill,w_400/v1717000000/products/x.jpg",
			want: "products/x",
			ok:   true,
		},
		{
			name: "key with underscores keeps them",
			url:  "https://res.cloudinary.com/demo/image/upload/v1/categories/1717000000123_tortilla_de_patatas.jpg",
			want: "categories/1717000000123_tortilla_de_patatas",
			ok:   true,
		},
		{
			name: "not a cloudinary URL",
			url:  "https://example.com/images/tapas.jpg",
			ok:   false,
		},
		{
			name: "empty rest",
			url:  "https://res.cloudinary.com/demo/image/upload/",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PublicIDFromURL(tt.url)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
