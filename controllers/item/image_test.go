package itemControllers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeImagePath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"https://cdn.example.com/desk.png", "https://cdn.example.com/desk.png"},
		{"http://cdn.example.com/desk.png", "http://cdn.example.com/desk.png"},
		{"/images/desk.png", "/images/desk.png"},
		{"images/desk.png", "/images/desk.png"},
		{"//images/desk.png", "/images/desk.png"},
		{"ftp://example.com/desk.png", "/ftp://example.com/desk.png"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, NormalizeImagePath(tc.in), "input %q", tc.in)
	}
}
