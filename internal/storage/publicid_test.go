package storage

import "testing"

func TestPublicIDFromURL(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "cloudinary with version",
			url:  "https://res.cloudinary.com/demo/image/upload/v1712345678/somgarh-portfolio/gallery/upload-1712-abc.jpg",
			want: "somgarh-portfolio/gallery/upload-1712-abc",
		},
		{
			name: "cloudinary png",
			url:  "https://res.cloudinary.com/demo/image/upload/v1/hero/banner.png",
			want: "hero/banner",
		},
		{
			name: "local upload",
			url:  "/uploads/gallery/0b1f2c3d-4e5f-6789-abcd-ef0123456789.jpg",
			want: "gallery/0b1f2c3d-4e5f-6789-abcd-ef0123456789.jpg",
		},
		{
			name: "unrecognized",
			url:  "https://example.com/image.jpg",
			want: "",
		},
		{
			name: "empty",
			url:  "",
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PublicIDFromURL(tc.url); got != tc.want {
				t.Errorf("PublicIDFromURL(%q) = %q, want %q", tc.url, got, tc.want)
			}
		})
	}
}
