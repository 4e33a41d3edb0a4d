package images

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty falls back to placeholder", "", "/placeholder.svg"},
		{"absolute http URL unchanged", "http://example.com/a.jpg", "http://example.com/a.jpg"},
		{"absolute https URL unchanged", "https://example.com/a.jpg", "https://example.com/a.jpg"},
		{"cloudinary URL unchanged", "https://res.cloudinary.com/demo/image/upload/v1/coffee.jpg", "https://res.cloudinary.com/demo/image/upload/v1/coffee.jpg"},
		{"gridfs id rewritten", "507f1f77bcf86cd799439011", "/api/images/507f1f77bcf86cd799439011"},
		{"uppercase hex id rewritten", "507F1F77BCF86CD799439011", "/api/images/507F1F77BCF86CD799439011"},
		{"legacy path with id rewritten", "/images/products/507f1f77bcf86cd799439011", "/api/images/507f1f77bcf86cd799439011"},
		{"legacy path without id unchanged", "/images/products/coffee.png", "/images/products/coffee.png"},
		{"bare filename gets slash", "coffee.png", "/coffee.png"},
		{"rooted path unchanged", "/static/coffee.png", "/static/coffee.png"},
		{"23 hex chars is not an id", "507f1f77bcf86cd79943901", "/507f1f77bcf86cd79943901"},
		{"25 hex chars is not an id", "507f1f77bcf86cd7994390111", "/507f1f77bcf86cd7994390111"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.in); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolveIsTotal(t *testing.T) {
	inputs := []string{"", " ", "\n", "///", "images", "абв", "http", "/images/"}
	for _, in := range inputs {
		if got := Resolve(in); got == "" {
			t.Errorf("Resolve(%q) returned empty string", in)
		}
	}
}

func TestResolveIdempotent(t *testing.T) {
	inputs := []string{
		"https://example.com/a.jpg",
		"507f1f77bcf86cd799439011",
		"/images/products/coffee.png",
		"coffee.png",
		"",
	}
	for _, in := range inputs {
		once := Resolve(in)
		if twice := Resolve(once); twice != once {
			t.Errorf("Resolve not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestExtractGridFSID(t *testing.T) {
	if got := ExtractGridFSID("/images/products/507f1f77bcf86cd799439011"); got != "507f1f77bcf86cd799439011" {
		t.Errorf("got %q", got)
	}
	if got := ExtractGridFSID("507f1f77bcf86cd799439011"); got != "507f1f77bcf86cd799439011" {
		t.Errorf("got %q", got)
	}
	if got := ExtractGridFSID("/images/products/coffee.png"); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
	if got := ExtractGridFSID(""); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}
