package minimarket

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Drinks", "drinks"},
		{"Personal Care", "personal-care"},
		{"  Cleaning  Supplies ", "cleaning-supplies"},
		{"Café & Snacks", "caf-snacks"},
		{"123 Things", "123-things"},
		{"---", ""},
		{"", ""},
	}
	for _, tc := range tests {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
