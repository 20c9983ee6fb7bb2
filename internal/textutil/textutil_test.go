package textutil

import "testing"

// TestNormalize verifies trimming and internal whitespace collapsing, and
// that whitespace-only input degrades to "" rather than an error.
func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   \t\n ", ""},
		{"Wall Spout", "Wall Spout"},
		{"  Wall   Spout  ", "Wall Spout"},
		{"Matt\n\tBlack", "Matt Black"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Fatalf("Normalize(%q): want %q, got %q", c.in, c.want, got)
		}
	}
}

// TestFoldKey verifies case, whitespace, and diacritic insensitivity of
// lookup keys.
func TestFoldKey(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Matt Black", "mattblack"},
		{"matt  black", "mattblack"},
		{"MATT\tBLACK", "mattblack"},
		{"Brossé", "brosse"},
		{"", ""},
	}
	for _, c := range cases {
		if got := FoldKey(c.in); got != c.want {
			t.Fatalf("FoldKey(%q): want %q, got %q", c.in, c.want, got)
		}
	}
}

// TestParsePrice exercises the separator heuristics and the degraded zero
// output for malformed input.
func TestParsePrice(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"$98.10", "98.1"},
		{"$1,234.50 inc GST", "1234.5"},
		{"AUD 1.234,50", "1234.5"},
		{"99", "99"},
		{"From $149.00", "149"},
		{"1,234", "1234"},
		{"12,5", "12.5"},
		{"1.234.567", "1234567"},
		{"price on application", "0"},
		{"", "0"},
		{"$.", "0"},
	}
	for _, c := range cases {
		if got := ParsePrice(c.in); got.String() != c.want {
			t.Fatalf("ParsePrice(%q): want %s, got %s", c.in, c.want, got)
		}
	}
}
