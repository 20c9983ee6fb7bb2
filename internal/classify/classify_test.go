package classify

import (
	"reflect"
	"testing"
)

// TestClassifySpecificity verifies compound keywords win over the generic
// terms they contain, and that the matched id precedes its ancestors.
func TestClassifySpecificity(t *testing.T) {
	t.Parallel()

	c := Default()
	got := c.Classify("Mecca Basin Mixer", "", "", "", "")

	if len(got) == 0 || got[0] != "basin-mixers" {
		t.Fatalf("expected basin-mixers first, got %v", got)
	}

	mixerIdx, bathroomIdx := -1, -1
	for i, id := range got {
		switch id {
		case "basin-mixers":
			mixerIdx = i
		case "bathroom":
			bathroomIdx = i
		}
	}
	if bathroomIdx == -1 {
		t.Fatalf("expected ancestor bathroom in %v", got)
	}
	if mixerIdx > bathroomIdx {
		t.Fatalf("specific id must precede ancestor: %v", got)
	}

	// The generic basin rule must not also claim a mixer.
	for _, id := range got {
		if id == "basins" {
			t.Fatalf("generic basins must not match a basin mixer: %v", got)
		}
	}
}

// TestClassifyMultipleGroups verifies independent groups all contribute, in
// group evaluation order.
func TestClassifyMultipleGroups(t *testing.T) {
	t.Parallel()

	c := Default()
	got := c.Classify("Bathroom Pack", "wall mixer and matching floor tile", "", "", "")

	want := []string{"wall-mixers", "bathroom-tapware", "bathroom", "floor-tiles", "tiles", "flooring"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

// TestClassifyURLSlug verifies hyphenated URL slugs match compound keywords.
func TestClassifyURLSlug(t *testing.T) {
	t.Parallel()

	c := Default()
	got := c.Classify("X200", "", "", "", "https://example.com/shower-screens/frameless-shower-screen-x200/")

	if len(got) == 0 || got[0] != "frameless-shower-screens" {
		t.Fatalf("expected frameless-shower-screens first, got %v", got)
	}
}

// TestClassifyBrandFallback verifies the last-resort brand chain applies
// only when no group matched.
func TestClassifyBrandFallback(t *testing.T) {
	t.Parallel()

	c := Default()

	got := c.Classify("Widget", "", "", FallbackBrand, "")
	want := []string{"tapware", "bathroom"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("fallback: want %v, got %v", want, got)
	}

	// A group match suppresses the fallback entirely, and the brand name
	// itself must not satisfy any keyword rule: "Nero Tapware" would
	// otherwise put "tapware" ahead of the real match on every product.
	got = c.Classify("Widget toilet suite", "", "", FallbackBrand, "")
	want = []string{"toilet-suites", "toilets", "bathroom"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("group match with fallback brand: want %v, got %v", want, got)
	}

	// An unknown brand gets nothing.
	if got := c.Classify("Widget", "", "", "Acme", ""); len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
}

// TestClassifyBrandOutsideCorpus pins brand to the fallback check only: a
// brand whose name contains a family keyword classifies identically to no
// brand at all whenever any rule matches.
func TestClassifyBrandOutsideCorpus(t *testing.T) {
	t.Parallel()

	c := Default()

	withBrand := c.Classify("Composite Decking Board", "", "", "Phoenix Tapware", "")
	without := c.Classify("Composite Decking Board", "", "", "", "")
	if !reflect.DeepEqual(withBrand, without) {
		t.Fatalf("brand leaked into keyword matching: %v vs %v", withBrand, without)
	}
	if len(withBrand) == 0 || withBrand[0] != "composite-decking" {
		t.Fatalf("expected composite-decking first, got %v", withBrand)
	}
}

// TestClassifyDeterministic verifies identical input yields an identical
// sequence across repeated calls.
func TestClassifyDeterministic(t *testing.T) {
	t.Parallel()

	c := Default()
	first := c.Classify("basin mixer", "glass pool fencing", "composite decking", "Meir", "https://meir.com.au/x")
	for i := 0; i < 50; i++ {
		got := c.Classify("basin mixer", "glass pool fencing", "composite decking", "Meir", "https://meir.com.au/x")
		if !reflect.DeepEqual(first, got) {
			t.Fatalf("run %d differs: %v vs %v", i, first, got)
		}
	}
}

// TestRuleExclude covers the exclude-keyword guard directly.
func TestRuleExclude(t *testing.T) {
	t.Parallel()

	r := Rule{Keyword: "basin", Exclude: []string{"mixer"}, Category: "basins"}

	if !ruleMatches("a fine basin", r) {
		t.Fatalf("expected match without exclude keyword")
	}
	if ruleMatches("a basin mixer", r) {
		t.Fatalf("exclude keyword must suppress the match")
	}
}

// TestClassifySubstituteTables verifies the classifier runs entirely on
// injected rule data.
func TestClassifySubstituteTables(t *testing.T) {
	t.Parallel()

	c := New(
		[]Group{{Name: "g", Rules: []Rule{{Keyword: "widget", Category: "widgets"}}}},
		map[string][]string{"widgets": {"hardware"}},
		"", nil,
	)

	got := c.Classify("Super Widget", "", "", "", "")
	want := []string{"widgets", "hardware"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}
