package grid

import (
	"testing"

	"twingrid/structs"
)

func sampleCategories() []structs.CategorySort {
	return []structs.CategorySort{
		{
			ID:   "cat-1",
			Name: "Ground Floor",
			Sites: []structs.SiteSortEntry{
				{SiteID: "s1"},
				{SiteID: "s2", Excluded: true},
			},
		},
		{
			ID:       "cat-2",
			Name:     "Storage",
			Excluded: true,
			Sites: []structs.SiteSortEntry{
				{SiteID: "s3"},
			},
		},
	}
}

func TestClassifierCategoryResolution(t *testing.T) {
	cls := NewClassifier(sampleCategories())

	if got := cls.Category("s1"); got != "Ground Floor" {
		t.Errorf("s1: expected Ground Floor, got %s", got)
	}
	if got := cls.Category("unknown"); got != UncategorizedName {
		t.Errorf("unknown site: expected %s, got %s", UncategorizedName, got)
	}
}

func TestClassifierExclusion(t *testing.T) {
	cls := NewClassifier(sampleCategories())

	if cls.Excluded("s1") {
		t.Error("s1 should not be excluded")
	}
	if !cls.Excluded("s2") {
		t.Error("s2 has a site-level exclusion flag")
	}
	// s3 is excluded only through its category; this must be derived,
	// not stored per site.
	if !cls.Excluded("s3") {
		t.Error("s3 belongs to an excluded category")
	}
	if cls.Excluded("unknown") {
		t.Error("unconfigured sites are never excluded")
	}
}

func TestClassifierRanks(t *testing.T) {
	cls := NewClassifier(sampleCategories())

	if r := cls.Rank("s2"); r.CategoryOrder != 0 || r.SiteOrder != 1 {
		t.Errorf("s2: expected rank (0,1), got (%d,%d)", r.CategoryOrder, r.SiteOrder)
	}
	if r := cls.Rank("unknown"); r.CategoryOrder != unrankedOrder || r.SiteOrder != unrankedOrder {
		t.Errorf("unknown: expected rank (%d,%d), got (%d,%d)", unrankedOrder, unrankedOrder, r.CategoryOrder, r.SiteOrder)
	}
}

func TestClassifierEmptyConfig(t *testing.T) {
	cls := NewClassifier(nil)

	if cls.HasOrder() {
		t.Error("empty config must report no order")
	}
	if cls.Excluded("anything") {
		t.Error("empty config excludes nothing")
	}
	if got := cls.Category("anything"); got != UncategorizedName {
		t.Errorf("expected %s, got %s", UncategorizedName, got)
	}
}
