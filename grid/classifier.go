package grid

import "twingrid/structs"

// UncategorizedName is the category assigned to sites absent from the
// sort configuration.
const UncategorizedName = "Uncategorized"

// unrankedOrder sorts unconfigured sites after every configured one.
const unrankedOrder = 9999

type categoryRef struct {
	id   string
	name string
}

// SiteRank is a site's position in the configured sort order.
type SiteRank struct {
	CategoryOrder int
	SiteOrder     int
}

// Classifier resolves sites against the category sort configuration:
// category membership, exclusion, and sort rank.
type Classifier struct {
	siteCategory  map[string]categoryRef
	excludedSites map[string]bool
	excludedCats  map[string]bool
	order         map[string]SiteRank
}

// NewClassifier builds the lookup tables from the configured
// categories. An empty config yields a classifier where every site is
// Uncategorized and unranked.
func NewClassifier(categories []structs.CategorySort) *Classifier {
	c := &Classifier{
		siteCategory:  make(map[string]categoryRef),
		excludedSites: make(map[string]bool),
		excludedCats:  make(map[string]bool),
		order:         make(map[string]SiteRank),
	}
	for catIdx, cat := range categories {
		if cat.Excluded && cat.ID != "" {
			c.excludedCats[cat.ID] = true
		}
		for siteIdx, site := range cat.Sites {
			if site.SiteID == "" {
				continue
			}
			c.siteCategory[site.SiteID] = categoryRef{id: cat.ID, name: cat.Name}
			c.order[site.SiteID] = SiteRank{CategoryOrder: catIdx, SiteOrder: siteIdx}
			if site.Excluded {
				c.excludedSites[site.SiteID] = true
			}
		}
	}
	return c
}

// Category returns the configured category name for a site, or
// UncategorizedName when the site is not in the configuration.
func (c *Classifier) Category(siteID string) string {
	if ref, ok := c.siteCategory[siteID]; ok && ref.name != "" {
		return ref.name
	}
	return UncategorizedName
}

// Excluded reports whether a site must be dropped from the grid. The
// category half is derived at call time from the site's resolved
// category id, not precomputed per site.
func (c *Classifier) Excluded(siteID string) bool {
	if c.excludedSites[siteID] {
		return true
	}
	if ref, ok := c.siteCategory[siteID]; ok {
		return c.excludedCats[ref.id]
	}
	return false
}

// Rank returns a site's sort position; unconfigured sites rank last.
func (c *Classifier) Rank(siteID string) SiteRank {
	if r, ok := c.order[siteID]; ok {
		return r
	}
	return SiteRank{CategoryOrder: unrankedOrder, SiteOrder: unrankedOrder}
}

// HasOrder reports whether any sort order was configured at all; when
// false, room sorting falls back to alphabetical.
func (c *Classifier) HasOrder() bool {
	return len(c.order) > 0
}
