package twin

import (
	"regexp"
	"strings"

	"twingrid/structs"
	"twingrid/utils"
)

// twoSingles matches legacy bed-type values like "2 x single",
// "2x Single" or "2 single".
var twoSingles = regexp.MustCompile(`(?i)2\s*x?\s*single`)

// Detector classifies bookings against one location's detection rules.
type Detector struct {
	fieldNames  []string
	fieldValues []string
	noteTerms   []string
	bedField    string
}

// NewDetector prepares a detector from the location settings. Empty
// settings disable the corresponding layer rather than erroring.
func NewDetector(s structs.LocationTwinSettings) *Detector {
	return &Detector{
		fieldNames:  splitList(s.CustomFieldNames),
		fieldValues: splitList(s.CustomFieldValues),
		noteTerms:   splitList(s.NotesSearchTerms),
		bedField:    s.BedTypeField,
	}
}

// Classify returns BookingTwin, BookingPotentialTwin or BookingNormal
// for one booking. Layers run in strict priority order: configured
// custom fields, then the legacy bed-type field, then notes.
func (d *Detector) Classify(b structs.Booking) string {
	if len(d.fieldNames) > 0 && len(d.fieldValues) > 0 {
		for _, name := range d.fieldNames {
			value := fieldValue(b, name)
			if value == "" {
				continue
			}
			for _, want := range d.fieldValues {
				if utils.ContainsIgnoreCase(value, want) {
					return structs.BookingTwin
				}
			}
		}
	}

	if bed := d.BedType(b); bed != "" {
		if utils.ContainsIgnoreCase(bed, "twin") || twoSingles.MatchString(bed) {
			return structs.BookingTwin
		}
	}

	if len(d.noteTerms) > 0 {
		for _, note := range b.Notes {
			if note.Content == "" {
				continue
			}
			for _, term := range d.noteTerms {
				if utils.ContainsIgnoreCase(note.Content, term) {
					return structs.BookingPotentialTwin
				}
			}
		}
	}

	return structs.BookingNormal
}

// BedType returns the value of the configured legacy bed-type field,
// used both for the legacy detection layer and as display text on the
// grid cell.
func (d *Detector) BedType(b structs.Booking) string {
	if d.bedField == "" {
		return ""
	}
	return fieldValue(b, d.bedField)
}

func fieldValue(b structs.Booking, name string) string {
	for _, f := range b.CustomFields {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

// splitList turns an admin-entered comma-separated string into trimmed
// non-empty entries, preserving order.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
