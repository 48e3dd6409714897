package twin

import (
	"testing"

	"twingrid/structs"
)

func settingsWith(fields, values, terms string) structs.LocationTwinSettings {
	return structs.LocationTwinSettings{
		Enabled:           true,
		BedTypeField:      "Bed Type",
		CustomFieldNames:  fields,
		CustomFieldValues: values,
		NotesSearchTerms:  terms,
	}
}

func TestCustomFieldMatchIsCaseInsensitiveSubstring(t *testing.T) {
	det := NewDetector(settingsWith("Room Configuration", "twin", ""))
	b := structs.Booking{
		CustomFields: []structs.CustomField{
			{Name: "Room Configuration", Value: "This is a TWIN room"},
		},
	}
	if got := det.Classify(b); got != structs.BookingTwin {
		t.Fatalf("expected twin, got %s", got)
	}
}

func TestLegacyFieldTwin(t *testing.T) {
	det := NewDetector(settingsWith("", "", ""))
	b := structs.Booking{
		CustomFields: []structs.CustomField{
			{Name: "Bed Type", Value: "Twin Room"},
		},
	}
	if got := det.Classify(b); got != structs.BookingTwin {
		t.Fatalf("expected twin, got %s", got)
	}
}

func TestLegacyFieldTwoSinglesPattern(t *testing.T) {
	det := NewDetector(settingsWith("", "", ""))
	for _, value := range []string{"2 x single", "2x Single", "2 Single beds", "2single"} {
		b := structs.Booking{
			CustomFields: []structs.CustomField{{Name: "Bed Type", Value: value}},
		}
		if got := det.Classify(b); got != structs.BookingTwin {
			t.Errorf("bed type %q: expected twin, got %s", value, got)
		}
	}
}

func TestConfirmedLayerBeatsNotes(t *testing.T) {
	// Legacy field says twin AND a configured note term matches; the
	// confirmed layer must win.
	det := NewDetector(settingsWith("", "", "separate beds"))
	b := structs.Booking{
		CustomFields: []structs.CustomField{{Name: "Bed Type", Value: "Twin Room"}},
		Notes:        []structs.Note{{Content: "guest wants separate beds"}},
	}
	if got := det.Classify(b); got != structs.BookingTwin {
		t.Fatalf("expected twin (confirmed beats potential), got %s", got)
	}
}

func TestNotesOnlyIsPotential(t *testing.T) {
	det := NewDetector(settingsWith("", "", "separate beds, zip and link"))
	b := structs.Booking{
		Notes: []structs.Note{
			{Content: "no special requests"},
			{Content: "please prepare SEPARATE BEDS"},
		},
	}
	if got := det.Classify(b); got != structs.BookingPotentialTwin {
		t.Fatalf("expected potential_twin, got %s", got)
	}
}

func TestNothingConfiguredNothingMatches(t *testing.T) {
	det := NewDetector(settingsWith("", "", ""))
	b := structs.Booking{
		CustomFields: []structs.CustomField{{Name: "Bed Type", Value: "King"}},
		Notes:        []structs.Note{{Content: "late arrival"}},
	}
	if got := det.Classify(b); got != structs.BookingNormal {
		t.Fatalf("expected normal, got %s", got)
	}
}

func TestConfiguredFieldMissFallsThroughToLegacy(t *testing.T) {
	// Fields configured but not matching must not block the legacy
	// layer.
	det := NewDetector(settingsWith("Preferences", "twin", ""))
	b := structs.Booking{
		CustomFields: []structs.CustomField{
			{Name: "Preferences", Value: "sea view"},
			{Name: "Bed Type", Value: "2 x Single"},
		},
	}
	if got := det.Classify(b); got != structs.BookingTwin {
		t.Fatalf("expected twin via legacy fallthrough, got %s", got)
	}
}

func TestFieldNamesAreTrimmed(t *testing.T) {
	det := NewDetector(settingsWith(" Bedding , Room Setup ", " twin ", ""))
	b := structs.Booking{
		CustomFields: []structs.CustomField{{Name: "Room Setup", Value: "Twin configuration"}},
	}
	if got := det.Classify(b); got != structs.BookingTwin {
		t.Fatalf("expected twin with trimmed config entries, got %s", got)
	}
}

func TestBedTypeForDisplay(t *testing.T) {
	det := NewDetector(settingsWith("", "", ""))
	b := structs.Booking{
		CustomFields: []structs.CustomField{{Name: "Bed Type", Value: "King"}},
	}
	if got := det.BedType(b); got != "King" {
		t.Fatalf("expected King, got %q", got)
	}
}
