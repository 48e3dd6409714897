package structs

// ---------- Upstream records ----------

// CustomField is a name/value pair attached to a booking by the
// reservation system.
type CustomField struct {
	Name  string `json:"name" bson:"name"`
	Value string `json:"value" bson:"value"`
}

// Note is a free-text note attached to a booking.
type Note struct {
	Content string `json:"content" bson:"content"`
}

// Booking is one reservation as returned by the upstream API.
// Arrival and Departure are "YYYY-MM-DD HH:MM:SS" timestamps; the
// booking occupies [arrival date, departure date).
type Booking struct {
	ID           string        `json:"booking_id" bson:"booking_id"`
	Reference    string        `json:"booking_reference_id" bson:"booking_reference_id"`
	SiteID       string        `json:"site_id" bson:"site_id"`
	SiteName     string        `json:"site_name" bson:"site_name"`
	Arrival      string        `json:"booking_arrival" bson:"booking_arrival"`
	Departure    string        `json:"booking_departure" bson:"booking_departure"`
	ETA          string        `json:"booking_eta,omitempty" bson:"booking_eta,omitempty"`
	Locked       bool          `json:"booking_locked" bson:"booking_locked"`
	CustomFields []CustomField `json:"booking_custom_fields,omitempty" bson:"booking_custom_fields,omitempty"`
	Notes        []Note        `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Task is one housekeeping task as returned by the upstream API.
// Either WhenDate is set, or PeriodFrom/PeriodTo describe a half-open
// date range.
type Task struct {
	ID              string `json:"task_id" bson:"task_id"`
	TypeID          string `json:"task_type_id" bson:"task_type_id"`
	Description     string `json:"task_description,omitempty" bson:"task_description,omitempty"`
	OccupiesSite    bool   `json:"task_location_occupy" bson:"task_location_occupy"`
	LocationID      string `json:"task_location_id,omitempty" bson:"task_location_id,omitempty"`
	LocationName    string `json:"task_location_name,omitempty" bson:"task_location_name,omitempty"`
	BookingSiteID   string `json:"booking_site_id,omitempty" bson:"booking_site_id,omitempty"`
	BookingSiteName string `json:"booking_site_name,omitempty" bson:"booking_site_name,omitempty"`
	WhenDate        string `json:"task_when_date,omitempty" bson:"task_when_date,omitempty"`
	PeriodFrom      string `json:"task_period_from,omitempty" bson:"task_period_from,omitempty"`
	PeriodTo        string `json:"task_period_to,omitempty" bson:"task_period_to,omitempty"`
}

// ---------- Configuration ----------

// TaskTypeConfig styles the cells of one task type.
type TaskTypeConfig struct {
	ID    string `json:"id" bson:"id"`
	Name  string `json:"name" bson:"name"`
	Color string `json:"color" bson:"color"`
	Icon  string `json:"icon" bson:"icon"`
}

// SiteSortEntry is one site inside a sort category.
type SiteSortEntry struct {
	SiteID   string `json:"site_id" bson:"site_id"`
	Excluded bool   `json:"excluded,omitempty" bson:"excluded,omitempty"`
}

// CategorySort is one ordered category of sites. Excluded categories
// drop every member site from the grid.
type CategorySort struct {
	ID       string          `json:"id" bson:"id"`
	Name     string          `json:"name" bson:"name"`
	Excluded bool            `json:"excluded,omitempty" bson:"excluded,omitempty"`
	Sites    []SiteSortEntry `json:"sites,omitempty" bson:"sites,omitempty"`
}

// LocationTwinSettings holds the per-location detection rules. The
// list fields are comma-separated, as entered by admins.
type LocationTwinSettings struct {
	LocationID        string `json:"location_id" bson:"location_id"`
	Enabled           bool   `json:"enabled" bson:"enabled"`
	BedTypeField      string `json:"bed_type_field" bson:"bed_type_field"`
	CustomFieldNames  string `json:"custom_field_names" bson:"custom_field_names"`
	CustomFieldValues string `json:"custom_field_values" bson:"custom_field_values"`
	NotesSearchTerms  string `json:"notes_search_terms" bson:"notes_search_terms"`
	NormalColor       string `json:"normal_color" bson:"normal_color"`
	TwinColor         string `json:"twin_color" bson:"twin_color"`
	PotentialColor    string `json:"potential_twin_color" bson:"potential_twin_color"`
}

// Integration holds the per-location upstream configuration the host
// app maintains: which task types to pull and how to sort categories.
type Integration struct {
	LocationID     string           `json:"location_id" bson:"location_id"`
	TaskTypes      []TaskTypeConfig `json:"task_types,omitempty" bson:"task_types,omitempty"`
	CategoriesSort []CategorySort   `json:"categories_sort,omitempty" bson:"categories_sort,omitempty"`
}

// ---------- Grid output ----------

// Classification results for a booking.
const (
	BookingNormal        = "normal"
	BookingTwin          = "twin"
	BookingPotentialTwin = "potential_twin"
)

// Cell kinds.
const (
	CellBooking = "booking"
	CellTask    = "task"
)

// TaskCell is a task occupying a cell, or attached to a booking cell.
type TaskCell struct {
	TaskID      string `json:"task_id"`
	TypeID      string `json:"task_type_id"`
	TypeName    string `json:"task_type_name"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
}

// BookingCell is a booking occupying a cell. Tasks that coincide with
// the booking are attached rather than overwriting it.
type BookingCell struct {
	BookingID      string     `json:"booking_id"`
	Reference      string     `json:"booking_ref"`
	BedType        string     `json:"bed_type,omitempty"`
	BookingType    string     `json:"booking_type"`
	Checkin        string     `json:"checkin"`
	Checkout       string     `json:"checkout"`
	IsLocked       bool       `json:"is_locked"`
	IsEarlyCheckin bool       `json:"is_early_checkin"`
	Tasks          []TaskCell `json:"tasks,omitempty"`
}

// Cell is the tagged variant stored at one room/date. Exactly one of
// Booking or Task is set, matching Kind. Vacancy is absence from the
// room's cell map.
type Cell struct {
	Kind    string       `json:"kind"`
	Booking *BookingCell `json:"booking,omitempty"`
	Task    *TaskCell    `json:"task,omitempty"`
}

// Room is one grid row, keyed by site id.
type Room struct {
	Category string           `json:"category"`
	SiteID   string           `json:"site_id"`
	SiteName string           `json:"site_name"`
	Cells    map[string]*Cell `json:"cells"`
}

// Grid is the per-request output structure: sparse room rows plus the
// deterministic room order and the date window.
type Grid struct {
	Rooms map[string]*Room `json:"rooms"`
	Order []string         `json:"order"`
	Dates []string         `json:"dates"`
}
