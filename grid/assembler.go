package grid

import (
	"time"

	"twingrid/structs"
	"twingrid/twin"
)

// Check-ins before 15:00 are flagged early.
const earlyCheckinMinutes = 15 * 60

// Unconfigured task types fall back to these.
const (
	defaultTaskColor = "#9e9e9e"
	defaultTaskIcon  = "task"
	defaultTaskName  = "Task"
)

// Assemble merges bookings and tasks into the per-room, per-date grid
// for the given date window. Malformed or excluded records are skipped;
// the worst outcome is a sparse or empty grid, never an error.
func Assemble(bookings []structs.Booking, tasks []structs.Task, dates []string, cls *Classifier, det *twin.Detector, taskTypes []structs.TaskTypeConfig) *structs.Grid {
	g := &structs.Grid{
		Rooms: make(map[string]*structs.Room),
		Dates: dates,
	}

	window := make(map[string]bool, len(dates))
	for _, d := range dates {
		window[d] = true
	}

	for _, b := range bookings {
		if b.SiteName == "" || b.SiteID == "" || cls.Excluded(b.SiteID) {
			continue
		}

		checkin := DateOnly(b.Arrival)
		checkout := DateOnly(b.Departure)
		if checkin == "" || checkout == "" {
			continue
		}

		room := ensureRoom(g, cls, b.SiteID, b.SiteName)

		cell := structs.BookingCell{
			BookingID:      b.ID,
			Reference:      b.Reference,
			BedType:        det.BedType(b),
			BookingType:    det.Classify(b),
			Checkin:        checkin,
			Checkout:       checkout,
			IsLocked:       b.Locked,
			IsEarlyCheckin: earlyCheckin(b.Arrival, b.ETA),
		}

		// Half-open stay: the departure date itself stays vacant.
		// First booking to touch a date keeps it. Each date gets its
		// own copy so attached tasks stay per-date.
		for _, date := range dates {
			if date >= checkin && date < checkout {
				if _, taken := room.Cells[date]; !taken {
					c := cell
					room.Cells[date] = &structs.Cell{Kind: structs.CellBooking, Booking: &c}
				}
			}
		}
	}

	if len(tasks) > 0 && len(taskTypes) > 0 {
		typesByID := make(map[string]structs.TaskTypeConfig, len(taskTypes))
		for _, tt := range taskTypes {
			if tt.ID != "" {
				typesByID[tt.ID] = tt
			}
		}

		for _, t := range tasks {
			if !t.OccupiesSite {
				continue
			}

			siteID, siteName := t.LocationID, t.LocationName
			if siteID == "" {
				siteID, siteName = t.BookingSiteID, t.BookingSiteName
			}
			if siteID == "" || cls.Excluded(siteID) {
				continue
			}

			occupied := taskDates(t)
			if len(occupied) == 0 {
				continue
			}

			room := ensureRoom(g, cls, siteID, siteName)

			for _, date := range occupied {
				if !window[date] {
					continue
				}
				info := taskCell(t, date, typesByID)
				if existing, ok := room.Cells[date]; ok && existing.Kind == structs.CellBooking {
					existing.Booking.Tasks = append(existing.Booking.Tasks, info)
					continue
				}
				// Vacant cell, or a later task replacing an earlier one.
				cell := info
				room.Cells[date] = &structs.Cell{Kind: structs.CellTask, Task: &cell}
			}
		}
	}

	g.Order = SortRooms(g.Rooms, cls)
	return g
}

// ensureRoom creates the room row on first touch; the site id is the
// stable grid key, so later records for the same site consolidate.
func ensureRoom(g *structs.Grid, cls *Classifier, siteID, siteName string) *structs.Room {
	if room, ok := g.Rooms[siteID]; ok {
		return room
	}
	room := &structs.Room{
		Category: cls.Category(siteID),
		SiteID:   siteID,
		SiteName: siteName,
		Cells:    make(map[string]*structs.Cell),
	}
	g.Rooms[siteID] = room
	return room
}

// taskDates expands a task to its occupied dates: the single explicit
// date, or [period_from, period_to).
func taskDates(t structs.Task) []string {
	if d := DateOnly(t.WhenDate); d != "" {
		return []string{d}
	}
	from := DateOnly(t.PeriodFrom)
	to := DateOnly(t.PeriodTo)
	if from == "" || to == "" {
		return nil
	}
	var out []string
	cur, _ := time.Parse(DateLayout, from)
	for d := from; d < to; {
		out = append(out, d)
		cur = cur.AddDate(0, 0, 1)
		d = cur.Format(DateLayout)
	}
	return out
}

func taskCell(t structs.Task, date string, types map[string]structs.TaskTypeConfig) structs.TaskCell {
	info := structs.TaskCell{
		TaskID:      t.ID,
		TypeID:      t.TypeID,
		TypeName:    defaultTaskName,
		Description: t.Description,
		Date:        date,
		Color:       defaultTaskColor,
		Icon:        defaultTaskIcon,
	}
	if tt, ok := types[t.TypeID]; ok {
		if tt.Name != "" {
			info.TypeName = tt.Name
		}
		if tt.Color != "" {
			info.Color = tt.Color
		}
		if tt.Icon != "" {
			info.Icon = tt.Icon
		}
	}
	return info
}

// earlyCheckin reports whether the arrival clock time is before 15:00,
// consulting the ETA only when arrival did not already flag it.
func earlyCheckin(arrival, eta string) bool {
	if m, ok := clockMinutes(arrival); ok && m < earlyCheckinMinutes {
		return true
	}
	if m, ok := clockMinutes(eta); ok && m < earlyCheckinMinutes {
		return true
	}
	return false
}

// clockMinutes converts a timestamp to minutes since midnight. A bare
// date parses as midnight, matching the upstream system's behaviour.
func clockMinutes(ts string) (int, bool) {
	if ts == "" {
		return 0, false
	}
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02 15:04", DateLayout} {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.Hour()*60 + t.Minute(), true
		}
	}
	return 0, false
}
