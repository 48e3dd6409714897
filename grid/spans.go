package grid

import "twingrid/structs"

// Span is one merged display cell: Length consecutive dates carrying
// the same entity. Cell is nil for vacant spans, which always have
// length 1.
type Span struct {
	Start  string        `json:"start"`
	Length int           `json:"length"`
	Cell   *structs.Cell `json:"cell,omitempty"`
}

// Spans walks a room's row over the ordered date list and merges
// adjacent cells into spans. A cell continues the current span only
// when both the kind (booking vs task) and the identifying id match;
// anything else closes the span and opens a new one. This is exactly
// the renderer's colspan rule.
func Spans(room *structs.Room, dates []string) []Span {
	var spans []Span
	var open *Span

	for _, date := range dates {
		cell := room.Cells[date]

		if cell == nil {
			if open != nil {
				spans = append(spans, *open)
				open = nil
			}
			spans = append(spans, Span{Start: date, Length: 1})
			continue
		}

		if open != nil && open.Cell.Kind == cell.Kind && cellID(open.Cell) == cellID(cell) {
			open.Length++
			continue
		}

		if open != nil {
			spans = append(spans, *open)
		}
		open = &Span{Start: date, Length: 1, Cell: cell}
	}

	if open != nil {
		spans = append(spans, *open)
	}
	return spans
}

func cellID(c *structs.Cell) string {
	switch c.Kind {
	case structs.CellBooking:
		return c.Booking.BookingID
	case structs.CellTask:
		return c.Task.TaskID
	}
	return ""
}
