package grid

import (
	"log"
	"net/http"
	"time"

	"twingrid/newbook"
	"twingrid/rdx"
	"twingrid/settings"
	"twingrid/structs"
	"twingrid/twin"
	"twingrid/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/mongo"
)

// Upstream responses are cached briefly; refresh=1 bypasses the cache.
const upstreamCacheTTL = 60 * time.Second

// upstreamWindow is what gets cached per location/window.
type upstreamWindow struct {
	Bookings []structs.Booking `json:"bookings"`
	Tasks    []structs.Task    `json:"tasks"`
}

// GetGrid builds and returns the room/date grid for one location.
func GetGrid(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	locationID := ps.ByName("locationid")
	q := utils.ParseGridQuery(r)

	g, ls, status, msg := buildGrid(r, locationID, q)
	if status != http.StatusOK {
		utils.RespondWithError(w, status, msg)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"request_id": uuid.NewString(),
		"grid":       g.Rooms,
		"rooms":      g.Order,
		"dates":      g.Dates,
		"colors": utils.M{
			"normal":         ls.NormalColor,
			"twin":           ls.TwinColor,
			"potential_twin": ls.PotentialColor,
		},
	})
}

// spanRow is one room's renderer-ready row of merged cells.
type spanRow struct {
	SiteID   string `json:"site_id"`
	SiteName string `json:"site_name"`
	Category string `json:"category"`
	Spans    []Span `json:"spans"`
}

// GetSpans returns the grid pre-compressed into colspan rows, the
// shape the host renderer consumes directly.
func GetSpans(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	locationID := ps.ByName("locationid")
	q := utils.ParseGridQuery(r)

	g, _, status, msg := buildGrid(r, locationID, q)
	if status != http.StatusOK {
		utils.RespondWithError(w, status, msg)
		return
	}

	rows := make([]spanRow, 0, len(g.Order))
	for _, key := range g.Order {
		room := g.Rooms[key]
		rows = append(rows, spanRow{
			SiteID:   room.SiteID,
			SiteName: room.SiteName,
			Category: room.Category,
			Spans:    Spans(room, g.Dates),
		})
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"request_id": uuid.NewString(),
		"rows":       rows,
		"dates":      g.Dates,
	})
}

// buildGrid runs the full pipeline: settings, integration config,
// upstream fetch (cache-aside), classification, assembly.
func buildGrid(r *http.Request, locationID string, q utils.GridQuery) (*structs.Grid, structs.LocationTwinSettings, int, string) {
	ctx := r.Context()
	var none structs.LocationTwinSettings

	ls, err := settings.GetLocationSettings(ctx, locationID)
	if err != nil {
		return nil, none, http.StatusInternalServerError, "failed to load location settings"
	}
	if !ls.Enabled {
		return nil, none, http.StatusForbidden, "twin optimiser is not enabled for this location"
	}

	integ, err := settings.GetIntegration(ctx, locationID)
	if err == mongo.ErrNoDocuments {
		return nil, none, http.StatusNotFound, "reservation integration not configured for this location"
	}
	if err != nil {
		return nil, none, http.StatusInternalServerError, "failed to load integration config"
	}

	dates := DateRange(q.StartDate, q.Days)
	periodFrom, periodTo := dates[0], dates[len(dates)-1]

	cacheKey := "newbook:" + locationID + ":" + periodFrom + ":" + periodTo
	var up upstreamWindow
	if q.Refresh || !rdx.GetJSON(cacheKey, &up) {
		up.Bookings, err = newbook.Default.Bookings(ctx, periodFrom, periodTo)
		if err != nil {
			log.Println("upstream bookings fetch failed:", err)
			return nil, none, http.StatusBadGateway, "failed to fetch bookings from reservation system"
		}

		// Tasks are best-effort: a failed fetch degrades to a
		// bookings-only grid, mirroring how absent task config does.
		if len(integ.TaskTypes) > 0 {
			typeIDs := make([]string, 0, len(integ.TaskTypes))
			for _, tt := range integ.TaskTypes {
				typeIDs = append(typeIDs, tt.ID)
			}
			up.Tasks, err = newbook.Default.Tasks(ctx, periodFrom, periodTo, typeIDs)
			if err != nil {
				log.Println("upstream tasks fetch failed:", err)
				up.Tasks = nil
			}
		}

		rdx.SetJSON(cacheKey, up, upstreamCacheTTL)
	}

	cls := NewClassifier(integ.CategoriesSort)
	det := twin.NewDetector(ls)
	g := Assemble(up.Bookings, up.Tasks, dates, cls, det, integ.TaskTypes)

	return g, ls, http.StatusOK, ""
}
