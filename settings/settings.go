package settings

import (
	"context"
	"encoding/json"
	"net/http"

	"twingrid/db"
	"twingrid/structs"
	"twingrid/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Fixed color defaults; admins can override per location.
const (
	DefaultNormalColor    = "#e3f2fd"
	DefaultTwinColor      = "#ffd700"
	DefaultPotentialColor = "#ffcc80"
	DefaultBedTypeField   = "Bed Type"
)

// Default settings if location settings don't exist. Detection stays
// disabled until an admin turns it on.
func getDefaultSettings(locationID string) structs.LocationTwinSettings {
	return structs.LocationTwinSettings{
		LocationID:     locationID,
		Enabled:        false,
		BedTypeField:   DefaultBedTypeField,
		NormalColor:    DefaultNormalColor,
		TwinColor:      DefaultTwinColor,
		PotentialColor: DefaultPotentialColor,
	}
}

// GetLocationSettings loads a location's twin settings, creating the
// defaults document on first read.
func GetLocationSettings(ctx context.Context, locationID string) (structs.LocationTwinSettings, error) {
	var s structs.LocationTwinSettings
	err := db.SettingsCollection.FindOne(ctx, bson.M{"location_id": locationID}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		s = getDefaultSettings(locationID)
		_, _ = db.SettingsCollection.InsertOne(ctx, s)
		return s, nil
	}
	if err != nil {
		return s, err
	}
	fillColorDefaults(&s)
	return s, nil
}

// GetIntegration loads the upstream configuration for a location.
// mongo.ErrNoDocuments passes through so callers can 404.
func GetIntegration(ctx context.Context, locationID string) (structs.Integration, error) {
	var integ structs.Integration
	err := db.IntegrationsCollection.FindOne(ctx, bson.M{"location_id": locationID}).Decode(&integ)
	return integ, err
}

func fillColorDefaults(s *structs.LocationTwinSettings) {
	if s.NormalColor == "" {
		s.NormalColor = DefaultNormalColor
	}
	if s.TwinColor == "" {
		s.TwinColor = DefaultTwinColor
	}
	if s.PotentialColor == "" {
		s.PotentialColor = DefaultPotentialColor
	}
	if s.BedTypeField == "" {
		s.BedTypeField = DefaultBedTypeField
	}
}

// ---------- HTTP handlers ----------

// Fetch one location's twin settings
func GetSettings(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	locationID := ps.ByName("locationid")

	s, err := GetLocationSettings(r.Context(), locationID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, s)
}

// Replace one location's twin settings
func UpdateSettings(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	locationID := ps.ByName("locationid")

	var s structs.LocationTwinSettings
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	s.LocationID = locationID
	fillColorDefaults(&s)

	opts := options.Replace().SetUpsert(true)
	if _, err := db.SettingsCollection.ReplaceOne(r.Context(), bson.M{"location_id": locationID}, s, opts); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, s)
}

// Fetch one location's integration config (task types, category sort)
func GetIntegrationConfig(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	locationID := ps.ByName("locationid")

	integ, err := GetIntegration(r.Context(), locationID)
	if err == mongo.ErrNoDocuments {
		// Valid empty config: the grid degrades to its fallbacks.
		utils.RespondWithJSON(w, http.StatusOK, structs.Integration{LocationID: locationID})
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to load integration")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, integ)
}

// Replace one location's integration config
func UpdateIntegrationConfig(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	locationID := ps.ByName("locationid")

	var integ structs.Integration
	if err := json.NewDecoder(r.Body).Decode(&integ); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	integ.LocationID = locationID

	opts := options.Replace().SetUpsert(true)
	if _, err := db.IntegrationsCollection.ReplaceOne(r.Context(), bson.M{"location_id": locationID}, integ, opts); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to save integration")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, integ)
}
