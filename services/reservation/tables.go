package reservation

import "github.com/QuickPrimeTech/kenyan-restaurant-sub000/models"

// DefaultFloorPlan is the restaurant's table layout.
func DefaultFloorPlan() []models.Table {
	return []models.Table{
		{ID: "indoor-window-1", Name: "Window Table 1", Area: models.DiningAreaIndoor, Capacity: 2, Available: true, Description: "Street view, two seats"},
		{ID: "indoor-window-2", Name: "Window Table 2", Area: models.DiningAreaIndoor, Capacity: 2, Available: false, Description: "Street view, two seats"},
		{ID: "indoor-central-5", Name: "Central Table 5", Area: models.DiningAreaIndoor, Capacity: 4, Available: true, Description: "Centre of the dining room"},
		{ID: "indoor-central-6", Name: "Central Table 6", Area: models.DiningAreaIndoor, Capacity: 4, Available: true, Description: "Centre of the dining room"},
		{ID: "indoor-booth-3", Name: "Corner Booth 3", Area: models.DiningAreaIndoor, Capacity: 6, Available: true, Description: "Cosy corner booth"},
		{ID: "indoor-family-8", Name: "Family Table 8", Area: models.DiningAreaIndoor, Capacity: 8, Available: true, Description: "Long table near the kitchen pass"},
		{ID: "indoor-private", Name: "Private Dining Room", Area: models.DiningAreaIndoor, Capacity: 12, Available: true, Description: "Closed room for celebrations"},
		{ID: "outdoor-garden-1", Name: "Garden Table 1", Area: models.DiningAreaOutdoor, Capacity: 2, Available: true, Description: "Under the acacia"},
		{ID: "outdoor-garden-2", Name: "Garden Table 2", Area: models.DiningAreaOutdoor, Capacity: 4, Available: true, Description: "Under the acacia"},
		{ID: "outdoor-terrace", Name: "Terrace Booth", Area: models.DiningAreaOutdoor, Capacity: 6, Available: true, Description: "Covered terrace"},
		{ID: "outdoor-firepit", Name: "Fire Pit Lounge", Area: models.DiningAreaOutdoor, Capacity: 10, Available: false, Description: "Evening lounge seating"},
	}
}

// IsSelectable reports whether t can seat partySize guests in area.
func IsSelectable(t models.Table, partySize int, area models.DiningArea) bool {
	return t.Available && t.Capacity >= partySize && t.Area == area
}

// SelectableTables filters the floor plan for a party and area.
func SelectableTables(tables []models.Table, partySize int, area models.DiningArea) []models.Table {
	out := make([]models.Table, 0, len(tables))
	for _, t := range tables {
		if IsSelectable(t, partySize, area) {
			out = append(out, t)
		}
	}
	return out
}

func findTable(tables []models.Table, id string) (models.Table, bool) {
	for _, t := range tables {
		if t.ID == id {
			return t, true
		}
	}
	return models.Table{}, false
}
