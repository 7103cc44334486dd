package locations

import "github.com/ridgelinesupply/pickup-scheduler/internal/models"

// Seeded pickup locations. There is no admin surface for these yet, so
// they live here the same way the rest of the reference data does.
var all = []models.Location{
	{
		ID:           "loc-1",
		Name:         "Main Warehouse",
		Address:      "1234 Industrial Blvd, Denver, CO 80216",
		Instructions: "Enter through Gate B. Bring photo ID and your pickup number. Our team will assist you with loading.",
	},
	{
		ID:           "loc-2",
		Name:         "Downtown Showroom",
		Address:      "567 Market St, Denver, CO 80202",
		Instructions: "Street parking available. Check in at the front desk upon arrival.",
	},
}

func All() []models.Location {
	out := make([]models.Location, len(all))
	copy(out, all)
	return out
}

func ByID(id string) (models.Location, bool) {
	for _, loc := range all {
		if loc.ID == id {
			return loc, true
		}
	}
	return models.Location{}, false
}

func Exists(id string) bool {
	_, ok := ByID(id)
	return ok
}
