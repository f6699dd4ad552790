package check

import (
	"strings"

	"github.com/carverauto/netaudit/pkg/models"
)

// DeviceInfo verifies device identity: product model, name and, when the
// design pins one, the serial. It always emits one INFO carrying the raw
// vendor inventory record so reports retain the device as seen.
func DeviceInfo(design *models.DeviceDesign, state *models.DeviceState) []models.CheckResult {
	results := make([]models.CheckResult, 0, 4)

	if design.ProductModel == state.ProductModel {
		results = append(results, passed("", "product_model", design.ProductModel, state.ProductModel))
	} else {
		results = append(results, failed("", "product_model", design.ProductModel, state.ProductModel))
	}

	if hostnameMatch(design.Name, state.Name) {
		results = append(results, passed("", "name", design.Name, state.Name))
	} else {
		results = append(results, failed("", "name", design.Name, state.Name))
	}

	switch {
	case design.Serial == "":
		results = append(results, skipped("", "serial"))
	case strings.EqualFold(design.Serial, state.Serial):
		results = append(results, passed("", "serial", design.Serial, state.Serial))
	default:
		results = append(results, failed("", "serial", design.Serial, state.Serial))
	}

	results = append(results, models.CheckResult{
		Field:   "device_info",
		Status:  models.StatusInfo,
		Actual:  state.Raw,
		Message: "vendor inventory record",
	})

	return results
}
