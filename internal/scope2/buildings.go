package scope2

// BuildingIntensity maps building type to an electricity benchmark in kWh
// per m² and year. Benchmarks follow CIBSE/Energy-Star style typical-office
// figures.
//
//nolint:gochecknoglobals // Constant lookup table.
var BuildingIntensity = map[string]float64{
	"office":           95,
	"retail":           165,
	"warehouse":        45,
	"light_industrial": 120,
	"data_office":      220,
}

// LookupBuildingIntensity returns the kWh/m² benchmark for a building type.
func LookupBuildingIntensity(buildingType string) (float64, bool) {
	v, ok := BuildingIntensity[buildingType]
	return v, ok
}
