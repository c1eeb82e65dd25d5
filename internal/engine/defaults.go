package engine

// DefaultSnapshot returns the built-in example snapshot for a small HVAC
// field-service organization. Callers typically overlay it with values from
// a config file; with no overlay it produces a complete report with S1, S2
// and S3 entries.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Parameters: ParameterSet{
			Year:                     "2025",
			Entity:                   "ACME Service GmbH",
			TotalJobsPerYear:         1380,
			FuelEconomyLPer100km:     10,
			OfficeM2:                 420,
			ElecIntensityKWhM2:       55,
			HeatIntensityKWhM2:       80,
			RefrigerantChargeKg:      120,
			LeakRateFrac:             0.04,
			EmployeesFTE:             18,
			CommuteKmPerDayRoundtrip: 24,
			WorkdaysPerYear:          218,
		},
		JobTypes: []JobType{
			{
				JobType:      "install",
				Share:        0.7,
				LegsPerJob:   2,
				AvgOneWayKm:  18,
				DetourFactor: 1.3,
				RevisitRate:  0.1,
				Notes:        "new installations incl. delivery leg",
			},
			{
				JobType:      "service",
				Share:        0.3,
				LegsPerJob:   1,
				AvgOneWayKm:  25,
				DetourFactor: 1.25,
				RevisitRate:  0.05,
				Notes:        "maintenance and repair visits",
			},
		},
		Materials: []MaterialRequirement{
			{JobType: "install", Item: "pvc_pipe", Unit: "m", QtyPerJob: 12},
			{JobType: "install", Item: "mounting_steel", Unit: "kg", QtyPerJob: 3.5},
			{JobType: "service", Item: "filter_set", Unit: "pc", QtyPerJob: 1},
		},
		Factors: DefaultFactors(),
	}
}

// DefaultFactors returns the built-in emission-factor table. Values are
// generic European factors in kg CO2e per unit; the table is meant to be
// replaced or extended via config, with duplicate keys resolving
// last-write-wins.
func DefaultFactors() []EmissionFactor {
	return []EmissionFactor{
		{
			Category: CategoryFuel, Item: ItemDiesel, Unit: UnitLitre,
			Value: 2.68, Scope: Scope1,
			Notes: "diesel combustion, DEFRA-style factor",
		},
		{
			Category: CategoryEnergy, Item: ItemElectricity, Unit: UnitKWh,
			Value: 0.35, Scope: Scope2,
			Notes: "location-based grid average",
		},
		{
			Category: CategoryEnergy, Item: ItemDistrictHeat, Unit: UnitKWh,
			Value: 0.20, Scope: Scope2,
			Notes: "district heat, mixed generation",
		},
		{
			Category: CategoryRefrigerant, Item: ItemRefrigerant, Unit: UnitKg,
			Value: 2088, Scope: Scope1,
			Notes: "R410A GWP100 (AR4)",
		},
		{
			Category: CategoryTravel, Item: ItemCommuteCar, Unit: UnitKm,
			Value: 0.17, Scope: Scope3,
			Notes: "average passenger car per vehicle-km",
		},
		{
			Category: CategoryMaterial, Item: "pvc_pipe", Unit: "m",
			Value: 2.9, Scope: Scope3,
			Notes: "PVC pipe incl. upstream production",
		},
		{
			Category: CategoryMaterial, Item: "mounting_steel", Unit: "kg",
			Value: 1.9, Scope: Scope3,
			Notes: "structural steel, global average",
		},
		{
			Category: CategoryMaterial, Item: "filter_set", Unit: "pc",
			Value: 4.2, Scope: Scope3,
			Notes: "filter set, estimated cradle-to-gate",
		},
	}
}
