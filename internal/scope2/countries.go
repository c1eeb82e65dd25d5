package scope2

// DefaultKWhPerEmployee is the employee-intensity fallback for countries
// without their own figure. Roughly an office-sector average.
const DefaultKWhPerEmployee = 3500.0

// WorldAverageGridFactor is used when the country is not in the table.
// Ember global average, kg CO2e per kWh.
const WorldAverageGridFactor = 0.48

// WorldAverageGridSource labels the fallback factor's provenance.
const WorldAverageGridSource = "World average"

// RegionSet holds sub-national grid factors. A nil *RegionSet on Country
// means the country has no sub-national granularity at all; the distinction
// matters to the confidence scorer.
type RegionSet struct {
	// Factors maps region name to kg CO2e per kWh.
	Factors map[string]float64
}

// Factor returns the region's grid factor if defined.
func (r *RegionSet) Factor(region string) (float64, bool) {
	if r == nil {
		return 0, false
	}
	f, ok := r.Factors[region]
	return f, ok
}

// Names returns the defined region names (unordered).
func (r *RegionSet) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.Factors))
	for name := range r.Factors {
		names = append(names, name)
	}
	return names
}

// Country bundles a geography's grid factor and intensity defaults.
type Country struct {
	Name string
	// GridFactor is the national average, kg CO2e per kWh.
	GridFactor float64
	// GridNote is the provenance note for the national factor.
	GridNote string
	// KWhPerEmployee is the employee-intensity default; zero means "use
	// DefaultKWhPerEmployee".
	KWhPerEmployee float64
	// KWhPerRevenue is kWh per unit of local currency; zero means the
	// revenue method is unavailable without an override.
	KWhPerRevenue float64
	// Regions is nil for countries without sub-national grid factors.
	Regions *RegionSet
}

// Countries is the built-in geography table. Grid factors follow public
// grid-intensity datasets (national grid operators / Ember); sub-national
// values are included where the spread between regions is material, in the
// same spirit as per-region cloud intensity maps.
//
//nolint:gochecknoglobals // Constant lookup table.
var Countries = map[string]Country{
	"Germany": {
		Name:           "Germany",
		GridFactor:     0.36,
		GridNote:       "UBA national electricity mix",
		KWhPerEmployee: 4200,
		KWhPerRevenue:  0.11,
	},
	"France": {
		Name:           "France",
		GridFactor:     0.056,
		GridNote:       "RTE national mix, nuclear-dominated",
		KWhPerEmployee: 3900,
		KWhPerRevenue:  0.09,
	},
	"United Kingdom": {
		Name:           "United Kingdom",
		GridFactor:     0.21,
		GridNote:       "DESNZ grid average",
		KWhPerEmployee: 3700,
		KWhPerRevenue:  0.10,
	},
	"United States": {
		Name:           "United States",
		GridFactor:     0.37,
		GridNote:       "EPA eGRID national average",
		KWhPerEmployee: 6100,
		KWhPerRevenue:  0.14,
	},
	"Canada": {
		Name:           "Canada",
		GridFactor:     0.12,
		GridNote:       "ECCC national inventory",
		KWhPerEmployee: 5800,
		Regions: &RegionSet{Factors: map[string]float64{
			"Quebec":           0.0017,
			"Ontario":          0.03,
			"Alberta":          0.51,
			"British Columbia": 0.0078,
		}},
	},
	"Australia": {
		Name:           "Australia",
		GridFactor:     0.66,
		GridNote:       "NGA factors, national grid",
		KWhPerEmployee: 5200,
		KWhPerRevenue:  0.12,
		Regions: &RegionSet{Factors: map[string]float64{
			"New South Wales":   0.68,
			"Victoria":          0.85,
			"Queensland":        0.73,
			"South Australia":   0.25,
			"Western Australia": 0.53,
			"Tasmania":          0.12,
		}},
	},
}

// LookupCountry resolves a country by name. Unknown countries get the world
// average grid factor so the estimator stays computable; the zero intensity
// fields then trigger their documented fallbacks.
func LookupCountry(name string) (Country, bool) {
	if c, ok := Countries[name]; ok {
		return c, true
	}
	return Country{
		Name:       name,
		GridFactor: WorldAverageGridFactor,
		GridNote:   WorldAverageGridSource,
	}, false
}

// ResolveGridFactor picks the grid factor for a country/region selection.
//
// A regional factor is used only when the country actually carries a region
// table and the named region is defined in it; the provenance label then
// composes "Country • Region". In every other case the national default and
// its note apply.
func ResolveGridFactor(country Country, region string) GridFactor {
	if factor, ok := country.Regions.Factor(region); ok {
		return GridFactor{
			KgPerKWh: factor,
			Source:   country.Name + " • " + region,
		}
	}
	source := country.Name
	if country.GridNote != "" {
		source += " (" + country.GridNote + ")"
	}
	return GridFactor{KgPerKWh: country.GridFactor, Source: source}
}
