package formulation

import "sort"

// Category groups esters by their active moiety.
type Category string

const (
	CategoryEstradiol    Category = "estradiol"
	CategoryTestosterone Category = "testosterone"
)

// Route identifies the administration route an ester is formulated for.
type Route string

const (
	RouteInjectable  Route = "injectable"
	RouteTransdermal Route = "transdermal_spray"
)

// EsterSpec describes one entry of the immutable ester reference table.
// Densities are g/mL, molecular weights g/mol, solubilities mg/mL.
type EsterSpec struct {
	Key                   string
	Name                  string
	MolecularWeight       float64
	BaseMolecularWeight   float64
	Density               float64
	BaseFraction          float64 // active moiety mass / ester mass
	MaxSafeConcentration  float64
	TypicalConcentrations []float64
	CommonDoses           []float64
	BaseSolubility        map[string]float64 // carrier oil key -> mg/mL
	Category              Category
	Route                 Route
	HalfLifeDays          float64
	InjectionInterval     string
}

// CarrierOilSpec describes one entry of the immutable carrier oil table.
type CarrierOilSpec struct {
	Key              string
	Name             string
	Density          float64
	SolubilityFactor float64
}

// SprayComponent is one fixed constituent of the transdermal spray vehicle.
type SprayComponent struct {
	Key     string
	Name    string
	Percent float64
	Density float64
}

const (
	// EstradiolSprayKey identifies the only transdermal compound in the table.
	EstradiolSprayKey = "estradiol_spray"

	// SprayConcentration is the fixed transdermal concentration in mg/mL.
	SprayConcentration = 58.33

	// SprayAbsorptionRate is the assumed transdermal absorption fraction.
	SprayAbsorptionRate = 0.12

	// Excipient densities, USP pharmaceutical grade, g/mL.
	benzylAlcoholDensity  = 1.045
	benzylBenzoateDensity = 1.118
)

var esters = map[string]EsterSpec{
	"estradiol_valerate": {
		Key: "estradiol_valerate", Name: "Estradiol Valerate",
		MolecularWeight: 356.50, BaseMolecularWeight: 272.38,
		Density: 1.102, BaseFraction: 0.7640,
		MaxSafeConcentration:  80,
		TypicalConcentrations: []float64{20, 30, 40, 50},
		CommonDoses:           []float64{3, 4, 5, 6},
		BaseSolubility: map[string]float64{
			"sesame_oil": 65, "mct_oil": 75, "cottonseed_oil": 65, "grapeseed_oil": 70,
			"castor_oil": 85, "olive_oil": 60, "sunflower_oil": 67, "safflower_oil": 67, "custom": 67,
		},
		Category: CategoryEstradiol, Route: RouteInjectable,
		HalfLifeDays: 3.5, InjectionInterval: "14 days",
	},
	"estradiol_cypionate": {
		Key: "estradiol_cypionate", Name: "Estradiol Cypionate",
		MolecularWeight: 396.57, BaseMolecularWeight: 272.38,
		Density: 1.083, BaseFraction: 0.6868,
		MaxSafeConcentration:  75,
		TypicalConcentrations: []float64{20, 30, 40, 50},
		CommonDoses:           []float64{3, 4, 5, 6},
		BaseSolubility: map[string]float64{
			"sesame_oil": 55, "mct_oil": 65, "cottonseed_oil": 55, "grapeseed_oil": 60,
			"castor_oil": 75, "olive_oil": 50, "sunflower_oil": 57, "safflower_oil": 57, "custom": 57,
		},
		Category: CategoryEstradiol, Route: RouteInjectable,
		HalfLifeDays: 11.0, InjectionInterval: "14-21 days",
	},
	"estradiol_enanthate": {
		Key: "estradiol_enanthate", Name: "Estradiol Enanthate",
		MolecularWeight: 384.55, BaseMolecularWeight: 272.38,
		Density: 1.110, BaseFraction: 0.7083,
		MaxSafeConcentration:  85,
		TypicalConcentrations: []float64{20, 30, 40, 50},
		CommonDoses:           []float64{3, 4, 5, 6},
		BaseSolubility: map[string]float64{
			"sesame_oil": 70, "mct_oil": 80, "cottonseed_oil": 70, "grapeseed_oil": 75,
			"castor_oil": 90, "olive_oil": 65, "sunflower_oil": 72, "safflower_oil": 72, "custom": 72,
		},
		Category: CategoryEstradiol, Route: RouteInjectable,
		HalfLifeDays: 8.0, InjectionInterval: "7 days",
	},
	"estradiol_undecylate": {
		Key: "estradiol_undecylate", Name: "Estradiol Undecylate",
		MolecularWeight: 440.66, BaseMolecularWeight: 272.38,
		Density: 1.070, BaseFraction: 0.6181,
		MaxSafeConcentration:  70,
		TypicalConcentrations: []float64{20, 30, 40, 50},
		CommonDoses:           []float64{3, 4, 5, 6},
		BaseSolubility: map[string]float64{
			"sesame_oil": 60, "mct_oil": 70, "cottonseed_oil": 60, "grapeseed_oil": 65,
			"castor_oil": 80, "olive_oil": 55, "sunflower_oil": 62, "safflower_oil": 62, "custom": 62,
		},
		Category: CategoryEstradiol, Route: RouteInjectable,
		HalfLifeDays: 29.0, InjectionInterval: "28-42 days",
	},
	EstradiolSprayKey: {
		Key: EstradiolSprayKey, Name: "17beta-Estradiol Transdermal Spray",
		MolecularWeight: 272.38, BaseMolecularWeight: 272.38,
		Density: 1.27, BaseFraction: 1.0,
		MaxSafeConcentration: 100,
		CommonDoses:          []float64{0.5, 0.75, 1.0, 1.25},
		Category:             CategoryEstradiol, Route: RouteTransdermal,
	},
	"testosterone_enanthate": {
		Key: "testosterone_enanthate", Name: "Testosterone Enanthate",
		MolecularWeight: 400.59, BaseMolecularWeight: 288.42,
		Density: 1.056, BaseFraction: 0.7200,
		MaxSafeConcentration:  500,
		TypicalConcentrations: []float64{150, 200, 250, 300, 400},
		CommonDoses:           []float64{50, 75, 100, 125, 150},
		BaseSolubility: map[string]float64{
			"sesame_oil": 280, "mct_oil": 320, "cottonseed_oil": 280, "grapeseed_oil": 290,
			"castor_oil": 350, "olive_oil": 270, "sunflower_oil": 285, "safflower_oil": 285, "custom": 285,
		},
		Category: CategoryTestosterone, Route: RouteInjectable,
		HalfLifeDays: 4.5, InjectionInterval: "7-14 days",
	},
	"testosterone_cypionate": {
		Key: "testosterone_cypionate", Name: "Testosterone Cypionate",
		MolecularWeight: 412.61, BaseMolecularWeight: 288.42,
		Density: 1.080, BaseFraction: 0.6990,
		MaxSafeConcentration:  400,
		TypicalConcentrations: []float64{150, 200, 250, 300},
		CommonDoses:           []float64{50, 75, 100, 125, 150},
		BaseSolubility: map[string]float64{
			"sesame_oil": 220, "mct_oil": 250, "cottonseed_oil": 220, "grapeseed_oil": 230,
			"castor_oil": 270, "olive_oil": 210, "sunflower_oil": 225, "safflower_oil": 225, "custom": 225,
		},
		Category: CategoryTestosterone, Route: RouteInjectable,
		HalfLifeDays: 8.0, InjectionInterval: "7-14 days",
	},
	"testosterone_propionate": {
		Key: "testosterone_propionate", Name: "Testosterone Propionate",
		MolecularWeight: 344.49, BaseMolecularWeight: 288.42,
		Density: 1.091, BaseFraction: 0.8372,
		MaxSafeConcentration:  200,
		TypicalConcentrations: []float64{50, 75, 100, 125, 150},
		CommonDoses:           []float64{25, 50, 75, 100},
		BaseSolubility: map[string]float64{
			"sesame_oil": 120, "mct_oil": 135, "cottonseed_oil": 120, "grapeseed_oil": 125,
			"castor_oil": 145, "olive_oil": 115, "sunflower_oil": 122, "safflower_oil": 122, "custom": 122,
		},
		Category: CategoryTestosterone, Route: RouteInjectable,
		HalfLifeDays: 0.8, InjectionInterval: "1-3 days",
	},
	"testosterone_decanoate": {
		Key: "testosterone_decanoate", Name: "Testosterone Decanoate",
		MolecularWeight: 442.67, BaseMolecularWeight: 288.42,
		Density: 1.040, BaseFraction: 0.6515,
		MaxSafeConcentration:  600,
		TypicalConcentrations: []float64{200, 250, 300, 400, 500},
		CommonDoses:           []float64{75, 100, 125, 150, 200},
		BaseSolubility: map[string]float64{
			"sesame_oil": 380, "mct_oil": 420, "cottonseed_oil": 380, "grapeseed_oil": 395,
			"castor_oil": 450, "olive_oil": 370, "sunflower_oil": 385, "safflower_oil": 385, "custom": 385,
		},
		Category: CategoryTestosterone, Route: RouteInjectable,
		HalfLifeDays: 7.0, InjectionInterval: "14-21 days",
	},
}

var carrierOils = map[string]CarrierOilSpec{
	"mct_oil":        {Key: "mct_oil", Name: "MCT Oil", Density: 0.95, SolubilityFactor: 1.1},
	"cottonseed_oil": {Key: "cottonseed_oil", Name: "Cottonseed Oil", Density: 0.92, SolubilityFactor: 1.0},
	"sesame_oil":     {Key: "sesame_oil", Name: "Sesame Oil", Density: 0.919, SolubilityFactor: 1.0},
	"grapeseed_oil":  {Key: "grapeseed_oil", Name: "Grapeseed Oil", Density: 0.92, SolubilityFactor: 1.05},
	"castor_oil":     {Key: "castor_oil", Name: "Castor Oil", Density: 0.955, SolubilityFactor: 1.25},
	"olive_oil":      {Key: "olive_oil", Name: "Olive Oil", Density: 0.90, SolubilityFactor: 0.95},
	"sunflower_oil":  {Key: "sunflower_oil", Name: "Sunflower Oil", Density: 0.92, SolubilityFactor: 1.02},
	"safflower_oil":  {Key: "safflower_oil", Name: "Safflower Oil", Density: 0.92, SolubilityFactor: 1.02},
	"custom":         {Key: "custom", Name: "Custom Oil", Density: 0.92, SolubilityFactor: 1.0},
}

var sprayComponents = []SprayComponent{
	{Key: "isopropyl_myristate", Name: "Isopropyl Myristate", Percent: 40.0, Density: 0.922},
	{Key: "isopropyl_alcohol_91", Name: "Isopropyl Alcohol (91%)", Percent: 40.0, Density: 0.785},
	{Key: "propylene_glycol", Name: "Propylene Glycol", Percent: 10.0, Density: 1.036},
	{Key: "polysorbate_80", Name: "Polysorbate 80", Percent: 10.0, Density: 1.064},
}

// clone deep-copies the nested map and slices so callers can never reach
// the package-level table through a returned spec.
func (s EsterSpec) clone() EsterSpec {
	out := s
	out.TypicalConcentrations = append([]float64(nil), s.TypicalConcentrations...)
	out.CommonDoses = append([]float64(nil), s.CommonDoses...)
	out.BaseSolubility = make(map[string]float64, len(s.BaseSolubility))
	for oil, limit := range s.BaseSolubility {
		out.BaseSolubility[oil] = limit
	}
	return out
}

// EsterByKey returns the reference entry for the requested ester.
func EsterByKey(key string) (EsterSpec, bool) {
	spec, ok := esters[key]
	if !ok {
		return EsterSpec{}, false
	}
	return spec.clone(), true
}

// OilByKey returns the reference entry for the requested carrier oil.
func OilByKey(key string) (CarrierOilSpec, bool) {
	spec, ok := carrierOils[key]
	return spec, ok
}

// Esters returns every reference ester sorted by display name.
func Esters() []EsterSpec {
	result := make([]EsterSpec, 0, len(esters))
	for _, spec := range esters {
		result = append(result, spec.clone())
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// InjectableEsters returns the injectable subset grouped estradiol-first,
// matching the selection order presented to compounders.
func InjectableEsters() []EsterSpec {
	result := make([]EsterSpec, 0, len(esters))
	for _, spec := range esters {
		if spec.Route == RouteInjectable {
			result = append(result, spec.clone())
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Category != result[j].Category {
			return result[i].Category == CategoryEstradiol
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// CarrierOils returns every carrier oil sorted by display name, with the
// custom placeholder last.
func CarrierOils() []CarrierOilSpec {
	result := make([]CarrierOilSpec, 0, len(carrierOils))
	for _, spec := range carrierOils {
		result = append(result, spec)
	}
	sort.Slice(result, func(i, j int) bool {
		if (result[i].Key == "custom") != (result[j].Key == "custom") {
			return result[j].Key == "custom"
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// SprayComponents returns the fixed transdermal vehicle composition.
func SprayComponents() []SprayComponent {
	result := make([]SprayComponent, len(sprayComponents))
	copy(result, sprayComponents)
	return result
}
