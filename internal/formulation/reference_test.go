package formulation

import (
	"math"
	"testing"
)

func TestReferenceTableIntegrity(t *testing.T) {
	t.Parallel()

	for _, ester := range Esters() {
		if ester.MolecularWeight <= 0 || ester.BaseMolecularWeight <= 0 || ester.Density <= 0 {
			t.Fatalf("%s has non-positive physical constants", ester.Key)
		}
		if ester.BaseFraction <= 0 || ester.BaseFraction > 1 {
			t.Fatalf("%s base fraction %.4f outside (0, 1]", ester.Key, ester.BaseFraction)
		}
		// The stored fraction must agree with the molecular weight ratio.
		ratio := ester.BaseMolecularWeight / ester.MolecularWeight
		if math.Abs(ratio-ester.BaseFraction) > 0.001 {
			t.Fatalf("%s base fraction %.4f disagrees with MW ratio %.4f", ester.Key, ester.BaseFraction, ratio)
		}
		if ester.Route == RouteInjectable {
			for _, oil := range CarrierOils() {
				if _, ok := ester.BaseSolubility[oil.Key]; !ok {
					t.Fatalf("%s missing solubility entry for %s", ester.Key, oil.Key)
				}
			}
		}
	}

	for _, oil := range CarrierOils() {
		if oil.Density <= 0 || oil.SolubilityFactor <= 0 {
			t.Fatalf("%s has non-positive constants", oil.Key)
		}
	}
}

func TestReferenceTableKnownConstants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key      string
		mw       float64
		density  float64
		fraction float64
	}{
		{"estradiol_valerate", 356.50, 1.102, 0.7640},
		{"estradiol_cypionate", 396.57, 1.083, 0.6868},
		{"estradiol_enanthate", 384.55, 1.110, 0.7083},
		{"estradiol_undecylate", 440.66, 1.070, 0.6181},
		{"testosterone_enanthate", 400.59, 1.056, 0.7200},
		{"testosterone_cypionate", 412.61, 1.080, 0.6990},
		{"testosterone_propionate", 344.49, 1.091, 0.8372},
		{"testosterone_decanoate", 442.67, 1.040, 0.6515},
	}

	for _, tt := range tests {
		spec, ok := EsterByKey(tt.key)
		if !ok {
			t.Fatalf("missing ester %s", tt.key)
		}
		if spec.MolecularWeight != tt.mw {
			t.Fatalf("%s MW = %.2f, want %.2f", tt.key, spec.MolecularWeight, tt.mw)
		}
		if spec.Density != tt.density {
			t.Fatalf("%s density = %.3f, want %.3f", tt.key, spec.Density, tt.density)
		}
		if spec.BaseFraction != tt.fraction {
			t.Fatalf("%s base fraction = %.4f, want %.4f", tt.key, spec.BaseFraction, tt.fraction)
		}
	}
}

func TestInjectableEstersOrdering(t *testing.T) {
	t.Parallel()

	injectables := InjectableEsters()
	if len(injectables) != 8 {
		t.Fatalf("expected 8 injectable esters, got %d", len(injectables))
	}
	seenTestosterone := false
	for _, ester := range injectables {
		if ester.Category == CategoryTestosterone {
			seenTestosterone = true
		} else if seenTestosterone {
			t.Fatal("estradiol esters must precede testosterone esters")
		}
	}
}

func TestEsterAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	spec, ok := EsterByKey("testosterone_enanthate")
	if !ok {
		t.Fatal("testosterone_enanthate missing from reference table")
	}
	original := spec.BaseSolubility["sesame_oil"]

	spec.BaseSolubility["sesame_oil"] = 1
	spec.TypicalConcentrations[0] = -1
	spec.CommonDoses[0] = -1

	fresh, _ := EsterByKey("testosterone_enanthate")
	if fresh.BaseSolubility["sesame_oil"] != original {
		t.Fatal("EsterByKey must not expose the shared solubility table")
	}
	if fresh.TypicalConcentrations[0] == -1 || fresh.CommonDoses[0] == -1 {
		t.Fatal("EsterByKey must not expose shared slices")
	}

	// A solubility assessment after the write must still see the table value.
	oil, _ := OilByKey("sesame_oil")
	limit, _ := SolubilityLimit(fresh, oil, 0)
	if limit != original*oil.SolubilityFactor {
		t.Fatalf("solubility limit %.2f disagrees with table value %.2f", limit, original*oil.SolubilityFactor)
	}

	for _, listed := range [][]EsterSpec{Esters(), InjectableEsters()} {
		listed[0].BaseSolubility["sesame_oil"] = 1
		if refetched, _ := EsterByKey(listed[0].Key); refetched.BaseSolubility["sesame_oil"] == 1 {
			t.Fatalf("%s listing must not expose shared state", listed[0].Key)
		}
	}
}

func TestSprayComponentsAreCopies(t *testing.T) {
	t.Parallel()

	first := SprayComponents()
	first[0].Percent = 99
	second := SprayComponents()
	if second[0].Percent == 99 {
		t.Fatal("SprayComponents must not expose shared state")
	}

	sum := 0.0
	for _, component := range second {
		sum += component.Percent
	}
	if sum != 100 {
		t.Fatalf("spray component percentages sum to %.1f, want 100", sum)
	}
}
