package formulation

// Dosage pairs a syringe-friendly draw volume with its delivered dose.
type Dosage struct {
	VolumeML float64
	DoseMG   float64
}

var easyDrawIncrements = []float64{0.1, 0.2, 0.25, 0.5, 0.75, 1.0, 1.25, 1.5, 1.75, 2.0, 2.5, 3.0}

const (
	minPracticalDoseMG = 1.0
	maxPracticalDoseMG = 500.0
	maxDosageRows      = 8
)

// EasyDrawDosages lists up to eight practical draw volumes for the given
// concentration, filtered to doses between 1 and 500 mg.
func EasyDrawDosages(concentration float64) []Dosage {
	if concentration <= 0 {
		return nil
	}
	dosages := make([]Dosage, 0, maxDosageRows)
	for _, volume := range easyDrawIncrements {
		dose := concentration * volume
		if dose < minPracticalDoseMG || dose > maxPracticalDoseMG {
			continue
		}
		dosages = append(dosages, Dosage{VolumeML: volume, DoseMG: dose})
		if len(dosages) == maxDosageRows {
			break
		}
	}
	return dosages
}
