package models

import (
	"time"

	"gorm.io/gorm"
)

// Formulation types stored on a recipe.
const (
	FormulationInjectable  = "injectable"
	FormulationTransdermal = "transdermal_spray"
)

// Recipe snapshots a computed formulation: the request that produced it and
// the derived quantities. Recipes are immutable once written; there is no
// update lifecycle.
type Recipe struct {
	gorm.Model
	OwnerID uint   `gorm:"not null;index" json:"owner_id"`
	Owner   *User  `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Name    string `gorm:"not null" json:"name"`
	Notes   string `gorm:"type:text" json:"notes"`

	FormulationType string `gorm:"not null" json:"formulation_type"`

	// Request snapshot.
	EsterKey          string  `json:"ester_key"`
	OilKey            string  `json:"oil_key"`
	Concentration     float64 `json:"concentration"`
	BatchVolumeML     float64 `json:"batch_volume_ml"`
	NumVials          int     `json:"num_vials"`
	VialSizeML        float64 `json:"vial_size_ml"`
	LossPercent       float64 `json:"loss_percent"`
	BenzylAlcoholPct  float64 `json:"benzyl_alcohol_pct"`
	BenzylBenzoatePct float64 `json:"benzyl_benzoate_pct"`

	// Result snapshot.
	AdjustedVolumeML   float64 `json:"adjusted_volume_ml"`
	APIMassG           float64 `json:"api_mass_g"`
	APIVolumeML        float64 `json:"api_volume_ml"`
	BenzylAlcoholML    float64 `json:"benzyl_alcohol_ml"`
	BenzylBenzoateML   float64 `json:"benzyl_benzoate_ml"`
	CarrierOilML       float64 `json:"carrier_oil_ml"`
	EsterConcentration float64 `json:"ester_concentration"`
	SolubilityLimit    float64 `json:"solubility_limit"`
	SolubilityFlag     string  `json:"solubility_flag"`
}

// CompoundedAt reports when the recipe was written; recipes never change
// afterwards, so CreatedAt is the authoritative timestamp.
func (r Recipe) CompoundedAt() time.Time {
	return r.CreatedAt
}
