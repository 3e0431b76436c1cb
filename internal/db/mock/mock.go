package mock

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"magistral/internal/formulation"
	applog "magistral/internal/log"
	"magistral/models"
)

// New returns an in-memory sqlite database seeded with a demo account and a
// few compounded recipes.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	db, err := gorm.Open(sqlite.Open("file:magistral-mock?mode=memory&cache=shared"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		PrepareStmt:                              true,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
	); err != nil {
		return nil, err
	}

	if err := seed(ctx, db); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return db, nil
}

func seed(ctx context.Context, db *gorm.DB) error {
	applog.Debug(ctx, "seeding mock database")

	password, err := bcrypt.GenerateFromPassword([]byte("workbench"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{
		Name:         "Rowan Ellis",
		Email:        "rowan@magistral.app",
		PasswordHash: string(password),
		Theme:        models.DefaultTheme,
	}
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		return err
	}

	enanthate := formulation.InjectableRequest{
		Concentration:     40,
		BatchVolumeML:     10,
		LossPercent:       10,
		EsterKey:          "estradiol_enanthate",
		OilKey:            "mct_oil",
		BenzylAlcoholPct:  2,
		BenzylBenzoatePct: 0,
	}
	enanthateResult, err := formulation.ComputeInjectable(enanthate)
	if err != nil {
		return err
	}
	if err := db.WithContext(ctx).Create(injectableRecipe(user.ID, "House EEn 40", enanthate, enanthateResult)).Error; err != nil {
		return err
	}

	cypionate := formulation.InjectableRequest{
		Concentration:     100,
		BatchVolumeML:     20,
		LossPercent:       5,
		EsterKey:          "testosterone_cypionate",
		OilKey:            "grapeseed_oil",
		BenzylAlcoholPct:  2,
		BenzylBenzoatePct: 18,
	}
	cypionateResult, err := formulation.ComputeInjectable(cypionate)
	if err != nil {
		return err
	}
	if err := db.WithContext(ctx).Create(injectableRecipe(user.ID, "TC 100 Grapeseed", cypionate, cypionateResult)).Error; err != nil {
		return err
	}

	spray := formulation.TransdermalRequest{TargetVolumeML: 120, LossPercent: 5}
	sprayResult, err := formulation.ComputeTransdermal(spray)
	if err != nil {
		return err
	}
	recipe := &models.Recipe{
		OwnerID:          user.ID,
		Name:             "Standard E2 Spray",
		Notes:            "House transdermal batch, 120 mL bottles.",
		FormulationType:  models.FormulationTransdermal,
		EsterKey:         formulation.EstradiolSprayKey,
		Concentration:    sprayResult.Concentration,
		BatchVolumeML:    spray.TargetVolumeML,
		LossPercent:      spray.LossPercent,
		AdjustedVolumeML: sprayResult.AdjustedVolumeML,
		APIMassG:         sprayResult.EstradiolMassG,
		APIVolumeML:      sprayResult.EstradiolVolumeML,
	}
	if err := db.WithContext(ctx).Create(recipe).Error; err != nil {
		return err
	}

	applog.Debug(ctx, "mock database seeded")
	return nil
}

func injectableRecipe(ownerID uint, name string, req formulation.InjectableRequest, res formulation.InjectableResult) *models.Recipe {
	return &models.Recipe{
		OwnerID:            ownerID,
		Name:               name,
		FormulationType:    models.FormulationInjectable,
		EsterKey:           req.EsterKey,
		OilKey:             req.OilKey,
		Concentration:      req.Concentration,
		BatchVolumeML:      req.BatchVolumeML,
		LossPercent:        req.LossPercent,
		BenzylAlcoholPct:   req.BenzylAlcoholPct,
		BenzylBenzoatePct:  req.BenzylBenzoatePct,
		AdjustedVolumeML:   res.AdjustedVolumeML,
		APIMassG:           res.APIMassG,
		APIVolumeML:        res.APIVolumeML,
		BenzylAlcoholML:    res.BenzylAlcoholML,
		BenzylBenzoateML:   res.BenzylBenzoateML,
		CarrierOilML:       res.CarrierOilML,
		EsterConcentration: res.EsterConcentration,
		SolubilityLimit:    res.SolubilityLimit,
		SolubilityFlag:     res.Solubility.String(),
	}
}
