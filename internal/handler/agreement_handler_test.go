package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/haghnazari/Havirkesht/internal/testutil"
)

type agreementFixture struct {
	factoryID  int64
	seedID     int64
	cropYearID int64
}

func seedAgreementParents(t *testing.T, app *testApp) agreementFixture {
	t.Helper()

	unit := app.mustCreate(t, "/measure_units", map[string]interface{}{"unit_name": "kilogram"})
	seed := app.mustCreate(t, "/seeds",
		map[string]interface{}{"seed_name": "Aria", "measure_unit_id": app.id(t, unit)})
	factory := app.mustCreate(t, "/factories", map[string]interface{}{"factory_name": "Marvdasht Sugar"})
	cropYear := app.mustCreate(t, "/crop-years", map[string]interface{}{"crop_year_name": "1404"})

	return agreementFixture{
		factoryID:  app.id(t, factory),
		seedID:     app.id(t, seed),
		cropYearID: app.id(t, cropYear),
	}
}

func TestFactorySeedCreateDenormalized(t *testing.T) {
	app := setupApp(t)
	fx := seedAgreementParents(t, app)

	w := testutil.DoRequest(app.Router, http.MethodPost, "/factory_seeds", map[string]interface{}{
		"factory_id": fx.factoryID, "seed_id": fx.seedID, "crop_year_id": fx.cropYearID,
		"amount": 1200.5, "farmer_price": 95000, "factory_price": 90000,
	}, testutil.AdminToken())
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /factory_seeds = %d, body %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	if resp["factory_name"] != "Marvdasht Sugar" {
		t.Errorf("factory_name = %v", resp["factory_name"])
	}
	if resp["seed_name"] != "Aria" {
		t.Errorf("seed_name = %v", resp["seed_name"])
	}
	if resp["unit_name"] != "kilogram" {
		t.Errorf("unit_name = %v", resp["unit_name"])
	}
	if resp["crop_year_name"] != "1404" {
		t.Errorf("crop_year_name = %v", resp["crop_year_name"])
	}
	if resp["amount"].(float64) != 1200.5 {
		t.Errorf("amount = %v", resp["amount"])
	}
}

func TestFactorySeedComboConflict(t *testing.T) {
	app := setupApp(t)
	fx := seedAgreementParents(t, app)

	payload := map[string]interface{}{
		"factory_id": fx.factoryID, "seed_id": fx.seedID, "crop_year_id": fx.cropYearID,
		"amount": 100, "farmer_price": 1, "factory_price": 1,
	}
	app.mustCreate(t, "/factory_seeds", payload)

	w := testutil.DoRequest(app.Router, http.MethodPost, "/factory_seeds", payload, testutil.AdminToken())
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate combo = %d, want 409", w.Code)
	}
	wantDetail := fmt.Sprintf("A record for factory %d, seed %d, and crop year %d already exists",
		fx.factoryID, fx.seedID, fx.cropYearID)
	if detail := testutil.ParseResponse(w)["detail"]; detail != wantDetail {
		t.Errorf("detail = %v, want %q", detail, wantDetail)
	}
}

func TestFactorySeedMissingParent(t *testing.T) {
	app := setupApp(t)
	fx := seedAgreementParents(t, app)

	w := testutil.DoRequest(app.Router, http.MethodPost, "/factory_seeds", map[string]interface{}{
		"factory_id": fx.factoryID, "seed_id": 999, "crop_year_id": fx.cropYearID,
		"amount": 100, "farmer_price": 1, "factory_price": 1,
	}, testutil.AdminToken())
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing seed = %d, want 404", w.Code)
	}
	if detail := testutil.ParseResponse(w)["detail"]; detail != "Seed not found" {
		t.Errorf("detail = %v", detail)
	}
}

func TestFactorySeedPartialUpdate(t *testing.T) {
	app := setupApp(t)
	fx := seedAgreementParents(t, app)

	created := app.mustCreate(t, "/factory_seeds", map[string]interface{}{
		"factory_id": fx.factoryID, "seed_id": fx.seedID, "crop_year_id": fx.cropYearID,
		"amount": 1200, "farmer_price": 95000, "factory_price": 90000,
	})
	id := app.id(t, created)

	w := testutil.DoRequest(app.Router, http.MethodPut,
		fmt.Sprintf("/factory_seeds/%d", id),
		map[string]interface{}{"farmer_price": 99000}, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("PUT /factory_seeds = %d, body %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	if resp["farmer_price"].(float64) != 99000 {
		t.Errorf("farmer_price = %v, want 99000", resp["farmer_price"])
	}
	// Untouched fields keep their stored values.
	if resp["amount"].(float64) != 1200 {
		t.Errorf("amount = %v, want 1200", resp["amount"])
	}
	if resp["factory_price"].(float64) != 90000 {
		t.Errorf("factory_price = %v, want 90000", resp["factory_price"])
	}
}

func TestFactorySeedUpdateIntoExistingCombo(t *testing.T) {
	app := setupApp(t)
	fx := seedAgreementParents(t, app)
	cropYear2 := app.mustCreate(t, "/crop-years", map[string]interface{}{"crop_year_name": "1405"})
	cropYear2ID := app.id(t, cropYear2)

	app.mustCreate(t, "/factory_seeds", map[string]interface{}{
		"factory_id": fx.factoryID, "seed_id": fx.seedID, "crop_year_id": fx.cropYearID,
		"amount": 100, "farmer_price": 1, "factory_price": 1,
	})
	second := app.mustCreate(t, "/factory_seeds", map[string]interface{}{
		"factory_id": fx.factoryID, "seed_id": fx.seedID, "crop_year_id": cropYear2ID,
		"amount": 100, "farmer_price": 1, "factory_price": 1,
	})

	// Moving the second agreement onto the first one's crop year collides.
	w := testutil.DoRequest(app.Router, http.MethodPut,
		fmt.Sprintf("/factory_seeds/%d", app.id(t, second)),
		map[string]interface{}{"crop_year_id": fx.cropYearID}, testutil.AdminToken())
	if w.Code != http.StatusConflict {
		t.Fatalf("update into existing combo = %d, want 409", w.Code)
	}

	// A no-op update of the same record does not trip on itself.
	w = testutil.DoRequest(app.Router, http.MethodPut,
		fmt.Sprintf("/factory_seeds/%d", app.id(t, second)),
		map[string]interface{}{"amount": 150}, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("self update = %d, want 200, body %s", w.Code, w.Body.String())
	}
}

func TestFactorySeedDelete(t *testing.T) {
	app := setupApp(t)
	fx := seedAgreementParents(t, app)

	created := app.mustCreate(t, "/factory_seeds", map[string]interface{}{
		"factory_id": fx.factoryID, "seed_id": fx.seedID, "crop_year_id": fx.cropYearID,
		"amount": 100, "farmer_price": 1, "factory_price": 1,
	})
	id := app.id(t, created)

	w := testutil.DoRequest(app.Router, http.MethodDelete,
		fmt.Sprintf("/factory_seeds/%d", id), nil, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("delete = %d", w.Code)
	}
	wantDetail := fmt.Sprintf("Factory seed %d deleted successfully", id)
	if detail := testutil.ParseResponse(w)["detail"]; detail != wantDetail {
		t.Errorf("detail = %v, want %q", detail, wantDetail)
	}
}

func TestFactoryPesticideLifecycle(t *testing.T) {
	app := setupApp(t)

	unit := app.mustCreate(t, "/measure_units", map[string]interface{}{"unit_name": "litre"})
	pesticide := app.mustCreate(t, "/pesticides",
		map[string]interface{}{"pesticide_name": "Betanal", "measure_unit_id": app.id(t, unit)})
	factory := app.mustCreate(t, "/factories", map[string]interface{}{"factory_name": "Marvdasht Sugar"})
	cropYear := app.mustCreate(t, "/crop-years", map[string]interface{}{"crop_year_name": "1404"})

	payload := map[string]interface{}{
		"factory_id":   app.id(t, factory),
		"pesticide_id": app.id(t, pesticide),
		"crop_year_id": app.id(t, cropYear),
		"amount":       50, "farmer_price": 200, "factory_price": 180,
	}

	created := app.mustCreate(t, "/factory_pesticides", payload)
	if created["pesticide_name"] != "Betanal" {
		t.Errorf("pesticide_name = %v", created["pesticide_name"])
	}
	if created["unit_name"] != "litre" {
		t.Errorf("unit_name = %v", created["unit_name"])
	}

	w := testutil.DoRequest(app.Router, http.MethodPost, "/factory_pesticides", payload, testutil.AdminToken())
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate pesticide combo = %d, want 409", w.Code)
	}

	// Listing filters by factory.
	w = testutil.DoRequest(app.Router, http.MethodGet,
		fmt.Sprintf("/factory_pesticides?factory_id=%d", app.id(t, factory)), nil, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("list = %d", w.Code)
	}
	if total := testutil.ParseResponse(w)["total"].(float64); total != 1 {
		t.Errorf("total = %v, want 1", total)
	}
}
