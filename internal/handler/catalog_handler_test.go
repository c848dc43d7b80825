package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/haghnazari/Havirkesht/internal/testutil"
)

func TestSeedCreateDenormalizesUnitName(t *testing.T) {
	app := setupApp(t)

	unit := app.mustCreate(t, "/measure_units", map[string]interface{}{"unit_name": "kilogram"})
	unitID := app.id(t, unit)

	w := testutil.DoRequest(app.Router, http.MethodPost, "/seeds",
		map[string]interface{}{"seed_name": "Aria", "measure_unit_id": unitID}, testutil.AdminToken())
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /seeds = %d, body %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	if resp["seed_name"] != "Aria" {
		t.Errorf("seed_name = %v", resp["seed_name"])
	}
	if resp["unit_name"] != "kilogram" {
		t.Errorf("unit_name = %v, want kilogram", resp["unit_name"])
	}
}

func TestSeedMissingUnitAndDuplicate(t *testing.T) {
	app := setupApp(t)

	w := testutil.DoRequest(app.Router, http.MethodPost, "/seeds",
		map[string]interface{}{"seed_name": "Aria", "measure_unit_id": 7}, testutil.AdminToken())
	if w.Code != http.StatusNotFound {
		t.Fatalf("seed with missing unit = %d, want 404", w.Code)
	}
	if detail := testutil.ParseResponse(w)["detail"]; detail != "Measure unit not found" {
		t.Errorf("detail = %v", detail)
	}

	unit := app.mustCreate(t, "/measure_units", map[string]interface{}{"unit_name": "kilogram"})
	unitID := app.id(t, unit)
	app.mustCreate(t, "/seeds", map[string]interface{}{"seed_name": "Aria", "measure_unit_id": unitID})

	w = testutil.DoRequest(app.Router, http.MethodPost, "/seeds",
		map[string]interface{}{"seed_name": "Aria", "measure_unit_id": unitID}, testutil.AdminToken())
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate seed = %d, want 409", w.Code)
	}
}

func TestSeedSearchPagination(t *testing.T) {
	app := setupApp(t)

	unit := app.mustCreate(t, "/measure_units", map[string]interface{}{"unit_name": "kilogram"})
	unitID := app.id(t, unit)

	for i := 1; i <= 25; i++ {
		app.mustCreate(t, "/seeds", map[string]interface{}{
			"seed_name":       fmt.Sprintf("Beet Variety %02d", i),
			"measure_unit_id": unitID,
		})
	}
	app.mustCreate(t, "/seeds", map[string]interface{}{
		"seed_name": "Other Crop", "measure_unit_id": unitID,
	})

	w := testutil.DoRequest(app.Router, http.MethodGet,
		"/seeds?search=beet&page=1&size=10", nil, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("list seeds = %d", w.Code)
	}

	page := testutil.ParseResponse(w)
	if page["total"].(float64) != 25 {
		t.Errorf("total = %v, want 25", page["total"])
	}
	if page["pages"].(float64) != 3 {
		t.Errorf("pages = %v, want 3", page["pages"])
	}
	if items := page["items"].([]interface{}); len(items) != 10 {
		t.Errorf("items = %d, want 10", len(items))
	}
}

func TestMeasureUnitDeleteRestricted(t *testing.T) {
	app := setupApp(t)

	unit := app.mustCreate(t, "/measure_units", map[string]interface{}{"unit_name": "litre"})
	unitID := app.id(t, unit)
	app.mustCreate(t, "/pesticides",
		map[string]interface{}{"pesticide_name": "Betanal", "measure_unit_id": unitID})

	w := testutil.DoRequest(app.Router, http.MethodDelete,
		fmt.Sprintf("/measure_units/%d", unitID), nil, testutil.AdminToken())
	if w.Code != http.StatusConflict {
		t.Fatalf("delete referenced unit = %d, want 409", w.Code)
	}
}

func TestPesticideLifecycle(t *testing.T) {
	app := setupApp(t)

	unit := app.mustCreate(t, "/measure_units", map[string]interface{}{"unit_name": "litre"})
	unitID := app.id(t, unit)

	pesticide := app.mustCreate(t, "/pesticides",
		map[string]interface{}{"pesticide_name": "Betanal", "measure_unit_id": unitID})
	pesticideID := app.id(t, pesticide)

	if pesticide["unit_name"] != "litre" {
		t.Errorf("unit_name = %v, want litre", pesticide["unit_name"])
	}

	w := testutil.DoRequest(app.Router, http.MethodPost, "/pesticides",
		map[string]interface{}{"pesticide_name": "Betanal", "measure_unit_id": unitID}, testutil.AdminToken())
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate pesticide = %d, want 409", w.Code)
	}

	w = testutil.DoRequest(app.Router, http.MethodDelete,
		fmt.Sprintf("/pesticides/%d", pesticideID), nil, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("delete pesticide = %d, want 200", w.Code)
	}
	wantDetail := fmt.Sprintf("Pesticide %d: Betanal deleted successfully", pesticideID)
	if detail := testutil.ParseResponse(w)["detail"]; detail != wantDetail {
		t.Errorf("detail = %v, want %q", detail, wantDetail)
	}
}

func TestCropYearDuplicateConflict(t *testing.T) {
	app := setupApp(t)

	app.mustCreate(t, "/crop-years", map[string]interface{}{"crop_year_name": "1404"})

	w := testutil.DoRequest(app.Router, http.MethodPost, "/crop-years",
		map[string]interface{}{"crop_year_name": "1404"}, testutil.AdminToken())
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate crop year = %d, want 409", w.Code)
	}
	if detail := testutil.ParseResponse(w)["detail"]; detail != "Crop year already exists" {
		t.Errorf("detail = %v", detail)
	}
}

func TestFactoryDuplicateConflict(t *testing.T) {
	app := setupApp(t)

	app.mustCreate(t, "/factories", map[string]interface{}{"factory_name": "Marvdasht Sugar"})

	w := testutil.DoRequest(app.Router, http.MethodPost, "/factories",
		map[string]interface{}{"factory_name": "Marvdasht Sugar"}, testutil.AdminToken())
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate factory = %d, want 409", w.Code)
	}
}
