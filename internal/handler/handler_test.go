package handler

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/haghnazari/Havirkesht/internal/config"
	"github.com/haghnazari/Havirkesht/internal/middleware"
	"github.com/haghnazari/Havirkesht/internal/model/entity"
	"github.com/haghnazari/Havirkesht/internal/repository"
	"github.com/haghnazari/Havirkesht/internal/service"
	"github.com/haghnazari/Havirkesht/internal/testutil"
	"gorm.io/gorm"
)

type testApp struct {
	DB       *gorm.DB
	Router   *gin.Engine
	Services *service.Services
}

// setupApp wires the full route surface against an in-memory store.
// Refresh tokens live in a MemoryTokenStore so the auth flows run
// without a redis server.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	cfg := &config.Config{}
	cfg.JWT.Secret = testutil.JWTSecret
	cfg.JWT.Issuer = "havirkesht-test"
	cfg.JWT.AccessTokenExpire = 30 * time.Minute
	cfg.JWT.RefreshTokenExpire = time.Hour

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, testutil.NewMemoryTokenStore(), cfg)
	h := NewHandlers(services)

	router := testutil.SetupRouter()

	auth := router.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)

	authorized := testutil.AuthGroup(router, "")
	admin := middleware.RequireScope(entity.ScopeAdmin)

	authorized.GET("/auth/me", h.Auth.Me)
	authorized.POST("/auth/logout", h.Auth.Logout)

	type resource struct {
		prefix string
		list   gin.HandlerFunc
		create gin.HandlerFunc
		del    gin.HandlerFunc
	}
	for _, res := range []resource{
		{"/provinces", h.Province.List, h.Province.Create, h.Province.Delete},
		{"/cities", h.City.List, h.City.Create, h.City.Delete},
		{"/villages", h.Village.List, h.Village.Create, h.Village.Delete},
		{"/measure_units", h.MeasureUnit.List, h.MeasureUnit.Create, h.MeasureUnit.Delete},
		{"/seeds", h.Seed.List, h.Seed.Create, h.Seed.Delete},
		{"/pesticides", h.Pesticide.List, h.Pesticide.Create, h.Pesticide.Delete},
		{"/factories", h.Factory.List, h.Factory.Create, h.Factory.Delete},
		{"/crop-years", h.CropYear.List, h.CropYear.Create, h.CropYear.Delete},
	} {
		g := authorized.Group(res.prefix)
		g.GET("", res.list)
		g.POST("", admin, res.create)
		g.DELETE("/:id", admin, res.del)
	}

	factorySeeds := authorized.Group("/factory_seeds")
	factorySeeds.GET("", h.FactorySeed.List)
	factorySeeds.POST("", admin, h.FactorySeed.Create)
	factorySeeds.PUT("/:id", admin, h.FactorySeed.Update)
	factorySeeds.DELETE("/:id", admin, h.FactorySeed.Delete)

	factoryPesticides := authorized.Group("/factory_pesticides")
	factoryPesticides.GET("", h.FactoryPesticide.List)
	factoryPesticides.POST("", admin, h.FactoryPesticide.Create)
	factoryPesticides.PUT("/:id", admin, h.FactoryPesticide.Update)
	factoryPesticides.DELETE("/:id", admin, h.FactoryPesticide.Delete)

	cars := authorized.Group("/cars")
	cars.GET("", h.Car.List)
	cars.GET("/:id", h.Car.Get)
	cars.POST("", admin, h.Car.Create)
	cars.PUT("/:id", admin, h.Car.Update)
	cars.DELETE("/:id", admin, h.Car.Delete)

	drivers := authorized.Group("/drivers")
	drivers.GET("", h.Driver.List)
	drivers.GET("/:id", h.Driver.Get)
	drivers.POST("", admin, h.Driver.Create)
	drivers.PUT("/:id", admin, h.Driver.Update)
	drivers.DELETE("/:id", admin, h.Driver.Delete)

	users := authorized.Group("/users")
	users.GET("", h.User.List)
	users.GET("/:id", h.User.Get)
	users.POST("/admin", admin, h.User.CreateAdmin)
	users.PUT("/:id", admin, h.User.Update)
	users.PATCH("/:id/disable", admin, h.User.Disable)
	users.PATCH("/:id/enable", admin, h.User.Enable)
	users.DELETE("/:id", admin, h.User.Delete)

	return &testApp{DB: db, Router: router, Services: services}
}

// mustCreate posts a payload as admin and fails the test on any
// non-success status.
func (app *testApp) mustCreate(t *testing.T, path string, body interface{}) map[string]interface{} {
	t.Helper()
	w := testutil.DoRequest(app.Router, http.MethodPost, path, body, testutil.AdminToken())
	if w.Code != http.StatusOK && w.Code != http.StatusCreated {
		t.Fatalf("POST %s = %d, body %s", path, w.Code, w.Body.String())
	}
	return testutil.ParseResponse(w)
}

func (app *testApp) id(t *testing.T, record map[string]interface{}) int64 {
	t.Helper()
	raw, ok := record["id"].(float64)
	if !ok {
		t.Fatalf("record has no numeric id: %v", record)
	}
	return int64(raw)
}

func TestRoutesRequireToken(t *testing.T) {
	app := setupApp(t)

	for _, path := range []string{"/provinces", "/seeds", "/factory_seeds", "/drivers", "/users"} {
		w := testutil.DoRequest(app.Router, http.MethodGet, path, nil, "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without token = %d, want 401", path, w.Code)
		}
	}
}

func TestMutationsRequireAdminScope(t *testing.T) {
	app := setupApp(t)

	w := testutil.DoRequest(app.Router, http.MethodPost, "/provinces",
		map[string]interface{}{"province": "Fars"}, testutil.ViewerToken())
	if w.Code != http.StatusForbidden {
		t.Errorf("POST /provinces with viewer token = %d, want 403", w.Code)
	}

	// Reads stay open to any authenticated user.
	w = testutil.DoRequest(app.Router, http.MethodGet, "/provinces", nil, testutil.ViewerToken())
	if w.Code != http.StatusOK {
		t.Errorf("GET /provinces with viewer token = %d, want 200", w.Code)
	}
}

func TestInvalidPathID(t *testing.T) {
	app := setupApp(t)

	w := testutil.DoRequest(app.Router, http.MethodDelete, "/provinces/abc", nil, testutil.AdminToken())
	if w.Code != http.StatusBadRequest {
		t.Errorf("DELETE /provinces/abc = %d, want 400", w.Code)
	}
}

func TestListSizeClamped(t *testing.T) {
	app := setupApp(t)

	for i := 0; i < 60; i++ {
		province := entity.Province{Province: fmt.Sprintf("Province %02d", i)}
		if err := app.DB.Create(&province).Error; err != nil {
			t.Fatalf("seed province: %v", err)
		}
	}

	// Oversized requests are capped at 100, not reset to the default.
	w := testutil.DoRequest(app.Router, http.MethodGet, "/provinces?size=150", nil, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("GET /provinces?size=150 = %d, body %s", w.Code, w.Body.String())
	}
	body := testutil.ParseResponse(w)
	if body["size"] != float64(100) {
		t.Errorf("size = %v, want 100", body["size"])
	}
	if body["pages"] != float64(1) {
		t.Errorf("pages = %v, want 1", body["pages"])
	}
	if items := body["items"].([]interface{}); len(items) != 60 {
		t.Errorf("items = %d, want 60", len(items))
	}

	// Non-positive sizes fall back to the resource default.
	w = testutil.DoRequest(app.Router, http.MethodGet, "/provinces?size=0", nil, testutil.AdminToken())
	if size := testutil.ParseResponse(w)["size"]; size != float64(50) {
		t.Errorf("size = %v, want 50", size)
	}
}

func TestDeleteMissingRecord(t *testing.T) {
	app := setupApp(t)

	w := testutil.DoRequest(app.Router, http.MethodDelete, "/provinces/999", nil, testutil.AdminToken())
	if w.Code != http.StatusNotFound {
		t.Errorf("DELETE /provinces/999 = %d, want 404", w.Code)
	}
	if detail := testutil.ParseResponse(w)["detail"]; detail != "Province not found" {
		t.Errorf("detail = %v", detail)
	}
}
