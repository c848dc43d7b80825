package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/haghnazari/Havirkesht/internal/model/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&entity.Province{}, &entity.City{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedProvinces(t *testing.T, db *gorm.DB, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		p := entity.Province{Province: fmt.Sprintf("Province %02d", i)}
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("seed province %d: %v", i, err)
		}
	}
}

func TestPaginatePageMath(t *testing.T) {
	db := openTestDB(t)
	seedProvinces(t, db, 25)

	query := db.Model(&entity.Province{})
	page, err := Paginate[entity.Province](query, "", "id ASC", 1, 10)
	if err != nil {
		t.Fatalf("paginate: %v", err)
	}

	if page.Total != 25 {
		t.Errorf("total = %d, want 25", page.Total)
	}
	if page.Pages != 3 {
		t.Errorf("pages = %d, want 3", page.Pages)
	}
	if len(page.Items) != 10 {
		t.Errorf("items = %d, want 10", len(page.Items))
	}
	if page.Items[0].Province != "Province 01" {
		t.Errorf("first item = %q, want Province 01", page.Items[0].Province)
	}
}

func TestPaginateLastPartialPage(t *testing.T) {
	db := openTestDB(t)
	seedProvinces(t, db, 25)

	query := db.Model(&entity.Province{})
	page, err := Paginate[entity.Province](query, "", "id ASC", 3, 10)
	if err != nil {
		t.Fatalf("paginate: %v", err)
	}

	if len(page.Items) != 5 {
		t.Errorf("items = %d, want 5", len(page.Items))
	}
	if page.Pages != 3 {
		t.Errorf("pages = %d, want 3", page.Pages)
	}
}

func TestPaginatePastEnd(t *testing.T) {
	db := openTestDB(t)
	seedProvinces(t, db, 3)

	query := db.Model(&entity.Province{})
	page, err := Paginate[entity.Province](query, "", "", 5, 10)
	if err != nil {
		t.Fatalf("paginate: %v", err)
	}

	if len(page.Items) != 0 {
		t.Errorf("items = %d, want 0", len(page.Items))
	}
	if page.Total != 3 {
		t.Errorf("total = %d, want 3", page.Total)
	}
	if page.Pages != 1 {
		t.Errorf("pages = %d, want 1", page.Pages)
	}
}

func TestOrderClauseAllowList(t *testing.T) {
	allowed := map[string]string{"province": "province", "created_at": "created_at"}

	if got := OrderClause(allowed, "province", "desc", ""); got != "province DESC" {
		t.Errorf("OrderClause desc = %q", got)
	}
	if got := OrderClause(allowed, "province", "asc", ""); got != "province ASC" {
		t.Errorf("OrderClause asc = %q", got)
	}
	// Unknown columns cannot be injected into the order clause.
	if got := OrderClause(allowed, "province; DROP TABLE provinces", "asc", ""); got != "" {
		t.Errorf("OrderClause unknown = %q, want fallback", got)
	}
	if got := OrderClause(allowed, "", "asc", "created_at DESC"); got != "created_at DESC" {
		t.Errorf("OrderClause fallback = %q", got)
	}
}

func TestProvinceListSearch(t *testing.T) {
	db := openTestDB(t)
	repo := NewProvinceRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Fars", "Khuzestan", "Kerman"} {
		if err := repo.Create(ctx, &entity.Province{Province: name}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	page, err := repo.List(ctx, ListQuery{Page: 1, Size: 50, Search: "k"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 2 {
		t.Errorf("search total = %d, want 2", page.Total)
	}

	page, err = repo.List(ctx, ListQuery{Page: 1, Size: 50, Search: "FARS"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 1 {
		t.Errorf("case-insensitive search total = %d, want 1", page.Total)
	}
}

func TestCityNameTakenScopedToProvince(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	provinces := NewProvinceRepository(db)
	cities := NewCityRepository(db)

	p1 := entity.Province{Province: "Fars"}
	p2 := entity.Province{Province: "Kerman"}
	if err := provinces.Create(ctx, &p1); err != nil {
		t.Fatalf("create province: %v", err)
	}
	if err := provinces.Create(ctx, &p2); err != nil {
		t.Fatalf("create province: %v", err)
	}

	if err := cities.Create(ctx, &entity.City{City: "Markazi", ProvinceID: p1.ID}); err != nil {
		t.Fatalf("create city: %v", err)
	}

	taken, err := cities.NameTaken(ctx, "Markazi", p1.ID, 0)
	if err != nil {
		t.Fatalf("name taken: %v", err)
	}
	if !taken {
		t.Error("NameTaken = false for same province, want true")
	}

	// Same name in another province is allowed.
	taken, err = cities.NameTaken(ctx, "Markazi", p2.ID, 0)
	if err != nil {
		t.Fatalf("name taken: %v", err)
	}
	if taken {
		t.Error("NameTaken = true for other province, want false")
	}
}
