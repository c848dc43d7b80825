package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/haghnazari/Havirkesht/internal/repository"
	"github.com/haghnazari/Havirkesht/internal/service"
	"gorm.io/gorm"
)

// Handlers bundles all HTTP handlers.
type Handlers struct {
	Auth             *AuthHandler
	Province         *ProvinceHandler
	City             *CityHandler
	Village          *VillageHandler
	MeasureUnit      *MeasureUnitHandler
	Seed             *SeedHandler
	Pesticide        *PesticideHandler
	Factory          *FactoryHandler
	CropYear         *CropYearHandler
	FactorySeed      *FactorySeedHandler
	FactoryPesticide *FactoryPesticideHandler
	Car              *CarHandler
	Driver           *DriverHandler
	User             *UserHandler
}

func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Auth:             NewAuthHandler(svc.Auth),
		Province:         NewProvinceHandler(svc.Province),
		City:             NewCityHandler(svc.City),
		Village:          NewVillageHandler(svc.Village),
		MeasureUnit:      NewMeasureUnitHandler(svc.MeasureUnit),
		Seed:             NewSeedHandler(svc.Seed),
		Pesticide:        NewPesticideHandler(svc.Pesticide),
		Factory:          NewFactoryHandler(svc.Factory),
		CropYear:         NewCropYearHandler(svc.CropYear),
		FactorySeed:      NewFactorySeedHandler(svc.FactorySeed),
		FactoryPesticide: NewFactoryPesticideHandler(svc.FactoryPesticide),
		Car:              NewCarHandler(svc.Car),
		Driver:           NewDriverHandler(svc.Driver),
		User:             NewUserHandler(svc.User),
	}
}

// Success writes a 200 with the payload as-is.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 with the payload as-is.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Detail writes a confirmation message body.
func Detail(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"detail": message})
}

// Error writes an error message body with the given status.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"detail": message})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// FromError maps service errors onto HTTP statuses. Constraint
// violations the advisory pre-checks missed still land on 409.
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrConflict),
		errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated):
		Error(c, http.StatusConflict, err.Error())
	default:
		Error(c, http.StatusInternalServerError, "Internal server error")
	}
}

// ListParams reads the shared pagination/search/sort query params.
// Size is clamped to [1,100]; absent or non-positive values fall back to
// the resource default.
func ListParams(c *gin.Context, defaultSize int) repository.ListQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultSize)))
	if size < 1 {
		size = defaultSize
	} else if size > 100 {
		size = 100
	}

	return repository.ListQuery{
		Page:      page,
		Size:      size,
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
}

// pathID parses the :id path segment.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}

// queryID parses an optional numeric filter param; 0 means absent.
func queryID(c *gin.Context, name string) int64 {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0
	}
	return id
}

// GetUserID reads the authenticated user id set by the JWT middleware.
func GetUserID(c *gin.Context) int64 {
	userID, _ := c.Get("user_id")
	if id, ok := userID.(int64); ok {
		return id
	}
	return 0
}
