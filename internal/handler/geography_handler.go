package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/haghnazari/Havirkesht/internal/service"
)

// ProvinceHandler serves /provinces.
type ProvinceHandler struct {
	svc *service.ProvinceService
}

func NewProvinceHandler(svc *service.ProvinceService) *ProvinceHandler {
	return &ProvinceHandler{svc: svc}
}

// Create registers a province. Responds 200 rather than 201; the admin
// panel depends on it.
func (h *ProvinceHandler) Create(c *gin.Context) {
	var req service.CreateProvinceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	province, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		FromError(c, err)
		return
	}
	Success(c, province)
}

func (h *ProvinceHandler) List(c *gin.Context) {
	page, err := h.svc.List(c.Request.Context(), ListParams(c, 50))
	if err != nil {
		FromError(c, err)
		return
	}
	Success(c, page)
}

func (h *ProvinceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	name, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		FromError(c, err)
		return
	}
	Detail(c, fmt.Sprintf("Province %d: %s deleted successfully", id, name))
}

// CityHandler serves /cities.
type CityHandler struct {
	svc *service.CityService
}

func NewCityHandler(svc *service.CityService) *CityHandler {
	return &CityHandler{svc: svc}
}

func (h *CityHandler) Create(c *gin.Context) {
	var req service.CreateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	city, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		FromError(c, err)
		return
	}
	Created(c, city)
}

func (h *CityHandler) List(c *gin.Context) {
	page, err := h.svc.List(c.Request.Context(), ListParams(c, 50), queryID(c, "province_id"))
	if err != nil {
		FromError(c, err)
		return
	}
	Success(c, page)
}

func (h *CityHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	name, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		FromError(c, err)
		return
	}
	Detail(c, fmt.Sprintf("City %d: %s deleted successfully", id, name))
}

// VillageHandler serves /villages.
type VillageHandler struct {
	svc *service.VillageService
}

func NewVillageHandler(svc *service.VillageService) *VillageHandler {
	return &VillageHandler{svc: svc}
}

func (h *VillageHandler) Create(c *gin.Context) {
	var req service.CreateVillageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	village, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		FromError(c, err)
		return
	}
	Created(c, village)
}

func (h *VillageHandler) List(c *gin.Context) {
	page, err := h.svc.List(c.Request.Context(), ListParams(c, 50), queryID(c, "city_id"))
	if err != nil {
		FromError(c, err)
		return
	}
	Success(c, page)
}

func (h *VillageHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	name, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		FromError(c, err)
		return
	}
	Detail(c, fmt.Sprintf("Village %d: %s deleted successfully", id, name))
}
