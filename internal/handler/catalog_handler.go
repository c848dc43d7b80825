package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/haghnazari/Havirkesht/internal/service"
)

// MeasureUnitHandler serves /measure-units.
type MeasureUnitHandler struct {
	svc *service.MeasureUnitService
}

func NewMeasureUnitHandler(svc *service.MeasureUnitService) *MeasureUnitHandler {
	return &MeasureUnitHandler{svc: svc}
}

func (h *MeasureUnitHandler) Create(c *gin.Context) {
	var req service.CreateMeasureUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	unit, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		FromError(c, err)
		return
	}
	Created(c, unit)
}

func (h *MeasureUnitHandler) List(c *gin.Context) {
	page, err := h.svc.List(c.Request.Context(), ListParams(c, 50))
	if err != nil {
		FromError(c, err)
		return
	}
	Success(c, page)
}

func (h *MeasureUnitHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	name, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		FromError(c, err)
		return
	}
	Detail(c, fmt.Sprintf("Measure unit %d: %s deleted successfully", id, name))
}

// SeedHandler serves /seeds.
type SeedHandler struct {
	svc *service.SeedService
}

func NewSeedHandler(svc *service.SeedService) *SeedHandler {
	return &SeedHandler{svc: svc}
}

func (h *SeedHandler) Create(c *gin.Context) {
	var req service.CreateSeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	seed, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		FromError(c, err)
		return
	}
	Created(c, seed)
}

func (h *SeedHandler) List(c *gin.Context) {
	page, err := h.svc.List(c.Request.Context(), ListParams(c, 50), queryID(c, "measure_unit_id"))
	if err != nil {
		FromError(c, err)
		return
	}
	Success(c, page)
}

func (h *SeedHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	name, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		FromError(c, err)
		return
	}
	Detail(c, fmt.Sprintf("Seed %d: %s deleted successfully", id, name))
}

// PesticideHandler serves /pesticides.
type PesticideHandler struct {
	svc *service.PesticideService
}

func NewPesticideHandler(svc *service.PesticideService) *PesticideHandler {
	return &PesticideHandler{svc: svc}
}

func (h *PesticideHandler) Create(c *gin.Context) {
	var req service.CreatePesticideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	pesticide, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		FromError(c, err)
		return
	}
	Created(c, pesticide)
}

func (h *PesticideHandler) List(c *gin.Context) {
	page, err := h.svc.List(c.Request.Context(), ListParams(c, 50), queryID(c, "measure_unit_id"))
	if err != nil {
		FromError(c, err)
		return
	}
	Success(c, page)
}

func (h *PesticideHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	name, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		FromError(c, err)
		return
	}
	Detail(c, fmt.Sprintf("Pesticide %d: %s deleted successfully", id, name))
}
