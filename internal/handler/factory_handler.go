package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/haghnazari/Havirkesht/internal/service"
)

// FactoryHandler serves /factories.
type FactoryHandler struct {
	svc *service.FactoryService
}

func NewFactoryHandler(svc *service.FactoryService) *FactoryHandler {
	return &FactoryHandler{svc: svc}
}

func (h *FactoryHandler) Create(c *gin.Context) {
	var req service.CreateFactoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	factory, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		FromError(c, err)
		return
	}
	Created(c, factory)
}

func (h *FactoryHandler) List(c *gin.Context) {
	page, err := h.svc.List(c.Request.Context(), ListParams(c, 50))
	if err != nil {
		FromError(c, err)
		return
	}
	Success(c, page)
}

func (h *FactoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	name, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		FromError(c, err)
		return
	}
	Detail(c, fmt.Sprintf("Factory %d: %s deleted successfully", id, name))
}

// CropYearHandler serves /crop-years.
type CropYearHandler struct {
	svc *service.CropYearService
}

func NewCropYearHandler(svc *service.CropYearService) *CropYearHandler {
	return &CropYearHandler{svc: svc}
}

func (h *CropYearHandler) Create(c *gin.Context) {
	var req service.CreateCropYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	cropYear, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		FromError(c, err)
		return
	}
	Created(c, cropYear)
}

func (h *CropYearHandler) List(c *gin.Context) {
	page, err := h.svc.List(c.Request.Context(), ListParams(c, 50))
	if err != nil {
		FromError(c, err)
		return
	}
	Success(c, page)
}

func (h *CropYearHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	name, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		FromError(c, err)
		return
	}
	Detail(c, fmt.Sprintf("Crop year %d: %s deleted successfully", id, name))
}
