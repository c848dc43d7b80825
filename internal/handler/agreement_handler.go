package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/haghnazari/Havirkesht/internal/repository"
	"github.com/haghnazari/Havirkesht/internal/service"
)

func agreementFilter(c *gin.Context, productParam string) repository.AgreementFilter {
	return repository.AgreementFilter{
		FactoryID:  queryID(c, "factory_id"),
		ProductID:  queryID(c, productParam),
		CropYearID: queryID(c, "crop_year_id"),
	}
}

// FactorySeedHandler serves /factory-seeds.
type FactorySeedHandler struct {
	svc *service.FactorySeedService
}

func NewFactorySeedHandler(svc *service.FactorySeedService) *FactorySeedHandler {
	return &FactorySeedHandler{svc: svc}
}

func (h *FactorySeedHandler) Create(c *gin.Context) {
	var req service.CreateFactorySeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	row, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		FromError(c, err)
		return
	}
	Created(c, row)
}

func (h *FactorySeedHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.UpdateFactorySeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	row, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		FromError(c, err)
		return
	}
	Success(c, row)
}

func (h *FactorySeedHandler) List(c *gin.Context) {
	page, err := h.svc.List(c.Request.Context(), ListParams(c, 50), agreementFilter(c, "seed_id"))
	if err != nil {
		FromError(c, err)
		return
	}
	Success(c, page)
}

func (h *FactorySeedHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		FromError(c, err)
		return
	}
	Detail(c, fmt.Sprintf("Factory seed %d deleted successfully", id))
}

// FactoryPesticideHandler serves /factory-pesticides.
type FactoryPesticideHandler struct {
	svc *service.FactoryPesticideService
}

func NewFactoryPesticideHandler(svc *service.FactoryPesticideService) *FactoryPesticideHandler {
	return &FactoryPesticideHandler{svc: svc}
}

func (h *FactoryPesticideHandler) Create(c *gin.Context) {
	var req service.CreateFactoryPesticideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	row, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		FromError(c, err)
		return
	}
	Created(c, row)
}

func (h *FactoryPesticideHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.UpdateFactoryPesticideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	row, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		FromError(c, err)
		return
	}
	Success(c, row)
}

func (h *FactoryPesticideHandler) List(c *gin.Context) {
	page, err := h.svc.List(c.Request.Context(), ListParams(c, 50), agreementFilter(c, "pesticide_id"))
	if err != nil {
		FromError(c, err)
		return
	}
	Success(c, page)
}

func (h *FactoryPesticideHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		FromError(c, err)
		return
	}
	Detail(c, fmt.Sprintf("Factory pesticide %d deleted successfully", id))
}
