package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/haghnazari/Havirkesht/internal/service"
)

// CarHandler serves /cars.
type CarHandler struct {
	svc *service.CarService
}

func NewCarHandler(svc *service.CarService) *CarHandler {
	return &CarHandler{svc: svc}
}

func (h *CarHandler) Create(c *gin.Context) {
	var req service.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	car, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		FromError(c, err)
		return
	}
	Created(c, car)
}

func (h *CarHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	car, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		FromError(c, err)
		return
	}
	Success(c, car)
}

func (h *CarHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	car, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		FromError(c, err)
		return
	}
	Success(c, car)
}

func (h *CarHandler) List(c *gin.Context) {
	page, err := h.svc.List(c.Request.Context(), ListParams(c, 50))
	if err != nil {
		FromError(c, err)
		return
	}
	Success(c, page)
}

func (h *CarHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		FromError(c, err)
		return
	}
	Detail(c, fmt.Sprintf("Car %d deleted successfully", id))
}

// DriverHandler serves /drivers.
type DriverHandler struct {
	svc *service.DriverService
}

func NewDriverHandler(svc *service.DriverService) *DriverHandler {
	return &DriverHandler{svc: svc}
}

func (h *DriverHandler) Create(c *gin.Context) {
	var req service.CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	driver, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		FromError(c, err)
		return
	}
	Created(c, driver)
}

func (h *DriverHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	driver, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		FromError(c, err)
		return
	}
	Success(c, driver)
}

func (h *DriverHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.UpdateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	driver, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		FromError(c, err)
		return
	}
	Success(c, driver)
}

func (h *DriverHandler) List(c *gin.Context) {
	page, err := h.svc.List(c.Request.Context(), ListParams(c, 50), queryID(c, "car_id"))
	if err != nil {
		FromError(c, err)
		return
	}
	Success(c, page)
}

func (h *DriverHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	name, lastName, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		FromError(c, err)
		return
	}
	Detail(c, fmt.Sprintf("Driver %d:%s %s deleted successfully", id, name, lastName))
}
