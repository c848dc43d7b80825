package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/haghnazari/Havirkesht/internal/service"
)

// UserHandler serves /users.
type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateAdmin registers an operator account; only admins reach this
// route.
func (h *UserHandler) CreateAdmin(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		FromError(c, err)
		return
	}
	Created(c, user)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		FromError(c, err)
		return
	}
	Success(c, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		FromError(c, err)
		return
	}
	Success(c, user)
}

func (h *UserHandler) Disable(c *gin.Context) {
	h.setDisabled(c, true)
}

func (h *UserHandler) Enable(c *gin.Context) {
	h.setDisabled(c, false)
}

func (h *UserHandler) setDisabled(c *gin.Context, disabled bool) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.svc.SetDisabled(c.Request.Context(), id, disabled)
	if err != nil {
		FromError(c, err)
		return
	}
	Success(c, user)
}

func (h *UserHandler) List(c *gin.Context) {
	page, err := h.svc.List(c.Request.Context(), ListParams(c, 10))
	if err != nil {
		FromError(c, err)
		return
	}
	Success(c, page)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	username, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		FromError(c, err)
		return
	}
	Detail(c, fmt.Sprintf("User %d: %s deleted successfully", id, username))
}
