package handlers

import (
	"daily-delivery-api/services"
	"daily-delivery-api/validation"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	svc *services.CustomerService
}

func NewCustomerHandler(svc *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var in validation.CreateCustomerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c, err)
		return
	}
	respond(c, h.svc.Create(c.Request.Context(), in))
}

func (h *CustomerHandler) List(c *gin.Context) {
	q := services.CustomerListQuery{
		ListQuery: listQuery(c),
		Search:    c.Query("search"),
		Active:    c.Query("active"),
	}
	respond(c, h.svc.List(c.Request.Context(), q))
}

func (h *CustomerHandler) Get(c *gin.Context) {
	respond(c, h.svc.Get(c.Request.Context(), c.Param("id")))
}

func (h *CustomerHandler) Update(c *gin.Context) {
	var in validation.UpdateCustomerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c, err)
		return
	}
	respond(c, h.svc.Update(c.Request.Context(), c.Param("id"), in))
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	respond(c, h.svc.Delete(c.Request.Context(), c.Param("id")))
}

func (h *CustomerHandler) RegenerateAccessKey(c *gin.Context) {
	respond(c, h.svc.RegenerateAccessKey(c.Request.Context(), c.Param("id")))
}
