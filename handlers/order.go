package handlers

import (
	"daily-delivery-api/services"
	"daily-delivery-api/validation"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	svc *services.OrderService
}

func NewOrderHandler(svc *services.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var in validation.CreateOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c, err)
		return
	}
	respond(c, h.svc.Create(c.Request.Context(), in))
}

func (h *OrderHandler) List(c *gin.Context) {
	q := services.OrderListQuery{
		ListQuery:  listQuery(c),
		CustomerID: c.Query("customerId"),
		Date:       c.Query("date"),
		DateFrom:   c.Query("dateFrom"),
		DateTo:     c.Query("dateTo"),
	}
	respond(c, h.svc.List(c.Request.Context(), q))
}

func (h *OrderHandler) Get(c *gin.Context) {
	respond(c, h.svc.Get(c.Request.Context(), c.Param("id")))
}

func (h *OrderHandler) Update(c *gin.Context) {
	var in validation.UpdateOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c, err)
		return
	}
	respond(c, h.svc.Update(c.Request.Context(), c.Param("id"), in))
}

func (h *OrderHandler) Delete(c *gin.Context) {
	respond(c, h.svc.Delete(c.Request.Context(), c.Param("id")))
}
