package handlers

import (
	"daily-delivery-api/services"
	"daily-delivery-api/validation"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	svc *services.PaymentService
}

func NewPaymentHandler(svc *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var in validation.CreatePaymentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c, err)
		return
	}
	respond(c, h.svc.Create(c.Request.Context(), in))
}

func (h *PaymentHandler) List(c *gin.Context) {
	q := services.PaymentListQuery{
		ListQuery:  listQuery(c),
		CustomerID: c.Query("customerId"),
		DateFrom:   c.Query("dateFrom"),
		DateTo:     c.Query("dateTo"),
	}
	respond(c, h.svc.List(c.Request.Context(), q))
}

func (h *PaymentHandler) Get(c *gin.Context) {
	respond(c, h.svc.Get(c.Request.Context(), c.Param("id")))
}

func (h *PaymentHandler) Delete(c *gin.Context) {
	respond(c, h.svc.Delete(c.Request.Context(), c.Param("id")))
}
