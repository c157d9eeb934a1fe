package handlers

import (
	"strconv"

	"daily-delivery-api/services"

	"github.com/gin-gonic/gin"
)

type PortalHandler struct {
	svc *services.PortalService
}

func NewPortalHandler(svc *services.PortalService) *PortalHandler {
	return &PortalHandler{svc: svc}
}

// Overview serves the customer self-service view. The access key comes
// from the X-Access-Key header (query param "key" as a fallback); each
// sub-collection has its own pagination/sort parameters.
func (h *PortalHandler) Overview(c *gin.Context) {
	key := c.GetHeader("X-Access-Key")
	if key == "" {
		key = c.Query("key")
	}

	q := services.PortalQuery{
		Key:      key,
		Orders:   subQuery(c, "orders"),
		Payments: subQuery(c, "payments"),
		DateFrom: c.Query("dateFrom"),
		DateTo:   c.Query("dateTo"),
	}
	respond(c, h.svc.Overview(c.Request.Context(), q))
}

func subQuery(c *gin.Context, prefix string) services.ListQuery {
	page, _ := strconv.Atoi(c.Query(prefix + "Page"))
	limit, _ := strconv.Atoi(c.Query(prefix + "Limit"))
	return services.ListQuery{
		Page:    page,
		Limit:   limit,
		SortBy:  c.Query(prefix + "SortBy"),
		SortDir: c.Query(prefix + "SortDir"),
	}
}
