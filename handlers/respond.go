package handlers

import (
	"net/http"
	"strconv"

	"daily-delivery-api/config"
	"daily-delivery-api/envelope"
	"daily-delivery-api/services"

	"github.com/gin-gonic/gin"
)

// respond maps a service envelope to its HTTP status and body. Error
// detail is attached outside release mode only.
func respond(c *gin.Context, res envelope.Result) {
	c.JSON(res.HTTPStatus(), res.Body(!config.IsRelease()))
}

func badBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Invalid request body: " + err.Error(),
	})
}

// listQuery pulls the shared pagination/sort query parameters.
func listQuery(c *gin.Context) services.ListQuery {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return services.ListQuery{
		Page:    page,
		Limit:   limit,
		SortBy:  c.Query("sortBy"),
		SortDir: c.Query("sortDir"),
	}
}
