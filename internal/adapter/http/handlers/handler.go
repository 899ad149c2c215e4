package handlers

import (
	"net/http"
	"strings"

	"isp_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

// UserIDHeader carries the id of the staff member acting on the request.
const UserIDHeader = "X-User-ID"

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidDate    = pkg.NewDomainErrorSimple("INVALID_DATE", "Dates must use the YYYY-MM-DD format", http.StatusBadRequest)
)

func actingUser(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(UserIDHeader))
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
