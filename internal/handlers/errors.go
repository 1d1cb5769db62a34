package handlers

import (
	"github.com/gin-gonic/gin"
)

// attachError attaches err to the gin context so the observability middleware
// can include the reason in the request log. c.Error() returns *gin.Error (not
// the error interface), so we suppress errcheck here intentionally.
func attachError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err) //nolint:errcheck
	}
}

// respondDetail sends {"detail": detail} and attaches err for the request log.
// detail is a string for server errors and a []ValidationError for 422s.
func respondDetail(c *gin.Context, status int, detail any, err error) {
	attachError(c, err)
	c.JSON(status, gin.H{"detail": detail})
}
