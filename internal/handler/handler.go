package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gahette/judo-library/internal/failure"
)

// paramID parses the :id route parameter. Anything that is not a positive
// integer is rejected here, before any store access.
func paramID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.ErrMissingParameter
	}
	return id, nil
}
