package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edirooss/zmux-server/internal/api/dto"
	"github.com/edirooss/zmux-server/internal/api/jsonx"
	"github.com/edirooss/zmux-server/internal/cache"
	"github.com/edirooss/zmux-server/internal/service"
)

// Compare handles POST /compare: run a set of algorithms over the same
// process set and return one summary row per algorithm. Results are
// memoized through cmp when it's configured with a reachable cache.
func Compare(svc *service.SimulationService, cmp *cache.CompareCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CompareRequest
		if err := jsonx.ParseStrictJSONBody(c.Request, &req); err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		req.ApplyDefaults()

		rows, err := cmp.Get(c.Request.Context(), req, func() ([]dto.CompareRow, error) {
			return svc.Compare(req)
		})
		if err != nil {
			_ = c.Error(err)
			c.JSON(statusFor(err), gin.H{"message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, rows)
	}
}
