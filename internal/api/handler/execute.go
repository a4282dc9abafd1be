package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edirooss/zmux-server/internal/api/dto"
	"github.com/edirooss/zmux-server/internal/api/jsonx"
	"github.com/edirooss/zmux-server/internal/service"
)

// Execute handles POST /execute: run one algorithm over one process set.
func Execute(svc *service.SimulationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SchedulingRequest
		if err := jsonx.ParseStrictJSONBody(c.Request, &req); err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		req.ApplyDefaults()

		resp, err := svc.Execute(req)
		if err != nil {
			_ = c.Error(err)
			c.JSON(statusFor(err), gin.H{"message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}
