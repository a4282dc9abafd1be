package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edirooss/zmux-server/internal/api/dto"
	"github.com/edirooss/zmux-server/internal/api/jsonx"
	"github.com/edirooss/zmux-server/internal/service"
)

// legacyBody is the per-algorithm legacy request shape: same as
// SchedulingRequest but without the `algorithm` field — the route itself
// names the algorithm, per original_source's api/routers/algorithms.py.
type legacyBody struct {
	Processes         []dto.ProcessIn   `json:"processes"`
	ContextSwitchTime int               `json:"context_switch_time"`
	TimeSlice         *int              `json:"time_slice,omitempty"`
	Config            *dto.PolicyConfig `json:"config,omitempty"`
}

// Legacy builds a gin handler for the fixed algorithm, accepting the
// algorithm-less legacy body and delegating to the same service path as
// /execute.
func Legacy(svc *service.SimulationService, algorithm string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body legacyBody
		if err := jsonx.ParseStrictJSONBody(c.Request, &body); err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		req := dto.SchedulingRequest{
			Algorithm:         algorithm,
			Processes:         body.Processes,
			ContextSwitchTime: body.ContextSwitchTime,
			TimeSlice:         body.TimeSlice,
			Config:            body.Config,
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
