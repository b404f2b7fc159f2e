// README: Route handler computes priced legs for an ordered list of places on one day.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"explore/internal/modules/route"
	"explore/internal/service"
	"explore/internal/types"
)

type DayRoutePlanner interface {
	Plan(ctx context.Context, req service.DayRouteRequest) ([]route.Leg, error)
}

type RouteHandler struct {
	planner DayRoutePlanner
}

func NewRouteHandler(planner DayRoutePlanner) *RouteHandler {
	useJSONFieldNames()
	return &RouteHandler{planner: planner}
}

type computeRoutesReq struct {
	Date   string   `json:"date" binding:"required,datetime=2006-01-02"`
	Mode   string   `json:"mode" binding:"omitempty,oneof=walk drive transit"`
	Places []string `json:"places" binding:"required,min=2,dive,required"`
}

type computeRoutesResp struct {
	Routes []route.Leg `json:"routes"`
}

// Compute handles POST /api/v1/routes.
func (h *RouteHandler) Compute(c *gin.Context) {
	var req computeRoutesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			writeError(c, http.StatusUnprocessableEntity, "Validation error", validationDescription(verrs))
			return
		}
		writeError(c, http.StatusBadRequest, "invalid json", err.Error())
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		writeError(c, http.StatusUnprocessableEntity, "Validation error", "date: must be in format 'YYYY-MM-DD'")
		return
	}
	ids := make([]types.ID, len(req.Places))
	for i, p := range req.Places {
		ids[i] = types.ID(p)
	}

	legs, err := h.planner.Plan(c.Request.Context(), service.DayRouteRequest{
		Date:     date,
		Mode:     types.TravelMode(req.Mode),
		PlaceIDs: ids,
	})
	if err != nil {
		writeRouteError(c, err)
		return
	}
	if legs == nil {
		legs = []route.Leg{}
	}
	writeJSON(c, http.StatusOK, computeRoutesResp{Routes: legs})
}
