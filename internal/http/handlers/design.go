package handlers

import (
	"net/http"

	"designarena/internal/composer"
	"designarena/internal/domain"
	"designarena/internal/validation"
)

type designRequest struct {
	Plan *domain.Plan `json:"plan" validate:"required"`
}

type designResponse struct {
	Assets []domain.VisualAsset `json:"assets"`
}

// Design composes one visual per idea of the plan.
func (a *App) Design(w http.ResponseWriter, r *http.Request) {
	var req designRequest
	if !a.decode(w, r, &req, "Invalid plan") {
		return
	}

	if issues := validation.Ideas(a.Validate, req.Plan.DailyIdeas); len(issues) > 0 {
		a.json(w, http.StatusBadRequest, errorResponse{
			Error:   "invalid_request",
			Message: "Invalid plan",
			Issues:  issues,
		})
		return
	}

	assets := composer.ComposePlan(*req.Plan)
	if a.Metrics != nil {
		for _, asset := range assets {
			a.Metrics.VisualsGenerated.WithLabelValues(string(asset.DesignType)).Inc()
		}
	}
	a.log(r).Info().Int("assets", len(assets)).Msg("visuals composed")
	a.json(w, http.StatusOK, designResponse{Assets: assets})
}
