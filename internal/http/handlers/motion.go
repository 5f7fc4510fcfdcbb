package handlers

import (
	"errors"
	"net/http"

	"designarena/internal/domain"
	"designarena/internal/motion"
)

type motionRequest struct {
	Plan      *domain.Plan `json:"plan" validate:"required"`
	IdeaIndex int          `json:"idea_index" validate:"gte=0"`
}

type motionResponse struct {
	Motion domain.MotionAsset `json:"motion"`
}

// Motion synthesizes the animation for one representative idea of the plan,
// the first one unless idea_index says otherwise.
func (a *App) Motion(w http.ResponseWriter, r *http.Request) {
	var req motionRequest
	if !a.decode(w, r, &req, "Invalid plan") {
		return
	}

	idea, err := motion.SelectIdea(*req.Plan, req.IdeaIndex)
	switch {
	case errors.Is(err, domain.ErrEmptyPlan):
		a.error(w, http.StatusBadRequest, "invalid_request", "plan has no ideas")
		return
	case errors.Is(err, domain.ErrIdeaOutOfRange):
		a.error(w, http.StatusBadRequest, "invalid_request", "idea_index out of range")
		return
	case err != nil:
		a.error(w, http.StatusInternalServerError, "internal", "failed to select idea")
		return
	}

	m := motion.Synthesize(idea)
	if a.Metrics != nil {
		a.Metrics.MotionsGenerated.Inc()
	}
	a.log(r).Info().Str("motion", m.ID).Msg("motion synthesized")
	a.json(w, http.StatusOK, motionResponse{Motion: m})
}
