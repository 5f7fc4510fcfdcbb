package handlers

import (
	"math/rand/v2"
	"net/http"
	"strconv"

	"designarena/internal/domain"
	"designarena/internal/strategist"
)

type planResponse struct {
	Plan domain.Plan `json:"plan"`
	Seed uint64      `json:"seed"`
}

// Plan turns a brief into a strategy plan. An optional ?seed= query makes
// the style and keyword picks reproducible.
func (a *App) Plan(w http.ResponseWriter, r *http.Request) {
	seed := rand.Uint64()
	if raw := r.URL.Query().Get("seed"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "seed must be an unsigned integer")
			return
		}
		seed = parsed
	}

	var brief domain.Brief
	if !a.decode(w, r, &brief, "Invalid input") {
		return
	}

	plan := strategist.Generate(brief, strategist.NewSource(seed))
	if a.Metrics != nil {
		a.Metrics.PlansGenerated.Inc()
	}
	a.log(r).Info().Str("niche", brief.Niche).Int("ideas", len(plan.DailyIdeas)).Uint64("seed", seed).Msg("plan generated")
	a.json(w, http.StatusOK, planResponse{Plan: plan, Seed: seed})
}
