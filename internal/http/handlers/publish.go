package handlers

import (
	"encoding/base64"
	"net/http"

	"designarena/internal/domain"
	"designarena/internal/locale"
	"designarena/internal/middleware"
	"designarena/internal/publisher"
	"designarena/internal/validation"
)

type publishRequest struct {
	Plan    *domain.Plan         `json:"plan" validate:"required"`
	Visuals []domain.VisualAsset `json:"visuals" validate:"dive"`
	Motion  *domain.MotionAsset  `json:"motion"`
	Locale  string               `json:"locale"`
}

type publishResponse struct {
	ZipBase64 string `json:"zipBase64"`
}

// Publish packages the plan, its visuals and the optional motion into a zip
// returned as base64.
func (a *App) Publish(w http.ResponseWriter, r *http.Request) {
	var req publishRequest
	if !a.decode(w, r, &req, "Invalid payload") {
		return
	}
	if req.Motion != nil {
		if err := req.Motion.Animation.Validate(); err != nil {
			a.json(w, http.StatusBadRequest, errorResponse{
				Error:   "invalid_request",
				Message: "Invalid payload",
				Issues:  []validation.Issue{{Path: "motion.lottieJson", Rule: err.Error()}},
			})
			return
		}
	}

	loc := req.Locale
	if loc == "" {
		loc = middleware.LocaleFromContext(r.Context())
	}
	archive, err := publisher.Package(req.Plan, req.Visuals, req.Motion, publisher.Options{Locale: loc})
	if err != nil {
		a.log(r).Error().Err(err).Msg("package failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to build package")
		return
	}

	if a.Metrics != nil {
		a.Metrics.PackagesBuilt.Inc()
		a.Metrics.ArchiveBytes.Observe(float64(len(archive)))
	}
	a.log(r).Info().
		Int("visuals", len(req.Visuals)).
		Bool("motion", req.Motion != nil).
		Str("locale", locale.Match(loc)).
		Int("bytes", len(archive)).
		Msg("package built")
	a.json(w, http.StatusOK, publishResponse{ZipBase64: base64.StdEncoding.EncodeToString(archive)})
}
