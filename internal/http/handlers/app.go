package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"designarena/internal/infra"
	"designarena/internal/observability"
	"designarena/internal/validation"
)

const defaultMaxBodyBytes = 32 << 20

// App carries the dependencies shared by every handler.
type App struct {
	Logger       infra.Logger
	Metrics      *observability.Collector
	Validate     *validator.Validate
	MaxBodyBytes int64
}

// NewApp wires an App from configuration.
func NewApp(cfg *infra.Config, logger infra.Logger, metrics *observability.Collector) *App {
	maxBody := int64(defaultMaxBodyBytes)
	if cfg != nil && cfg.MaxBodyBytes > 0 {
		maxBody = cfg.MaxBodyBytes
	}
	return &App{
		Logger:       logger,
		Metrics:      metrics,
		Validate:     validation.New(),
		MaxBodyBytes: maxBody,
	}
}

type errorResponse struct {
	Error   string             `json:"error"`
	Message string             `json:"message"`
	Issues  []validation.Issue `json:"issues,omitempty"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, errorResponse{Error: errCode, Message: message})
}

// log returns the request scoped logger, falling back to the app logger.
func (a *App) log(r *http.Request) *zerolog.Logger {
	if l := zerolog.Ctx(r.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &a.Logger
}

// decode reads a JSON body into dst and validates it. On failure the error
// response has already been written and false is returned.
func (a *App) decode(w http.ResponseWriter, r *http.Request, dst any, invalidMsg string) bool {
	body := http.MaxBytesReader(w, r.Body, a.MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			a.error(w, http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large")
			return false
		}
		a.error(w, http.StatusBadRequest, "bad_request", "invalid JSON payload")
		return false
	}
	if err := a.Validate.Struct(dst); err != nil {
		a.log(r).Debug().Err(err).Msg("request validation failed")
		a.json(w, http.StatusBadRequest, errorResponse{
			Error:   "invalid_request",
			Message: invalidMsg,
			Issues:  validation.Issues(err),
		})
		return false
	}
	return true
}
