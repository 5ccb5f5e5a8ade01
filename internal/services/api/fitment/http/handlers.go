// Package http provides http transport for fitment
package http

import (
	stdhttp "net/http"

	"tirefit/internal/modkit/httpkit"
	"tirefit/internal/services/api/fitment/domain"
	svc "tirefit/internal/services/api/fitment/service"
)

// KeyHeader echoes the result key of an alternatives search
const KeyHeader = "X-Fitment-Key"

// Register mounts fitment endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	domain.RegisterValidators()
	h := &handlers{svc: s}

	httpkit.PostJSON(r, "/validate", h.validate)
	httpkit.PostJSON(r, "/diameter", h.diameter)
	httpkit.PostJSON(r, "/alternatives", h.alternatives)
	httpkit.PostJSON(r, "/impact", h.impact)
	httpkit.PostJSON(r, "/compare", h.compare)
	httpkit.Get(r, "/sizes/{label}", h.describe)
	httpkit.Get(r, "/speed-ratings", h.speedRatings)
	httpkit.Get(r, "/defaults", h.defaults)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /fitment/validate Fitment fitmentValidate
// @Summary Validate a tire size against the domain bounds
// @Tags Fitment
// @Accept json
// @Produce json
// @Param payload body domain.SizeInput true "Size"
// @Success 200 {object} domain.ValidateResponse "ok"
// @Router /fitment/validate [post]
func (h *handlers) validate(r *stdhttp.Request, in domain.SizeInput) (any, error) {
	return h.svc.Validate(r.Context(), in)
}

// swagger:route POST /fitment/diameter Fitment fitmentDiameter
// @Summary Rolling diameter and geometry of a size
// @Tags Fitment
// @Accept json
// @Produce json
// @Param payload body domain.SizeInput true "Size"
// @Success 200 {object} fitment.Geometry "ok"
// @Router /fitment/diameter [post]
func (h *handlers) diameter(r *stdhttp.Request, in domain.SizeInput) (any, error) {
	return h.svc.Diameter(r.Context(), in)
}

// swagger:route POST /fitment/alternatives Fitment fitmentAlternatives
// @Summary Alternative sizes within the diameter tolerance, best first
// @Tags Fitment
// @Accept json
// @Produce json
// @Param payload body domain.AlternativesRequest true "Search"
// @Success 200 {object} domain.AlternativesResponse "ok"
// @Header 200 {string} X-Fitment-Key "result key"
// @Router /fitment/alternatives [post]
func (h *handlers) alternatives(r *stdhttp.Request, in domain.AlternativesRequest) (any, error) {
	out, err := h.svc.Alternatives(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.WithHeader(httpkit.OK(out), KeyHeader, out.Key), nil
}

// swagger:route POST /fitment/impact Fitment fitmentImpact
// @Summary Speedometer impact of a diameter change
// @Tags Fitment
// @Accept json
// @Produce json
// @Param payload body domain.ImpactRequest true "Diameters or sizes"
// @Success 200 {object} domain.ImpactResponse "ok"
// @Router /fitment/impact [post]
func (h *handlers) impact(r *stdhttp.Request, in domain.ImpactRequest) (any, error) {
	return h.svc.Impact(r.Context(), in)
}

// swagger:route POST /fitment/compare Fitment fitmentCompare
// @Summary Side by side comparison of two sizes
// @Tags Fitment
// @Accept json
// @Produce json
// @Param payload body domain.CompareRequest true "Sizes"
// @Success 200 {object} fitment.Comparison "ok"
// @Router /fitment/compare [post]
func (h *handlers) compare(r *stdhttp.Request, in domain.CompareRequest) (any, error) {
	return h.svc.Compare(r.Context(), in)
}

// swagger:route GET /fitment/sizes/{label} Fitment fitmentDescribe
// @Summary Parse a size label and describe it
// @Tags Fitment
// @Produce json
// @Param label path string true "Size label, e.g. 205-55R16-91V"
// @Success 200 {object} domain.SizeInfo "ok"
// @Failure 422 {object} httpkit.Envelope "unparseable label"
// @Router /fitment/sizes/{label} [get]
func (h *handlers) describe(r *stdhttp.Request) (any, error) {
	return h.svc.Describe(r.Context(), labelFromPath(httpkit.Param(r, "label")))
}

// swagger:route GET /fitment/speed-ratings Fitment fitmentSpeedRatings
// @Summary Speed rating table in published order
// @Tags Fitment
// @Produce json
// @Success 200 {array} tiresize.SpeedRating "ok"
// @Router /fitment/speed-ratings [get]
func (h *handlers) speedRatings(r *stdhttp.Request) (any, error) {
	return h.svc.SpeedRatings(r.Context()), nil
}

// swagger:route GET /fitment/defaults Fitment fitmentDefaults
// @Summary Search defaults used when a request leaves a parameter out
// @Tags Fitment
// @Produce json
// @Success 200 {object} domain.Defaults "ok"
// @Router /fitment/defaults [get]
func (h *handlers) defaults(*stdhttp.Request) (any, error) {
	return h.svc.Defaults(), nil
}
