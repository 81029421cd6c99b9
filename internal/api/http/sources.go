package http

import (
	"net/http"

	"github.com/headlinehq/newswire/internal/api/domain"
	"github.com/headlinehq/newswire/internal/api/service"
	"github.com/headlinehq/newswire/pkg/apisdk"
	"github.com/headlinehq/newswire/pkg/httpx"
)

// SourcesHandler handles the news source CRUD endpoints.
type SourcesHandler struct {
	SourceService *service.SourceService
}

func toSourceResponse(s domain.Source) apisdk.SourceResponse {
	return apisdk.SourceResponse{
		ID:          s.ID,
		Name:        s.Name,
		HomepageURL: s.HomepageURL,
		LogoURL:     s.LogoURL,
		IsEnabled:   s.IsEnabled,
		CreatedAt:   s.CreatedAt,
	}
}

// HandleCreate handles POST /v1/sources
//
//	@Summary		Create Source
//	@Tags			Sources
//	@Accept			json
//	@Produce		json
//	@Security		APIKeyAuth
//	@Param			request	body		apisdk.CreateSourceRequest	true	"Source to register"
//	@Success		201		{object}	apisdk.SourceResponse
//	@Failure		400		{object}	apisdk.ErrorResponse	"error, detail"
//	@Failure		401		{object}	apisdk.ErrorResponse	"error, detail"
//	@Router			/v1/sources [post].
func (h *SourcesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req apisdk.CreateSourceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	enabled := true
	if req.IsEnabled != nil {
		enabled = *req.IsEnabled
	}

	source, err := h.SourceService.CreateSource(r.Context(), domain.Source{
		Name:        req.Name,
		HomepageURL: req.HomepageURL,
		LogoURL:     req.LogoURL,
		IsEnabled:   enabled,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toSourceResponse(source))
}

// HandleGet handles GET /v1/sources/{id}
//
//	@Summary		Get Source
//	@Tags			Sources
//	@Produce		json
//	@Security		APIKeyAuth
//	@Param			id	path		string	true	"Source ID"
//	@Success		200	{object}	apisdk.SourceResponse
//	@Failure		401	{object}	apisdk.ErrorResponse	"error, detail"
//	@Failure		404	{object}	apisdk.ErrorResponse	"error, detail"
//	@Router			/v1/sources/{id} [get].
func (h *SourcesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	source, err := h.SourceService.GetSource(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSourceResponse(source))
}

// HandleList handles GET /v1/sources
//
//	@Summary		List Sources
//	@Tags			Sources
//	@Produce		json
//	@Security		APIKeyAuth
//	@Success		200	{object}	apisdk.SourceListResponse
//	@Failure		401	{object}	apisdk.ErrorResponse	"error, detail"
//	@Router			/v1/sources [get].
func (h *SourcesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	sources, err := h.SourceService.ListSources(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := apisdk.SourceListResponse{Sources: make([]apisdk.SourceResponse, len(sources))}
	for i, s := range sources {
		out.Sources[i] = toSourceResponse(s)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleUpdate handles PUT /v1/sources/{id}
//
//	@Summary		Update Source
//	@Description	Applies a partial update; omitted fields are left unchanged.
//	@Tags			Sources
//	@Accept			json
//	@Produce		json
//	@Security		APIKeyAuth
//	@Param			id		path		string						true	"Source ID"
//	@Param			request	body		apisdk.UpdateSourceRequest	true	"Fields to update"
//	@Success		200		{object}	apisdk.SourceResponse
//	@Failure		400		{object}	apisdk.ErrorResponse	"error, detail"
//	@Failure		401		{object}	apisdk.ErrorResponse	"error, detail"
//	@Failure		404		{object}	apisdk.ErrorResponse	"error, detail"
//	@Router			/v1/sources/{id} [put].
func (h *SourcesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req apisdk.UpdateSourceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	source, err := h.SourceService.UpdateSource(r.Context(), r.PathValue("id"), domain.SourcePatch{
		Name:        req.Name,
		HomepageURL: req.HomepageURL,
		LogoURL:     req.LogoURL,
		IsEnabled:   req.IsEnabled,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSourceResponse(source))
}

// HandleDelete handles DELETE /v1/sources/{id}
//
//	@Summary		Delete Source
//	@Description	Deletes a source and every article collected from it.
//	@Tags			Sources
//	@Security		APIKeyAuth
//	@Param			id	path	string	true	"Source ID"
//	@Success		204
//	@Failure		401	{object}	apisdk.ErrorResponse	"error, detail"
//	@Failure		404	{object}	apisdk.ErrorResponse	"error, detail"
//	@Router			/v1/sources/{id} [delete].
func (h *SourcesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.SourceService.DeleteSource(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
