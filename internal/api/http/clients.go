package http

import (
	"net/http"

	"github.com/headlinehq/newswire/internal/api/domain"
	"github.com/headlinehq/newswire/internal/api/service"
	"github.com/headlinehq/newswire/pkg/apisdk"
	"github.com/headlinehq/newswire/pkg/httpx"
)

// ClientsHandler handles the admin client management endpoints.
type ClientsHandler struct {
	ClientService *service.ClientService
}

func toClientResponse(c domain.APIClient) apisdk.ClientResponse {
	return apisdk.ClientResponse{
		ID:         c.ID,
		Name:       c.Name,
		IsActive:   c.IsActive,
		UseCount:   c.UseCount,
		LastUsedAt: c.LastUsedAt,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// HandleCreate handles POST /v1/clients
//
//	@Summary		Create API Client
//	@Description	Registers a new API client. The plaintext secret is returned once and cannot be retrieved again.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		apisdk.CreateClientRequest	true	"Client registration request"
//	@Success		201		{object}	apisdk.CreateClientResponse	"client plus one-time secret"
//	@Failure		400		{object}	apisdk.ErrorResponse		"error, detail"
//	@Failure		401		{object}	apisdk.ErrorResponse		"error, detail"
//	@Failure		409		{object}	apisdk.ErrorResponse		"error, detail"
//	@Router			/v1/clients [post].
func (h *ClientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req apisdk.CreateClientRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	client, secret, err := h.ClientService.CreateClient(r.Context(), req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, apisdk.CreateClientResponse{
		ClientResponse: toClientResponse(client),
		Secret:         secret,
	})
}

// HandleList handles GET /v1/clients
//
//	@Summary		List API Clients
//	@Tags			Clients
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	apisdk.ClientListResponse
//	@Failure		401	{object}	apisdk.ErrorResponse	"error, detail"
//	@Router			/v1/clients [get].
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	clients, err := h.ClientService.ListClients(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := apisdk.ClientListResponse{Clients: make([]apisdk.ClientResponse, len(clients))}
	for i, c := range clients {
		out.Clients[i] = toClientResponse(c)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleActivate handles POST /v1/clients/{id}/activate
//
//	@Summary		Activate API Client
//	@Tags			Clients
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Client ID"
//	@Success		204
//	@Failure		401	{object}	apisdk.ErrorResponse	"error, detail"
//	@Failure		404	{object}	apisdk.ErrorResponse	"error, detail"
//	@Router			/v1/clients/{id}/activate [post].
func (h *ClientsHandler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true)
}

// HandleDeactivate handles POST /v1/clients/{id}/deactivate
//
//	@Summary		Deactivate API Client
//	@Description	Disables a client without deleting it. Its credentials stop being accepted immediately.
//	@Tags			Clients
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Client ID"
//	@Success		204
//	@Failure		401	{object}	apisdk.ErrorResponse	"error, detail"
//	@Failure		404	{object}	apisdk.ErrorResponse	"error, detail"
//	@Router			/v1/clients/{id}/deactivate [post].
func (h *ClientsHandler) HandleDeactivate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false)
}

func (h *ClientsHandler) setActive(w http.ResponseWriter, r *http.Request, active bool) {
	if err := h.ClientService.SetActive(r.Context(), r.PathValue("id"), active); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete handles DELETE /v1/clients/{id}
//
//	@Summary		Delete API Client
//	@Tags			Clients
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Client ID"
//	@Success		204
//	@Failure		401	{object}	apisdk.ErrorResponse	"error, detail"
//	@Failure		404	{object}	apisdk.ErrorResponse	"error, detail"
//	@Router			/v1/clients/{id} [delete].
func (h *ClientsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ClientService.DeleteClient(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
