package http

import (
	"net/http"

	"github.com/headlinehq/newswire/internal/api/domain"
	"github.com/headlinehq/newswire/internal/api/service"
	"github.com/headlinehq/newswire/pkg/apisdk"
	"github.com/headlinehq/newswire/pkg/httpx"
)

// TopicsHandler handles the topic CRUD endpoints.
type TopicsHandler struct {
	TopicService *service.TopicService
}

func toTopicResponse(t domain.Topic) apisdk.TopicResponse {
	return apisdk.TopicResponse{
		ID:            t.ID,
		Label:         t.Label,
		CoverageScore: t.CoverageScore,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

// HandleCreate handles POST /v1/topics
//
//	@Summary		Create Topic
//	@Tags			Topics
//	@Accept			json
//	@Produce		json
//	@Security		APIKeyAuth
//	@Param			request	body		apisdk.CreateTopicRequest	true	"Topic to create"
//	@Success		201		{object}	apisdk.TopicResponse
//	@Failure		400		{object}	apisdk.ErrorResponse	"error, detail"
//	@Failure		401		{object}	apisdk.ErrorResponse	"error, detail"
//	@Router			/v1/topics [post].
func (h *TopicsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req apisdk.CreateTopicRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	topic, err := h.TopicService.CreateTopic(r.Context(), req.Label)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toTopicResponse(topic))
}

// HandleGet handles GET /v1/topics/{id}
//
//	@Summary		Get Topic
//	@Tags			Topics
//	@Produce		json
//	@Security		APIKeyAuth
//	@Param			id	path		string	true	"Topic ID"
//	@Success		200	{object}	apisdk.TopicResponse
//	@Failure		401	{object}	apisdk.ErrorResponse	"error, detail"
//	@Failure		404	{object}	apisdk.ErrorResponse	"error, detail"
//	@Router			/v1/topics/{id} [get].
func (h *TopicsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	topic, err := h.TopicService.GetTopic(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toTopicResponse(topic))
}

// HandleList handles GET /v1/topics
//
//	@Summary		List Topics
//	@Tags			Topics
//	@Produce		json
//	@Security		APIKeyAuth
//	@Success		200	{object}	apisdk.TopicListResponse
//	@Failure		401	{object}	apisdk.ErrorResponse	"error, detail"
//	@Router			/v1/topics [get].
func (h *TopicsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	topics, err := h.TopicService.ListTopics(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := apisdk.TopicListResponse{Topics: make([]apisdk.TopicResponse, len(topics))}
	for i, t := range topics {
		out.Topics[i] = toTopicResponse(t)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleUpdate handles PUT /v1/topics/{id}
//
//	@Summary		Update Topic
//	@Description	Applies a partial update; omitted fields are left unchanged.
//	@Tags			Topics
//	@Accept			json
//	@Produce		json
//	@Security		APIKeyAuth
//	@Param			id		path		string						true	"Topic ID"
//	@Param			request	body		apisdk.UpdateTopicRequest	true	"Fields to update"
//	@Success		200		{object}	apisdk.TopicResponse
//	@Failure		400		{object}	apisdk.ErrorResponse	"error, detail"
//	@Failure		401		{object}	apisdk.ErrorResponse	"error, detail"
//	@Failure		404		{object}	apisdk.ErrorResponse	"error, detail"
//	@Router			/v1/topics/{id} [put].
func (h *TopicsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req apisdk.UpdateTopicRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	topic, err := h.TopicService.UpdateTopic(r.Context(), r.PathValue("id"), domain.TopicPatch{
		Label:         req.Label,
		CoverageScore: req.CoverageScore,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toTopicResponse(topic))
}

// HandleDelete handles DELETE /v1/topics/{id}
//
//	@Summary		Delete Topic
//	@Description	Deletes a topic and every article tagged with it.
//	@Tags			Topics
//	@Security		APIKeyAuth
//	@Param			id	path	string	true	"Topic ID"
//	@Success		204
//	@Failure		401	{object}	apisdk.ErrorResponse	"error, detail"
//	@Failure		404	{object}	apisdk.ErrorResponse	"error, detail"
//	@Router			/v1/topics/{id} [delete].
func (h *TopicsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.TopicService.DeleteTopic(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
