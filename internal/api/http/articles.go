package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/headlinehq/newswire/internal/api/domain"
	"github.com/headlinehq/newswire/internal/api/metrics"
	"github.com/headlinehq/newswire/internal/api/service"
	"github.com/headlinehq/newswire/pkg/apisdk"
	"github.com/headlinehq/newswire/pkg/httpx"
)

// ArticlesHandler handles the article CRUD endpoints.
type ArticlesHandler struct {
	ArticleService *service.ArticleService
}

func toArticleResponse(a domain.Article) apisdk.ArticleResponse {
	return apisdk.ArticleResponse{
		ID:       a.ID,
		Title:    a.Title,
		URL:      a.URL,
		ImageURL: a.ImageURL,
		Brief:    a.Brief,
		TopicID:  a.TopicID,
		SourceID: a.SourceID,
		AddedAt:  a.AddedAt,
	}
}

// HandleCreate handles POST /v1/articles
//
//	@Summary		Create Article
//	@Description	Publishes a new article, optionally tagged with a topic and source.
//	@Tags			Articles
//	@Accept			json
//	@Produce		json
//	@Security		APIKeyAuth
//	@Param			request	body		apisdk.CreateArticleRequest	true	"Article to publish"
//	@Success		201		{object}	apisdk.ArticleResponse
//	@Failure		400		{object}	apisdk.ErrorResponse	"error, detail"
//	@Failure		401		{object}	apisdk.ErrorResponse	"error, detail"
//	@Failure		404		{object}	apisdk.ErrorResponse	"error, detail"
//	@Router			/v1/articles [post].
func (h *ArticlesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req apisdk.CreateArticleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	addedAt := time.Now().UTC()
	if req.AddedAt != nil {
		addedAt = req.AddedAt.UTC()
	}

	article, err := h.ArticleService.CreateArticle(r.Context(), domain.Article{
		Title:    req.Title,
		URL:      req.URL,
		ImageURL: req.ImageURL,
		Brief:    req.Brief,
		TopicID:  req.TopicID,
		SourceID: req.SourceID,
		AddedAt:  addedAt,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	metrics.ArticlesCreatedTotal.WithLabelValues(taggedLabel(article)).Inc()
	httpx.WriteJSON(w, http.StatusCreated, toArticleResponse(article))
}

func taggedLabel(a domain.Article) string {
	switch {
	case a.TopicID != "" && a.SourceID != "":
		return "both"
	case a.TopicID != "":
		return "topic"
	case a.SourceID != "":
		return "source"
	default:
		return "none"
	}
}

// HandleGet handles GET /v1/articles/{id}
//
//	@Summary		Get Article
//	@Tags			Articles
//	@Produce		json
//	@Security		APIKeyAuth
//	@Param			id	path		string	true	"Article ID"
//	@Success		200	{object}	apisdk.ArticleResponse
//	@Failure		401	{object}	apisdk.ErrorResponse	"error, detail"
//	@Failure		404	{object}	apisdk.ErrorResponse	"error, detail"
//	@Router			/v1/articles/{id} [get].
func (h *ArticlesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	article, err := h.ArticleService.GetArticle(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toArticleResponse(article))
}

// HandleList handles GET /v1/articles
//
//	@Summary		List Articles
//	@Description	Returns articles newest first. Supports limit/offset paging or filtering by topic_id.
//	@Tags			Articles
//	@Produce		json
//	@Security		APIKeyAuth
//	@Param			limit		query		int		false	"Page size"
//	@Param			offset		query		int		false	"Page offset"
//	@Param			topic_id	query		string	false	"Only articles tagged with this topic"
//	@Success		200			{object}	apisdk.ArticleListResponse
//	@Failure		401			{object}	apisdk.ErrorResponse	"error, detail"
//	@Failure		404			{object}	apisdk.ErrorResponse	"error, detail"
//	@Router			/v1/articles [get].
func (h *ArticlesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		articles []domain.Article
		err      error
	)

	if topicID := r.URL.Query().Get("topic_id"); topicID != "" {
		articles, err = h.ArticleService.ListArticlesByTopic(ctx, topicID)
	} else {
		limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
		offset, _ := strconv.ParseInt(r.URL.Query().Get("offset"), 10, 64)
		articles, err = h.ArticleService.ListArticles(ctx, limit, offset)
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := apisdk.ArticleListResponse{Articles: make([]apisdk.ArticleResponse, len(articles))}
	for i, a := range articles {
		out.Articles[i] = toArticleResponse(a)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleUpdate handles PUT /v1/articles/{id}
//
//	@Summary		Update Article
//	@Description	Applies a partial update; omitted fields are left unchanged.
//	@Tags			Articles
//	@Accept			json
//	@Produce		json
//	@Security		APIKeyAuth
//	@Param			id		path		string						true	"Article ID"
//	@Param			request	body		apisdk.UpdateArticleRequest	true	"Fields to update"
//	@Success		200		{object}	apisdk.ArticleResponse
//	@Failure		400		{object}	apisdk.ErrorResponse	"error, detail"
//	@Failure		401		{object}	apisdk.ErrorResponse	"error, detail"
//	@Failure		404		{object}	apisdk.ErrorResponse	"error, detail"
//	@Router			/v1/articles/{id} [put].
func (h *ArticlesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req apisdk.UpdateArticleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	article, err := h.ArticleService.UpdateArticle(r.Context(), r.PathValue("id"), domain.ArticlePatch{
		Title:    req.Title,
		URL:      req.URL,
		ImageURL: req.ImageURL,
		Brief:    req.Brief,
		TopicID:  req.TopicID,
		SourceID: req.SourceID,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toArticleResponse(article))
}

// HandleDelete handles DELETE /v1/articles/{id}
//
//	@Summary		Delete Article
//	@Tags			Articles
//	@Security		APIKeyAuth
//	@Param			id	path	string	true	"Article ID"
//	@Success		204
//	@Failure		401	{object}	apisdk.ErrorResponse	"error, detail"
//	@Failure		404	{object}	apisdk.ErrorResponse	"error, detail"
//	@Router			/v1/articles/{id} [delete].
func (h *ArticlesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ArticleService.DeleteArticle(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
