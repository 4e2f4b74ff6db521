// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/fyyur/internal/platform/respond"
)

// Handler serves the read-only vocabularies used by listing forms.
type Handler struct{}

// NewHandler constructs a reference [Handler].
func NewHandler() *Handler {
	return &Handler{}
}

// Routes returns a [chi.Router] with the reference endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/genres", handler.listGenres)
	router.Get("/states", handler.listStates)

	return router
}

func (handler *Handler) listGenres(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, Genres())
}

func (handler *Handler) listStates(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, States())
}
