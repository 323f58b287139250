// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// A path that is registered but not for the requested method answers
// 404 Not Found instead of chi's default 405, so unsupported methods do not
// reveal which routes exist. Requests whose method is registered for the
// exact pattern are forwarded to the router.
//
// Only exact pattern matches are considered: parameterised segments such as
// /api/entities/{id} are not expanded, so a wrong method on them always
// answers 404.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		// the method is registered, delegate to the normal pipeline
		router.ServeHTTP(w, r)
	}
}
