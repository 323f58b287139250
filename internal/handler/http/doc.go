// Package http implements the HTTP transport of the reference data store.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Entity types travel as JSON, entities arrive as multipart forms in the
// metadata transport envelope and leave as JSON. Request tracing and access
// logging are handled in this package before requests are delegated to the
// service layer.
package http
