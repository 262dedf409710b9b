// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Logging

WithLogging logs the start and completion of each request with a
per-request id and duration:

	mux.HandleFunc("GET /questions", middleware.WithLogging(handler.List))

# JSON Helpers

JSONResponse and ErrorResponse write JSON bodies with the right
Content-Type. Error bodies carry a single message field:

	{"error": "Question not found"}

ParseJSONBody decodes a request body into a struct and closes the body.

# CORS

CORS wraps the whole mux to allow cross-origin requests from the
browser frontend, including OPTIONS preflight.
*/
package middleware
