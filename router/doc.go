// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ method patterns.

# Routes

Uniform CRUD on the lookup entities:

	GET/POST            /categories, /companies, /roles
	GET/PUT/DELETE      /categories/{id}, /companies/{id}, /roles/{id}

Questions, with filtered listing and the per-session join:

	GET/POST            /questions
	GET/PUT/DELETE      /questions/{id}
	GET                 /questions/session/{sessionId}

Answers, scoped to their question:

	GET/POST            /answers/question/{questionId}
	PUT/DELETE          /answers/{id}

Practice sessions and membership:

	GET/POST            /sessions
	GET/PUT/DELETE      /sessions/{id}
	GET                 /sessions/{sessionId}/questions
	POST/DELETE         /sessions/{sessionId}/questions/{questionId}

Plus GET /health and a GET / banner.

All routes are wrapped with request logging. CORS is applied to the
whole mux by main.
*/
package router
