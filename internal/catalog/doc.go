// Package catalog provides an HTTP client for the remote character service.
//
// # Overview
//
// The service exposes one paginated, search-filterable listing endpoint and
// per-resource lookups for the homeworld, species and film URLs a character
// references:
//
//   - GET /characters?search={term}&page={n}: {results: [...], total: n}
//   - GET {homeworld url}: {name: ...}
//   - GET {species url}: {name: ...}
//   - GET {film url}: {title: ...}
//
// The search parameter is omitted when the term is empty. Pages are
// 1-indexed and the service returns ten results per page.
//
// # Client Usage
//
//	client, err := catalog.NewClient("http://127.0.0.1:8080/api")
//	if err != nil {
//		return err
//	}
//	page, err := client.FetchCharacters(ctx, "luke", 1)
//
// Resource URLs may be absolute (as the service normally returns them) or
// relative to the configured API root.
//
// # Errors
//
// Responses with status >= 400 are returned as *APIError carrying the
// status code and an ErrorClass. Transport failures are wrapped as
// "execute request: ..." and malformed bodies as "decode response: ...".
// The client never retries.
//
// # Metrics
//
// Every request updates roster_api_requests_total{resource,status},
// roster_api_request_duration_seconds{resource} and, on failure,
// roster_api_errors_total{class}.
package catalog
