// Package api is a Go client for the MCP memory service HTTP API.
//
// A Client is built from a Config and speaks to a single deployment:
//
//	client, err := api.NewClient(api.Config{
//		BaseURL:   "https://mcp-memory-ts.vercel.app",
//		AuthToken: os.Getenv("MEMORY_SERVICE_TOKEN"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := client.SearchMemories(ctx, "standup notes", api.WithLimit(5))
//
// Every call carries the configured bearer token and returns the service's
// JSON response as a generic map; the client imposes no schema of its own.
// Failures are either a *TransportError (the exchange never completed) or an
// *APIError (the service answered with a non-2xx status). Neither is retried.
package api
