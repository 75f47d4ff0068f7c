// Package imgur provides a client for interacting with the Imgur v3 REST API.
//
// The client supports anonymous access using an application client id as well
// as authenticated access with a bearer token obtained through Imgur's OAuth
// pin flow.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: The main API client with header-based authentication
//   - Types: Domain models representing Imgur entities (accounts, albums, images)
//   - API: Interface definitions for testability and modularity
//   - Errors: Structured error types for better error handling
//
// # Usage
//
// Create a new client with your Imgur application credentials:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := imgur.NewClient(
//		"your-client-id",
//		"your-client-secret",
//		logger,
//		imgur.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Fetch an image anonymously
//	ctx := context.Background()
//	image, err := client.GetImage(ctx, "abc123")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Authentication
//
// Every request carries exactly one Authorization header. Before a token is
// obtained the client sends "Client-ID <id>"; after a successful pin exchange
// it sends "Bearer <token>" for the lifetime of the client:
//
//	fmt.Println("Visit:", client.AuthorizationURL())
//	// ... user authorizes and reads the pin off the page ...
//	if err := client.Authorize(ctx, pin); err != nil {
//		log.Fatal(err)
//	}
//
// # Error Handling
//
// API failures are reported as *RequestError values carrying the HTTP status
// code and the service-supplied message. Errors include helper methods for
// classification:
//
//	if reqErr, ok := err.(*imgur.RequestError); ok {
//		if reqErr.IsNotFound() {
//			// Handle missing resource
//		}
//	}
//
// Network-level failures (connection refused, timeout) are returned as
// wrapped transport errors, never as *RequestError.
package imgur
