// Package pokeapi provides a typed client for the read-only PokeAPI REST API.
//
// # Architecture
//
// A call flows through four small components:
//
//   - Validated identifiers: PokemonName, GenerationName, Ref, Limit, Offset
//     and PageRequest reject bad input before any request is built
//   - JoinURL: resolves a resource path under the base URL and API prefix
//   - Transport: executes the request; HTTPTransport is the net/http
//     implementation and any other Transport can be injected for tests
//   - Classify: maps non-2xx responses to an *APIError
//
// The Client ties them together in FetchJSON and the typed operations built
// on it.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := pokeapi.NewClient(logger,
//		pokeapi.WithUserAgent("myapp/1.0"),
//		pokeapi.WithTimeout(5*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	name, err := pokeapi.NewPokemonName("pikachu")
//	if err != nil {
//		log.Fatal(err)
//	}
//	p, err := client.PokemonByName(ctx, name)
//
// # Error Handling
//
// Every operation fails with one of five types, all implementing Error:
//
//   - *InvalidArgumentError: local validation failed, nothing was sent
//   - *TransportError: the network exchange failed
//   - *APIError: the server returned a non-2xx status; Detail is NotFound,
//     RateLimited or HTTPStatus
//   - *DeserializeError: a 2xx body did not match the expected shape
//   - *InternalError: configuration or URL construction bug
//
// The client performs one request per call. It never retries and never
// waits on a retry-after header; IsRetryable and RateLimited.RetryAfter
// give callers what they need to build their own policy.
package pokeapi
