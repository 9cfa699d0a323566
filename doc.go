// Package pterodactyl is a client library for the Pterodactyl game server
// panel. It covers the Application API (admin surface: locations, nests,
// nodes, servers, users) and the Client API (user surface: account, server
// power and console control).
//
// A Client is a session: it validates its configuration up front, builds a
// single HTTP transport with retry, rate-limit, and observability layers,
// and hands out lightweight resource accessors that all share that
// transport. Session state set through SetCookies or SetUserAgent applies
// to every accessor, including ones created before the call.
//
// # Example Usage
//
//	panel, err := pterodactyl.New(pterodactyl.Config{
//		BaseURL: "https://panel.example.com",
//		APIKey:  os.Getenv("PTERODACTYL_API_KEY"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	servers, _, err := panel.Servers().List(context.Background(), nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, srv := range servers {
//		fmt.Println(srv.ID, srv.Name)
//	}
//
// Requests that fail with HTTP 429, or any status listed in
// Config.ExtraRetryCodes, are retried with exponential backoff for the
// idempotent-leaning method set (DELETE, GET, HEAD, OPTIONS, POST, PUT).
// Once retries are exhausted the last response is surfaced unchanged as an
// *APIError from the accessor that issued the call.
package pterodactyl
