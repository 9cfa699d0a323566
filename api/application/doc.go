// Package application provides accessors for the panel's Application API
// (the administrative surface under /api/application).
//
// Accessors are obtained from a pterodactyl.Client and are cheap to create:
// each one is a thin binding of the session's base URL, API key, and shared
// transport. Creating an accessor performs no I/O; requests are issued only
// when its methods are called.
//
// # Example Usage
//
//	client, err := pterodactyl.New(pterodactyl.Config{
//		BaseURL: "https://panel.example.com",
//		APIKey:  os.Getenv("PTERODACTYL_API_KEY"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	servers, _, err := client.Servers().List(context.Background(), nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, srv := range servers {
//		fmt.Printf("%d %s (%s)\n", srv.ID, srv.Name, srv.Identifier)
//	}
package application
