// Package client provides an accessor for the panel's Client API (the
// user-facing surface under /api/client), used with client API keys to act
// on servers the account owns or has been granted access to.
//
// # Example Usage
//
//	panel, err := pterodactyl.New(pterodactyl.Config{
//		BaseURL: "https://panel.example.com",
//		APIKey:  os.Getenv("PTERODACTYL_CLIENT_KEY"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	api := panel.ClientAPI()
//
//	servers, _, err := api.ListServers(context.Background(), nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, srv := range servers {
//		err := api.SetPowerState(context.Background(), srv.Identifier, client.PowerStart)
//		if err != nil {
//			log.Printf("start %s: %v", srv.Identifier, err)
//		}
//	}
package client
