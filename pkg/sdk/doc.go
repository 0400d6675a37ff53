// Package docnav embeds the documentation site's navigation core in a Go program:
// locale routing, locale switching, catalog search and keyboard-driven search sessions.
//
// Everything runs in-process. A Valkey or Redis address is only needed for
// daily query statistics.
//
//	client, _ := docnav.New(ctx)
//	defer client.Close()
//
//	d := client.Route("/docs/installation", "tab=docker")
//	// d.Redirect == true, d.Target == "/pt/docs/installation?tab=docker"
//
//	res, _ := client.Search(ctx, "en", "docker")
//	for _, doc := range res.Documents {
//	    fmt.Println(doc.Path, doc.Title)
//	}
//
// # Search sessions
//
//	s, _ := client.Sessions().Create("pt")
//	handled, _, _ := client.Sessions().Key(s.ID, docnav.KeyEvent{Key: "k", Ctrl: true})
//	_, _ = client.Sessions().SetQuery(s.ID, "deploy")
//	next, _ := client.Sessions().Select(s.ID, 0)
//	// next.NavigateTo == "/pt/docs/deployment"
package docnav
