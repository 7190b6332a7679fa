// Package isstracker embeds the ISS tracker in-process: it reads the ISS
// ephemeris (OEM) and visible-sightings XML documents from a directory or an
// S3 bucket and answers the same queries as the HTTP service.
//
// # Usage
//
//	client, _ := isstracker.New(ctx, isstracker.WithDir("./data"))
//	if err := client.Load(ctx); err != nil {
//	    // documents missing or malformed
//	}
//	epochs, _ := client.Epochs(ctx)
//	cities, _ := client.Cities(ctx, "United_States", "Texas")
//
// Every query returns ErrNotLoaded until a Load succeeds with both
// collections non-empty.
package isstracker
