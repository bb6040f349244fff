// Package main provides the entry point for the auctioncrawl CLI.
//
// auctioncrawl collects the product links of every category of an auction
// marketplace: it reads the category list page, then fetches every
// category listing page concurrently.
//
// Usage:
//
//	auctioncrawl crawl
//	auctioncrawl crawl --json -o result.json
//	auctioncrawl serve --listen :3003
//
// See --help for all available options.
package main

func main() {
	Execute()
}
