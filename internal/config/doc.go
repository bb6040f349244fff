// Package config provides configuration structures and utilities for auctioncrawl.
// It defines the crawl endpoints, request settings, HTTP server settings and
// report generation preferences, and loads the optional .auctioncrawl file.
package config
