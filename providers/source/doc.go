// Package source fetches web pages over HTTP/HTTPS and converts their HTML
// content into Markdown, so a URL can serve as the seed material for an
// outline generation. URL normalisation, redirect following, response-size
// limiting, and context-aware cancellation are handled automatically.
package source
