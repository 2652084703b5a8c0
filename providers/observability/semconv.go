package observability

// Semantic attribute keys used across the generation pipeline. Keeping them
// in one place avoids drift between the HTTP layer, the providers, and the
// session orchestrator.
const (
	AttrLLMProvider = "llm.provider"
	AttrLLMEndpoint = "llm.endpoint"
	AttrLLMModel    = "llm.model"

	AttrHTTPMethod           = "http.method"
	AttrHTTPURL              = "http.url"
	AttrHTTPStatusCode       = "http.status_code"
	AttrHTTPRequestBodySize  = "http.request.body_size"
	AttrHTTPResponseBodySize = "http.response.body_size"

	AttrCallType    = "generation.call_type"
	AttrCallMode    = "generation.mode"
	AttrPageID      = "page.id"
	AttrPageCount   = "deck.page_count"
	AttrDeckTopic   = "deck.topic"
	AttrRawPreview  = "response.raw_preview"
	AttrStreamDelta = "response.delta_count"
)
