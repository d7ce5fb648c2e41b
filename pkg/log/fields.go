package log

const (
	// Request
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldQuery     = "query"
	FieldStatus    = "status"
	FieldLatency   = "latency_ms"
	FieldClientIP  = "client_ip"

	// Service
	FieldService = "service"

	// Search
	FieldCacheKey   = "cache_key"
	FieldSortType   = "sort_type"
	FieldBestiaryID = "bestiary_id"
	FieldResults    = "results"

	// Kafka
	FieldTopic = "topic"
)
