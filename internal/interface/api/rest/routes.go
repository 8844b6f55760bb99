package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// entity-scoped media
	RouteEntities    = RouteApiV1 + "/entities"
	RouteEntityMedia = RouteEntities + "/:entity_type/:entity_id/media"

	// single media items
	RouteMedia     = RouteApiV1 + "/media"
	RouteMediaItem = RouteMedia + "/:media_id"

	// compliance
	RouteUsers           = RouteApiV1 + "/users"
	RouteUserMedia       = RouteUsers + "/:user_id/media"
	RouteUserMediaExport = RouteUserMedia + "/export"

	// policy
	RouteMediaSettings = RouteApiV1 + "/settings/media"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
