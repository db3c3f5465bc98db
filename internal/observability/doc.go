// Package observability provides logging and metrics support for the paper
// catalog service.
//
// # Logging
//
// Create a logger from configuration:
//
//	cfg := observability.LoggingConfig{
//	    Level:  "info",
//	    Format: "json",
//	    Output: "stdout",
//	}
//
//	logger := observability.NewLogger(cfg)
//	logger.Info().Int64("author_id", id).Msg("author created")
//
// # Metrics
//
// Metrics are created once at startup via NewMetrics and registered with the
// default Prometheus registry through promauto. Pass the Metrics value to the
// services and HTTP server that record observations.
package observability
