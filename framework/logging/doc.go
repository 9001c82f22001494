// Package logging provides the framework's structured logger, a thin
// zerolog wrapper configured from config.LogConfig and distributed to
// services through the container (bound as "log").
package logging
