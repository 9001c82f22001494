// Package singleton is the protocol between the container and types that
// manage their own single shared instance. A type declares itself with an
// accessor; the container's
// auto-wiring then routes construction through that accessor, so resolving
// the type any number of times yields the same instance.
package singleton
