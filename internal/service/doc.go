// Package service holds the adapters between domain operations and the
// backend platform: Auth for account/session operations and Notes for the
// study-note collection.
//
// Each adapter method wraps exactly one backend call (Register wraps two:
// create then login) and normalizes platform errors into a closed per-adapter
// enumeration, so unmapped platform codes are a detectable category rather
// than silent fallback text.
package service
