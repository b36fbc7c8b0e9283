// Package backend defines the contract with the backend platform: an
// account/session service and a schemaless document service, plus the query
// modifiers and the wire-level error type with its string codes.
//
// The platform is consumed as an opaque contract. Adapters in the service
// package depend only on the interfaces here, so they can be exercised
// against the in-memory fake as well as the SurrealDB implementation in the
// surreal subpackage.
package backend
