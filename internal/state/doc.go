// Package state holds the view-facing stores that orchestrate adapter calls:
// a cached current value (user or note list), a busy flag, and the last error
// message.
//
// Every mutating operation follows the same protocol: mark busy and clear
// the error, call the adapter, update the cache on success, record the error
// on failure, and always clear busy on exit. The note cache is updated
// optimistically in place (prepend on create, replace on update, remove on
// delete) without re-fetching, so it can drift from backend truth under
// concurrent external writers; there is no reconciliation mechanism.
//
// The stores serialize their own state with a mutex but deliberately do not
// hold it across adapter calls, so overlapping in-flight operations can still
// land out of order, exactly like the event-loop model they mirror.
package state
