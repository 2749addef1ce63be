// Package storage defines the named-slot persistence contract.
//
// Each slot holds a serialized snapshot of one whole collection;
// read-modify-write is always whole-collection, never field-level.
package storage

import "context"

// Slot names. Every mutating operation persists its affected slots before
// returning.
const (
	SlotUsers         = "users"
	SlotPosts         = "posts"
	SlotNotifications = "notifications"
	SlotClusters      = "clusters"
	SlotAchievements  = "achievements"
	SlotReports       = "reports"
	SlotCurrentUser   = "currentUser"
	SlotPreferences   = "preferences"
)

// Store is an opaque durable key-value capability for named snapshots.
type Store interface {
	// Save serializes v and overwrites the slot.
	Save(ctx context.Context, slot string, v any) error
	// Load deserializes the slot into v. A missing slot leaves v untouched
	// and returns false. Malformed slot data fails closed: it is treated
	// the same as a missing slot.
	Load(ctx context.Context, slot string, v any) (bool, error)
	// Delete removes the slot; removing an absent slot is not an error.
	Delete(ctx context.Context, slot string) error
}
