package port

import "github.com/bnema/duskd/internal/domain/entity"

// Postponer is the registry of active postponement reasons.
// Add and Remove are idempotent and report whether the set changed.
type Postponer interface {
	Add(key entity.PostponeKey) bool
	Remove(key entity.PostponeKey) bool
	Contains(key entity.PostponeKey) bool
	IsPostponed() bool
	Keys() []entity.PostponeKey
}
