package core

// Entity is a unique identifier for an entity
type Entity uint64

// EntityNone marks an unset entity reference
const EntityNone Entity = 0
