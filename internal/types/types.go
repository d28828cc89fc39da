package types

// EntityID identifies an enemy, tower or slot. Zero is never issued.
type EntityID uint64
