// Package ecs provides a generational-index, sparse-set entity-component
// store: Spawn/Despawn manage entity lifetime, Insert/Get/Remove/Has manage
// per-type component storage, QueryN iterates entities by component
// combination, and SetResource/GetResource hold singleton world state.
package ecs
