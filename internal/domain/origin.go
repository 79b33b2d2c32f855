package domain

// Origin records where an entity came from. It is set when the entity is
// decoded or synthesized and never derived from the id.
type Origin string

const (
	// OriginServer marks entities issued by the backend API.
	OriginServer Origin = "server"
	// OriginSynthetic marks placeholder entities generated for a degraded scope.
	OriginSynthetic Origin = "synthetic"
	// OriginLocal marks entities the user created while the backend was unreachable.
	OriginLocal Origin = "local"
)

// Persisted reports whether the entity exists on the backend.
func (o Origin) Persisted() bool {
	return o == OriginServer
}

func (o Origin) String() string {
	if o == "" {
		return "unknown"
	}
	return string(o)
}
