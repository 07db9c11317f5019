package strava

// ResourceState tells how much of a resource the API returned.
type ResourceState int

const (
	ResourceStateMeta    ResourceState = 1
	ResourceStateSummary ResourceState = 2
	ResourceStateDetail  ResourceState = 3
)

// Resource is the identity every API object carries. Two values are the
// same resource when their IDs match.
type Resource struct {
	ID            int64         `json:"id"`
	ResourceState ResourceState `json:"resource_state"`
}

// SameAs reports whether r and other identify the same resource.
func (r Resource) SameAs(other Resource) bool {
	return r.ID == other.ID
}

// PolylineMap is the encoded route of an activity, segment or route.
type PolylineMap struct {
	ID              string        `json:"id"`
	Polyline        *string       `json:"polyline,omitempty"`
	SummaryPolyline *string       `json:"summary_polyline,omitempty"`
	ResourceState   ResourceState `json:"resource_state"`
}

// Ptr returns a pointer to v, for filling optional fields and params.
func Ptr[T any](v T) *T {
	return &v
}
