// Package discovery turns raw container records into the ordered,
// user-customized service list shown on the dashboard.
//
// The pipeline is: container source -> normalizer (merge with stored
// override) -> visibility filter (dashboard view only) -> sorter. The
// normalizer and sorter are pure functions; the facade owns the single side
// effect of persisting a default override the first time a container is seen.
package discovery
