// Package figure defines the Segment/Figure data model and its
// lazily-materialised coordinate cache.
//
// A Figure owns its segment array and its coordinate cache exclusively;
// there is no back-pointer or shared mutable state between figures. Unlike
// github.com/katalvlaran/lvlath's core.Graph, Figure carries no internal
// mutex: a Figure is owned by exactly one goroutine for the duration of a
// refinement call, so lvlath's default sync.RWMutex-guarded-map pattern
// would be the wrong tool here.
package figure
