package frp

// EqualFunc compares two values of type V for equality, customizing how
// OnChange (§4.7) decides whether a new value is actually a change, for
// V types that aren't `comparable` (slices, maps, anything where `==`
// doesn't express the equality the caller actually wants).
type EqualFunc[V any] func(a, b V) bool
