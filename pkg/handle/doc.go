// ABOUTME: Single-owner native handle wrapper package
// ABOUTME: Guarantees a bound deleter runs exactly once per resource
// Package handle provides a generic single-owner wrapper for native
// resource handles.
//
// Audio backends hand out opaque handles (device objects, contexts) whose
// release functions must run exactly once. Owned pairs a handle value with
// its release function at construction time:
//
//	dev := handle.Own(output.CreateDevice("malgo", "myapp", "playback"), output.DestroyDevice)
//	defer dev.Release()
//
// Ownership is exclusive. Use Transfer to move a handle between wrappers;
// never copy an Owned value.
package handle
