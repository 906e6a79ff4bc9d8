// Package backend names the kernel implementations netsmith can dispatch
// to and the error taxonomy shared by them.
//
// A Backend is a preference: Reference always runs the scalar kernels,
// Accelerated insists on the accelerated set, Auto tries the accelerated
// set and falls back to the reference one when a kernel is absent.
//
// A Kernels value is one complete implementation set. Returning
// ErrUnavailable (wrapped or not) from a method means "this set has no such
// kernel" and is the only condition that permits a fallback. Any other
// failure is reported to callers as an *Error, which matches ErrBackend.
package backend
