// Package engine is the entry point for every statistic netsmith computes.
//
// A Dispatcher owns two kernel sets, the reference set and an optional
// accelerated set, and applies one policy to every call:
//
//	backend.Reference    run the reference kernel.
//	backend.Accelerated  run the accelerated kernel; if the set or the
//	                     kernel is absent, fail with backend.ErrUnavailable.
//	backend.Auto         run the accelerated kernel; if it is absent, log
//	                     at debug level and run the reference kernel.
//
// Only absence permits a fallback. Validation errors are returned as they
// are. Any other kernel failure is wrapped in a *backend.Error, logged at
// error level with its stack and never retried on the other set. Results
// are checked before they are returned: an array whose length differs from
// the node count, or component labels that are not canonical, is a
// *backend.Error as well.
//
// The accelerated set defaults to accel.New(); building with the
// netsmith_noaccel tag leaves it absent. WithAccelerated overrides either.
// Loggers come from the call's context (see package logger).
package engine
