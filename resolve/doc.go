// Package resolve turns raw context and unit declarations into domain
// values. Resolution never fails a parse: structurally unusable
// declarations are excluded with a collected validation error, and
// recoverable violations (start after end, unrecognized unit shapes) are
// recorded while the value is still produced for inspection.
package resolve
