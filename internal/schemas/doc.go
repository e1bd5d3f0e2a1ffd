// Package schemas defines the request and response shapes of the API,
// independent of how rows are stored.
//
// Every entity has three shapes:
//
//   - XCreate: the fields a caller supplies to create a row
//   - XUpdate: pointer fields; nil means "leave unchanged"
//   - X: the read shape, built from the stored entity with NewX, with its
//     one-hop relations nested
//
// Validation rules live in `binding` struct tags so gin checks them while
// binding. Validate runs the same rules for callers outside the HTTP layer.
// Failures are reported as FieldErrors, one entry per failing field.
package schemas
