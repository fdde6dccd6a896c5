// Package auth owns the client's session: who is logged in, how they got
// there, and what they may do.
//
//   - State is the in-memory cell holding the current identity. Anyone may
//     read or subscribe; only this package writes.
//   - Service logs in against the identity service, restores the session
//     saved by a previous run, and logs out.
//   - Policy answers role and capability questions about the current
//     identity. It never mutates anything.
//   - ValidateSessionOnStartup is the one-shot integrity sweep run during
//     bootstrap.
package auth
