// Package credstore provides an in-memory, password-based credential
// registry: registration with a strength policy, authentication,
// password changes, and account activation state.
//
// The store holds the entire user map for the process lifetime behind a
// single mutex. Nothing is persisted; a restart clears all users. It never
// performs network I/O and answers every call synchronously, which makes it
// safe to call from request handlers under any concurrency.
//
// # Architecture
//
//   - Store: mutex-guarded map of username to User, constructed once and
//     dependency-injected into the request layer.
//   - User: identity record snapshot; Get returns a copy, never a live
//     pointer into the registry.
//   - ValidatePassword: the registration/change password policy (length
//     plus ASCII letter and digit).
//
// Hashing is delegated to the passhash package; salt and hash are always
// regenerated as a pair.
//
// # Usage
//
//	store := credstore.New(credstore.WithLogger(log))
//
//	if err := store.Register("alice", "hunter2hunter2", "alice@example.com"); err != nil {
//	    // errors.Is(err, credstore.ErrUsernameTaken) etc.
//	}
//
//	if store.Authenticate("alice", "hunter2hunter2") {
//	    // issue a session token or JWT
//	}
//
// # Error Handling
//
// Register and the password policy return sentinel errors for use with
// errors.Is. Authenticate deliberately returns a bare bool: a missing user,
// a deactivated user, and a wrong password are indistinguishable to the
// caller, so the response shape cannot be used to enumerate accounts. Do not
// undo this uniformity in an outer layer.
package credstore
