// Package fairness implements the commit-reveal protocol two parties use to
// agree on a number in [0, n) that neither of them can bias.
//
// The system draws a secret number and a fresh key, and publishes only the
// keyed digest of the number. The counterpart then picks its own number. The
// round result is the sum of both modulo n. Revealing the key and the secret
// number afterwards lets the counterpart recompute the digest and confirm the
// system's number was fixed before the choice was made.
//
// A Protocol value serves exactly one round and moves through
// Initialized, Committed, Chosen and Revealed. Calls made in the wrong state
// fail with PROTOCOL_INVALID_TRANSITION instead of silently succeeding.
package fairness
