// Package diagnostic provides structured warnings and errors for a
// conversion run.
//
// Key capabilities:
//   - Unmapped brick warnings with occurrence counts
//   - Rejection warnings for names a pattern rule matched but refused
//   - "Did you mean" suggestions for near-miss names
//   - Rule file errors attributed to the offending brick
package diagnostic
