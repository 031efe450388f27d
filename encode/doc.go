// Package encode turns an input byte string into an unrefined figure by
// walking its bits MSB-first and composing a 90° turn per bit onto the
// fixed UP anchor.
package encode
