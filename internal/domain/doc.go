// Package domain contains the core value types of the spectrum generator:
// the spectrum pair handed back to players and the generation request that
// asks for a batch of them. It has no knowledge of HTTP or of the model
// backend.
package domain
