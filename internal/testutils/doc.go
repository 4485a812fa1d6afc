// Package testutils provides HTTP test helpers shared by handler and router
// tests.
package testutils
