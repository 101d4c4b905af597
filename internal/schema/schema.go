// Package schema provides the foundational operating system layer for all
// other packages. It wraps the (Unix-based) syscalls used for uncached reads,
// filesystem queries, timestamps and extended attributes behind a provider
// type, so that consumers can depend on narrow interfaces and have them
// replaced with fakes or mocks in tests.
package schema
