//go:build !stream_abort

package stream

const defaultPolicy = PolicyError
