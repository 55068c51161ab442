//go:build stream_notypeinfo

package stream

const defaultTypeReporting = false
