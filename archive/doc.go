// Package archive encodes calibration sessions into self-contained snapshot
// blobs for the persistence and transport layers outside the engine.
//
// A snapshot carries everything needed to re-render a session: the measured
// points, the reference standard's certificate, the ambient conditions, the
// chosen model families and the computed results. The body is JSON framed by
// a 4-byte magic and a compression identifier, so a snapshot file is
// self-describing and can be decoded without out-of-band metadata.
//
// Four codecs are available: none, zstd, s2 and lz4. The zstd codec selects
// the cgo-backed implementation when cgo is enabled and falls back to the
// pure Go implementation otherwise.
package archive
