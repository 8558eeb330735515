// Package errors provides the structured error type used across seqkit.
// Every failure carries a machine-readable ErrorCode, a human-readable
// message and optional details, and matches errors.Is by code.
package errors
