package xfs

// StreamReader is a placeholder for incremental reads. It has no operations.
type StreamReader struct{}

// StreamWriter is a placeholder for incremental writes. It has no operations.
type StreamWriter struct{}
