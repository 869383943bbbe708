// Package application wires the host source, override resolution, and
// settings provider together and renders the resolved record for consumers,
// keeping the main package focused on CLI parsing and orchestration.
package application
