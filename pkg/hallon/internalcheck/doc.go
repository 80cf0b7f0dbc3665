// Package internalcheck holds static policy tests for the hallon packages.
// It contains no runtime code and is not meant to be imported.
package internalcheck
