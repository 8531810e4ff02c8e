// Package value defines the tagged variant stored behind every key: a
// plain string, a container.List, or a container.SortedSet - a tagged
// variant rather than an inheritance hierarchy, so executors switch on
// Tag and WRONGTYPE is the default arm.
package value
