// Package model contains the domain models for the enqueue producer:
// caller-owned messages, queue destinations, and the persisted queue row.
package model

// tablePrefix is prepended to all table names managed by this library.
const tablePrefix = "enqueue_"
