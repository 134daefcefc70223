// Package id hands out snowflake identifiers for every persisted row.
// IDs are 63-bit, time-ordered, and safe to mint concurrently from one
// process per node ID.
package id

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init sets up the process-wide generator. The node ID must be unique
// per running instance; calls after the first are no-ops.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New mints the next ID. Init must have succeeded first.
func New() int64 {
	return node.Generate().Int64()
}
