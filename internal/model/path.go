// Package model defines the data structures shared by fixtkit packages.
package model

// Path represents a file system path.
type Path string
