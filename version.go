// Package perch holds build metadata for the perch CLI.
package perch

// Version is the perch release
const Version = "0.1.0"
