// Package cli implements the devstub command-line interface.
package cli
