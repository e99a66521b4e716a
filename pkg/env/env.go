// Package env keeps names of environment variables with special significance to
// pendraw.
package env

// Environment variables with special significance to pendraw.
//
// They are consulted only when locating the configuration file.
const (
	HOME            = "HOME"
	XDG_CONFIG_HOME = "XDG_CONFIG_HOME"
)
