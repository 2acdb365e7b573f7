// Package config provides configuration structures and utilities for docdump.
// It defines the dump options populated from CLI flags and the selector
// profiles loaded from the .docdump configuration file.
package config
