// Package util provides small generic helpers shared by propkit packages.
//
// It includes text checks, rune-aware truncation and nil-aware pointer helpers.
package util
