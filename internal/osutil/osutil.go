// Package osutil holds operating system constants
package osutil

const Windows = "windows"

type exitCode int

const ExitError exitCode = 1
