//go:build js

package main

import "errors"

var errExportCancelled = errors.New("export cancelled")

func pickExportFile() (string, error) {
	return "", errors.New("export is not available in the browser build")
}
