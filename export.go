//go:build !js

package main

import (
	"errors"

	"github.com/sqweek/dialog"
)

var errExportCancelled = errors.New("export cancelled")

func pickExportFile() (string, error) {
	filename, err := dialog.File().Filter("PNG images", "png", "PNG").Title("Export dial").Save()
	if err != nil {
		if err == dialog.Cancelled {
			return "", errExportCancelled
		}
		return "", err
	}
	return filename, nil
}
