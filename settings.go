package main

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"hsvdial/eui"

	"github.com/hajimehoshi/ebiten/v2"
)

const SETTINGS_VERSION = 1

const settingsFile = "settings.json"

var gs settings = gsdef

// settingsLoaded reports whether settings were successfully loaded from disk.
var settingsLoaded bool

// settingsDirty marks settings that changed since the last save.
var settingsDirty bool

var dataDirPath = "data"

var gsdef settings = settings{
	Version: SETTINGS_VERSION,

	WindowWidth:  480,
	WindowHeight: 320,

	Alpha:       0,
	Beta:        math.Pi,
	Clockwise:   false,
	BorderWidth: 4,
	DialCount:   2,

	FontSize: 14,
}

type settings struct {
	Version int

	WindowWidth  int
	WindowHeight int

	// Theme is "dark", "light" or empty to follow the desktop.
	Theme string

	Alpha       float64
	Beta        float64
	Clockwise   bool
	BorderWidth int
	// DialCount is how many dials are shown side by side.
	DialCount int
	// WrapDelta reports drag steps wrapped into (-π, π] in the debug log.
	WrapDelta bool

	FontSize       float64
	PotatoComputer bool
}

func loadSettings() bool {
	path := filepath.Join(dataDirPath, settingsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		gs = gsdef
		settingsLoaded = false
		return false
	}

	tmp := gsdef
	if err := json.Unmarshal(data, &tmp); err != nil {
		logWarn("parse %v: %v", path, err)
		gs = gsdef
		settingsLoaded = false
		return false
	}
	if tmp.Version != SETTINGS_VERSION {
		logWarn("settings version %d, want %d; using defaults", tmp.Version, SETTINGS_VERSION)
		gs = gsdef
		settingsLoaded = false
		return false
	}
	gs = tmp
	sanitizeSettings()
	settingsLoaded = true
	return true
}

// sanitizeSettings replaces values a dial would reject with defaults.
func sanitizeSettings() {
	probe := eui.NewDial()
	if err := probe.SetAlpha(gs.Alpha); err != nil {
		logWarn("settings: %v", err)
		gs.Alpha = gsdef.Alpha
	}
	if err := probe.SetBeta(gs.Beta); err != nil {
		logWarn("settings: %v", err)
		gs.Beta = gsdef.Beta
	}
	if err := probe.SetBorderWidth(gs.BorderWidth); err != nil {
		logWarn("settings: %v", err)
		gs.BorderWidth = gsdef.BorderWidth
	}
	if gs.DialCount < 1 || gs.DialCount > 4 {
		gs.DialCount = gsdef.DialCount
	}
	if gs.FontSize <= 0 {
		gs.FontSize = gsdef.FontSize
	}
	if gs.WindowWidth < 160 || gs.WindowHeight < 120 {
		gs.WindowWidth = gsdef.WindowWidth
		gs.WindowHeight = gsdef.WindowHeight
	}
}

func applySettings() {
	eui.SetPotatoMode(gs.PotatoComputer)
	ebiten.SetWindowSize(gs.WindowWidth, gs.WindowHeight)
	initFont()
}

func saveSettings() {
	if err := os.MkdirAll(dataDirPath, 0755); err != nil {
		logError("save settings: %v", err)
		return
	}
	data, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		logError("save settings: %v", err)
		return
	}
	path := filepath.Join(dataDirPath, settingsFile)
	if err := os.WriteFile(path+".tmp", data, 0644); err != nil {
		logError("save settings: %v", err)
		return
	}
	if err := os.Rename(path+".tmp", path); err != nil {
		logError("save settings: %v", err)
		return
	}
	settingsDirty = false
}
