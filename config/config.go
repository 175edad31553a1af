package config

import "path"

// Debug enables development logging in the command line tools.
var Debug = false

// HeaderSize is the size of the fixed preamble that precedes the document name.
const HeaderSize = 16

const Extension = ".sol"

// LocalStoreDir is where AIR applications keep their shared objects, relative to the application storage directory.
const LocalStoreDir = "Local Store/#SharedObjects"

// AndroidDataDir is the root of application storage on Android devices.
const AndroidDataDir = "/data/user/0"

// DefaultName is the shared object the command line tools read when none is given.
const DefaultName = "saved_data"

// LocalStorePath returns the location of the shared object name of the AIR application appID on an Android device.
func LocalStorePath(appID, name string) string {
	if name == "" {
		name = DefaultName
	}
	if path.Ext(name) != Extension {
		name += Extension
	}
	return path.Join(AndroidDataDir, appID, appID, LocalStoreDir, name)
}
