package config

// storeConfiguration controls the optional badger-backed persistence layer
// in internal/store (transposition-table snapshots and UCI session state).
type storeConfiguration struct {
	Enabled bool
	Path    string
}

func init() {
	Settings.Store.Enabled = false
	Settings.Store.Path = "./data/corvid-store"
}
