package config

// Context is shared by every command
type Context struct {
	Modules  []ModuleI
	HomePath string
	Store    *Store
}
