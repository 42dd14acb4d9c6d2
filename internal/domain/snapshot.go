package domain

// Snapshot is a detached copy of a whole instance with groups and tasks in list
// order. Persistence backends read and write snapshots; they never see the
// linked stores.
type Snapshot struct {
	User     User
	Settings Settings
	Groups   []Group
	Tasks    []Task
}
