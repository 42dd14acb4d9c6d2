package domain

// DefaultGroupID is the group every new task belongs to until reassigned.
const DefaultGroupID uint32 = 0

const (
	DefaultGroupTitle       = "Default Tasks"
	DefaultGroupDescription = "Default tasks"
)

// Group is a named bucket tasks can reference by id.
type Group struct {
	ID          uint32
	Title       string
	Description string
}

// NewGroup creates a Group with the given title and description.
// The id is assigned by the store on append.
func NewGroup(title, description string) Group {
	return Group{
		Title:       title,
		Description: description,
	}
}

// String returns the group title for display purposes.
func (g Group) String() string {
	return g.Title
}
