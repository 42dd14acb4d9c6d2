package domain

// AchievementSlots is the number of opaque achievement flags carried per user.
const AchievementSlots = 256

// User holds the point total and achievement flags of the single player of an instance.
// Achievement values are owned by an external subsystem and are never interpreted here.
type User struct {
	Points       int32
	Achievements [AchievementSlots]int32
}

// AddPoints adjusts the total using 32-bit wrapping arithmetic, matching the
// width of the persisted field.
func (u *User) AddPoints(delta int64) {
	u.Points = int32(int64(u.Points) + delta)
}
