package domain

// Settings are the scoring parameters of an instance.
type Settings struct {
	// Multiplier scales age in days into points.
	Multiplier uint32
	// Threshold is the number of days a task may stay incomplete before it is scored.
	Threshold uint32
}
