package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// scanAll applies scan to every row.
func scanAll[T any](rows Rows, scan func(Scanner) (*T, error)) ([]*T, error) {
	var results []*T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// ScanGroup scans a single group row
func ScanGroup(scanner Scanner) (*Group, error) {
	group := &Group{}
	err := scanner.Scan(&group.ID, &group.Position, &group.Title, &group.Description)
	if err != nil {
		return nil, err
	}
	return group, nil
}

// ScanGroups scans multiple group rows
func ScanGroups(rows Rows) ([]*Group, error) {
	return scanAll(rows, ScanGroup)
}

// ScanTask scans a single task row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	err := scanner.Scan(
		&task.ID,
		&task.Position,
		&task.CreatedAt,
		&task.Priority,
		&task.Tag,
		&task.GroupID,
		&task.Complete,
		&task.Processed,
		&task.Ongoing,
		&task.Text,
	)
	if err != nil {
		return nil, err
	}
	return task, nil
}

// ScanTasks scans multiple task rows
func ScanTasks(rows Rows) ([]*Task, error) {
	return scanAll(rows, ScanTask)
}

// ScanAchievement scans a single achievement row
func ScanAchievement(scanner Scanner) (*Achievement, error) {
	a := &Achievement{}
	if err := scanner.Scan(&a.Slot, &a.Value); err != nil {
		return nil, err
	}
	return a, nil
}

// ScanAchievements scans multiple achievement rows
func ScanAchievements(rows Rows) ([]*Achievement, error) {
	return scanAll(rows, ScanAchievement)
}
