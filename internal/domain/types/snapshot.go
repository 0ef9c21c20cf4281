package types

// Snapshot is a point-in-time view of the catalog. Slices in a snapshot are
// never modified after it is handed out; callers must not modify them either.
type Snapshot struct {
	Courses     []Course     `json:"courses"`
	Enrolled    []Course     `json:"enrolled"`
	Submissions []Submission `json:"submissions"`
	NextID      CourseID     `json:"next_id"`
}
