package domain

// Instance is one deployed annotator workspace bound to a single PDF document
// within a course. The instance directory enumerates them per course.
type Instance struct {
	ID       int64
	CourseID int64
	Name     string
}
