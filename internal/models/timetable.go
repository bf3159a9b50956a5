package models

// ClassType is the kind of a timetable slot.
type ClassType string

const (
	ClassLecture  ClassType = "lecture"
	ClassLab      ClassType = "lab"
	ClassTutorial ClassType = "tutorial"
)

// Valid reports whether t is a known class type.
func (t ClassType) Valid() bool {
	switch t {
	case ClassLecture, ClassLab, ClassTutorial:
		return true
	}
	return false
}

// ClassEntry is one slot in a student's weekly timetable.
type ClassEntry struct {
	ID      string    `json:"id"`
	Subject string    `json:"subject"`
	Time    string    `json:"time"`
	Room    string    `json:"room"`
	Day     string    `json:"day"`
	Type    ClassType `json:"type"`
}
