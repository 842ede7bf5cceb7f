package domain

// Centre represents a sports venue offering one or more sports
type Centre struct {
	ID       int64
	Name     string
	Location string
}

// Sport represents a sport offered at exactly one centre
type Sport struct {
	ID       int64
	Name     string
	CentreID int64
}

// Court represents a bookable physical resource under exactly one sport.
// Court — единица эксклюзивности расписания: два бронирования одного корта
// не могут пересекаться по времени.
type Court struct {
	ID      int64
	Name    string
	SportID int64
}
