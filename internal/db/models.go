package db

import "time"

type Reservation struct {
	ID                  int64
	Title               string
	SpaceID             int
	StartDateTime       time.Time
	EndDateTime         time.Time
	ReservationDateTime time.Time
	ReservedByID        int64
	ResponsiblePersonID int64
}

type Waiting struct {
	ID                  int64
	SpaceID             int
	StartDateTime       time.Time
	EndDateTime         time.Time
	ReservationDateTime time.Time
	ReservedByID        int64
	Available           bool
}

type User struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

type ResponsiblePerson struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
}

func (p ResponsiblePerson) FullName() string {
	return p.FirstName + " " + p.LastName
}

type Admin struct {
	ID           int64
	Email        string
	PasswordHash string
}

type Space struct {
	ID   int
	Name string
}
