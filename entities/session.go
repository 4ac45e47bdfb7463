package entities

import "time"

// ShowtimesResponse is the nested payload returned by the showtime lookup:
// theatre -> dates -> movies -> experiences -> sessions.
type ShowtimesResponse struct {
	Theatre ShowtimeTheatre `json:"theatre"`
}

type ShowtimeTheatre struct {
	TheatreId string         `json:"theatreId"`
	Name      string         `json:"name"`
	Dates     []ShowtimeDate `json:"dates"`
}

type ShowtimeDate struct {
	Date   string          `json:"date"`
	Movies []ShowtimeMovie `json:"movies"`
}

type ShowtimeMovie struct {
	MovieId          string               `json:"movieId"`
	Name             string               `json:"name"`
	PosterUrl        string               `json:"posterUrl"`
	RuntimeMinutes   int                  `json:"runtimeMinutes"`
	PresentationType string               `json:"presentationType"`
	Experiences      []ShowtimeExperience `json:"experiences"`
}

type ShowtimeExperience struct {
	ExperienceTypes []string          `json:"experienceTypes"`
	Sessions        []ShowtimeSession `json:"sessions"`
}

type ShowtimeSession struct {
	SessionId      string `json:"sessionId"`
	StartDateTime  string `json:"startDateTime"`
	SeatsRemaining int    `json:"seatsRemaining"`
	IsSoldOut      bool   `json:"isSoldOut"`
	Auditorium     string `json:"auditorium"`
}

// Session is one flat showtime record: a bookable screening of a movie at a
// specific theatre, auditorium and start time. The collector emits one per leaf
// session of the nested showtime payload; the enricher sets Occupancy in place.
type Session struct {
	MovieId          string        `json:"movieId"`
	MovieName        string        `json:"movieName"`
	PosterUrl        string        `json:"posterUrl"`
	RuntimeMinutes   int           `json:"runtimeMinutes"`
	PresentationType string        `json:"presentationType"`
	TheatreId        string        `json:"theatreId"`
	TheatreName      string        `json:"theatreName"`
	StartDateTime    time.Time     `json:"startDateTime"`
	SeatsRemaining   int           `json:"seatsRemaining"`
	IsSoldOut        bool          `json:"isSoldOut"`
	Auditorium       string        `json:"auditorium"`
	SessionId        string        `json:"sessionId"`
	ExperienceTypes  []string      `json:"experienceTypes"`
	Occupancy        *SeatSnapshot `json:"occupancy,omitempty"`
}

// Key is the composite identity used to merge seat data back onto the flat
// list. Session ids are only unique within a theatre.
func (s *Session) Key() string {
	return s.TheatreId + "|" + s.SessionId
}

// SoldOut reports whether the session counts as sold out for ranking purposes.
// The showtime feed's own signals are authoritative here; the live seat
// snapshot never overrides them.
func (s *Session) SoldOut() bool {
	return s.IsSoldOut || s.SeatsRemaining == 0
}
