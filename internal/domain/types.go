package domain

import (
	"time"
)

type Media struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type Location struct {
	Address   string `json:"address"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
	Continent string `json:"continent"`
}

type Meta struct {
	Wifi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

type Profile struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Bio          string `json:"bio,omitempty"`
	Avatar       Media  `json:"avatar"`
	VenueManager bool   `json:"venueManager"`
}

type Venue struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Media       []Media   `json:"media"`
	Price       float64   `json:"price"`
	MaxGuests   int       `json:"maxGuests"`
	Rating      float64   `json:"rating"`
	Meta        Meta      `json:"meta"`
	Location    Location  `json:"location"`
	Owner       string    `json:"owner"`
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`
}

// Customer is the booking owner as shown to venue managers.
type Customer struct {
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Avatar Media  `json:"avatar"`
}

type Booking struct {
	ID       string    `json:"id"`
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
	Guests   int       `json:"guests"`
	VenueID  string    `json:"venueId"`
	Customer Customer  `json:"customer"`
	Created  time.Time `json:"created"`
	Updated  time.Time `json:"updated"`
}

type VenueWithBookings struct {
	Venue
	Bookings []Booking `json:"bookings"`
}

type BookingWithVenue struct {
	Booking
	Venue Venue `json:"venue"`
}

type ProfileDetails struct {
	Profile
	Venues   []Venue            `json:"venues"`
	Bookings []BookingWithVenue `json:"bookings"`
}

// DateRange is a closed interval [From, To]. A range with From after To is invalid.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

func (r DateRange) Valid() bool {
	return !r.From.After(r.To)
}
