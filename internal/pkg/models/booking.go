package models

import (
	"time"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	BookingStatusUnresponded BookingStatus = "unresponded"
	BookingStatusPending     BookingStatus = "pending"
	BookingStatusAccepted    BookingStatus = "accepted"
	BookingStatusRejected    BookingStatus = "rejected"
	BookingStatusCompleted   BookingStatus = "completed"
)

// Passengers holds the passenger breakdown for a booking
type Passengers struct {
	Adults int `json:"adults"`
	Kids   int `json:"kids"`
	Total  int `json:"total"`
}

// CustomerInfo holds the customer contact details attached to a booking
type CustomerInfo struct {
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Mobile     string     `json:"mobile"`
	Passengers Passengers `json:"passengers"`
}

// TripDuration holds the day/night split of a package
type TripDuration struct {
	Days   int `json:"days"`
	Nights int `json:"nights"`
}

// TripDetails describes the transfer or package the customer booked
type TripDetails struct {
	From            string       `json:"from"`
	Destination     string       `json:"destination"`
	TravelDate      time.Time    `json:"travelDate"`
	PackageType     string       `json:"packageType"`
	PackageCategory string       `json:"packageCategory"`
	Duration        TripDuration `json:"duration"`
}

// VehicleDetails describes the cab assigned to a booking
type VehicleDetails struct {
	Name            string `json:"name"`
	Type            string `json:"type"`
	SeatingCapacity int    `json:"seatingCapacity"`
}

// ItineraryDay is a single day entry in a booking's itinerary
type ItineraryDay struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	CityName       string   `json:"cityName"`
	TotalHours     float64  `json:"totalHours"`
	DistanceKm     float64  `json:"distanceKm"`
	CityAreas      []string `json:"cityAreas"`
	AdditionalInfo string   `json:"additionalInfo"`
}

// Booking is a customer trip request the vendor must respond to.
// The client holds only a transient, non-authoritative copy per fetch;
// the remote service is the sole source of truth for booking state.
type Booking struct {
	ID             string         `json:"_id"`
	BookingStatus  BookingStatus  `json:"bookingStatus"`
	CreatedAt      time.Time      `json:"createdAt"`
	CustomerInfo   CustomerInfo   `json:"customerInfo"`
	TripDetails    TripDetails    `json:"tripDetails"`
	VehicleDetails VehicleDetails `json:"vehicleDetails"`
	Itinerary      []ItineraryDay `json:"itinerary"`
	Cost           float64        `json:"cost"`
	Taxes          float64        `json:"taxes,omitempty"`
}

// ResponseDetails is the vendor's response recorded on a status update
type ResponseDetails struct {
	Status      string    `json:"status"`
	Reason      string    `json:"reason,omitempty"`
	Amount      float64   `json:"amount"`
	RespondedAt time.Time `json:"respondedAt"`
}

// BookingUpdateRequest is the payload of a booking status-transition PUT
type BookingUpdateRequest struct {
	BookingStatus   BookingStatus   `json:"bookingStatus"`
	ResponseDetails ResponseDetails `json:"responseDetails"`
}

// RejectionSubmission carries the rejection form input. BidAmount is kept as
// the raw form text; validation parses it before any network call is made.
type RejectionSubmission struct {
	Reason    string `json:"reason"`
	BidAmount string `json:"bidAmount,omitempty"`
}

// BookingDecisionEvent is published after a successful accept or reject
type BookingDecisionEvent struct {
	EventID   string        `json:"event_id"`
	BookingID string        `json:"booking_id"`
	Decision  BookingStatus `json:"decision"`
	Reason    string        `json:"reason,omitempty"`
	BidAmount float64       `json:"bid_amount,omitempty"`
	DecidedAt time.Time     `json:"decided_at"`
}
