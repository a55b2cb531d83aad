package domain

import "time"

// Reservation is an accepted table reservation request. Like orders it is
// simulated: accepted requests are acknowledged and published, not stored.
type Reservation struct {
	ConfirmationCode string    `json:"confirmation_code"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	Date             string    `json:"date"`
	TimeSlot         string    `json:"time_slot"`
	PartySize        int       `json:"party_size"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// Subscription is an accepted newsletter signup.
type Subscription struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Preferences  []string  `json:"preferences"`
	SubscribedAt time.Time `json:"subscribed_at"`
}
