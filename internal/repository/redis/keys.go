package redis

import "fmt"

const ns = "holidaze:v1"

func KeyVenuesAll() string {
	return ns + ":venues:all"
}

func KeyVenue(venueID string) string {
	return fmt.Sprintf("%s:venue:%s", ns, venueID)
}

func KeyVenueBookings(venueID string) string {
	return fmt.Sprintf("%s:venue:%s:bookings", ns, venueID)
}

func KeyRateLimit(scope, id string) string {
	return fmt.Sprintf("%s:rl:%s:%s", ns, scope, id)
}

func ChannelVenuesChanged() string {
	return ns + ":venues:changed"
}
