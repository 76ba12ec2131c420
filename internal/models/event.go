package models

import "time"

// GuestEvent is a fire-and-forget interaction report from the ordering UI.
// Payload holds the event-specific fields pre-marshalled as JSON so every
// sink (Kafka, Parquet, Postgres) can treat it as an opaque string.
type GuestEvent struct {
	ID           string `json:"id" parquet:"name=id,type=BYTE_ARRAY,convertedtype=UTF8"`
	RestaurantID string `json:"restaurant_id" parquet:"name=restaurantId,type=BYTE_ARRAY,convertedtype=UTF8"`
	EventType    string `json:"event_type" parquet:"name=eventType,type=BYTE_ARRAY,convertedtype=UTF8"`
	Payload      string `json:"payload" parquet:"name=payload,type=BYTE_ARRAY,convertedtype=UTF8"`
	GuestID      string `json:"guest_id,omitempty" parquet:"name=guestId,type=BYTE_ARRAY,convertedtype=UTF8"`
	Variant      string `json:"variant,omitempty" parquet:"name=variant,type=BYTE_ARRAY,convertedtype=UTF8"`
	Timestamp    int64  `json:"timestamp" parquet:"name=timestamp,type=INT64"`
}

func NewGuestEvent(id, restaurantID, eventType, payload, guestID, variant string, at time.Time) GuestEvent {
	return GuestEvent{
		ID:           id,
		RestaurantID: restaurantID,
		EventType:    eventType,
		Payload:      payload,
		GuestID:      guestID,
		Variant:      variant,
		Timestamp:    at.Unix(),
	}
}
