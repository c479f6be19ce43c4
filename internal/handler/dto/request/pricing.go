package request

import "time"

type PriceQuoteRequest struct {
	DurationMinutes int       `json:"durationMinutes" binding:"min=0"`
	Date            time.Time `json:"date" binding:"required"`
}
