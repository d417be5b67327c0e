package domain

// LayoverFunc derives the wraparound-aware gap in minutes between an arrival
// clock string and the following departure clock string. Malformed input
// yields 0, never an error.
type LayoverFunc func(arrivalTime, departureTime string) int

// SelectedFlight is the currently selected flight offer, one or more
// segments plus derived layover annotations.
type SelectedFlight struct {
	// Segments are the flight legs in travel order (length >= 1)
	Segments []FlightSegment `json:"segments"`

	// IsLayover is true when the offer has more than one segment
	IsLayover bool `json:"isLayover"`

	// LayoverTimes[i] is the gap in minutes between segment i's arrival and
	// segment i+1's departure. Always derived, never written directly.
	LayoverTimes []int `json:"layoverTimes"`

	// Price is the per-passenger fare
	Price float64 `json:"price"`

	// TotalPrice is the fare for the whole party
	TotalPrice float64 `json:"totalPrice"`

	// Currency is the ISO 4217 code the fare is quoted in
	Currency string `json:"currency"`

	// CabinClass is the travel class (economy, business, first)
	CabinClass string `json:"cabinClass"`

	// TotalDurationMinutes is the end-to-end journey duration in minutes
	TotalDurationMinutes int `json:"totalDuration"`
}

// RecomputeLayovers rebuilds IsLayover and LayoverTimes from Segments.
// The previous layover array is discarded entirely; annotations are never
// patched incrementally against an earlier selection.
func (f *SelectedFlight) RecomputeLayovers(layover LayoverFunc) {
	f.IsLayover = len(f.Segments) > 1

	if len(f.Segments) <= 1 {
		f.LayoverTimes = []int{}
		return
	}

	times := make([]int, 0, len(f.Segments)-1)
	for i := 0; i < len(f.Segments)-1; i++ {
		times = append(times, layover(f.Segments[i].ArrivalTime, f.Segments[i+1].DepartureTime))
	}
	f.LayoverTimes = times
}
