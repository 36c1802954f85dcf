package register

const (
	// BasePricePerNight is charged per client and night.
	BasePricePerNight = 20.0
	// BreakfastMultiplier is applied to the whole stay when breakfast is included.
	BreakfastMultiplier = 1.25
)

// Price returns the total price of a stay for clientCount guests.
func Price(clientCount, duration int, breakfast bool) float64 {
	multiplier := 1.0
	if breakfast {
		multiplier = BreakfastMultiplier
	}
	return float64(clientCount) * BasePricePerNight * float64(duration) * multiplier
}
