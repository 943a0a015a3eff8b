package utils

// MinIncrement is the smallest currency unit accepted as a bid step
const MinIncrement = 0.01

// BidFloor returns the amount a new bid must strictly exceed: the current
// highest bid, or the list price while no bid has been accepted yet.
func BidFloor(listPrice, currentHighest float64) float64 {
	if currentHighest > listPrice {
		return currentHighest
	}
	return listPrice
}

// MinAcceptableBid returns the lowest amount that would currently be
// accepted for an item
func MinAcceptableBid(listPrice, currentHighest float64) float64 {
	return BidFloor(listPrice, currentHighest) + MinIncrement
}
