package booking

import "math"

// ComputeEarnings splits a snapshotted base price by the commission
// percentage in force. The two parts always sum back to the base price:
// commission is rounded to cents and the provider share is the remainder.
func ComputeEarnings(basePrice, commissionPct float64) (providerEarnings, commission float64) {
	commission = math.Round(basePrice*commissionPct) / 100
	providerEarnings = basePrice - commission
	return providerEarnings, commission
}
