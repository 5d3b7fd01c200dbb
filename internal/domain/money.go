package domain

import "math"

// RoundCents rounds an amount or average to two decimals, halves away from zero.
func RoundCents(f float64) float64 { return math.Round(f*100) / 100 }
