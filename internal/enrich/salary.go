package enrich

// AverageSalary returns the mean of the available bounds, or nil if neither is set.
func AverageSalary(min, max *float64) *float64 {
	var sum float64
	var n int
	for _, v := range []*float64{min, max} {
		if v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}
