// Package features derives the fixed-order numeric summary of a closed
// flow consumed by the statistical classifier.
package features

import (
	"NetSentry/internal/engine/flowtable"
)

// Extract converts a closed flow into its feature vector. It is pure and
// total: identical flows yield identical vectors, and any statistic that
// is undefined for the flow (no samples, zero duration) is 0, never NaN
// or infinite.
func Extract(f *flowtable.Flow) []float64 {
	v := make([]float64, FeatureCount)

	dur := f.Duration().Seconds()
	fwd := &f.Fwd
	bwd := &f.Bwd

	all := combine(fwd.Len, bwd.Len)

	i := 0
	put := func(val float64) {
		v[i] = val
		i++
	}

	put(float64(f.Tuple.SrcPort))
	put(float64(f.Tuple.DstPort))
	put(float64(f.Tuple.Protocol))
	put(dur)

	put(float64(fwd.Packets))
	put(float64(bwd.Packets))
	put(float64(fwd.Bytes))
	put(float64(bwd.Bytes))

	put(fwd.Len.Min())
	put(fwd.Len.Max())
	put(fwd.Len.Mean())
	put(fwd.Len.Std())
	put(bwd.Len.Min())
	put(bwd.Len.Max())
	put(bwd.Len.Mean())
	put(bwd.Len.Std())
	put(all.Min())
	put(all.Max())
	put(all.Mean())
	put(all.Std())
	put(all.Variance())

	put(rate(float64(fwd.Bytes+bwd.Bytes), dur))
	put(rate(float64(fwd.Packets+bwd.Packets), dur))
	put(rate(float64(fwd.Bytes), dur))
	put(rate(float64(fwd.Packets), dur))
	put(rate(float64(bwd.Bytes), dur))
	put(rate(float64(bwd.Packets), dur))

	flowIAT := combine(fwd.IAT, bwd.IAT)
	put(flowIAT.Mean())
	put(flowIAT.Std())
	put(flowIAT.Max())
	put(flowIAT.Min())
	put(fwd.IAT.Mean())
	put(fwd.IAT.Std())
	put(fwd.IAT.Max())
	put(fwd.IAT.Min())
	put(bwd.IAT.Mean())
	put(bwd.IAT.Std())
	put(bwd.IAT.Max())
	put(bwd.IAT.Min())

	put(float64(fwd.FIN))
	put(float64(fwd.SYN))
	put(float64(fwd.RST))
	put(float64(fwd.PSH))
	put(float64(fwd.URG))
	put(float64(bwd.FIN))
	put(float64(bwd.SYN))
	put(float64(bwd.RST))
	put(float64(bwd.PSH))
	put(float64(bwd.URG))

	put(float64(fwd.HeaderBytes))
	put(float64(bwd.HeaderBytes))

	put(fwd.Len.Mean())
	put(bwd.Len.Mean())
	put(fwd.HeaderLenMin)
	put(float64(fwd.PayloadPackets))

	if fwd.Packets > 0 {
		put(float64(bwd.Packets) / float64(fwd.Packets))
	} else {
		put(0)
	}

	put(float64(fwd.BulkCount))
	put(rate(float64(fwd.BulkPackets), fwd.BulkDuration))
	put(avg(float64(fwd.BulkBytes), fwd.BulkCount))
	put(avg(float64(fwd.BulkPackets), fwd.BulkCount))
	put(float64(bwd.BulkCount))
	put(rate(float64(bwd.BulkPackets), bwd.BulkDuration))
	put(avg(float64(bwd.BulkBytes), bwd.BulkCount))
	put(avg(float64(bwd.BulkPackets), bwd.BulkCount))

	// Subflow totals equal the direction totals: the table exports each
	// flow once, so there is exactly one subflow.
	put(float64(fwd.Packets))
	put(float64(fwd.Bytes))
	put(float64(bwd.Packets))
	put(float64(bwd.Bytes))

	put(float64(fwd.InitWindow))
	put(float64(bwd.InitWindow))

	put(f.Active.Mean())
	put(f.Active.Std())
	put(f.Active.Max())
	put(f.Active.Min())
	put(f.Idle.Mean())
	put(f.Idle.Std())
	put(f.Idle.Max())
	put(f.Idle.Min())

	return v
}

// rate divides a total by a duration in seconds, yielding 0 when the
// duration is not positive.
func rate(total, seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}
	return total / seconds
}

// avg divides a total by a count, yielding 0 when the count is 0.
func avg(total float64, count uint64) float64 {
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// combine merges two distributions into one covering both sample sets.
func combine(a, b flowtable.Dist) flowtable.Dist {
	var out flowtable.Dist
	out.Merge(a)
	out.Merge(b)
	return out
}
