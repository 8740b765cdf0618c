package models

import "github.com/shopspring/decimal"

// PriceBucket is one fixed price range of the histogram. Closed buckets
// include both integer boundaries; the final bucket is open-ended above
// its minimum. Comparison is exact decimal, so a price strictly between
// two adjacent integer boundaries (e.g. 100.50) falls in no bucket. That
// mirrors the source dataset's integer pricing and is preserved on purpose.
type PriceBucket struct {
	Label     string
	Min       decimal.Decimal
	Max       decimal.Decimal
	OpenEnded bool
}

// PriceBuckets is the fixed, ordered bucket list used by the bar chart view.
var PriceBuckets = []PriceBucket{
	{Label: "0-100", Min: decimal.NewFromInt(0), Max: decimal.NewFromInt(100)},
	{Label: "101-200", Min: decimal.NewFromInt(101), Max: decimal.NewFromInt(200)},
	{Label: "201-300", Min: decimal.NewFromInt(201), Max: decimal.NewFromInt(300)},
	{Label: "301-400", Min: decimal.NewFromInt(301), Max: decimal.NewFromInt(400)},
	{Label: "401-500", Min: decimal.NewFromInt(401), Max: decimal.NewFromInt(500)},
	{Label: "501-600", Min: decimal.NewFromInt(501), Max: decimal.NewFromInt(600)},
	{Label: "601-700", Min: decimal.NewFromInt(601), Max: decimal.NewFromInt(700)},
	{Label: "701-800", Min: decimal.NewFromInt(701), Max: decimal.NewFromInt(800)},
	{Label: "801-900", Min: decimal.NewFromInt(801), Max: decimal.NewFromInt(900)},
	{Label: "901-above", Min: decimal.NewFromInt(900), OpenEnded: true},
}

// Contains reports whether the price falls inside the bucket.
func (b PriceBucket) Contains(price decimal.Decimal) bool {
	if b.OpenEnded {
		return price.GreaterThan(b.Min)
	}
	return price.GreaterThanOrEqual(b.Min) && price.LessThanOrEqual(b.Max)
}

// BucketFor returns the bucket containing the price, or false when the
// price falls between two bucket boundaries.
func BucketFor(price decimal.Decimal) (PriceBucket, bool) {
	for _, b := range PriceBuckets {
		if b.Contains(price) {
			return b, true
		}
	}
	return PriceBucket{}, false
}
