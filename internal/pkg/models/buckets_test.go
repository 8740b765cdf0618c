package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBucketFor(t *testing.T) {
	testCases := []struct {
		name          string
		price         string
		expectedLabel string
		bucketed      bool
	}{
		{name: "zero", price: "0", expectedLabel: "0-100", bucketed: true},
		{name: "lower boundary inclusive", price: "101", expectedLabel: "101-200", bucketed: true},
		{name: "upper boundary inclusive", price: "100", expectedLabel: "0-100", bucketed: true},
		{name: "between boundaries falls through", price: "100.50", bucketed: false},
		{name: "cents inside a bucket", price: "149.99", expectedLabel: "101-200", bucketed: true},
		{name: "top closed bucket", price: "900", expectedLabel: "801-900", bucketed: true},
		{name: "just above top closed bucket", price: "900.01", expectedLabel: "901-above", bucketed: true},
		{name: "open bucket", price: "12000", expectedLabel: "901-above", bucketed: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, ok := BucketFor(decimal.RequireFromString(tc.price))
			assert.Equal(t, tc.bucketed, ok)
			if tc.bucketed {
				assert.Equal(t, tc.expectedLabel, b.Label)
			}
		})
	}
}

func TestPriceBucketsAreOrderedAndLabeled(t *testing.T) {
	expected := []string{
		"0-100", "101-200", "201-300", "301-400", "401-500",
		"501-600", "601-700", "701-800", "801-900", "901-above",
	}

	assert.Len(t, PriceBuckets, len(expected))
	for i, b := range PriceBuckets {
		assert.Equal(t, expected[i], b.Label)
	}
}
