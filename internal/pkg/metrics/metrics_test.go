package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveGeneration(t *testing.T) {
	runs := testutil.ToFloat64(GenerationRuns.WithLabelValues("true"))
	created := testutil.ToFloat64(SessionsCreated)

	ObserveGeneration(true, 7, 2, 150*time.Millisecond)

	assert.Equal(t, runs+1, testutil.ToFloat64(GenerationRuns.WithLabelValues("true")))
	assert.Equal(t, created+7, testutil.ToFloat64(SessionsCreated))
}

func TestCategoryDegraded(t *testing.T) {
	before := testutil.ToFloat64(DegradedCategories.WithLabelValues("roomsOverCapacity"))

	CategoryDegraded("roomsOverCapacity")

	assert.Equal(t, before+1, testutil.ToFloat64(DegradedCategories.WithLabelValues("roomsOverCapacity")))
}
