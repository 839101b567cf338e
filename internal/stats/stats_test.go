package stats

import (
	"math/rand"
	"testing"

	"github.com/itsatony/w4b_v3/server/readings/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixture = []int{22, 50, 100, 22}

func TestFixture(t *testing.T) {
	min, err := Min(fixture)
	require.NoError(t, err)
	assert.Equal(t, 22, min)

	max, err := Max(fixture)
	require.NoError(t, err)
	assert.Equal(t, 100, max)

	median, err := Median(fixture)
	require.NoError(t, err)
	assert.Equal(t, 36.0, median)

	mean, err := Mean(fixture)
	require.NoError(t, err)
	assert.Equal(t, 48.5, mean)

	mode, err := Mode(fixture)
	require.NoError(t, err)
	require.NotNil(t, mode)
	assert.Equal(t, 22, *mode)

	q1, q3, err := Quartiles(fixture)
	require.NoError(t, err)
	assert.Equal(t, 22.0, q1)
	assert.Equal(t, 62.5, q3)
}

func TestFixtureWithExtraMaximum(t *testing.T) {
	q1, q3, err := Quartiles(append([]int{100}, fixture...))
	require.NoError(t, err)
	assert.Equal(t, 22.0, q1)
	assert.Equal(t, 100.0, q3)
}

func TestInputIsNotReordered(t *testing.T) {
	values := []int{5, 1, 4, 2, 3}
	_, err := Median(values)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 1, 4, 2, 3}, values)
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   float64
	}{
		{"single", []int{7}, 7},
		{"odd", []int{3, 1, 2}, 2},
		{"even", []int{4, 1, 3, 2}, 2.5},
		{"duplicates", []int{5, 5, 5, 5}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Median(tt.values)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMode(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   *int
	}{
		{"single value", []int{9}, intPtr(9)},
		{"clear winner", []int{1, 2, 2, 3}, intPtr(2)},
		{"no repeats", []int{1, 2, 3}, nil},
		{"two-way tie", []int{1, 1, 2, 2, 3}, nil},
		{"all equal", []int{4, 4, 4}, intPtr(4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Mode(tt.values)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuantile(t *testing.T) {
	values := []int{10, 20, 30, 40, 50}

	tests := []struct {
		p    float64
		want float64
	}{
		{0, 10},
		{0.25, 20},
		{0.1, 14},
		{0.5, 30},
		{0.9, 46},
		{1, 50},
	}

	for _, tt := range tests {
		got, err := Quantile(values, tt.p)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-9, "p=%v", tt.p)
	}

	_, err := Quantile(values, 1.5)
	assert.Error(t, err)
	_, err = Quantile(values, -0.1)
	assert.Error(t, err)
}

func TestEmptyInput(t *testing.T) {
	_, err := Min(nil)
	assert.ErrorIs(t, err, ErrEmptyResult)
	_, err = Max(nil)
	assert.ErrorIs(t, err, ErrEmptyResult)
	_, err = Mean([]int{})
	assert.ErrorIs(t, err, ErrEmptyResult)
	_, err = Median(nil)
	assert.ErrorIs(t, err, ErrEmptyResult)
	_, err = Mode(nil)
	assert.ErrorIs(t, err, ErrEmptyResult)
	_, _, err = Quartiles(nil)
	assert.ErrorIs(t, err, ErrEmptyResult)

	for _, stat := range []models.Statistic{models.StatMin, models.StatMax, models.StatMean, models.StatMedian, models.StatMode} {
		_, err := Compute(stat, nil)
		assert.ErrorIs(t, err, ErrEmptyResult, string(stat))
	}
}

func TestCompute(t *testing.T) {
	got, err := Compute(models.StatMin, fixture)
	require.NoError(t, err)
	assert.Equal(t, 22, got)

	got, err = Compute(models.StatMean, fixture)
	require.NoError(t, err)
	assert.Equal(t, 48.5, got)

	got, err = Compute(models.StatMode, []int{1, 2})
	require.NoError(t, err)
	assert.Nil(t, got.(*int))

	_, err = Compute(models.Statistic("variance"), fixture)
	assert.Error(t, err)
}

func TestOrderingProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		values := make([]int, 1+rng.Intn(40))
		for j := range values {
			values[j] = rng.Intn(101)
		}

		min, _ := Min(values)
		max, _ := Max(values)
		mean, _ := Mean(values)
		median, _ := Median(values)
		q1, q3, err := Quartiles(values)
		require.NoError(t, err)

		assert.LessOrEqual(t, float64(min), median)
		assert.LessOrEqual(t, median, float64(max))
		assert.LessOrEqual(t, float64(min), mean)
		assert.LessOrEqual(t, mean, float64(max))
		assert.LessOrEqual(t, q1, median)
		assert.LessOrEqual(t, median, q3)
	}
}

func intPtr(v int) *int { return &v }
