package algo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airport-distance/algo"
	"airport-distance/model"
)

var allFormulas = []model.Formula{model.GreatCircle, model.Haversine, model.Vincenty}
var allDatums = []model.Datum{model.WGS84, model.NAD27, model.NAD83}

func TestCalculatorsReturnZeroForSamePoint(t *testing.T) {
	points := []model.Coordinates{
		model.NewCoordinates(0, 0),
		model.NewCoordinates(51.4700, -0.4543),
		model.NewCoordinates(-33.9461, 151.1772),
		model.NewCoordinates(89.9, 179.9),
		model.NewCoordinates(37.6189, -122.3750),
	}

	for _, formula := range allFormulas {
		for _, datum := range allDatums {
			calculator := algo.NewCalculator(formula, datum)
			for _, p := range points {
				distance, err := calculator.CalculateDistance(p, p)
				require.NoError(t, err, "%s/%s %v", formula, datum, p)
				assert.InDelta(t, 0.0, distance, 1e-9, "%s/%s %v", formula, datum, p)
			}
		}
	}
}

func TestGreatCircleMatchesKnownDistance(t *testing.T) {
	calculator := algo.NewGreatCircleCalculator(6378.1)
	krk := model.NewCoordinates(50.0770, 19.7881)
	waw := model.NewCoordinates(52.1672, 20.9679)

	distance, err := calculator.CalculateDistance(krk, waw)
	require.NoError(t, err)
	assert.InDelta(t, 246.8, distance, 0.1)
}

func TestGreatCircleAntipodalPointsDoNotProduceNaN(t *testing.T) {
	calculator := algo.NewCalculator(model.GreatCircle, model.WGS84)

	distance, err := calculator.CalculateDistance(model.NewCoordinates(0, 0), model.NewCoordinates(0, 180))
	require.NoError(t, err)
	assert.InDelta(t, 20037.508342789242, distance, 1e-6)
}

func TestGreatCircleAndHaversineAgreeForShortDistances(t *testing.T) {
	pairs := [][2]model.Coordinates{
		{model.NewCoordinates(50.0, 19.0), model.NewCoordinates(50.2, 19.3)},
		{model.NewCoordinates(52.2297, 21.0122), model.NewCoordinates(52.4064, 21.1)},
		{model.NewCoordinates(-33.9, 151.2), model.NewCoordinates(-33.95, 151.18)},
		{model.NewCoordinates(40.7128, -74.006), model.NewCoordinates(40.7306, -73.9352)},
	}

	for _, datum := range allDatums {
		greatCircle := algo.NewCalculator(model.GreatCircle, datum)
		haversine := algo.NewCalculator(model.Haversine, datum)

		for _, pair := range pairs {
			gc, err := greatCircle.CalculateDistance(pair[0], pair[1])
			require.NoError(t, err)
			hv, err := haversine.CalculateDistance(pair[0], pair[1])
			require.NoError(t, err)

			assert.Less(t, gc, 50.0)
			assert.InDelta(t, gc, hv, 1e-6, "%s %v", datum, pair)
		}
	}
}

func TestVincentyReferenceDistances(t *testing.T) {
	testCases := []struct {
		name     string
		from, to model.Coordinates
		expected float64
	}{
		{"same point", model.NewCoordinates(0, 0), model.NewCoordinates(0, 0), 0},
		{"along equator", model.NewCoordinates(0, 0), model.NewCoordinates(0, 1), 111.31949079322325},
		{"along meridian", model.NewCoordinates(0, 0), model.NewCoordinates(1, 0), 110.57438855795696},
		{"nearly antipodal", model.NewCoordinates(0, 0), model.NewCoordinates(0.5, 179.5), 19936.28857898086},
		{"boston to new york", model.NewCoordinates(42.3541165, -71.0693514), model.NewCoordinates(40.7791472, -73.9680804), 298.3960574732612},
	}

	calculator := algo.NewCalculator(model.Vincenty, model.WGS84)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			distance, err := calculator.CalculateDistance(tc.from, tc.to)
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, distance, 1e-6)
		})
	}
}

func TestVincentyFailsToConvergeNearAntipode(t *testing.T) {
	calculator := algo.NewCalculator(model.Vincenty, model.WGS84)

	distance, err := calculator.CalculateDistance(model.NewCoordinates(0, 0), model.NewCoordinates(0.5, 179.7))
	require.Error(t, err)
	assert.Zero(t, distance)

	var convergenceErr *algo.ConvergenceError
	require.ErrorAs(t, err, &convergenceErr)
	assert.Equal(t, 200, convergenceErr.Iterations)
	assert.Contains(t, err.Error(), "200")
}

func TestVincentyIsSymmetric(t *testing.T) {
	calculator := algo.NewCalculator(model.Vincenty, model.NAD27)
	lhr := model.NewCoordinates(51.4700, -0.4543)
	jfk := model.NewCoordinates(40.6413, -73.7781)

	there, err := calculator.CalculateDistance(lhr, jfk)
	require.NoError(t, err)
	back, err := calculator.CalculateDistance(jfk, lhr)
	require.NoError(t, err)

	assert.InDelta(t, there, back, 1e-6)
}

func TestNewCalculatorSelectsFormula(t *testing.T) {
	assert.IsType(t, &algo.GreatCircleCalculator{}, algo.NewCalculator(model.GreatCircle, model.WGS84))
	assert.IsType(t, &algo.HaversineCalculator{}, algo.NewCalculator(model.Haversine, model.NAD27))
	assert.IsType(t, &algo.VincentyCalculator{}, algo.NewCalculator(model.Vincenty, model.NAD83))
}

func TestNewCalculatorUsesDatumRadius(t *testing.T) {
	from := model.NewCoordinates(0, 0)
	to := model.NewCoordinates(0, 1)

	wgs84, err := algo.NewCalculator(model.Haversine, model.WGS84).CalculateDistance(from, to)
	require.NoError(t, err)
	nad27, err := algo.NewCalculator(model.Haversine, model.NAD27).CalculateDistance(from, to)
	require.NoError(t, err)

	// 球面公式只用半径，NAD27 的半径更大
	assert.Greater(t, nad27, wgs84)
	assert.InDelta(t, wgs84/6378.137, nad27/6378.2064, 1e-12)
}
