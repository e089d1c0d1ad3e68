package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airport-distance/model"
)

func TestDatumEllipsoidConstants(t *testing.T) {
	assert.Equal(t, model.Ellipsoid{RadiusKm: 6378.137, SemiMinorAxisKm: 6356.752314245, InverseFlattening: 1 / 298.257223563}, model.WGS84.Ellipsoid())
	assert.Equal(t, model.Ellipsoid{RadiusKm: 6378.2064, SemiMinorAxisKm: 6356.5838, InverseFlattening: 1 / 294.9786982}, model.NAD27.Ellipsoid())
	assert.Equal(t, model.Ellipsoid{RadiusKm: 6378.137, SemiMinorAxisKm: 6356.752314140347, InverseFlattening: 1 / 298.257222101}, model.NAD83.Ellipsoid())
}

func TestFormulaAndDatumJSON(t *testing.T) {
	var req struct {
		Formula model.Formula `json:"formula"`
		Datum   model.Datum   `json:"datum"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"formula":"vincenty","datum":"nad27"}`), &req))
	assert.Equal(t, model.Vincenty, req.Formula)
	assert.Equal(t, model.NAD27, req.Datum)

	out, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"formula":"vincenty","datum":"nad27"}`, string(out))
}

func TestFormulaAndDatumDefaults(t *testing.T) {
	var req struct {
		Formula model.Formula `json:"formula"`
		Datum   model.Datum   `json:"datum"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	assert.Equal(t, model.GreatCircle, req.Formula)
	assert.Equal(t, model.WGS84, req.Datum)
}

func TestParseRejectsUnknownNames(t *testing.T) {
	_, err := model.ParseFormula("manhattan")
	assert.Error(t, err)

	_, err = model.ParseDatum("ed50")
	assert.Error(t, err)

	var d model.Datum
	assert.Error(t, json.Unmarshal([]byte(`"osgb36"`), &d))

	f, err := model.ParseFormula("GREAT_CIRCLE")
	require.NoError(t, err)
	assert.Equal(t, model.GreatCircle, f)
}

func TestAirportCoordinates(t *testing.T) {
	a := model.Airport{IATACode: "KRK", LatDecimal: 50.0770, LonDecimal: 19.7881}
	assert.Equal(t, model.NewCoordinates(50.0770, 19.7881), a.Coordinates())
	assert.Equal(t, "airports", a.TableName())
}
