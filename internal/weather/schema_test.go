package weather

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseForecastRoundTrip(t *testing.T) {
	want := sampleForecast(ForecastDays)

	b, err := json.Marshal(want)
	require.NoError(t, err)

	got, err := ParseForecast(string(b))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseForecastUsesDocumentedKeys(t *testing.T) {
	b, err := json.Marshal(sampleForecast(1))
	require.NoError(t, err)

	for _, key := range []string{
		`"location"`, `"currentTemp"`, `"currentCondition"`, `"forecast"`, `"date"`, `"day"`,
		`"maxTemp"`, `"minTemp"`, `"condition"`, `"description"`, `"icon"`, `"precipitationChance"`,
		`"sources"`, `"uri"`, `"title"`,
	} {
		assert.Contains(t, string(b), key)
	}
}

func TestParseForecastTruncatesLongLists(t *testing.T) {
	b, err := json.Marshal(sampleForecast(9))
	require.NoError(t, err)

	got, err := ParseForecast(string(b))
	require.NoError(t, err)
	require.Len(t, got.Days, ForecastDays)
	assert.Equal(t, "2026-10-19", got.Days[0].Date)
	assert.Equal(t, "2026-10-25", got.Days[6].Date)
}

func TestParseForecastAcceptsShortLists(t *testing.T) {
	b, err := json.Marshal(sampleForecast(3))
	require.NoError(t, err)

	got, err := ParseForecast(string(b))
	require.NoError(t, err)
	assert.Len(t, got.Days, 3)
}

func TestParseForecastRoundsPrecipitation(t *testing.T) {
	raw := `{"location":"Paris, France","currentTemp":0,"currentCondition":"Rain","forecast":[
		{"date":"2026-10-19","day":"Monday","maxTemp":0,"minTemp":-2,"condition":"Rain","description":"","icon":"rain","precipitationChance":59.6}
	]}`

	got, err := ParseForecast(raw)
	require.NoError(t, err)
	assert.Equal(t, 60, got.Days[0].PrecipitationChance)
	assert.Zero(t, got.CurrentTemp)
}

func TestParseForecastRejectsBadPayloads(t *testing.T) {
	day := `{"date":"2026-10-19","day":"Monday","maxTemp":20,"minTemp":10,"condition":"Sunny","description":"","icon":"sun","precipitationChance":5}`

	cases := map[string]string{
		"missing currentTemp":  `{"location":"Paris","currentCondition":"Sunny","forecast":[` + day + `]}`,
		"missing location":     `{"currentTemp":1,"currentCondition":"Sunny","forecast":[` + day + `]}`,
		"empty forecast":       `{"location":"Paris","currentTemp":1,"currentCondition":"Sunny","forecast":[]}`,
		"no forecast":          `{"location":"Paris","currentTemp":1,"currentCondition":"Sunny"}`,
		"precipitation > 100":  `{"location":"Paris","currentTemp":1,"currentCondition":"Sunny","forecast":[` + strings.Replace(day, `"precipitationChance":5`, `"precipitationChance":140`, 1) + `]}`,
		"negative precip":      `{"location":"Paris","currentTemp":1,"currentCondition":"Sunny","forecast":[` + strings.Replace(day, `"precipitationChance":5`, `"precipitationChance":-1`, 1) + `]}`,
		"max below min":        `{"location":"Paris","currentTemp":1,"currentCondition":"Sunny","forecast":[` + strings.Replace(day, `"maxTemp":20`, `"maxTemp":5`, 1) + `]}`,
		"bad date":             `{"location":"Paris","currentTemp":1,"currentCondition":"Sunny","forecast":[` + strings.Replace(day, `2026-10-19`, `19/10/2026`, 1) + `]}`,
		"string temperature":   `{"location":"Paris","currentTemp":"warm","currentCondition":"Sunny","forecast":[` + day + `]}`,
		"missing maxTemp":      `{"location":"Paris","currentTemp":1,"currentCondition":"Sunny","forecast":[` + strings.Replace(day, `"maxTemp":20,`, ``, 1) + `]}`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseForecast(raw)
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.ErrorIs(t, err, ErrInvalidSchema)
		})
	}
}

func TestParseForecastExposesFieldErrors(t *testing.T) {
	_, err := ParseForecast(`{"location":"Paris","currentCondition":"Sunny","forecast":[]}`)
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	assert.Contains(t, fields, "currentTemp")
	assert.Contains(t, fields, "forecast")
}
