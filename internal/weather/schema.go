package weather

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report json names so errors read like the payload the model produced.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(validateDayRange, dayPayload{})
	return v
}

// forecastPayload is the wire shape requested in the prompt. Numbers are
// pointers so that a missing field is distinguishable from zero.
type forecastPayload struct {
	Location         string       `json:"location" validate:"required"`
	CurrentTemp      *float64     `json:"currentTemp" validate:"required"`
	CurrentCondition string       `json:"currentCondition" validate:"required"`
	Forecast         []dayPayload `json:"forecast" validate:"required,min=1,dive"`
	Sources          []Source     `json:"sources"`
}

type dayPayload struct {
	Date                string   `json:"date" validate:"required,datetime=2006-01-02"`
	Day                 string   `json:"day" validate:"required"`
	MaxTemp             *float64 `json:"maxTemp" validate:"required"`
	MinTemp             *float64 `json:"minTemp" validate:"required"`
	Condition           string   `json:"condition" validate:"required"`
	Description         string   `json:"description"`
	Icon                string   `json:"icon"`
	PrecipitationChance *float64 `json:"precipitationChance" validate:"required,gte=0,lte=100"`
}

func validateDayRange(sl validator.StructLevel) {
	d := sl.Current().Interface().(dayPayload)
	if d.MaxTemp != nil && d.MinTemp != nil && *d.MaxTemp < *d.MinTemp {
		sl.ReportError(d.MaxTemp, "maxTemp", "MaxTemp", "gtefield", "minTemp")
	}
}

// ParseForecast decodes and validates a JSON object produced by the model.
// Lists longer than ForecastDays are truncated; shorter ones are accepted.
func ParseForecast(raw string) (Forecast, error) {
	var p forecastPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Forecast{}, &ParseError{Reason: "decode", Err: fmt.Errorf("%w: %w", ErrInvalidSchema, err)}
	}
	if err := validate.Struct(p); err != nil {
		return Forecast{}, &ParseError{Reason: "validate", Err: fmt.Errorf("%w: %w", ErrInvalidSchema, err)}
	}

	days := p.Forecast
	if len(days) > ForecastDays {
		days = days[:ForecastDays]
	}

	f := Forecast{
		Location:         p.Location,
		CurrentTemp:      *p.CurrentTemp,
		CurrentCondition: p.CurrentCondition,
		Days:             make([]ForecastDay, 0, len(days)),
		Sources:          p.Sources,
	}
	for _, d := range days {
		f.Days = append(f.Days, ForecastDay{
			Date:                d.Date,
			Day:                 d.Day,
			MaxTemp:             *d.MaxTemp,
			MinTemp:             *d.MinTemp,
			Condition:           d.Condition,
			Description:         d.Description,
			Icon:                d.Icon,
			PrecipitationChance: int(math.Round(*d.PrecipitationChance)),
		})
	}
	return f, nil
}
