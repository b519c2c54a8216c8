package weather

// Icon is the canonical icon category used to render a weather condition.
type Icon string

const (
	IconSun          Icon = "sun"
	IconCloud        Icon = "cloud"
	IconRain         Icon = "rain"
	IconSnow         Icon = "snow"
	IconStorm        Icon = "storm"
	IconFog          Icon = "fog"
	IconPartlyCloudy Icon = "partly-cloudy"
	IconUnknown      Icon = "unknown"
)

// ForecastDays is the number of days requested from the model, today included.
const ForecastDays = 7

// ForecastDay is a single day of the forecast as reported by the model.
type ForecastDay struct {
	Date                string  `json:"date"` // YYYY-MM-DD
	Day                 string  `json:"day"`
	MaxTemp             float64 `json:"maxTemp"` // Celsius
	MinTemp             float64 `json:"minTemp"` // Celsius
	Condition           string  `json:"condition"`
	Description         string  `json:"description"`
	Icon                string  `json:"icon"`
	PrecipitationChance int     `json:"precipitationChance"`
}

// Source is a web page the model consulted while grounding its answer.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// Forecast is the full structured weather payload for one location.
// Days are ordered chronologically, today first.
type Forecast struct {
	Location         string        `json:"location"`
	CurrentTemp      float64       `json:"currentTemp"`
	CurrentCondition string        `json:"currentCondition"`
	Days             []ForecastDay `json:"forecast"`
	Sources          []Source      `json:"sources"`
}

// Today returns the first forecast day, if any.
func (f Forecast) Today() (ForecastDay, bool) {
	if len(f.Days) == 0 {
		return ForecastDay{}, false
	}
	return f.Days[0], true
}
