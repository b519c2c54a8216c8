package weather

import "fmt"

func sampleForecast(days int) Forecast {
	names := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	f := Forecast{
		Location:         "New York, USA",
		CurrentTemp:      21.5,
		CurrentCondition: "Partly Cloudy",
		Sources: []Source{
			{URI: "https://weather.example/nyc", Title: "Example Weather"},
		},
	}
	for i := 0; i < days; i++ {
		f.Days = append(f.Days, ForecastDay{
			Date:                fmt.Sprintf("2026-10-%02d", 19+i),
			Day:                 names[i%len(names)],
			MaxTemp:             22 + float64(i),
			MinTemp:             12.5 + float64(i),
			Condition:           "Sunny",
			Description:         "Clear and mild",
			Icon:                "sun",
			PrecipitationChance: 10 * i,
		})
	}
	return f
}
