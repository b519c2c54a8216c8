package weather

import "fmt"

const promptTemplate = `
I need the weather forecast for %s for today and the next %d days (%d days total).
Use Google Search to find the most accurate and up-to-date weather information.

After finding the information, format the output STRICTLY as a JSON object with the following structure.
Do not use Markdown formatting (like a json code fence) if you can avoid it, but if you do, it will be parsed.

Structure:
{
  "location": "City, Country",
  "currentTemp": number (current temperature in Celsius),
  "currentCondition": "string (e.g. Sunny)",
  "forecast": [
    {
      "date": "YYYY-MM-DD",
      "day": "Day Name (e.g. Monday)",
      "maxTemp": number (Celsius),
      "minTemp": number (Celsius),
      "condition": "Short condition (Sunny, Cloudy, Rain, Snow, Storm, Fog, Partly Cloudy)",
      "description": "Short description of the day's weather",
      "icon": "one of: sun, cloud, rain, snow, storm, fog, partly-cloudy",
      "precipitationChance": number (0-100)
    }
    ... (%d days total)
  ]
}
`

// BuildPrompt returns the instruction sent to the model for location.
func BuildPrompt(location string) string {
	return fmt.Sprintf(promptTemplate, location, ForecastDays-1, ForecastDays, ForecastDays)
}
