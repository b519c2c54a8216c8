package weather

// Summary holds the figures the dashboard hero card and chart need.
type Summary struct {
	TodayMax    float64
	TodayMin    float64
	TodayPrecip int
	HasToday    bool

	// Week range across all days, used to scale the temperature chart.
	WeekLow  float64
	WeekHigh float64
}

// Summarize computes today's figures and the week's temperature range.
// An empty forecast yields a zero Summary with HasToday false.
func Summarize(f Forecast) Summary {
	today, ok := f.Today()
	if !ok {
		return Summary{}
	}

	s := Summary{
		TodayMax:    today.MaxTemp,
		TodayMin:    today.MinTemp,
		TodayPrecip: today.PrecipitationChance,
		HasToday:    true,
		WeekLow:     today.MinTemp,
		WeekHigh:    today.MaxTemp,
	}

	for _, d := range f.Days[1:] {
		if d.MinTemp < s.WeekLow {
			s.WeekLow = d.MinTemp
		}
		if d.MaxTemp > s.WeekHigh {
			s.WeekHigh = d.MaxTemp
		}
	}
	return s
}
