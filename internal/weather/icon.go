package weather

import (
	"strings"

	"github.com/i474232898/weather-dashboard/internal/common"
)

// IconFor maps a free-text condition to an icon category.
//
// Order matters: "partly" is tested before the generic cloud match so that
// "Partly cloudy" is not absorbed by it. First match wins.
func IconFor(condition string) Icon {
	t := strings.ToLower(condition)

	switch {
	case common.HasAny(t, "sun", "clear"):
		return IconSun
	case common.HasAny(t, "partly"):
		return IconPartlyCloudy
	case common.HasAny(t, "cloud", "overcast"):
		return IconCloud
	case common.HasAny(t, "rain", "shower"):
		return IconRain
	case common.HasAny(t, "snow"):
		return IconSnow
	case common.HasAny(t, "storm", "thunder"):
		return IconStorm
	case common.HasAny(t, "fog", "mist"):
		return IconFog
	default:
		return IconUnknown
	}
}

// Glyph returns the Material Symbols glyph name for the icon.
func (i Icon) Glyph() string {
	switch i {
	case IconSun:
		return "sunny"
	case IconPartlyCloudy:
		return "partly_cloudy_day"
	case IconCloud:
		return "cloud"
	case IconRain:
		return "rainy"
	case IconSnow:
		return "weather_snowy"
	case IconStorm:
		return "thunderstorm"
	case IconFog:
		return "foggy"
	default:
		return "question_mark"
	}
}
