// Package domain classifies wttr.in weather data into user-facing hazards.
//
// # Data Source
//
// The provider is wttr.in queried with `format=j1&lang=en`. The j1 document
// carries every numeric value as a JSON string ("precipMM": "0.3"), so
// [NewSnapshot] parses them once and the classifier only sees typed fields.
// Only the first entry of current_condition, weather, weather[0].astronomy and
// nearest_area is used; weather[0] is today's forecast period.
//
// # Hazard Categories
//
// Each category is an ordered decision list; the first matching guard wins
// and comparisons are exact (no rounding, no tolerance):
//
//	Precipitation: precip > 100mm                        drown 🌊
//	               humidity < 10, precip < 0.5, max > 30  dry   🐪
//	               humidity > 80, precip < 0.5, max > 30  humid 😰
//	Temperature:   min < -6°C   freeze 🥶
//	               max > 37°C   burn   🥵
//	Sun:           UV >= 8             sunburn    🕶
//	               0 <= sun hours <= 3 depression 😔
//	Vampires:      sun hours < 2 and moon phase "Full Moon"  🧛🏻
//
// Ok variants render as the empty string, so a calm day prints "[ ]".
package domain
