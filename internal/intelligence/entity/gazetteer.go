package entity

import (
	"strings"
	"unicode"

	"swayam-intelligence/internal/models"
)

// indianStates maps state names to the cities recognized for that state.
// Hindi spellings sit alongside the Latin ones so code-mixed utterances hit
// the same entries.
var indianStates = map[string][]string{
	"maharashtra":    {"mumbai", "pune", "nagpur", "nashik", "aurangabad", "मुंबई", "पुणे"},
	"delhi":          {"delhi", "new delhi", "दिल्ली"},
	"karnataka":      {"bangalore", "bengaluru", "mysore", "बैंगलोर"},
	"tamil_nadu":     {"chennai", "coimbatore", "madurai", "चेन्नई"},
	"telangana":      {"hyderabad", "हैदराबाद"},
	"gujarat":        {"ahmedabad", "surat", "vadodara", "अहमदाबाद"},
	"west_bengal":    {"kolkata", "कोलकाता"},
	"rajasthan":      {"jaipur", "jodhpur", "udaipur", "जयपुर"},
	"uttar_pradesh":  {"lucknow", "kanpur", "varanasi", "agra", "noida", "लखनऊ"},
	"madhya_pradesh": {"bhopal", "indore", "भोपाल", "इंदौर"},
	"kerala":         {"kochi", "thiruvananthapuram", "कोच्चि"},
	"punjab":         {"ludhiana", "amritsar", "chandigarh", "लुधियाना"},
}

// extractLocations scans for known city and state names. Matches carry the
// owning state in metadata so downstream tools can resolve jurisdiction.
func extractLocations(text string) []models.Entity {
	lower := strings.ToLower(text)
	var found []models.Entity

	for state, cities := range indianStates {
		for _, city := range cities {
			idx := strings.Index(lower, city)
			if idx < 0 {
				continue
			}
			found = append(found, models.Entity{
				Type:            models.EntityLocation,
				Value:           text[idx : idx+len(city)],
				NormalizedValue: titleCase(city),
				Confidence:      0.85,
				Position:        models.Span{Start: idx, End: idx + len(city)},
				Metadata: map[string]string{
					"state": state,
					"type":  "city",
				},
			})
		}

		stateName := strings.ReplaceAll(state, "_", " ")
		idx := strings.Index(lower, stateName)
		if idx < 0 {
			continue
		}
		found = append(found, models.Entity{
			Type:            models.EntityLocation,
			Value:           text[idx : idx+len(stateName)],
			NormalizedValue: titleCase(stateName),
			Confidence:      0.85,
			Position:        models.Span{Start: idx, End: idx + len(stateName)},
			Metadata: map[string]string{
				"state": state,
				"type":  "state",
			},
		})
	}

	return found
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
