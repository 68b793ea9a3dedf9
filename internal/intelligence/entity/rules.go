package entity

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"swayam-intelligence/internal/models"
)

// rule is one entry of the extraction table: regexes that capture candidate
// values, an optional validator that rejects false positives, and an optional
// normalizer that produces the canonical form. Validators and normalizers are
// plain functions so they can be tested without running an extraction.
type rule struct {
	entityType models.EntityType
	patterns   []*regexp.Regexp
	validator  func(string) bool
	normalizer func(string) string
}

var (
	gstinFormat       = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)
	panFormat         = regexp.MustCompile(`^[A-Z]{3}[ABCFGHLJPTK][A-Z][0-9]{4}[A-Z]$`)
	aadhaarFormat     = regexp.MustCompile(`^[2-9][0-9]{11}$`)
	vehicleFormat     = regexp.MustCompile(`^[A-Z]{2}[0-9]{1,2}[A-Z]{0,3}[0-9]{4}$`)
	phoneFormat       = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	emailFormat       = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	pincodeFormat     = regexp.MustCompile(`^[1-9][0-9]{5}$`)
	digitsRe          = regexp.MustCompile(`[0-9]+`)
	numberRe          = regexp.MustCompile(`[0-9.]+`)
	threeDigitsRe     = regexp.MustCompile(`[0-9]{3}`)
	whitespaceRe      = regexp.MustCompile(`\s`)
	phoneJunkRe       = regexp.MustCompile(`[\s\-+]`)
	leadingCountryRe  = regexp.MustCompile(`^91`)
)

func normalizeUpper(value string) string {
	return whitespaceRe.ReplaceAllString(strings.ToUpper(value), "")
}

// ValidGSTIN checks the 15-character GSTIN shape: state code, embedded PAN,
// entity digit, the literal Z, checksum.
func ValidGSTIN(value string) bool {
	return gstinFormat.MatchString(strings.ToUpper(value))
}

// ValidPAN checks the PAN shape; the fourth character encodes holder type.
func ValidPAN(value string) bool {
	return panFormat.MatchString(strings.ToUpper(value))
}

// ValidAadhaar checks for 12 digits not starting with 0 or 1.
func ValidAadhaar(value string) bool {
	return aadhaarFormat.MatchString(whitespaceRe.ReplaceAllString(value, ""))
}

func validVehicle(value string) bool {
	return vehicleFormat.MatchString(normalizeUpper(value))
}

func validPhone(value string) bool {
	cleaned := leadingCountryRe.ReplaceAllString(phoneJunkRe.ReplaceAllString(value, ""), "")
	return phoneFormat.MatchString(cleaned)
}

func normalizePhone(value string) string {
	cleaned := leadingCountryRe.ReplaceAllString(phoneJunkRe.ReplaceAllString(value, ""), "")
	return "+91" + cleaned
}

// NormalizeAmount resolves Indian unit words to plain rupee figures:
// lakh ×100000, crore ×10000000, thousand/k ×1000.
func NormalizeAmount(value string) string {
	cleaned := strings.ReplaceAll(value, ",", "")
	numStr := numberRe.FindString(cleaned)
	num, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return value
	}

	lower := strings.ToLower(value)
	switch {
	case strings.Contains(lower, "lakh"), strings.Contains(lower, "lac"), strings.Contains(lower, "लाख"):
		num *= 100000
	case strings.Contains(lower, "crore"), strings.Contains(lower, "cr"), strings.Contains(lower, "करोड़"):
		num *= 10000000
	case strings.Contains(lower, "thousand"), strings.Contains(lower, "हज़ार"), strings.Contains(lower, "k"):
		num *= 1000
	}

	return strconv.FormatFloat(num, 'f', -1, 64)
}

func validAmount(value string) bool {
	_, err := strconv.ParseFloat(numberRe.FindString(strings.ReplaceAll(value, ",", "")), 64)
	return err == nil
}

func normalizeDate(value string) string {
	lower := strings.ToLower(strings.TrimSpace(value))
	today := time.Now()

	switch lower {
	case "आज", "today":
		return today.Format("2006-01-02")
	case "कल", "tomorrow":
		return today.AddDate(0, 0, 1).Format("2006-01-02")
	case "परसों":
		return today.AddDate(0, 0, 2).Format("2006-01-02")
	}

	layouts := []string{
		"2006-01-02",
		"02/01/2006",
		"2/1/2006",
		"02-01-2006",
		"2-1-2006",
		"02/01/06",
		"2 Jan 2006",
		"2 January 2006",
		"2 Jan",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			if parsed.Year() == 0 {
				parsed = parsed.AddDate(today.Year(), 0, 0)
			}
			return parsed.Format("2006-01-02")
		}
	}

	return value
}

func normalizeLoanType(value string) string {
	lower := strings.ToLower(value)
	switch {
	case containsAny(lower, "home", "housing", "होम", "हाउसिंग", "घर"):
		return "HOME_LOAN"
	case containsAny(lower, "car", "vehicle", "auto", "कार", "गाड़ी", "वाहन"):
		return "CAR_LOAN"
	case containsAny(lower, "personal", "पर्सनल", "व्यक्तिगत"):
		return "PERSONAL_LOAN"
	case containsAny(lower, "education", "student", "शिक्षा", "एजुकेशन", "पढ़ाई"):
		return "EDUCATION_LOAN"
	case containsAny(lower, "business", "व्यापार", "बिज़नेस"):
		return "BUSINESS_LOAN"
	case containsAny(lower, "gold", "सोना", "गोल्ड"):
		return "GOLD_LOAN"
	case containsAny(lower, "two wheeler", "bike", "बाइक"):
		return "TWO_WHEELER_LOAN"
	}
	return "PERSONAL_LOAN"
}

func normalizeInsuranceType(value string) string {
	lower := strings.ToLower(value)
	switch {
	case containsAny(lower, "health", "medical", "स्वास्थ्य", "हेल्थ", "मेडिकल"):
		return "HEALTH_INSURANCE"
	case containsAny(lower, "life", "term", "जीवन", "लाइफ", "टर्म"):
		return "LIFE_INSURANCE"
	case containsAny(lower, "car", "motor", "vehicle", "कार", "मोटर", "वाहन"):
		return "CAR_INSURANCE"
	case containsAny(lower, "bike", "two wheeler", "बाइक"):
		return "BIKE_INSURANCE"
	case containsAny(lower, "travel", "यात्रा", "ट्रैवल"):
		return "TRAVEL_INSURANCE"
	case containsAny(lower, "home", "property", "घर", "होम", "प्रॉपर्टी"):
		return "HOME_INSURANCE"
	}
	return "HEALTH_INSURANCE"
}

func normalizeEmploymentType(value string) string {
	lower := strings.ToLower(value)
	switch {
	case containsAny(lower, "salaried", "salary", "नौकरी", "सैलरी", "वेतनभोगी"):
		return "SALARIED"
	case containsAny(lower, "self employed", "self-employed", "स्वरोज़गार"):
		return "SELF_EMPLOYED"
	case containsAny(lower, "business", "व्यापारी", "बिज़नेस"):
		return "BUSINESS"
	case containsAny(lower, "professional", "प्रोफेशनल", "पेशेवर"):
		return "PROFESSIONAL"
	case containsAny(lower, "freelancer", "फ्रीलांसर"):
		return "FREELANCER"
	case containsAny(lower, "retired", "रिटायर्ड", "सेवानिवृत्त"):
		return "RETIRED"
	case containsAny(lower, "student", "विद्यार्थी", "स्टूडेंट"):
		return "STUDENT"
	}
	return "SALARIED"
}

func normalizeGoalType(value string) string {
	lower := strings.ToLower(value)
	switch {
	case containsAny(lower, "house", "home", "घर", "होम"):
		return "HOME_PURCHASE"
	case containsAny(lower, "car", "vehicle", "कार", "गाड़ी"):
		return "CAR_PURCHASE"
	case containsAny(lower, "wedding", "marriage", "शादी", "विवाह"):
		return "WEDDING"
	case containsAny(lower, "education", "पढ़ाई", "शिक्षा"):
		return "EDUCATION"
	case containsAny(lower, "retirement", "रिटायरमेंट", "सेवानिवृत्ति"):
		return "RETIREMENT"
	case containsAny(lower, "vacation", "travel", "trip", "छुट्टी", "यात्रा"):
		return "VACATION"
	case strings.Contains(lower, "emergency"):
		return "EMERGENCY_FUND"
	}
	return "GENERAL_SAVINGS"
}

func normalizeTenure(value string) string {
	num := digitsRe.FindString(value)
	if num == "" {
		num = "0"
	}
	lower := strings.ToLower(value)
	if containsAny(lower, "month", "महीने", "महीना", "mo") {
		return num + "_MONTHS"
	}
	return num + "_YEARS"
}

func validTenure(value string) bool {
	num, err := strconv.Atoi(digitsRe.FindString(value))
	return err == nil && num > 0 && num <= 30
}

func normalizeAge(value string) string {
	if num := digitsRe.FindString(value); num != "" {
		return num
	}
	return "0"
}

func validAge(value string) bool {
	num, err := strconv.Atoi(digitsRe.FindString(value))
	return err == nil && num >= 18 && num <= 100
}

func normalizeAnnualIncome(value string) string {
	cleaned := strings.ReplaceAll(value, ",", "")
	num, err := strconv.ParseFloat(numberRe.FindString(cleaned), 64)
	if err != nil {
		return value
	}

	lower := strings.ToLower(value)
	switch {
	case containsAny(lower, "lakh", "lac", "लाख", "lpa"):
		num *= 100000
	case containsAny(lower, "crore", "cr", "करोड़"):
		num *= 10000000
	case containsAny(lower, "month", "monthly", "महीना"):
		num *= 12
	}

	return strconv.FormatFloat(num, 'f', -1, 64)
}

func normalizeCreditScore(value string) string {
	if score := threeDigitsRe.FindString(value); score != "" {
		return score
	}
	return "0"
}

func validCreditScore(value string) bool {
	num, err := strconv.Atoi(threeDigitsRe.FindString(value))
	return err == nil && num >= 300 && num <= 900
}

func normalizeInvestmentType(value string) string {
	lower := strings.ToLower(value)
	switch {
	case containsAny(lower, "mutual fund", "म्यूचुअल फंड"), lower == "mf":
		return "MUTUAL_FUND"
	case containsAny(lower, "fixed deposit", "एफडी", "फिक्स्ड डिपॉजिट"), lower == "fd":
		return "FD"
	case containsAny(lower, "recurring deposit", "आरडी"), lower == "rd":
		return "RD"
	case containsAny(lower, "sip", "एसआईपी", "systematic"):
		return "SIP"
	case containsAny(lower, "ppf", "पीपीएफ", "public provident"):
		return "PPF"
	case containsAny(lower, "nps", "एनपीएस", "national pension"):
		return "NPS"
	case containsAny(lower, "elss", "ईएलएसएस", "tax saving"):
		return "ELSS"
	case containsAny(lower, "stock", "shares", "equity", "शेयर", "इक्विटी"):
		return "EQUITY"
	case containsAny(lower, "gold", "सोना", "गोल्ड"):
		return "GOLD"
	case containsAny(lower, "real estate", "property", "प्रॉपर्टी"):
		return "REAL_ESTATE"
	}
	return "MUTUAL_FUND"
}

func normalizeBankName(value string) string {
	lower := strings.ToLower(value)
	switch {
	case containsAny(lower, "sbi", "state bank", "स्टेट बैंक"):
		return "SBI"
	case containsAny(lower, "hdfc", "एचडीएफसी"):
		return "HDFC"
	case containsAny(lower, "icici", "आईसीआईसीआई"):
		return "ICICI"
	case containsAny(lower, "axis", "एक्सिस"):
		return "AXIS"
	case containsAny(lower, "kotak", "कोटक"):
		return "KOTAK"
	case containsAny(lower, "pnb", "punjab national", "पंजाब नेशनल"):
		return "PNB"
	case containsAny(lower, "bob", "bank of baroda", "बैंक ऑफ बड़ौदा"):
		return "BOB"
	case containsAny(lower, "canara", "केनरा"):
		return "CANARA"
	case containsAny(lower, "union bank", "यूनियन बैंक"):
		return "UNION_BANK"
	case containsAny(lower, "idbi", "आईडीबीआई"):
		return "IDBI"
	case containsAny(lower, "yes bank", "यस बैंक"):
		return "YES_BANK"
	case containsAny(lower, "indusind", "इंडसइंड"):
		return "INDUSIND"
	}
	return strings.ToUpper(value)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

var entityRules = []rule{
	{
		entityType: models.EntityGSTIN,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b([0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1})\b`),
			regexp.MustCompile(`(?i)gstin[:\s]*([0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z])`),
			regexp.MustCompile(`(?i)जीएसटीआईएन[:\s]*([0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z])`),
		},
		validator:  ValidGSTIN,
		normalizer: normalizeUpper,
	},
	{
		entityType: models.EntityPAN,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b([A-Z]{5}[0-9]{4}[A-Z]{1})\b`),
			regexp.MustCompile(`(?i)pan[:\s]*([A-Z]{5}[0-9]{4}[A-Z])`),
			regexp.MustCompile(`(?i)पैन[:\s]*([A-Z]{5}[0-9]{4}[A-Z])`),
		},
		validator:  ValidPAN,
		normalizer: normalizeUpper,
	},
	{
		entityType: models.EntityAadhaar,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b([2-9][0-9]{3}\s?[0-9]{4}\s?[0-9]{4})\b`),
			regexp.MustCompile(`(?i)aadhaar[:\s]*([2-9][0-9]{3}\s?[0-9]{4}\s?[0-9]{4})`),
			regexp.MustCompile(`आधार[:\s]*([2-9][0-9]{3}\s?[0-9]{4}\s?[0-9]{4})`),
		},
		validator: ValidAadhaar,
		normalizer: func(value string) string {
			return whitespaceRe.ReplaceAllString(value, "")
		},
	},
	{
		entityType: models.EntityVehicle,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b([A-Z]{2}[0-9]{1,2}[A-Z]{0,3}[0-9]{4})\b`),
			regexp.MustCompile(`(?i)vehicle[:\s]*([A-Z]{2}[0-9]{1,2}[A-Z]{0,3}[0-9]{4})`),
			regexp.MustCompile(`(?i)गाड़ी[:\s]*([A-Z]{2}[0-9]{1,2}[A-Z]{0,3}[0-9]{4})`),
			regexp.MustCompile(`(?i)ट्रक[:\s]*([A-Z]{2}[0-9]{1,2}[A-Z]{0,3}[0-9]{4})`),
		},
		validator:  validVehicle,
		normalizer: normalizeUpper,
	},
	{
		entityType: models.EntityPhone,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(\+91[\s-]?)?([6-9][0-9]{9})\b`),
			regexp.MustCompile(`(?i)phone[:\s]*(\+?91[\s-]?)?([6-9][0-9]{9})`),
			regexp.MustCompile(`(?i)mobile[:\s]*(\+?91[\s-]?)?([6-9][0-9]{9})`),
			regexp.MustCompile(`(?i)फोन[:\s]*(\+?91[\s-]?)?([6-9][0-9]{9})`),
		},
		validator:  validPhone,
		normalizer: normalizePhone,
	},
	{
		entityType: models.EntityEmail,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})\b`),
			regexp.MustCompile(`(?i)email[:\s]*([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`),
			regexp.MustCompile(`(?i)ईमेल[:\s]*([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`),
		},
		validator: func(value string) bool { return emailFormat.MatchString(value) },
		normalizer: func(value string) string {
			return strings.ToLower(strings.TrimSpace(value))
		},
	},
	{
		entityType: models.EntityAmount,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:rs\.?|₹|inr)\s*([0-9,]+(?:\.[0-9]{1,2})?)`),
			regexp.MustCompile(`(?i)([0-9,]+(?:\.[0-9]{1,2})?)\s*(?:rupees?|रुपये?|rs)`),
			regexp.MustCompile(`(?i)([0-9]+(?:\.[0-9]{1,2})?\s*(?:lakh|lac|लाख))`),
			regexp.MustCompile(`(?i)([0-9]+(?:\.[0-9]{1,2})?\s*(?:crore|cr|करोड़))`),
			regexp.MustCompile(`(?i)([0-9]+(?:\.[0-9]{1,2})?\s*(?:thousand|हज़ार|k))\b`),
		},
		validator:  validAmount,
		normalizer: NormalizeAmount,
	},
	{
		entityType: models.EntityDate,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b([0-9]{1,2}[/\-][0-9]{1,2}[/\-][0-9]{2,4})\b`),
			regexp.MustCompile(`(?i)\b([0-9]{1,2}\s*(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s*(?:[0-9]{2,4})?)\b`),
			regexp.MustCompile(`(आज|कल|परसों|अगले\s*(?:हफ्ते|महीने))`),
			regexp.MustCompile(`(?i)(today|tomorrow|next\s*(?:week|month))`),
		},
		normalizer: normalizeDate,
	},
	{
		entityType: models.EntityLocation,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b([0-9]{6})\b`),
			regexp.MustCompile(`(?i)pincode[:\s]*([0-9]{6})`),
			regexp.MustCompile(`पिनकोड[:\s]*([0-9]{6})`),
		},
		validator: func(value string) bool { return pincodeFormat.MatchString(value) },
		normalizer: func(value string) string {
			return strings.TrimSpace(value)
		},
	},
	{
		entityType: models.EntityCompany,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b([UL][0-9]{5}[A-Z]{2}[0-9]{4}[A-Z]{3}[0-9]{6})\b`),
			regexp.MustCompile(`(?i)cin[:\s]*([UL][0-9]{5}[A-Z]{2}[0-9]{4}[A-Z]{3}[0-9]{6})`),
			regexp.MustCompile(`(?i)\b([A-Z]{3}-[0-9]{4})\b`),
			regexp.MustCompile(`(?i)llpin[:\s]*([A-Z]{3}-[0-9]{4})`),
			regexp.MustCompile(`(?i)\b([A-Z]{4}[0-9]{5}[A-Z]{1})\b`),
			regexp.MustCompile(`(?i)tan[:\s]*([A-Z]{4}[0-9]{5}[A-Z])`),
		},
		normalizer: normalizeUpper,
	},
	{
		entityType: models.EntityDocument,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b([A-Z]{4}[0-9]{7})\b`),
			regexp.MustCompile(`(?i)container[:\s]*([A-Z]{4}[0-9]{7})`),
			regexp.MustCompile(`कंटेनर[:\s]*([A-Z]{4}[0-9]{7})`),
			regexp.MustCompile(`\b([0-9]{12})\b`),
			regexp.MustCompile(`(?i)eway[:\s]*([0-9]{12})`),
			regexp.MustCompile(`ई-वे[:\s]*([0-9]{12})`),
		},
	},
	{
		entityType: models.EntityLoanType,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(home|housing|होम|हाउसिंग|घर)\s*(?:loan|लोन)`),
			regexp.MustCompile(`(?i)(car|vehicle|auto|कार|गाड़ी|वाहन)\s*(?:loan|लोन)`),
			regexp.MustCompile(`(?i)(personal|पर्सनल|व्यक्तिगत)\s*(?:loan|लोन)`),
			regexp.MustCompile(`(?i)(education|student|शिक्षा|एजुकेशन|पढ़ाई)\s*(?:loan|लोन)`),
			regexp.MustCompile(`(?i)(business|व्यापार|बिज़नेस)\s*(?:loan|लोन)`),
			regexp.MustCompile(`(?i)(gold|सोना|गोल्ड)\s*(?:loan|लोन)`),
			regexp.MustCompile(`(?i)(two\s*wheeler|bike|बाइक)\s*(?:loan|लोन)`),
		},
		normalizer: normalizeLoanType,
	},
	{
		entityType: models.EntityInsuranceType,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(health|medical|स्वास्थ्य|हेल्थ|मेडिकल)\s*(?:insurance|बीमा)`),
			regexp.MustCompile(`(?i)(life|term|जीवन|लाइफ|टर्म)\s*(?:insurance|बीमा)`),
			regexp.MustCompile(`(?i)(car|motor|कार|मोटर)\s*(?:insurance|बीमा)`),
			regexp.MustCompile(`(?i)(bike|two\s*wheeler|बाइक)\s*(?:insurance|बीमा)`),
			regexp.MustCompile(`(?i)(travel|यात्रा|ट्रैवल)\s*(?:insurance|बीमा)`),
			regexp.MustCompile(`(?i)(home|property|घर|होम|प्रॉपर्टी)\s*(?:insurance|बीमा)`),
		},
		normalizer: normalizeInsuranceType,
	},
	{
		entityType: models.EntityEmploymentType,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(salaried|नौकरी|सैलरी|वेतनभोगी)`),
			regexp.MustCompile(`(?i)(self\s*employed|self-employed|स्वरोज़गार)`),
			regexp.MustCompile(`(?i)(businessman|व्यापारी)`),
			regexp.MustCompile(`(?i)(freelancer|फ्रीलांसर)`),
			regexp.MustCompile(`(?i)(retired|रिटायर्ड|सेवानिवृत्त)`),
		},
		normalizer: normalizeEmploymentType,
	},
	{
		entityType: models.EntityGoalType,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(house|home|घर|होम)\s*(?:purchase|buy|खरीदना)`),
			regexp.MustCompile(`(?i)(wedding|marriage|शादी|विवाह)`),
			regexp.MustCompile(`(?i)(child\s*education|बच्चों\s*की\s*पढ़ाई)`),
			regexp.MustCompile(`(?i)(retirement|रिटायरमेंट|सेवानिवृत्ति)`),
			regexp.MustCompile(`(?i)(vacation|छुट्टी)`),
			regexp.MustCompile(`(?i)(emergency\s*fund|आपातकालीन\s*फंड)`),
		},
		normalizer: normalizeGoalType,
	},
	{
		entityType: models.EntityTenure,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)([0-9]+\s*(?:years|year|साल|वर्ष|yrs|yr))`),
			regexp.MustCompile(`(?i)([0-9]+\s*(?:months|month|महीने|महीना|mos|mo))`),
		},
		validator:  validTenure,
		normalizer: normalizeTenure,
	},
	{
		entityType: models.EntityAge,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)([0-9]{1,2})\s*(?:years|year|साल|वर्ष)\s*(?:old|का|की|के)`),
			regexp.MustCompile(`(?i)age[:\s]*([0-9]{1,2})`),
			regexp.MustCompile(`उम्र[:\s]*([0-9]{1,2})`),
			regexp.MustCompile(`आयु[:\s]*([0-9]{1,2})`),
		},
		validator:  validAge,
		normalizer: normalizeAge,
	},
	{
		entityType: models.EntityAnnualIncome,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:annual|yearly|सालाना)\s*(?:income|salary|आय|वेतन)[:\s]*(?:rs\.?|₹|inr)?\s*([0-9,]+(?:\.[0-9]{1,2})?\s*(?:lakh|lac|लाख|crore|cr|करोड़)?)`),
			regexp.MustCompile(`(?i)([0-9]+(?:\.[0-9]{1,2})?\s*(?:lpa|lakh\s*per\s*annum|लाख\s*प्रति\s*वर्ष))`),
			regexp.MustCompile(`(?i)(?:income|salary|कमाई|आय)[:\s]*(?:rs\.?|₹)?\s*([0-9,]+\s*(?:per\s*month|monthly|महीना))`),
		},
		normalizer: normalizeAnnualIncome,
	},
	{
		entityType: models.EntityCreditScore,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:cibil|credit)\s*(?:score)?[:\s]*([0-9]{3})`),
			regexp.MustCompile(`(?:सिबिल|क्रेडिट)\s*(?:स्कोर)?[:\s]*([0-9]{3})`),
			regexp.MustCompile(`(?i)score[:\s]*([0-9]{3})`),
		},
		validator:  validCreditScore,
		normalizer: normalizeCreditScore,
	},
	{
		entityType: models.EntityInvestmentType,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(mutual\s*fund|म्यूचुअल\s*फंड)`),
			regexp.MustCompile(`(?i)(fixed\s*deposit|एफडी|फिक्स्ड\s*डिपॉजिट)`),
			regexp.MustCompile(`(?i)(recurring\s*deposit|आरडी)`),
			regexp.MustCompile(`(?i)(sip|एसआईपी|systematic\s*investment)`),
			regexp.MustCompile(`(?i)(ppf|पीपीएफ|public\s*provident)`),
			regexp.MustCompile(`(?i)(nps|एनपीएस|national\s*pension)`),
			regexp.MustCompile(`(?i)(elss|ईएलएसएस|tax\s*saving\s*fund)`),
			regexp.MustCompile(`(?i)(shares|equity|शेयर|इक्विटी)`),
			regexp.MustCompile(`(?i)(real\s*estate|प्रॉपर्टी)`),
		},
		normalizer: normalizeInvestmentType,
	},
	{
		entityType: models.EntityBankName,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(sbi|state\s*bank|स्टेट\s*बैंक)`),
			regexp.MustCompile(`(?i)(hdfc|एचडीएफसी)`),
			regexp.MustCompile(`(?i)(icici|आईसीआईसीआई)`),
			regexp.MustCompile(`(?i)(axis|एक्सिस)`),
			regexp.MustCompile(`(?i)(kotak|कोटक)`),
			regexp.MustCompile(`(?i)(pnb|punjab\s*national|पंजाब\s*नेशनल)`),
			regexp.MustCompile(`(?i)(bank\s*of\s*baroda|बैंक\s*ऑफ\s*बड़ौदा)`),
			regexp.MustCompile(`(?i)(canara|केनरा)`),
			regexp.MustCompile(`(?i)(union\s*bank|यूनियन\s*बैंक)`),
			regexp.MustCompile(`(?i)(idbi|आईडीबीआई)`),
			regexp.MustCompile(`(?i)(yes\s*bank|यस\s*बैंक)`),
			regexp.MustCompile(`(?i)(indusind|इंडसइंड)`),
		},
		normalizer: normalizeBankName,
	},
}
