package intent

import (
	"regexp"

	"swayam-intelligence/internal/models"
)

// pattern bundles everything known about one intent: regex triggers, keyword
// vocabularies (English and Hindi), arbitration priority (lower wins), the
// entities the intent needs before execution and the tools that serve it.
type pattern struct {
	intent           string
	domain           models.IntentDomain
	expressions      []*regexp.Regexp
	keywords         []string
	keywordsHi       []string
	priority         int
	requiredEntities []string
	tools            []string
}

var intentPatterns = []pattern{
	// --- compliance ---
	{
		intent: "gst_setup",
		domain: models.DomainCompliance,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)gst\s*(registration|setup|apply|शुरू|रजिस्ट्रेशन)`),
			regexp.MustCompile(`(?i)(register|apply)\s*(for)?\s*gst`),
			regexp.MustCompile(`(?i)जीएसटी\s*(के लिए|का)\s*(रजिस्टर|आवेदन|सेटअप)`),
		},
		keywords:   []string{"gst", "registration", "setup", "apply", "new gstin"},
		keywordsHi: []string{"जीएसटी", "रजिस्ट्रेशन", "सेटअप", "आवेदन", "नया"},
		priority:   1,
		tools:      []string{"gst_verify", "mca_company_search", "pan_verify"},
	},
	{
		intent: "gst_verify",
		domain: models.DomainCompliance,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)verify\s*(gstin|gst)`),
			regexp.MustCompile(`(?i)(gstin|gst)\s*(verify|check|validate)`),
			regexp.MustCompile(`(?i)जीएसटी\s*(वेरीफाई|चेक|जांच)`),
			regexp.MustCompile(`(?i)[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][0-9A-Z]Z[0-9A-Z]\s*(verify|check|वेरीफाई)`),
		},
		keywords:         []string{"verify", "check", "validate", "gstin"},
		keywordsHi:       []string{"वेरीफाई", "चेक", "जांच", "जीएसटीएन"},
		priority:         2,
		requiredEntities: []string{"gstin"},
		tools:            []string{"gst_verify"},
	},
	{
		intent: "gst_calculate",
		domain: models.DomainCompliance,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)calculate\s*gst`),
			regexp.MustCompile(`(?i)gst\s*(calculate|calc|kitna|कितना)`),
			regexp.MustCompile(`(?i)जीएसटी\s*(कैलकुलेट|कितना|निकालो)`),
			regexp.MustCompile(`(?i)(\d+)\s*(पर|पे|on)\s*gst`),
		},
		keywords:         []string{"calculate", "gst", "tax", "amount"},
		keywordsHi:       []string{"कैलकुलेट", "जीएसटी", "टैक्स", "कितना"},
		priority:         2,
		requiredEntities: []string{"amount"},
		tools:            []string{"gst_calc"},
	},
	{
		intent: "gst_return_file",
		domain: models.DomainCompliance,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(file|submit)\s*(gstr|gst\s*return)`),
			regexp.MustCompile(`(?i)gstr[123b9]\s*(file|submit|भरो)`),
			regexp.MustCompile(`(?i)जीएसटी\s*रिटर्न\s*(फाइल|भरो|जमा)`),
		},
		keywords:   []string{"file", "return", "gstr1", "gstr3b", "submit"},
		keywordsHi: []string{"फाइल", "रिटर्न", "भरो", "जमा"},
		priority:   1,
		tools:      []string{"gstr1_prepare", "gstr3b_prepare", "gstr1_file", "gstr3b_file"},
	},
	{
		intent: "eway_generate",
		domain: models.DomainCompliance,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(generate|create|make)\s*e-?way`),
			regexp.MustCompile(`(?i)e-?way\s*(bill|बिल)\s*(बनाओ|generate)`),
			regexp.MustCompile(`(?i)ई-?वे\s*बिल\s*(बनाओ|जनरेट)`),
		},
		keywords:   []string{"eway", "e-way", "bill", "generate", "transport"},
		keywordsHi: []string{"ई-वे", "बिल", "बनाओ", "जनरेट"},
		priority:   2,
		tools:      []string{"eway_generate"},
	},
	{
		intent: "einvoice_generate",
		domain: models.DomainCompliance,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(generate|create)\s*e-?invoice`),
			regexp.MustCompile(`(?i)e-?invoice\s*(बनाओ|generate)`),
			regexp.MustCompile(`(?i)ई-?इनवॉइस\s*(बनाओ|जनरेट)`),
		},
		keywords:   []string{"einvoice", "e-invoice", "irn", "generate"},
		keywordsHi: []string{"ई-इनवॉइस", "बनाओ", "जनरेट"},
		priority:   2,
		tools:      []string{"einvoice_generate"},
	},
	{
		intent: "tds_calculate",
		domain: models.DomainCompliance,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(calculate|kitna)\s*tds`),
			regexp.MustCompile(`(?i)tds\s*(calculate|कितना|निकालो)`),
			regexp.MustCompile(`(?i)टीडीएस\s*(कैलकुलेट|कितना)`),
		},
		keywords:         []string{"tds", "calculate", "deduction"},
		keywordsHi:       []string{"टीडीएस", "कैलकुलेट", "कितना"},
		priority:         2,
		requiredEntities: []string{"amount"},
		tools:            []string{"tds_calc"},
	},
	{
		intent: "income_tax_calculate",
		domain: models.DomainCompliance,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(calculate|kitna)\s*(income\s*tax|itr)`),
			regexp.MustCompile(`(?i)(income\s*tax|itr)\s*(calculate|कितना)`),
			regexp.MustCompile(`(?i)(आयकर|इनकम\s*टैक्स)\s*(कैलकुलेट|कितना)`),
		},
		keywords:         []string{"income", "tax", "itr", "calculate"},
		keywordsHi:       []string{"आयकर", "इनकम", "टैक्स", "कैलकुलेट"},
		priority:         2,
		requiredEntities: []string{"amount"},
		tools:            []string{"income_tax_calc"},
	},
	{
		intent: "hsn_lookup",
		domain: models.DomainCompliance,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(hsn|sac)\s*(code|lookup|find|खोजो)`),
			regexp.MustCompile(`(?i)(find|search|खोजो)\s*(hsn|sac)`),
			regexp.MustCompile(`(?i)एचएसएन\s*(कोड|खोजो)`),
		},
		keywords:   []string{"hsn", "sac", "code", "lookup"},
		keywordsHi: []string{"एचएसएन", "कोड", "खोजो"},
		priority:   3,
		tools:      []string{"hsn_lookup", "sac_lookup"},
	},

	// --- erp ---
	{
		intent: "invoice_create",
		domain: models.DomainERP,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(create|make|generate)\s*invoice`),
			regexp.MustCompile(`(?i)invoice\s*(बनाओ|banao|create)`),
			regexp.MustCompile(`(?i)इनवॉइस\s*(बनाओ|जनरेट)`),
			regexp.MustCompile(`(?i)बिल\s*बनाओ`),
		},
		keywords:   []string{"invoice", "create", "bill", "generate"},
		keywordsHi: []string{"इनवॉइस", "बनाओ", "बिल", "जनरेट"},
		priority:   1,
		tools:      []string{"invoice_create"},
	},
	{
		intent: "stock_check",
		domain: models.DomainERP,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(check|show)\s*stock`),
			regexp.MustCompile(`(?i)stock\s*(check|kitna|कितना)`),
			regexp.MustCompile(`(?i)स्टॉक\s*(चेक|कितना|दिखाओ)`),
			regexp.MustCompile(`(?i)inventory\s*(check|status)`),
		},
		keywords:   []string{"stock", "inventory", "check", "available"},
		keywordsHi: []string{"स्टॉक", "इन्वेंटरी", "चेक", "कितना"},
		priority:   2,
		tools:      []string{"stock_check"},
	},
	{
		intent: "purchase_order_create",
		domain: models.DomainERP,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(create|make)\s*(po|purchase\s*order)`),
			regexp.MustCompile(`(?i)(po|purchase\s*order)\s*बनाओ`),
			regexp.MustCompile(`(?i)पीओ\s*बनाओ`),
			regexp.MustCompile(`(?i)खरीद\s*ऑर्डर`),
		},
		keywords:   []string{"po", "purchase", "order", "create"},
		keywordsHi: []string{"पीओ", "खरीद", "ऑर्डर", "बनाओ"},
		priority:   2,
		tools:      []string{"po_create"},
	},
	{
		intent: "sales_order_create",
		domain: models.DomainERP,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(create|make)\s*(so|sales\s*order)`),
			regexp.MustCompile(`(?i)(so|sales\s*order)\s*बनाओ`),
			regexp.MustCompile(`(?i)सेल्स\s*ऑर्डर`),
			regexp.MustCompile(`(?i)बिक्री\s*ऑर्डर`),
		},
		keywords:   []string{"so", "sales", "order", "create"},
		keywordsHi: []string{"एसओ", "सेल्स", "बिक्री", "ऑर्डर"},
		priority:   2,
		tools:      []string{"so_create"},
	},
	{
		intent: "accounting_report",
		domain: models.DomainERP,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(balance\s*sheet|trial\s*balance|p&?l|profit\s*loss)`),
			regexp.MustCompile(`(?i)(show|generate)\s*(balance|trial|pnl)`),
			regexp.MustCompile(`(?i)बैलेंस\s*शीट`),
			regexp.MustCompile(`(?i)लाभ\s*हानि`),
		},
		keywords:   []string{"balance", "sheet", "trial", "pnl", "profit", "loss"},
		keywordsHi: []string{"बैलेंस", "शीट", "लाभ", "हानि"},
		priority:   2,
		tools:      []string{"balance_sheet", "trial_balance", "profit_loss"},
	},

	// --- crm ---
	{
		intent: "lead_create",
		domain: models.DomainCRM,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(create|add|make)\s+(a\s+)?(new\s+)?lead`),
			regexp.MustCompile(`(?i)new\s+lead\s+(for|named)`),
			regexp.MustCompile(`(?i)lead\s*(बनाओ|add|create)`),
			regexp.MustCompile(`(?i)लीड\s*(बनाओ|जोड़ो|क्रिएट)`),
			regexp.MustCompile(`(?i)नया\s*(लीड|ग्राहक|customer|lead)`),
			regexp.MustCompile(`(?i)(register|add)\s+(new\s+)?(customer|client|prospect)`),
			regexp.MustCompile(`(?i)prospect\s+(for|named)`),
		},
		keywords:   []string{"lead", "create", "add", "new", "customer", "prospect", "client", "contact"},
		keywordsHi: []string{"लीड", "बनाओ", "जोड़ो", "नया", "ग्राहक", "कस्टमर"},
		priority:   1,
		tools:      []string{"lead_create"},
	},
	{
		intent: "lead_followup",
		domain: models.DomainCRM,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(followup|follow-up|follow\s*up)\s*(due|pending)`),
			regexp.MustCompile(`(?i)(pending|due)\s*(followup|leads)`),
			regexp.MustCompile(`(?i)फॉलोअप\s*(पेंडिंग|बाकी)`),
		},
		keywords:   []string{"followup", "follow-up", "pending", "due"},
		keywordsHi: []string{"फॉलोअप", "पेंडिंग", "बाकी"},
		priority:   2,
		tools:      []string{"lead_followup"},
	},
	{
		intent: "opportunity_pipeline",
		domain: models.DomainCRM,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(show|view)\s*(pipeline|opportunities)`),
			regexp.MustCompile(`(?i)pipeline\s*(दिखाओ|show)`),
			regexp.MustCompile(`(?i)पाइपलाइन`),
			regexp.MustCompile(`(?i)sales\s*funnel`),
		},
		keywords:   []string{"pipeline", "opportunities", "funnel", "deals"},
		keywordsHi: []string{"पाइपलाइन", "डील्स", "अवसर"},
		priority:   2,
		tools:      []string{"opportunity_pipeline", "opportunity_list"},
	},

	// --- banking ---
	{
		intent: "upi_send",
		domain: models.DomainBanking,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(send|transfer)\s*(money|payment|पैसे)`),
			regexp.MustCompile(`(?i)upi\s*(send|transfer|भेजो)`),
			regexp.MustCompile(`(?i)पैसे\s*(भेजो|ट्रांसफर)`),
		},
		keywords:         []string{"upi", "send", "transfer", "money", "payment"},
		keywordsHi:       []string{"यूपीआई", "भेजो", "ट्रांसफर", "पैसे"},
		priority:         2,
		requiredEntities: []string{"amount"},
		tools:            []string{"upi_send"},
	},
	{
		intent: "bill_pay",
		domain: models.DomainBanking,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(pay|भरो)\s*(electricity|bijli|water|pani|gas|mobile|dth)`),
			regexp.MustCompile(`(?i)(बिजली|पानी|गैस|मोबाइल)\s*(बिल|bill)\s*(भरो|pay)`),
			regexp.MustCompile(`(?i)recharge\s*(mobile|dth)`),
		},
		keywords:   []string{"bill", "pay", "electricity", "water", "gas", "recharge"},
		keywordsHi: []string{"बिल", "भरो", "बिजली", "पानी", "गैस", "रिचार्ज"},
		priority:   2,
		tools:      []string{"bbps_electricity", "bbps_water", "bbps_gas", "bbps_mobile"},
	},
	{
		intent: "emi_calculate",
		domain: models.DomainBanking,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(calculate|kitna)\s*emi`),
			regexp.MustCompile(`(?i)emi\s*(calculate|कितना|निकालो)`),
			regexp.MustCompile(`(?i)ईएमआई\s*(कैलकुलेट|कितना)`),
			regexp.MustCompile(`(?i)loan\s*emi`),
		},
		keywords:         []string{"emi", "calculate", "loan", "monthly"},
		keywordsHi:       []string{"ईएमआई", "कैलकुलेट", "लोन", "कितना"},
		priority:         2,
		requiredEntities: []string{"amount"},
		tools:            []string{"emi_calc"},
	},
	{
		intent: "credit_eligibility_check",
		domain: models.DomainBanking,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(loan|credit)\s*(eligible|eligibility|mil\s*sakta|मिल\s*सकता)`),
			regexp.MustCompile(`(?i)मुझे\s*(लोन|क्रेडिट)\s*(मिल\s*सकता|मिलेगा)`),
			regexp.MustCompile(`(?i)क्या\s*मैं\s*(eligible|पात्र|योग्य)\s*हूं`),
			regexp.MustCompile(`(?i)(am\s*i|can\s*i)\s*(eligible|qualify)\s*(for)?\s*(loan|credit)`),
			regexp.MustCompile(`(?i)लोन\s*के\s*लिए\s*(पात्र|योग्य)`),
			regexp.MustCompile(`(?i)(check|जांचो)\s*(my)?\s*(loan|credit)\s*(eligibility|पात्रता)`),
		},
		keywords:   []string{"loan", "credit", "eligible", "eligibility", "qualify", "check"},
		keywordsHi: []string{"लोन", "क्रेडिट", "पात्र", "योग्य", "मिल सकता", "एलिजिबल"},
		priority:   1,
		tools:      []string{"bfc_credit_check", "bfc_eligibility_calc"},
	},
	{
		intent: "loan_apply",
		domain: models.DomainBanking,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(apply|आवेदन)\s*(for)?\s*(loan|लोन)`),
			regexp.MustCompile(`(?i)लोन\s*(के\s*लिए)?\s*(आवेदन|अप्लाई)`),
			regexp.MustCompile(`(?i)(home|car|personal|education|होम|कार|पर्सनल)\s*loan`),
			regexp.MustCompile(`(?i)मुझे\s*(home|car|personal|होम|कार|पर्सनल)?\s*लोन\s*चाहिए`),
			regexp.MustCompile(`(?i)mujhe\s*.*loan\s*chahiye`),
			regexp.MustCompile(`(?i)(get|लेना|लूं)\s*(a)?\s*loan`),
		},
		keywords:         []string{"apply", "loan", "home", "car", "personal", "education", "get", "chahiye"},
		keywordsHi:       []string{"आवेदन", "लोन", "होम", "कार", "पर्सनल", "चाहिए", "लेना"},
		priority:         1,
		requiredEntities: []string{"loan_type", "amount"},
		tools:            []string{"bfc_loan_apply", "bfc_document_upload"},
	},
	{
		intent: "loan_status_check",
		domain: models.DomainBanking,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(loan|लोन)\s*(status|स्टेटस|कहां\s*तक)`),
			regexp.MustCompile(`(?i)लोन\s*का\s*(क्या\s*हुआ|स्टेटस)`),
			regexp.MustCompile(`(?i)(check|track)\s*(my)?\s*loan\s*(application)?`),
			regexp.MustCompile(`(?i)मेरा\s*आवेदन\s*कहां\s*तक\s*पहुंचा`),
		},
		keywords:   []string{"loan", "status", "check", "track", "application", "progress"},
		keywordsHi: []string{"लोन", "स्टेटस", "आवेदन", "कहां तक", "प्रगति"},
		priority:   2,
		tools:      []string{"bfc_loan_status"},
	},
	{
		intent: "credit_score_check",
		domain: models.DomainBanking,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(credit|cibil)\s*(score|स्कोर)`),
			regexp.MustCompile(`(?i)सिबिल\s*(स्कोर|चेक)`),
			regexp.MustCompile(`(?i)(check|show|दिखाओ)\s*(my)?\s*(credit|cibil)`),
			regexp.MustCompile(`(?i)मेरा\s*क्रेडिट\s*स्कोर\s*(कितना|क्या)`),
		},
		keywords:   []string{"credit", "cibil", "score", "check", "rating"},
		keywordsHi: []string{"क्रेडिट", "सिबिल", "स्कोर", "चेक", "रेटिंग"},
		priority:   2,
		tools:      []string{"bfc_credit_score"},
	},
	{
		intent: "insurance_quote_request",
		domain: models.DomainBanking,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(insurance|बीमा)\s*(quote|कोटेशन|कितना)`),
			regexp.MustCompile(`(?i)(health|life|car|bike|term)\s*insurance\s*(quote|price|premium)?`),
			regexp.MustCompile(`(?i)(हेल्थ|लाइफ|कार|बाइक|टर्म)\s*(इंश्योरेंस|बीमा)`),
			regexp.MustCompile(`(?i)बीमा\s*(का\s*)?कोटेशन\s*चाहिए`),
			regexp.MustCompile(`(?i)(get|want)\s*(a)?\s*(health|life|car)?\s*insurance\s*(quote)?`),
			regexp.MustCompile(`(?i)मुझे\s*बीमा\s*(करवाना|लेना)\s*है`),
		},
		keywords:         []string{"insurance", "quote", "health", "life", "car", "premium", "policy"},
		keywordsHi:       []string{"इंश्योरेंस", "बीमा", "कोटेशन", "हेल्थ", "लाइफ", "प्रीमियम"},
		priority:         1,
		requiredEntities: []string{"insurance_type"},
		tools:            []string{"bfc_insurance_quote", "bfc_premium_calc"},
	},
	{
		intent: "insurance_claim",
		domain: models.DomainBanking,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(insurance|बीमा)\s*(claim|क्लेम|दावा)`),
			regexp.MustCompile(`(?i)(file|submit|दर्ज)\s*(insurance)?\s*(claim|क्लेम)`),
			regexp.MustCompile(`(?i)क्लेम\s*(करना|दर्ज\s*करना|फाइल)`),
			regexp.MustCompile(`(?i)बीमा\s*का\s*दावा`),
		},
		keywords:   []string{"insurance", "claim", "file", "submit", "policy"},
		keywordsHi: []string{"इंश्योरेंस", "क्लेम", "दावा", "दर्ज", "फाइल"},
		priority:   1,
		tools:      []string{"bfc_insurance_claim", "bfc_claim_status"},
	},
	{
		intent: "investment_portfolio_view",
		domain: models.DomainBanking,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(my|मेरा)\s*(investment|निवेश)\s*(portfolio|पोर्टफोलियो)?`),
			regexp.MustCompile(`(?i)(show|दिखाओ)\s*(my)?\s*(investments|निवेश)`),
			regexp.MustCompile(`(?i)(portfolio|पोर्टफोलियो)\s*(status|performance|प्रदर्शन)`),
			regexp.MustCompile(`(?i)कितना\s*निवेश\s*किया`),
		},
		keywords:   []string{"investment", "portfolio", "show", "performance", "returns"},
		keywordsHi: []string{"निवेश", "पोर्टफोलियो", "दिखाओ", "प्रदर्शन", "रिटर्न"},
		priority:   2,
		tools:      []string{"bfc_portfolio_view"},
	},
	{
		intent: "investment_recommend",
		domain: models.DomainBanking,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(where|कहां)\s*(should\s*i|मुझे)?\s*(invest|निवेश)`),
			regexp.MustCompile(`(?i)(best|अच्छा)\s*(investment|निवेश)\s*(option|विकल्प)?`),
			regexp.MustCompile(`(?i)निवेश\s*(कहां|कैसे)\s*करूं`),
			regexp.MustCompile(`(?i)(mutual\s*fund|fd|sip|म्यूचुअल\s*फंड)\s*(suggest|recommend)`),
			regexp.MustCompile(`(?i)पैसा\s*कहां\s*लगाऊं`),
			regexp.MustCompile(`(?i)(suggest|recommend)\s*(me)?\s*(investments|funds)`),
		},
		keywords:   []string{"invest", "investment", "recommend", "suggest", "mutual fund", "fd", "sip"},
		keywordsHi: []string{"निवेश", "कहां", "सुझाव", "म्यूचुअल फंड", "एफडी", "एसआईपी"},
		priority:   1,
		tools:      []string{"bfc_investment_recommend", "bfc_risk_profile"},
	},
	{
		intent: "financial_goal_set",
		domain: models.DomainBanking,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(set|create|बनाओ)\s*(a)?\s*(financial)?\s*(goal|लक्ष्य)`),
			regexp.MustCompile(`(?i)(save|बचत)\s*(for|के\s*लिए)\s*(house|car|education|wedding|retirement)`),
			regexp.MustCompile(`(?i)(घर|कार|शादी|रिटायरमेंट)\s*के\s*लिए\s*(बचत|सेव)`),
			regexp.MustCompile(`(?i)मुझे\s*(\d+)\s*(lakh|लाख|crore|करोड़)\s*(बचाने|जोड़ने)\s*हैं`),
			regexp.MustCompile(`(?i)(financial|वित्तीय)\s*(goal|planning|लक्ष्य|प्लानिंग)`),
		},
		keywords:         []string{"goal", "save", "saving", "target", "financial", "planning"},
		keywordsHi:       []string{"लक्ष्य", "बचत", "सेव", "टारगेट", "वित्तीय", "प्लानिंग"},
		priority:         1,
		requiredEntities: []string{"goal_type", "amount"},
		tools:            []string{"bfc_goal_create", "bfc_goal_track"},
	},
	{
		intent: "financial_goal_progress",
		domain: models.DomainBanking,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(my|मेरे)\s*(financial)?\s*(goal|goals|लक्ष्य)\s*(progress|status)?`),
			regexp.MustCompile(`(?i)(show|दिखाओ)\s*(my)?\s*goals`),
			regexp.MustCompile(`(?i)लक्ष्य\s*(कहां\s*तक|प्रगति|स्टेटस)`),
			regexp.MustCompile(`(?i)(goal|saving)\s*(tracker|tracking)`),
		},
		keywords:   []string{"goal", "progress", "status", "tracker", "savings"},
		keywordsHi: []string{"लक्ष्य", "प्रगति", "स्टेटस", "ट्रैकर", "बचत"},
		priority:   2,
		tools:      []string{"bfc_goal_progress"},
	},
	{
		intent: "offers_view",
		domain: models.DomainBanking,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(my|मेरे)\s*(offers|ऑफर्स)`),
			regexp.MustCompile(`(?i)(show|दिखाओ)\s*(me)?\s*(offers|ऑफर)`),
			regexp.MustCompile(`(?i)क्या\s*ऑफर\s*(हैं|मिल\s*सकते)`),
			regexp.MustCompile(`(?i)(available|उपलब्ध)\s*(offers|deals|ऑफर)`),
			regexp.MustCompile(`(?i)(special|exclusive)\s*(offer|deal)`),
		},
		keywords:   []string{"offers", "deals", "available", "special", "exclusive", "show"},
		keywordsHi: []string{"ऑफर", "डील", "उपलब्ध", "स्पेशल", "दिखाओ"},
		priority:   2,
		tools:      []string{"bfc_offers_list", "bfc_offer_details"},
	},
	{
		intent: "offer_apply",
		domain: models.DomainBanking,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(apply|avail|use)\s*(this)?\s*(offer|ऑफर)`),
			regexp.MustCompile(`(?i)ऑफर\s*(लेना|अप्लाई|इस्तेमाल)`),
			regexp.MustCompile(`(?i)(redeem|claim)\s*(the)?\s*(offer|reward)`),
			regexp.MustCompile(`(?i)यह\s*ऑफर\s*(चाहिए|लूंगा)`),
		},
		keywords:         []string{"apply", "avail", "use", "redeem", "claim", "offer"},
		keywordsHi:       []string{"अप्लाई", "लेना", "इस्तेमाल", "रिडीम", "ऑफर"},
		priority:         1,
		requiredEntities: []string{"offer_id"},
		tools:            []string{"bfc_offer_apply"},
	},
	{
		intent: "rewards_check",
		domain: models.DomainBanking,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(my|मेरे)\s*(rewards|points|रिवॉर्ड्स|पॉइंट्स)`),
			regexp.MustCompile(`(?i)(show|check|दिखाओ)\s*(my)?\s*(rewards|points)`),
			regexp.MustCompile(`(?i)कितने\s*(पॉइंट्स|रिवॉर्ड्स)\s*(हैं|मिले)`),
			regexp.MustCompile(`(?i)(reward|loyalty)\s*(points|balance)`),
		},
		keywords:   []string{"rewards", "points", "loyalty", "balance", "check"},
		keywordsHi: []string{"रिवॉर्ड्स", "पॉइंट्स", "लॉयल्टी", "बैलेंस", "चेक"},
		priority:   2,
		tools:      []string{"bfc_rewards_balance", "bfc_rewards_history"},
	},
	{
		intent: "rewards_redeem",
		domain: models.DomainBanking,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(redeem|use|इस्तेमाल)\s*(my)?\s*(rewards|points)`),
			regexp.MustCompile(`(?i)पॉइंट्स\s*(रिडीम|इस्तेमाल|खर्च)`),
			regexp.MustCompile(`(?i)(convert|exchange)\s*points`),
			regexp.MustCompile(`(?i)(claim|get)\s*(rewards|cashback)`),
		},
		keywords:   []string{"redeem", "use", "convert", "exchange", "claim", "cashback"},
		keywordsHi: []string{"रिडीम", "इस्तेमाल", "खर्च", "क्लेम", "कैशबैक"},
		priority:   1,
		tools:      []string{"bfc_rewards_redeem"},
	},
	{
		intent: "spending_analysis",
		domain: models.DomainBanking,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(my|मेरा)\s*(spending|खर्च)\s*(analysis|pattern|विश्लेषण)?`),
			regexp.MustCompile(`(?i)(where|कहां)\s*(am\s*i|मैं)\s*spending`),
			regexp.MustCompile(`(?i)खर्च\s*(कहां|कितना)\s*(हो\s*रहा|किया)`),
			regexp.MustCompile(`(?i)(expense|खर्चे)\s*(report|breakdown|रिपोर्ट)`),
			regexp.MustCompile(`(?i)पैसा\s*कहां\s*जा\s*रहा`),
		},
		keywords:   []string{"spending", "expense", "analysis", "pattern", "where", "breakdown"},
		keywordsHi: []string{"खर्च", "खर्चे", "विश्लेषण", "कहां", "रिपोर्ट"},
		priority:   2,
		tools:      []string{"bfc_spending_analysis", "bfc_expense_report"},
	},
	{
		intent: "budget_set",
		domain: models.DomainBanking,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(set|create|बनाओ)\s*(a)?\s*(budget|बजट)`),
			regexp.MustCompile(`(?i)(monthly|महीने\s*का)\s*(budget|बजट)`),
			regexp.MustCompile(`(?i)बजट\s*(सेट|बनाओ|तय)`),
			regexp.MustCompile(`(?i)(limit|control)\s*(my)?\s*(spending|expenses)`),
			regexp.MustCompile(`(?i)खर्चे\s*(कम|कंट्रोल)\s*करने`),
		},
		keywords:   []string{"budget", "set", "monthly", "limit", "control", "spending"},
		keywordsHi: []string{"बजट", "सेट", "महीने", "लिमिट", "कंट्रोल", "खर्च"},
		priority:   2,
		tools:      []string{"bfc_budget_create", "bfc_budget_track"},
	},
	{
		intent: "financial_advice",
		domain: models.DomainBanking,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(financial|वित्तीय)\s*(advice|सलाह)`),
			regexp.MustCompile(`(?i)(need|चाहिए)\s*(financial)?\s*(help|advice|मदद|सलाह)`),
			regexp.MustCompile(`(?i)(money|पैसे)\s*(management|प्रबंधन)\s*(tips|सुझाव)?`),
			regexp.MustCompile(`(?i)पैसों\s*की\s*(सलाह|टिप्स)`),
			regexp.MustCompile(`(?i)आर्थिक\s*(सलाह|मदद)`),
		},
		keywords:   []string{"financial", "advice", "help", "tips", "money", "management"},
		keywordsHi: []string{"वित्तीय", "सलाह", "मदद", "टिप्स", "पैसे", "प्रबंधन"},
		priority:   2,
		tools:      []string{"bfc_financial_advice", "bfc_tips"},
	},
	{
		intent: "account_link",
		domain: models.DomainBanking,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(link|connect|जोड़ो)\s*(my)?\s*(bank)?\s*(account|अकाउंट)`),
			regexp.MustCompile(`(?i)(add|जोड़ो)\s*(another|new)?\s*(bank|बैंक)`),
			regexp.MustCompile(`(?i)बैंक\s*अकाउंट\s*(जोड़ो|लिंक)`),
			regexp.MustCompile(`(?i)(setu|aa|account\s*aggregator)\s*(link|connect)`),
			regexp.MustCompile(`(?i)खाता\s*जोड़ना\s*है`),
		},
		keywords:   []string{"link", "connect", "add", "bank", "account", "setu", "aa"},
		keywordsHi: []string{"लिंक", "जोड़ो", "बैंक", "अकाउंट", "खाता"},
		priority:   1,
		tools:      []string{"bfc_account_link", "setu_aa_consent"},
	},
	{
		intent: "account_summary",
		domain: models.DomainBanking,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(my|मेरा)\s*(account|accounts|खाता|खाते)\s*(summary|सारांश)`),
			regexp.MustCompile(`(?i)(show|दिखाओ)\s*(all)?\s*(my)?\s*(accounts|balances)`),
			regexp.MustCompile(`(?i)सभी\s*खातों\s*का\s*(बैलेंस|सारांश)`),
			regexp.MustCompile(`(?i)(total|कुल)\s*(balance|बैलेंस)`),
			regexp.MustCompile(`(?i)कितना\s*पैसा\s*है`),
		},
		keywords:   []string{"account", "summary", "balance", "total", "all"},
		keywordsHi: []string{"खाता", "सारांश", "बैलेंस", "कुल", "सभी"},
		priority:   2,
		tools:      []string{"bfc_account_summary", "bfc_balance_view"},
	},

	// --- government ---
	{
		intent: "aadhaar_verify",
		domain: models.DomainGovernment,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(verify|check)\s*aadhaar`),
			regexp.MustCompile(`(?i)aadhaar\s*(verify|check|वेरीफाई)`),
			regexp.MustCompile(`(?i)आधार\s*(वेरीफाई|चेक)`),
		},
		keywords:         []string{"aadhaar", "verify", "check", "ekyc"},
		keywordsHi:       []string{"आधार", "वेरीफाई", "चेक"},
		priority:         2,
		requiredEntities: []string{"aadhaar"},
		tools:            []string{"aadhaar_verify"},
	},
	{
		intent: "pan_verify",
		domain: models.DomainGovernment,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(verify|check)\s*pan`),
			regexp.MustCompile(`(?i)pan\s*(verify|check|वेरीफाई)`),
			regexp.MustCompile(`(?i)पैन\s*(वेरीफाई|चेक)`),
		},
		keywords:         []string{"pan", "verify", "check"},
		keywordsHi:       []string{"पैन", "वेरीफाई", "चेक"},
		priority:         2,
		requiredEntities: []string{"pan"},
		tools:            []string{"pan_verify"},
	},
	{
		intent: "epf_balance",
		domain: models.DomainGovernment,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(check|show)\s*(pf|epf|provident\s*fund)\s*balance`),
			regexp.MustCompile(`(?i)(pf|epf)\s*balance\s*(check|दिखाओ)`),
			regexp.MustCompile(`(?i)पीएफ\s*बैलेंस`),
		},
		keywords:   []string{"pf", "epf", "balance", "provident"},
		keywordsHi: []string{"पीएफ", "ईपीएफ", "बैलेंस"},
		priority:   2,
		tools:      []string{"epf_balance"},
	},
	{
		intent: "pm_scheme_check",
		domain: models.DomainGovernment,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(pm|pradhan\s*mantri)\s*(kisan|awas|ujjwala)`),
			regexp.MustCompile(`(?i)पीएम\s*(किसान|आवास|उज्ज्वला)`),
			regexp.MustCompile(`(?i)scheme\s*(status|check)`),
		},
		keywords:   []string{"pm", "kisan", "awas", "ujjwala", "scheme"},
		keywordsHi: []string{"पीएम", "किसान", "आवास", "उज्ज्वला", "योजना"},
		priority:   2,
		tools:      []string{"pm_kisan", "pm_awas", "ujjwala"},
	},

	// --- logistics ---
	{
		intent: "vehicle_track",
		domain: models.DomainLogistics,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(track|locate|find)\s*(vehicle|truck|गाड़ी)`),
			regexp.MustCompile(`(?i)(vehicle|truck|गाड़ी)\s*(kahan|कहां|where)`),
			regexp.MustCompile(`(?i)गाड़ी\s*(ट्रैक|कहां)`),
		},
		keywords:         []string{"track", "vehicle", "truck", "location", "gps"},
		keywordsHi:       []string{"ट्रैक", "गाड़ी", "ट्रक", "कहां"},
		priority:         2,
		requiredEntities: []string{"vehicle"},
		tools:            []string{"vehicle_position", "live_positions"},
	},
	{
		intent: "container_track",
		domain: models.DomainLogistics,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(track|locate)\s*container`),
			regexp.MustCompile(`(?i)container\s*(track|status|ट्रैक)`),
			regexp.MustCompile(`(?i)कंटेनर\s*(ट्रैक|स्टेटस)`),
		},
		keywords:         []string{"container", "track", "shipping", "status"},
		keywordsHi:       []string{"कंटेनर", "ट्रैक", "शिपिंग"},
		priority:         2,
		requiredEntities: []string{"container"},
		tools:            []string{"container_track"},
	},
	{
		intent: "toll_estimate",
		domain: models.DomainLogistics,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(estimate|calculate)\s*toll`),
			regexp.MustCompile(`(?i)toll\s*(kitna|कितना|estimate)`),
			regexp.MustCompile(`(?i)टोल\s*(कितना|estimate)`),
		},
		keywords:   []string{"toll", "estimate", "highway", "charges"},
		keywordsHi: []string{"टोल", "कितना", "हाईवे"},
		priority:   2,
		tools:      []string{"toll_estimate"},
	},
	{
		intent: "distance_calculate",
		domain: models.DomainLogistics,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(distance|दूरी)\s*(between|calculate|कितनी)`),
			regexp.MustCompile(`(?i)(kitni|कितनी)\s*(door|दूर)`),
			regexp.MustCompile(`(?i)route\s*(distance|plan)`),
		},
		keywords:   []string{"distance", "route", "between", "calculate"},
		keywordsHi: []string{"दूरी", "रूट", "कितनी", "दूर"},
		priority:   2,
		tools:      []string{"distance_calc"},
	},

	// --- general ---
	{
		intent: "weather_check",
		domain: models.DomainGeneral,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(weather|mausam|मौसम)\s*(in|ka|का)?`),
			regexp.MustCompile(`(?i)(check|show)\s*weather`),
			regexp.MustCompile(`(?i)आज\s*का\s*मौसम`),
		},
		keywords:   []string{"weather", "temperature", "forecast"},
		keywordsHi: []string{"मौसम", "तापमान", "बारिश"},
		priority:   3,
		tools:      []string{"weather"},
	},
	{
		intent: "web_search",
		domain: models.DomainGeneral,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(search|खोजो)\s*(for|about)`),
			regexp.MustCompile(`(?i)google\s+`),
			regexp.MustCompile(`(?i)इंटरनेट\s*पर\s*खोजो`),
		},
		keywords:   []string{"search", "find", "google", "internet"},
		keywordsHi: []string{"खोजो", "ढूंढो", "इंटरनेट"},
		priority:   4,
		tools:      []string{"web_search"},
	},
	{
		intent: "calculate",
		domain: models.DomainGeneral,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(\d+)\s*[+\-*/]\s*(\d+)`),
			regexp.MustCompile(`(?i)(calculate|kitna|कितना)\s*(\d+)`),
			regexp.MustCompile(`(?i)(\d+)\s*(plus|minus|into|divided)`),
		},
		keywords:   []string{"calculate", "plus", "minus", "multiply", "divide"},
		keywordsHi: []string{"कैलकुलेट", "जोड़", "घटा", "गुणा", "भाग"},
		priority:   4,
		tools:      []string{"calculator"},
	},

	// --- meta ---
	{
		intent: "help",
		domain: models.DomainMeta,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(help|मदद|सहायता)`),
			regexp.MustCompile(`(?i)(what\s*can\s*you|क्या\s*कर\s*सकते)`),
			regexp.MustCompile(`(?i)features|capabilities`),
		},
		keywords:   []string{"help", "features", "capabilities", "how"},
		keywordsHi: []string{"मदद", "सहायता", "कैसे", "क्या"},
		priority:   5,
		tools:      []string{},
	},
	{
		intent: "greeting",
		domain: models.DomainMeta,
		expressions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^(hi|hello|hey|namaste|नमस्ते|हाय|हेलो)$`),
			regexp.MustCompile(`(?i)good\s*(morning|afternoon|evening)`),
			regexp.MustCompile(`(?i)शुभ\s*(प्रभात|संध्या)`),
		},
		keywords:   []string{"hi", "hello", "hey", "namaste"},
		keywordsHi: []string{"नमस्ते", "हाय", "हेलो"},
		priority:   5,
		tools:      []string{},
	},
}
