// Package catalog is the in-memory knowledge base of capability packages:
// which package provides which tools. The orchestrator uses it to decide
// whether the tools an intent needs are actually available.
package catalog

import (
	"sort"
	"strings"
)

// PackageInfo describes one capability package and the tools it provides.
type PackageInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Keywords    []string `json:"keywords"`
	Tools       []string `json:"tools"`
}

// Summary is the aggregate view served by the capabilities endpoint.
type Summary struct {
	Packages   int            `json:"packages"`
	Tools      int            `json:"tools"`
	Categories int            `json:"categories"`
	ByCategory map[string]int `json:"byCategory"`
}

var packageTable = []PackageInfo{
	{
		Name:        "compliance-gst",
		Description: "GST compliance: GSTIN verification, GST calculation, GSTR preparation and filing, e-way bills, HSN/SAC lookup",
		Category:    "compliance",
		Keywords:    []string{"gst", "gstin", "gstr", "tax", "eway", "hsn"},
		Tools: []string{
			"gst_verify", "gst_calc", "gst_rate", "gst_search_pan",
			"gstr1_prepare", "gstr1_file", "gstr2a_fetch", "gstr2b_fetch",
			"gstr3b_prepare", "gstr3b_file", "itc_check", "eway_generate",
			"hsn_lookup", "sac_lookup",
		},
	},
	{
		Name:        "einvoice",
		Description: "E-Invoice generation with IRP integration",
		Category:    "compliance",
		Keywords:    []string{"einvoice", "irp", "irn"},
		Tools:       []string{"einvoice_generate"},
	},
	{
		Name:        "compliance-tds",
		Description: "TDS deduction and calculation",
		Category:    "compliance",
		Keywords:    []string{"tds", "tax", "deduction"},
		Tools:       []string{"tds_calc"},
	},
	{
		Name:        "compliance-itr",
		Description: "Income tax return calculation and filing",
		Category:    "compliance",
		Keywords:    []string{"itr", "income", "tax", "filing"},
		Tools:       []string{"income_tax_calc"},
	},
	{
		Name:        "mca",
		Description: "MCA company master data and CIN lookup",
		Category:    "compliance",
		Keywords:    []string{"mca", "cin", "company", "director"},
		Tools:       []string{"mca_company_search", "mca_cin_lookup"},
	},
	{
		Name:        "erp-core",
		Description: "ERP documents: invoices, purchase and sales orders, stock",
		Category:    "erp",
		Keywords:    []string{"erp", "invoice", "inventory", "purchase", "sales", "stock"},
		Tools:       []string{"invoice_create", "stock_check", "po_create", "so_create"},
	},
	{
		Name:        "erp-accounting",
		Description: "Accounting reports: balance sheet, trial balance, P&L",
		Category:    "erp",
		Keywords:    []string{"accounting", "balance", "ledger", "reports"},
		Tools:       []string{"balance_sheet", "trial_balance", "profit_loss"},
	},
	{
		Name:        "crm-core",
		Description: "CRM: leads, contacts, opportunities, activities",
		Category:    "crm",
		Keywords:    []string{"crm", "leads", "contacts", "opportunity", "sales"},
		Tools: []string{
			"lead_create", "lead_assign", "lead_followup", "contact_create",
			"opportunity_pipeline", "opportunity_list", "activity_task",
		},
	},
	{
		Name:        "banking-upi",
		Description: "UPI payments and transfers",
		Category:    "banking",
		Keywords:    []string{"upi", "payment", "transfer"},
		Tools:       []string{"upi_send"},
	},
	{
		Name:        "banking-bbps",
		Description: "BBPS bill payments: electricity, water, gas, mobile",
		Category:    "banking",
		Keywords:    []string{"bbps", "bills", "electricity", "recharge"},
		Tools:       []string{"bbps_electricity", "bbps_water", "bbps_gas", "bbps_mobile"},
	},
	{
		Name:        "banking-calculators",
		Description: "EMI, loan and interest calculators",
		Category:    "banking",
		Keywords:    []string{"emi", "loan", "interest", "calculator"},
		Tools:       []string{"emi_calc", "calculator"},
	},
	{
		Name:        "bfc-lending",
		Description: "Lending journey: credit checks, eligibility, loan application and status",
		Category:    "banking",
		Keywords:    []string{"loan", "credit", "eligibility", "cibil"},
		Tools: []string{
			"bfc_credit_check", "bfc_eligibility_calc", "bfc_loan_apply",
			"bfc_document_upload", "bfc_loan_status", "bfc_credit_score",
		},
	},
	{
		Name:        "bfc-insurance",
		Description: "Insurance quotes, premiums and claims",
		Category:    "banking",
		Keywords:    []string{"insurance", "premium", "claim", "policy"},
		Tools: []string{
			"bfc_insurance_quote", "bfc_premium_calc",
			"bfc_insurance_claim", "bfc_claim_status",
		},
	},
	{
		Name:        "bfc-wealth",
		Description: "Investments, portfolios and financial goals",
		Category:    "banking",
		Keywords:    []string{"investment", "portfolio", "goal", "sip", "wealth"},
		Tools: []string{
			"bfc_portfolio_view", "bfc_investment_recommend", "bfc_risk_profile",
			"bfc_goal_create", "bfc_goal_track", "bfc_goal_progress",
		},
	},
	{
		Name:        "bfc-engage",
		Description: "Offers and rewards programs",
		Category:    "banking",
		Keywords:    []string{"offers", "rewards", "cashback", "redeem"},
		Tools: []string{
			"bfc_offers_list", "bfc_offer_details", "bfc_offer_apply",
			"bfc_rewards_balance", "bfc_rewards_history", "bfc_rewards_redeem",
		},
	},
	{
		Name:        "bfc-insights",
		Description: "Spending analysis, budgets and financial advice",
		Category:    "banking",
		Keywords:    []string{"spending", "budget", "expense", "advice"},
		Tools: []string{
			"bfc_spending_analysis", "bfc_expense_report", "bfc_budget_create",
			"bfc_budget_track", "bfc_financial_advice", "bfc_tips",
		},
	},
	{
		Name:        "bfc-accounts",
		Description: "Account aggregator linking and balance views",
		Category:    "banking",
		Keywords:    []string{"account", "balance", "aggregator", "setu"},
		Tools: []string{
			"bfc_account_link", "setu_aa_consent", "bfc_account_summary",
			"bfc_balance_view", "bank_balance",
		},
	},
	{
		Name:        "gov-aadhaar",
		Description: "Aadhaar verification and e-KYC",
		Category:    "government",
		Keywords:    []string{"aadhaar", "kyc", "verification"},
		Tools:       []string{"aadhaar_verify"},
	},
	{
		Name:        "gov-pan",
		Description: "PAN verification",
		Category:    "government",
		Keywords:    []string{"pan", "verification"},
		Tools:       []string{"pan_verify"},
	},
	{
		Name:        "gov-digilocker",
		Description: "DigiLocker document fetch",
		Category:    "government",
		Keywords:    []string{"digilocker", "documents"},
		Tools:       []string{"digilocker_fetch"},
	},
	{
		Name:        "gov-epf",
		Description: "EPF balance and passbook",
		Category:    "government",
		Keywords:    []string{"epf", "pf", "provident"},
		Tools:       []string{"epf_balance"},
	},
	{
		Name:        "gov-schemes",
		Description: "Government scheme status: PM-Kisan, PM-Awas, Ujjwala",
		Category:    "government",
		Keywords:    []string{"scheme", "kisan", "awas", "ujjwala"},
		Tools:       []string{"pm_kisan", "pm_awas", "ujjwala"},
	},
	{
		Name:        "gov-ulip",
		Description: "ULIP logistics data: Vahan RC, GPS, FASTag",
		Category:    "government",
		Keywords:    []string{"ulip", "vahan", "fastag", "rc"},
		Tools:       []string{"ulip_vahan_rc", "ulip_gps_track", "ulip_fastag_balance"},
	},
	{
		Name:        "tms-tracking",
		Description: "Fleet tracking, tolls and distances",
		Category:    "logistics",
		Keywords:    []string{"vehicle", "tracking", "fleet", "toll", "distance"},
		Tools:       []string{"vehicle_position", "live_positions", "toll_estimate", "distance_calc"},
	},
	{
		Name:        "ocean-tracker",
		Description: "Ocean freight and container tracking",
		Category:    "logistics",
		Keywords:    []string{"container", "shipping", "freight", "vessel"},
		Tools:       []string{"container_track"},
	},
	{
		Name:        "general-tools",
		Description: "Weather, web search and other utilities",
		Category:    "general",
		Keywords:    []string{"weather", "search", "utility"},
		Tools:       []string{"weather", "web_search"},
	},
}

// Catalog indexes the package table by tool name.
type Catalog struct {
	packages []PackageInfo
	byTool   map[string]*PackageInfo
}

func New() *Catalog {
	c := &Catalog{
		packages: packageTable,
		byTool:   make(map[string]*PackageInfo),
	}
	for i := range c.packages {
		for _, tool := range c.packages[i].Tools {
			c.byTool[tool] = &c.packages[i]
		}
	}
	return c
}

// ProviderFor returns the package providing a tool.
func (c *Catalog) ProviderFor(tool string) (PackageInfo, bool) {
	if p, ok := c.byTool[tool]; ok {
		return *p, true
	}
	return PackageInfo{}, false
}

// PackagesForTools resolves each tool to its provider. It returns the unique
// providers plus the tools nothing in the catalog can serve; the missing list
// is the orchestrator's toolsMissing signal.
func (c *Catalog) PackagesForTools(tools []string) ([]PackageInfo, []string) {
	var providers []PackageInfo
	seen := make(map[string]bool)
	var missing []string

	for _, tool := range tools {
		p, ok := c.byTool[tool]
		if !ok {
			missing = append(missing, tool)
			continue
		}
		if !seen[p.Name] {
			seen[p.Name] = true
			providers = append(providers, *p)
		}
	}
	return providers, missing
}

// FindByKeyword scores packages against a free-text query: keyword hits count
// 10, description words longer than three characters count 2. The top five
// scorers come back, best first.
func (c *Catalog) FindByKeyword(query string) []PackageInfo {
	lower := strings.ToLower(query)

	type scored struct {
		pkg   PackageInfo
		score int
	}
	var matches []scored

	for _, pkg := range c.packages {
		score := 0
		for _, kw := range pkg.Keywords {
			if strings.Contains(lower, kw) {
				score += 10
			}
		}
		for _, word := range strings.Fields(strings.ToLower(pkg.Description)) {
			word = strings.Trim(word, ",.:")
			if len(word) > 3 && strings.Contains(lower, word) {
				score += 2
			}
		}
		if score > 0 {
			matches = append(matches, scored{pkg, score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	if len(matches) > 5 {
		matches = matches[:5]
	}

	result := make([]PackageInfo, len(matches))
	for i, m := range matches {
		result[i] = m.pkg
	}
	return result
}

// Summarize aggregates package, tool and category counts.
func (c *Catalog) Summarize() Summary {
	byCategory := make(map[string]int)
	tools := 0
	for _, pkg := range c.packages {
		byCategory[pkg.Category]++
		tools += len(pkg.Tools)
	}
	return Summary{
		Packages:   len(c.packages),
		Tools:      tools,
		Categories: len(byCategory),
		ByCategory: byCategory,
	}
}

// Packages returns the full table.
func (c *Catalog) Packages() []PackageInfo {
	return c.packages
}
