package planner

import "swayam-intelligence/internal/models"

// taskTemplate is one task of a planTemplate before IDs and status are
// assigned. Dependencies reference positional IDs (task_1, task_2, ...).
// Titles and descriptions may carry {entityKey} placeholders that get the
// entity's canonical value at instantiation.
type taskTemplate struct {
	title        string
	titleHi      string
	description  string
	priority     int
	agent        models.AgentType
	tools        []string
	dependencies []string
}

type planTemplate struct {
	intent  string
	title   string
	titleHi string
	tasks   []taskTemplate
}

var planTemplates = []planTemplate{
	{
		intent:  "gst_setup",
		title:   "GST Registration Setup",
		titleHi: "GST रजिस्ट्रेशन सेटअप",
		tasks: []taskTemplate{
			{
				title:    "Verify company details on MCA",
				titleHi:  "MCA पर कंपनी details verify करें",
				priority: 1,
				agent:    models.AgentAPI,
				tools:    []string{"mca_company_search", "mca_cin_lookup"},
			},
			{
				title:    "Verify PAN card {pan}",
				titleHi:  "PAN card verify करें",
				priority: 1,
				agent:    models.AgentAPI,
				tools:    []string{"pan_verify"},
			},
			{
				title:        "Check existing GSTIN (if any)",
				titleHi:      "पहले से कोई GSTIN है या नहीं check करें",
				priority:     2,
				agent:        models.AgentAPI,
				tools:        []string{"gst_search_pan"},
				dependencies: []string{"task_2"},
			},
			{
				title:        "Prepare registration documents",
				titleHi:      "Registration documents तैयार करें",
				description:  "PAN, Aadhaar, Address proof, Bank statement, Photos",
				priority:     2,
				agent:        models.AgentHybrid,
				tools:        []string{"digilocker_fetch"},
				dependencies: []string{"task_1", "task_2"},
			},
			{
				title:        "Apply for GSTIN",
				titleHi:      "GSTIN के लिए apply करें",
				priority:     3,
				agent:        models.AgentBrowser,
				tools:        []string{},
				dependencies: []string{"task_3", "task_4"},
			},
			{
				title:        "Setup E-Way bill access",
				titleHi:      "E-Way bill access setup करें",
				priority:     4,
				agent:        models.AgentAPI,
				tools:        []string{"eway_generate"},
				dependencies: []string{"task_5"},
			},
			{
				title:        "Train on GSTR-1/3B filing",
				titleHi:      "GSTR-1/3B filing सिखाएं",
				priority:     5,
				agent:        models.AgentBrowser,
				tools:        []string{},
				dependencies: []string{"task_5"},
			},
		},
	},
	{
		intent:  "gst_return_file",
		title:   "GST Return Filing",
		titleHi: "GST Return Filing",
		tasks: []taskTemplate{
			{
				title:    "Fetch GSTR-2A/2B data",
				titleHi:  "GSTR-2A/2B data लाएं",
				priority: 1,
				agent:    models.AgentAPI,
				tools:    []string{"gstr2a_fetch", "gstr2b_fetch"},
			},
			{
				title:        "Reconcile purchase invoices",
				titleHi:      "Purchase invoices reconcile करें",
				priority:     2,
				agent:        models.AgentAPI,
				tools:        []string{"itc_check"},
				dependencies: []string{"task_1"},
			},
			{
				title:    "Prepare GSTR-1",
				titleHi:  "GSTR-1 तैयार करें",
				priority: 2,
				agent:    models.AgentAPI,
				tools:    []string{"gstr1_prepare"},
			},
			{
				title:        "Review and file GSTR-1",
				titleHi:      "GSTR-1 review और file करें",
				priority:     3,
				agent:        models.AgentHybrid,
				tools:        []string{"gstr1_file"},
				dependencies: []string{"task_3"},
			},
			{
				title:        "Prepare GSTR-3B",
				titleHi:      "GSTR-3B तैयार करें",
				priority:     3,
				agent:        models.AgentAPI,
				tools:        []string{"gstr3b_prepare"},
				dependencies: []string{"task_2"},
			},
			{
				title:        "Review and file GSTR-3B",
				titleHi:      "GSTR-3B review और file करें",
				priority:     4,
				agent:        models.AgentHybrid,
				tools:        []string{"gstr3b_file"},
				dependencies: []string{"task_4", "task_5"},
			},
		},
	},
	{
		intent:  "invoice_create",
		title:   "Create Invoice",
		titleHi: "Invoice बनाएं",
		tasks: []taskTemplate{
			{
				title:    "Verify customer GSTIN {gstin}",
				titleHi:  "Customer का GSTIN verify करें",
				priority: 1,
				agent:    models.AgentAPI,
				tools:    []string{"gst_verify"},
			},
			{
				title:    "Check product HSN codes",
				titleHi:  "Products के HSN codes check करें",
				priority: 1,
				agent:    models.AgentAPI,
				tools:    []string{"hsn_lookup", "gst_rate"},
			},
			{
				title:        "Calculate GST on {amount}",
				titleHi:      "GST calculate करें",
				priority:     2,
				agent:        models.AgentAPI,
				tools:        []string{"gst_calc"},
				dependencies: []string{"task_2"},
			},
			{
				title:        "Generate invoice",
				titleHi:      "Invoice generate करें",
				priority:     3,
				agent:        models.AgentAPI,
				tools:        []string{"invoice_create"},
				dependencies: []string{"task_1", "task_3"},
			},
			{
				title:        "Generate E-Invoice (if applicable)",
				titleHi:      "E-Invoice generate करें (अगर लागू हो)",
				priority:     4,
				agent:        models.AgentAPI,
				tools:        []string{"einvoice_generate"},
				dependencies: []string{"task_4"},
			},
			{
				title:        "Generate E-Way bill (if applicable)",
				titleHi:      "E-Way bill generate करें (अगर लागू हो)",
				priority:     4,
				agent:        models.AgentAPI,
				tools:        []string{"eway_generate"},
				dependencies: []string{"task_4"},
			},
		},
	},
	{
		intent:  "lead_create",
		title:   "Create New Lead",
		titleHi: "नई Lead बनाएं",
		tasks: []taskTemplate{
			{
				title:    "Capture lead information",
				titleHi:  "Lead की जानकारी collect करें",
				priority: 1,
				agent:    models.AgentBrowser,
				tools:    []string{},
			},
			{
				title:        "Verify contact details {phone}",
				titleHi:      "Contact details verify करें",
				priority:     2,
				agent:        models.AgentAPI,
				tools:        []string{},
				dependencies: []string{"task_1"},
			},
			{
				title:        "Create lead in CRM",
				titleHi:      "CRM में lead बनाएं",
				priority:     3,
				agent:        models.AgentAPI,
				tools:        []string{"lead_create"},
				dependencies: []string{"task_2"},
			},
			{
				title:        "Assign to sales rep",
				titleHi:      "Sales rep को assign करें",
				priority:     4,
				agent:        models.AgentAPI,
				tools:        []string{"lead_assign"},
				dependencies: []string{"task_3"},
			},
			{
				title:        "Schedule follow-up",
				titleHi:      "Follow-up schedule करें",
				priority:     4,
				agent:        models.AgentAPI,
				tools:        []string{"activity_task"},
				dependencies: []string{"task_3"},
			},
		},
	},
	{
		intent:  "vehicle_track",
		title:   "Track Vehicle",
		titleHi: "Vehicle Track करें",
		tasks: []taskTemplate{
			{
				title:    "Get current position of {vehicle}",
				titleHi:  "Vehicle की current position लाएं",
				priority: 1,
				agent:    models.AgentAPI,
				tools:    []string{"vehicle_position", "ulip_gps_track"},
			},
			{
				title:    "Get vehicle details",
				titleHi:  "Vehicle details लाएं",
				priority: 1,
				agent:    models.AgentAPI,
				tools:    []string{"ulip_vahan_rc"},
			},
			{
				title:    "Check FASTag balance",
				titleHi:  "FASTag balance check करें",
				priority: 2,
				agent:    models.AgentAPI,
				tools:    []string{"ulip_fastag_balance"},
			},
			{
				title:        "Show on map",
				titleHi:      "Map पर दिखाएं",
				priority:     2,
				agent:        models.AgentBrowser,
				tools:        []string{},
				dependencies: []string{"task_1"},
			},
		},
	},
}
