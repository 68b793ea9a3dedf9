package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderFor(t *testing.T) {
	c := New()

	pkg, ok := c.ProviderFor("gst_verify")
	require.True(t, ok)
	assert.Equal(t, "compliance-gst", pkg.Name)

	_, ok = c.ProviderFor("quantum_teleport")
	assert.False(t, ok)
}

func TestPackagesForTools(t *testing.T) {
	c := New()

	providers, missing := c.PackagesForTools([]string{"gst_verify", "gst_calc", "lead_create", "quantum_teleport"})

	names := make([]string, 0, len(providers))
	for _, p := range providers {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"compliance-gst", "crm-core"}, names,
		"two tools from one package yield a single provider entry")
	assert.Equal(t, []string{"quantum_teleport"}, missing)
}

func TestEveryTemplateToolHasAProvider(t *testing.T) {
	c := New()

	tools := []string{
		"mca_company_search", "mca_cin_lookup", "pan_verify", "gst_search_pan",
		"digilocker_fetch", "eway_generate", "gstr2a_fetch", "gstr2b_fetch",
		"itc_check", "gstr1_prepare", "gstr1_file", "gstr3b_prepare",
		"gstr3b_file", "gst_verify", "hsn_lookup", "gst_rate", "gst_calc",
		"invoice_create", "einvoice_generate", "lead_create", "lead_assign",
		"activity_task", "vehicle_position", "ulip_gps_track", "ulip_vahan_rc",
		"ulip_fastag_balance",
	}

	_, missing := c.PackagesForTools(tools)
	assert.Empty(t, missing)
}

func TestFindByKeyword(t *testing.T) {
	c := New()

	results := c.FindByKeyword("gst invoice banana hai")

	require.NotEmpty(t, results)
	assert.Equal(t, "compliance-gst", results[0].Name)
	assert.LessOrEqual(t, len(results), 5)

	assert.Empty(t, c.FindByKeyword("zzz"))
}

func TestSummarize(t *testing.T) {
	c := New()

	s := c.Summarize()

	assert.Equal(t, len(c.Packages()), s.Packages)
	assert.Greater(t, s.Tools, 50)
	assert.Equal(t, 7, s.Categories)
	assert.Equal(t, 5, s.ByCategory["compliance"])
}
