package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"swayam-intelligence/internal/models"
)

func TestValidGSTIN(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"valid gstin", "27AABCU9603R1ZM", true},
		{"lowercase accepted", "27aabcu9603r1zm", true},
		{"fourteen characters", "27AABCU9603R1Z", false},
		{"sixteen characters", "27AABCU9603R1ZMX", false},
		{"missing z marker", "27AABCU9603R1AM", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidGSTIN(tt.value))
		})
	}
}

func TestValidPAN(t *testing.T) {
	assert.True(t, ValidPAN("AABCU9603R"))
	assert.True(t, ValidPAN("ABCPD1234E"))
	assert.False(t, ValidPAN("AABCU960R"))
	assert.False(t, ValidPAN("AABDU9603R"), "fourth character must encode holder type")
}

func TestValidAadhaar(t *testing.T) {
	assert.True(t, ValidAadhaar("234567890123"))
	assert.True(t, ValidAadhaar("2345 6789 0123"), "spaces are stripped before matching")
	assert.False(t, ValidAadhaar("123456789012"), "cannot start with 0 or 1")
	assert.False(t, ValidAadhaar("23456789012"))
}

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lakh multiplier", "5 lakh", "500000"},
		{"lakh hindi", "5 लाख", "500000"},
		{"crore multiplier", "2 crore", "20000000"},
		{"thousand shorthand", "50k", "50000"},
		{"comma separated", "2,50,000", "250000"},
		{"fractional lakh", "1.5 lakh", "150000"},
		{"plain number unchanged", "500000", "500000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeAmount(tt.in))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	cases := []struct {
		entityType models.EntityType
		raw        string
	}{
		{models.EntityAmount, "5 lakh"},
		{models.EntityAmount, "2 crore"},
		{models.EntityGSTIN, "27aabcu9603r1zm"},
		{models.EntityPAN, "aabcu9603r"},
		{models.EntityPhone, "9876543210"},
		{models.EntityTenure, "5 years"},
		{models.EntityLoanType, "home loan"},
		{models.EntityBankName, "state bank"},
	}

	for _, tc := range cases {
		once := Normalize(tc.entityType, tc.raw)
		twice := Normalize(tc.entityType, once)
		assert.Equal(t, once, twice, "normalizing %q twice for %s", tc.raw, tc.entityType)
	}
}

func TestNormalizeLoanType(t *testing.T) {
	assert.Equal(t, "HOME_LOAN", normalizeLoanType("home loan"))
	assert.Equal(t, "HOME_LOAN", normalizeLoanType("होम लोन"))
	assert.Equal(t, "CAR_LOAN", normalizeLoanType("car loan"))
	assert.Equal(t, "EDUCATION_LOAN", normalizeLoanType("education loan"))
	assert.Equal(t, "PERSONAL_LOAN", normalizeLoanType("some loan"), "unrecognized defaults to personal")
}

func TestNormalizeTenure(t *testing.T) {
	assert.Equal(t, "5_YEARS", normalizeTenure("5 years"))
	assert.Equal(t, "5_YEARS", normalizeTenure("5 साल"))
	assert.Equal(t, "18_MONTHS", normalizeTenure("18 months"))
	assert.True(t, validTenure("30 years"))
	assert.False(t, validTenure("31 years"))
	assert.False(t, validTenure("0 years"))
}

func TestNormalizeAnnualIncome(t *testing.T) {
	assert.Equal(t, "1200000", normalizeAnnualIncome("12 lpa"))
	assert.Equal(t, "500000", normalizeAnnualIncome("annual income 5 lakh"))
	assert.Equal(t, "600000", normalizeAnnualIncome("salary 50,000 per month"), "monthly income annualized")
}

func TestValidCreditScore(t *testing.T) {
	assert.True(t, validCreditScore("750"))
	assert.True(t, validCreditScore("300"))
	assert.True(t, validCreditScore("900"))
	assert.False(t, validCreditScore("250"))
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+919876543210", normalizePhone("9876543210"))
	assert.Equal(t, "+919876543210", normalizePhone("91 9876543210"))
	assert.Equal(t, "+919876543210", normalizePhone("+919876543210"))
	assert.False(t, validPhone("5876543210"), "mobile numbers start with 6-9")
}

func TestNormalizeDateRelative(t *testing.T) {
	today := normalizeDate("today")
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, today)
	assert.Equal(t, today, normalizeDate("आज"))
	assert.NotEqual(t, today, normalizeDate("tomorrow"))
	assert.Equal(t, "2024-12-25", normalizeDate("25/12/2024"))
	assert.Equal(t, "2024-12-25", normalizeDate("2024-12-25"), "already normalized dates pass through")
}
