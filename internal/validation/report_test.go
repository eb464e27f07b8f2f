package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/muslimguide/internal/models"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid", email: "amina@example.com", wantErr: false},
		{name: "valid subdomain", email: "a.b@mail.example.ph", wantErr: false},
		{name: "empty", email: "", wantErr: true},
		{name: "whitespace only", email: "   ", wantErr: true},
		{name: "missing at", email: "amina.example.com", wantErr: true},
		{name: "missing domain dot", email: "amina@example", wantErr: true},
		{name: "contains space", email: "ami na@example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolveReportCategory(t *testing.T) {
	assert.Equal(t, "Complaints", ResolveReportCategory("Complaints", "ignored"))
	assert.Equal(t, "Others: parking", ResolveReportCategory("Others", "  parking "))
	assert.Equal(t, "Others", ResolveReportCategory("Others", "   "))
}

func TestValidateReport(t *testing.T) {
	valid := func() *models.Report {
		return &models.Report{
			Name:        "Amina",
			Email:       "amina@example.com",
			Category:    "Complaints",
			Description: "Prayer times are outdated",
		}
	}

	tests := []struct {
		name    string
		mutate  func(r *models.Report)
		wantErr string
	}{
		{name: "valid report", mutate: func(r *models.Report) {}},
		{name: "others category", mutate: func(r *models.Report) { r.Category = "Others: parking" }},
		{name: "empty name", mutate: func(r *models.Report) { r.Name = "  " }, wantErr: "name cannot be empty"},
		{name: "long name", mutate: func(r *models.Report) { r.Name = strings.Repeat("a", MaxReportNameLen+1) }, wantErr: "name must not exceed"},
		{name: "bad email", mutate: func(r *models.Report) { r.Email = "nope" }, wantErr: "invalid email"},
		{name: "unknown category", mutate: func(r *models.Report) { r.Category = "Spam" }, wantErr: "unknown report category"},
		{name: "empty category", mutate: func(r *models.Report) { r.Category = "" }, wantErr: "category cannot be empty"},
		{name: "whitespace description", mutate: func(r *models.Report) { r.Description = " \n\t " }, wantErr: "description cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid()
			tt.mutate(r)
			err := ValidateReport(r)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateListingCategory(t *testing.T) {
	assert.NoError(t, ValidateListingCategory(models.CategoryMosque))
	assert.NoError(t, ValidateListingCategory(models.CategoryCommunity))
	assert.Error(t, ValidateListingCategory("bakery"))
}

func TestValidateCampaignCategory(t *testing.T) {
	assert.NoError(t, ValidateCampaignCategory(models.CampaignEvent))
	assert.NoError(t, ValidateCampaignCategory(models.CampaignPromotion))
	assert.Error(t, ValidateCampaignCategory(models.CategoryMosque))
}
