package jurisdiction

import "github.com/shopspring/decimal"

const defaultEffectiveQuarter = "2024Q3"

// defaultTable holds the diesel rates for the 48 contiguous states and DC.
// Oregon collects weight-mile tax instead of a per-gallon rate.
var defaultTable = []Jurisdiction{
	{Code: "AL", Name: "Alabama", TaxRatePerGallon: decimal.RequireFromString("0.3100"), HasElectronicFilingAPI: false},
	{Code: "AR", Name: "Arkansas", TaxRatePerGallon: decimal.RequireFromString("0.2850"), HasElectronicFilingAPI: false},
	{Code: "AZ", Name: "Arizona", TaxRatePerGallon: decimal.RequireFromString("0.2600"), HasElectronicFilingAPI: true},
	{Code: "CA", Name: "California", TaxRatePerGallon: decimal.RequireFromString("1.0190"), HasElectronicFilingAPI: true},
	{Code: "CO", Name: "Colorado", TaxRatePerGallon: decimal.RequireFromString("0.3250"), HasElectronicFilingAPI: true},
	{Code: "CT", Name: "Connecticut", TaxRatePerGallon: decimal.RequireFromString("0.4920"), HasElectronicFilingAPI: false},
	{Code: "DC", Name: "District of Columbia", TaxRatePerGallon: decimal.RequireFromString("0.3350"), HasElectronicFilingAPI: false},
	{Code: "DE", Name: "Delaware", TaxRatePerGallon: decimal.RequireFromString("0.2200"), HasElectronicFilingAPI: false},
	{Code: "FL", Name: "Florida", TaxRatePerGallon: decimal.RequireFromString("0.3755"), HasElectronicFilingAPI: true},
	{Code: "GA", Name: "Georgia", TaxRatePerGallon: decimal.RequireFromString("0.3510"), HasElectronicFilingAPI: true},
	{Code: "IA", Name: "Iowa", TaxRatePerGallon: decimal.RequireFromString("0.3250"), HasElectronicFilingAPI: true},
	{Code: "ID", Name: "Idaho", TaxRatePerGallon: decimal.RequireFromString("0.3300"), HasElectronicFilingAPI: false},
	{Code: "IL", Name: "Illinois", TaxRatePerGallon: decimal.RequireFromString("0.7100"), HasElectronicFilingAPI: true},
	{Code: "IN", Name: "Indiana", TaxRatePerGallon: decimal.RequireFromString("0.6100"), HasElectronicFilingAPI: true},
	{Code: "KS", Name: "Kansas", TaxRatePerGallon: decimal.RequireFromString("0.2600"), HasElectronicFilingAPI: false},
	{Code: "KY", Name: "Kentucky", TaxRatePerGallon: decimal.RequireFromString("0.3200"), HasElectronicFilingAPI: true},
	{Code: "LA", Name: "Louisiana", TaxRatePerGallon: decimal.RequireFromString("0.2000"), HasElectronicFilingAPI: false},
	{Code: "MA", Name: "Massachusetts", TaxRatePerGallon: decimal.RequireFromString("0.2400"), HasElectronicFilingAPI: false},
	{Code: "MD", Name: "Maryland", TaxRatePerGallon: decimal.RequireFromString("0.4670"), HasElectronicFilingAPI: true},
	{Code: "ME", Name: "Maine", TaxRatePerGallon: decimal.RequireFromString("0.3120"), HasElectronicFilingAPI: false},
	{Code: "MI", Name: "Michigan", TaxRatePerGallon: decimal.RequireFromString("0.4620"), HasElectronicFilingAPI: true},
	{Code: "MN", Name: "Minnesota", TaxRatePerGallon: decimal.RequireFromString("0.3130"), HasElectronicFilingAPI: true},
	{Code: "MO", Name: "Missouri", TaxRatePerGallon: decimal.RequireFromString("0.2700"), HasElectronicFilingAPI: false},
	{Code: "MS", Name: "Mississippi", TaxRatePerGallon: decimal.RequireFromString("0.1800"), HasElectronicFilingAPI: false},
	{Code: "MT", Name: "Montana", TaxRatePerGallon: decimal.RequireFromString("0.2975"), HasElectronicFilingAPI: false},
	{Code: "NC", Name: "North Carolina", TaxRatePerGallon: decimal.RequireFromString("0.4050"), HasElectronicFilingAPI: true},
	{Code: "ND", Name: "North Dakota", TaxRatePerGallon: decimal.RequireFromString("0.2300"), HasElectronicFilingAPI: false},
	{Code: "NE", Name: "Nebraska", TaxRatePerGallon: decimal.RequireFromString("0.3010"), HasElectronicFilingAPI: false},
	{Code: "NH", Name: "New Hampshire", TaxRatePerGallon: decimal.RequireFromString("0.2220"), HasElectronicFilingAPI: false},
	{Code: "NJ", Name: "New Jersey", TaxRatePerGallon: decimal.RequireFromString("0.5290"), HasElectronicFilingAPI: true},
	{Code: "NM", Name: "New Mexico", TaxRatePerGallon: decimal.RequireFromString("0.2100"), HasElectronicFilingAPI: false},
	{Code: "NV", Name: "Nevada", TaxRatePerGallon: decimal.RequireFromString("0.2700"), HasElectronicFilingAPI: false},
	{Code: "NY", Name: "New York", TaxRatePerGallon: decimal.RequireFromString("0.4050"), HasElectronicFilingAPI: true},
	{Code: "OH", Name: "Ohio", TaxRatePerGallon: decimal.RequireFromString("0.4700"), HasElectronicFilingAPI: true},
	{Code: "OK", Name: "Oklahoma", TaxRatePerGallon: decimal.RequireFromString("0.1900"), HasElectronicFilingAPI: false},
	{Code: "OR", Name: "Oregon", TaxRatePerGallon: decimal.RequireFromString("0.0000"), HasElectronicFilingAPI: false},
	{Code: "PA", Name: "Pennsylvania", TaxRatePerGallon: decimal.RequireFromString("0.7410"), HasElectronicFilingAPI: true},
	{Code: "RI", Name: "Rhode Island", TaxRatePerGallon: decimal.RequireFromString("0.3700"), HasElectronicFilingAPI: false},
	{Code: "SC", Name: "South Carolina", TaxRatePerGallon: decimal.RequireFromString("0.2800"), HasElectronicFilingAPI: false},
	{Code: "SD", Name: "South Dakota", TaxRatePerGallon: decimal.RequireFromString("0.2800"), HasElectronicFilingAPI: false},
	{Code: "TN", Name: "Tennessee", TaxRatePerGallon: decimal.RequireFromString("0.2700"), HasElectronicFilingAPI: false},
	{Code: "TX", Name: "Texas", TaxRatePerGallon: decimal.RequireFromString("0.2000"), HasElectronicFilingAPI: true},
	{Code: "UT", Name: "Utah", TaxRatePerGallon: decimal.RequireFromString("0.3650"), HasElectronicFilingAPI: false},
	{Code: "VA", Name: "Virginia", TaxRatePerGallon: decimal.RequireFromString("0.4100"), HasElectronicFilingAPI: true},
	{Code: "VT", Name: "Vermont", TaxRatePerGallon: decimal.RequireFromString("0.3200"), HasElectronicFilingAPI: false},
	{Code: "WA", Name: "Washington", TaxRatePerGallon: decimal.RequireFromString("0.4940"), HasElectronicFilingAPI: true},
	{Code: "WI", Name: "Wisconsin", TaxRatePerGallon: decimal.RequireFromString("0.3290"), HasElectronicFilingAPI: false},
	{Code: "WV", Name: "West Virginia", TaxRatePerGallon: decimal.RequireFromString("0.3570"), HasElectronicFilingAPI: false},
	{Code: "WY", Name: "Wyoming", TaxRatePerGallon: decimal.RequireFromString("0.2400"), HasElectronicFilingAPI: false},
}
