// Package catalog holds the static indicator and country sets offered by the
// dashboard. Both are fixed at process start and never mutated.
package catalog

import "EconWatch/internal/domain/models"

var indicators = []models.Indicator{
	{Code: "NY.GDP.MKTP.CD", Label: "GDP (current US$)"},
	{Code: "NY.GDP.PCAP.CD", Label: "GDP per capita (current US$)"},
	{Code: "FP.CPI.TOTL.ZG", Label: "Inflation, consumer prices (annual %)"},
	{Code: "NE.TRD.GNFS.ZS", Label: "Trade (% of GDP)"},
	{Code: "BN.CAB.XOKA.GD.ZS", Label: "Current Account Balance (% of GDP)"},
	{Code: "FI.RES.TOTL.CD", Label: "Total reserves"},
	{Code: "SL.UEM.TOTL.ZS", Label: "Unemployment rate"},
	{Code: "NY.GDP.MKTP.KD.ZG", Label: "GDP growth (annual %)"},
	{Code: "BX.KLT.DINV.WD.GD.ZS", Label: "Foreign direct investment (% of GDP)"},
	{Code: "GC.DOD.TOTL.GD.ZS", Label: "Government debt to GDP (%)"},
}

var countries = []models.Country{
	{Code: "USA", Name: "United States"},
	{Code: "CHN", Name: "China"},
	{Code: "JPN", Name: "Japan"},
	{Code: "DEU", Name: "Germany"},
	{Code: "GBR", Name: "United Kingdom"},
	{Code: "FRA", Name: "France"},
	{Code: "IND", Name: "India"},
	{Code: "BRA", Name: "Brazil"},
	{Code: "CAN", Name: "Canada"},
	{Code: "AUS", Name: "Australia"},
	{Code: "KOR", Name: "South Korea"},
	{Code: "RUS", Name: "Russia"},
	{Code: "ZAF", Name: "South Africa"},
	{Code: "MEX", Name: "Mexico"},
}

// Indicators returns all indicators in display order.
func Indicators() []models.Indicator {
	out := make([]models.Indicator, len(indicators))
	copy(out, indicators)
	return out
}

// Countries returns all countries in display order.
func Countries() []models.Country {
	out := make([]models.Country, len(countries))
	copy(out, countries)
	return out
}

// IndicatorLabel returns the human label for a code, or the code itself when
// unknown. Unknown codes are still forwarded to the source unvalidated.
func IndicatorLabel(code string) string {
	for _, in := range indicators {
		if in.Code == code {
			return in.Label
		}
	}
	return code
}

// CountryName returns the display name for an ISO3 code, or the code itself
// when unknown.
func CountryName(code string) string {
	for _, c := range countries {
		if c.Code == code {
			return c.Name
		}
	}
	return code
}
