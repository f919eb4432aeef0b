package pricing

import (
	"github.com/shopspring/decimal"
)

// Entry is the list price of a SKU per user per month.
type Entry struct {
	PartNumber  string
	Name        string
	MonthlyCost decimal.Decimal
}

// Catalog maps SKU part numbers to list prices.
type Catalog map[string]Entry

// DefaultCatalog returns the built-in Microsoft 365 price list (USD, 2024).
func DefaultCatalog() Catalog {
	catalog := make(Catalog, len(defaultEntries))
	for _, e := range defaultEntries {
		catalog[e.PartNumber] = e
	}
	return catalog
}

// Lookup returns the entry for partNumber.
func (c Catalog) Lookup(partNumber string) (Entry, bool) {
	e, ok := c[partNumber]
	return e, ok
}

var defaultEntries = []Entry{
	{PartNumber: "ENTERPRISEPREMIUM", Name: "Microsoft 365 E5", MonthlyCost: decimal.RequireFromString("57.00")},
	{PartNumber: "ENTERPRISEPACK", Name: "Microsoft 365 E3", MonthlyCost: decimal.RequireFromString("36.00")},
	{PartNumber: "STANDARDPACK", Name: "Office 365 E1", MonthlyCost: decimal.RequireFromString("8.00")},
	{PartNumber: "STANDARDWOFFPACK", Name: "Office 365 E2", MonthlyCost: decimal.RequireFromString("10.00")},
	{PartNumber: "DESKLESSPACK", Name: "Microsoft 365 F3", MonthlyCost: decimal.RequireFromString("8.00")},
	{PartNumber: "O365_BUSINESS_ESSENTIALS", Name: "Microsoft 365 Business Basic", MonthlyCost: decimal.RequireFromString("6.00")},
	{PartNumber: "O365_BUSINESS_PREMIUM", Name: "Microsoft 365 Business Premium", MonthlyCost: decimal.RequireFromString("22.00")},
	{PartNumber: "O365_BUSINESS", Name: "Microsoft 365 Apps for business", MonthlyCost: decimal.RequireFromString("8.25")},
	{PartNumber: "SPB", Name: "Microsoft 365 Business Premium", MonthlyCost: decimal.RequireFromString("22.00")},
	{PartNumber: "SMB_BUSINESS", Name: "Microsoft 365 Business Basic", MonthlyCost: decimal.RequireFromString("6.00")},
	{PartNumber: "SMB_BUSINESS_PREMIUM", Name: "Microsoft 365 Business Premium", MonthlyCost: decimal.RequireFromString("22.00")},
	{PartNumber: "Microsoft_365_E3_(no_Teams)", Name: "Microsoft 365 E3 (no Teams)", MonthlyCost: decimal.RequireFromString("36.00")},
	{PartNumber: "SPE_E3", Name: "Microsoft 365 E3", MonthlyCost: decimal.RequireFromString("36.00")},
	{PartNumber: "SPE_E5", Name: "Microsoft 365 E5", MonthlyCost: decimal.RequireFromString("57.00")},
	{PartNumber: "EXCHANGESTANDARD", Name: "Exchange Online Plan 1", MonthlyCost: decimal.RequireFromString("4.00")},
	{PartNumber: "EXCHANGEENTERPRISE", Name: "Exchange Online Plan 2", MonthlyCost: decimal.RequireFromString("8.00")},
	{PartNumber: "EXCHANGEDESKLESS", Name: "Exchange Online Kiosk", MonthlyCost: decimal.RequireFromString("2.00")},
	{PartNumber: "SHAREPOINTSTANDARD", Name: "SharePoint Online Plan 1", MonthlyCost: decimal.RequireFromString("5.00")},
	{PartNumber: "SHAREPOINTENTERPRISE", Name: "SharePoint Online Plan 2", MonthlyCost: decimal.RequireFromString("10.00")},
	{PartNumber: "SHAREPOINTSTORAGE", Name: "SharePoint Online Storage", MonthlyCost: decimal.RequireFromString("0.20")},
	{PartNumber: "MCOSTANDARD", Name: "Microsoft Teams Essentials", MonthlyCost: decimal.RequireFromString("4.00")},
	{PartNumber: "MCOPSTN1", Name: "Calling Plan", MonthlyCost: decimal.RequireFromString("12.00")},
	{PartNumber: "MCOPSTNC", Name: "Communication Credits", MonthlyCost: decimal.RequireFromString("0.00")},
	{PartNumber: "PHONESYSTEM_VIRTUALUSER", Name: "Phone System Virtual User", MonthlyCost: decimal.RequireFromString("15.00")},
	{PartNumber: "Microsoft_Teams_Rooms_Basic", Name: "Teams Rooms Basic", MonthlyCost: decimal.RequireFromString("0.00")},
	{PartNumber: "Microsoft_Teams_Rooms_Pro", Name: "Teams Rooms Pro", MonthlyCost: decimal.RequireFromString("40.00")},
	{PartNumber: "FLOW_FREE", Name: "Power Automate Free", MonthlyCost: decimal.RequireFromString("0.00")},
	{PartNumber: "FLOW_PER_USER", Name: "Power Automate per user", MonthlyCost: decimal.RequireFromString("15.00")},
	{PartNumber: "POWERAUTOMATE_ATTENDED_RPA", Name: "Power Automate attended RPA", MonthlyCost: decimal.RequireFromString("40.00")},
	{PartNumber: "POWERAPPS_PER_USER", Name: "Power Apps per user", MonthlyCost: decimal.RequireFromString("20.00")},
	{PartNumber: "POWERAPPS_PER_APP_NEW", Name: "Power Apps per app", MonthlyCost: decimal.RequireFromString("5.00")},
	{PartNumber: "POWERAPPS_DEV", Name: "Power Apps Developer", MonthlyCost: decimal.RequireFromString("0.00")},
	{PartNumber: "POWER_BI_PRO", Name: "Power BI Pro", MonthlyCost: decimal.RequireFromString("9.99")},
	{PartNumber: "POWER_BI_STANDARD", Name: "Power BI Premium", MonthlyCost: decimal.RequireFromString("20.00")},
	{PartNumber: "PROJECTPROFESSIONAL", Name: "Project Plan 5", MonthlyCost: decimal.RequireFromString("55.00")},
	{PartNumber: "PROJECT_P1", Name: "Project Plan 1", MonthlyCost: decimal.RequireFromString("10.00")},
	{PartNumber: "PROJECTESSENTIALS", Name: "Project Plan 3", MonthlyCost: decimal.RequireFromString("30.00")},
	{PartNumber: "VISIOCLIENT", Name: "Visio Plan 2", MonthlyCost: decimal.RequireFromString("15.00")},
	{PartNumber: "VISIO_PLAN1", Name: "Visio Plan 1", MonthlyCost: decimal.RequireFromString("5.00")},
	{PartNumber: "DYN365_BUSCENTRAL_ESSENTIAL", Name: "Dynamics 365 Business Central Essentials", MonthlyCost: decimal.RequireFromString("70.00")},
	{PartNumber: "DYN365_BUSCENTRAL_TEAM_MEMBER", Name: "Dynamics 365 Business Central Team Member", MonthlyCost: decimal.RequireFromString("8.00")},
	{PartNumber: "DYN365_FINANCIALS_ACCOUNTANT_SKU", Name: "Dynamics 365 Business Central Accountant", MonthlyCost: decimal.RequireFromString("0.00")},
	{PartNumber: "D365_MARKETING_USER", Name: "Dynamics 365 Marketing", MonthlyCost: decimal.RequireFromString("1500.00")},
	{PartNumber: "AAD_PREMIUM", Name: "Azure AD Premium P1", MonthlyCost: decimal.RequireFromString("6.00")},
	{PartNumber: "AAD_PREMIUM_P2", Name: "Azure AD Premium P2", MonthlyCost: decimal.RequireFromString("9.00")},
	{PartNumber: "INTUNE_A", Name: "Microsoft Intune", MonthlyCost: decimal.RequireFromString("6.00")},
	{PartNumber: "INTUNE_A_D", Name: "Microsoft Intune Device", MonthlyCost: decimal.RequireFromString("6.00")},
	{PartNumber: "INTUNE_DEVICE_ENTERPRISE_New", Name: "Microsoft Intune Device", MonthlyCost: decimal.RequireFromString("6.00")},
	{PartNumber: "EMS", Name: "Enterprise Mobility + Security E3", MonthlyCost: decimal.RequireFromString("10.60")},
	{PartNumber: "Microsoft_365_Copilot", Name: "Microsoft 365 Copilot", MonthlyCost: decimal.RequireFromString("30.00")},
	{PartNumber: "FORMS_PRO", Name: "Microsoft Forms Pro", MonthlyCost: decimal.RequireFromString("200.00")},
	{PartNumber: "STREAM", Name: "Microsoft Stream", MonthlyCost: decimal.RequireFromString("0.00")},
	{PartNumber: "WINDOWS_STORE", Name: "Windows Store for Business", MonthlyCost: decimal.RequireFromString("0.00")},
	{PartNumber: "SPZA_IW", Name: "App Connect", MonthlyCost: decimal.RequireFromString("0.00")},
	{PartNumber: "CPC_B_2C_4RAM_64GB_WHB", Name: "Cloud PC", MonthlyCost: decimal.RequireFromString("31.00")},
	{PartNumber: "CCIBOTS_PRIVPREV_VIRAL", Name: "Copilot Studio Trial", MonthlyCost: decimal.RequireFromString("0.00")},
	{PartNumber: "PROJECT_MADEIRA_PREVIEW_IW_SKU", Name: "Business Central Preview", MonthlyCost: decimal.RequireFromString("0.00")},
}
