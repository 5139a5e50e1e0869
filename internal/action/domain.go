package action

import "strings"

// APIHandle returns the identifier of the API object for a domain. Unknown
// domains share the workspace handle.
func APIHandle(domain string) string {
	switch strings.ToLower(strings.TrimSpace(domain)) {
	case "case":
		return "caseApi"
	case "provider":
		return "providerApi"
	case "person":
		return "personApi"
	case "intake":
		return "intakeApi"
	case "eligibility":
		return "eligibilityApi"
	case "financial":
		return "financialApi"
	case "resource":
		return "resourceApi"
	case "admin":
		return "adminApi"
	default:
		return "workspaceApi"
	}
}

// DataHook returns the data-fetch hook paired with a domain's API handle.
func DataHook(domain string) string {
	h := APIHandle(domain)
	name := strings.TrimSuffix(h, "Api")
	return "use" + strings.ToUpper(name[:1]) + name[1:] + "Data"
}
