package authenticating

import "strings"

// AdminAllowlist é o conjunto imutável de emails com acesso ao backoffice
type AdminAllowlist struct {
	emails map[string]struct{}
}

func NewAdminAllowlist(emails []string) *AdminAllowlist {
	set := make(map[string]struct{}, len(emails))
	for _, email := range emails {
		if email = normalizeEmail(email); email != "" {
			set[email] = struct{}{}
		}
	}
	return &AdminAllowlist{emails: set}
}

func (a *AdminAllowlist) IsAdmin(email string) bool {
	if a == nil {
		return false
	}
	_, ok := a.emails[normalizeEmail(email)]
	return ok
}

func (a *AdminAllowlist) Len() int {
	if a == nil {
		return 0
	}
	return len(a.emails)
}

func normalizeEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}
