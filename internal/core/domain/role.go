package domain

// Role identifies which portal an identity belongs to. Exactly one role is
// assigned per identity at registration and it is embedded in every token
// issued for that identity until re-authentication.
type Role string

const (
	RoleSaasAdmin       Role = "saas_admin"
	RoleSuperAdmin      Role = "super_admin"
	RoleStoreManager    Role = "store_manager"
	RoleVendor          Role = "vendor"
	RoleDeliveryPartner Role = "delivery_partner"
	RoleCustomer        Role = "customer"
	RoleSupportStaff    Role = "support_staff"
)

type roleMeta struct {
	display string
	slug    string
}

var roles = map[Role]roleMeta{
	RoleSaasAdmin:       {display: "SaaS Admin", slug: "saas-admin"},
	RoleSuperAdmin:      {display: "Super Admin", slug: "super-admin"},
	RoleStoreManager:    {display: "Store Manager", slug: "store-manager"},
	RoleVendor:          {display: "Vendor", slug: "vendor"},
	RoleDeliveryPartner: {display: "Delivery Partner", slug: "delivery-partner"},
	RoleCustomer:        {display: "Customer", slug: "customer"},
	RoleSupportStaff:    {display: "Support Staff", slug: "support-staff"},
}

var rolesBySlug = func() map[string]Role {
	m := make(map[string]Role, len(roles))
	for r, meta := range roles {
		m[meta.slug] = r
	}
	return m
}()

// ParseRole converts the wire representation into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := roles[r]; !ok {
		return "", ErrInvalidRole
	}
	return r, nil
}

// RoleFromSlug resolves a dashboard URL slug (e.g. "delivery-partner").
func RoleFromSlug(slug string) (Role, bool) {
	r, ok := rolesBySlug[slug]
	return r, ok
}

// Valid reports whether r is one of the closed set of roles.
func (r Role) Valid() bool {
	_, ok := roles[r]
	return ok
}

// Display returns the human-readable role name shown in portal headers.
func (r Role) Display() string {
	return roles[r].display
}

// Slug returns the role's dashboard path segment.
func (r Role) Slug() string {
	return roles[r].slug
}

// SelfRegisterable reports whether a role may be chosen on the public
// registration form. The platform admin role is provisioned by seeding only.
func (r Role) SelfRegisterable() bool {
	return r.Valid() && r != RoleSaasAdmin
}

// DashboardRoles is the dashboard access policy: each slug admits exactly the
// role it names. Dashboards are mutually exclusive views, so administrative
// roles get no implicit access to the others.
func DashboardRoles(slug string) ([]Role, bool) {
	r, ok := rolesBySlug[slug]
	if !ok {
		return nil, false
	}
	return []Role{r}, true
}
