package cli

import "github.com/imarchenko/stockroom/internal/client/router"

// Role tiers used by the route table. Higher tiers inherit lower screens by
// listing the higher roles alongside.
var (
	rolesUser      = []string{"ROLE_USER", "ROLE_MODERATOR", "ROLE_ADMIN"}
	rolesModerator = []string{"ROLE_MODERATOR", "ROLE_ADMIN"}
	rolesAdmin     = []string{"ROLE_ADMIN"}
)

// Routes builds the console's route table.
func Routes() (*router.Table, error) {
	authAny := router.Access{RequiresAuth: true}
	user := router.Access{RequiresAuth: true, RequiredRoles: rolesUser}
	moderator := router.Access{RequiresAuth: true, RequiredRoles: rolesModerator}
	admin := router.Access{RequiresAuth: true, RequiredRoles: rolesAdmin}

	return router.NewTable([]router.Route{
		// public
		{Path: router.PathLogin, Title: "Login"},
		{Path: "/register", Title: "Register"},
		{Path: router.PathAccessDenied, Title: "Access Denied"},

		// dashboards and profile
		{Path: "/user-dashboard", Title: "User Dashboard", Access: user},
		{Path: "/mod-dashboard", Title: "Moderator Dashboard", Access: moderator},
		{Path: "/admin-dashboard", Title: "Admin Dashboard", Access: admin},
		{Path: "/profile", Title: "My Profile", Access: authAny},

		// resources
		{Path: "/products", Title: "Products", Access: user},
		{Path: "/products/new", Title: "Add Product", Access: moderator},
		{Path: "/categories", Title: "Categories", Access: user},
		{Path: "/suppliers", Title: "Suppliers", Access: user},
		{Path: "/purchases", Title: "Purchases", Access: user},
		{Path: "/sales", Title: "Sales", Access: user},
		{Path: "/stores", Title: "Stores", Access: moderator},
		{Path: "/inventories", Title: "Inventories", Access: user},
		{Path: "/transactions", Title: "Transactions", Access: user},
	})
}
