package types

// ------------------------------
// Response Types
// ------------------------------

// Session is the payload returned by signup and login. Token is the opaque
// bearer credential for subsequent requests.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Stats is the dashboard aggregate payload.
type Stats struct {
	TotalCustomers int `json:"totalCustomers"`
	ActiveMatters  int `json:"activeMatters"`
}
