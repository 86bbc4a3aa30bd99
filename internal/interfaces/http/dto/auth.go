package dto

// AuthResponse is the sanitized session descriptor returned by the auth
// and connection-test endpoints. Field names follow the upstream ERP.
type AuthResponse struct {
	UID                int64  `json:"uid"`
	Name               string `json:"name"`
	Username           string `json:"username"`
	PartnerDisplayName string `json:"partner_display_name,omitempty"`
	CompanyID          int64  `json:"company_id,omitempty"`
	PartnerID          int64  `json:"partner_id,omitempty"`
	ServerVersion      string `json:"server_version,omitempty"`
	DB                 string `json:"db"`
	IsAdmin            bool   `json:"is_admin"`
	IsSystem           bool   `json:"is_system"`
}

// ConnectionInfo is the sanitized upstream configuration. Credentials are
// never exposed, only whether they are configured.
type ConnectionInfo struct {
	OdooURL        string `json:"odooUrl"`
	OdooDB         string `json:"odooDb"`
	HasCredentials bool   `json:"hasCredentials"`
}

// ConnectionTestResponse is the payload of a successful connection test
type ConnectionTestResponse struct {
	OdooURL    string       `json:"odooUrl"`
	OdooDB     string       `json:"odooDb"`
	AuthResult AuthResponse `json:"authResult"`
}
