package odoo

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// rpcRequest is the JSON-RPC 2.0 envelope the ERP expects on every call.
type rpcRequest struct {
	Jsonrpc string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
	ID      string `json:"id"`
}

// rpcError is the error member of a JSON-RPC response.
type rpcError struct {
	Code    int64           `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// rpcResponse is the JSON-RPC 2.0 envelope the ERP answers with. Result is
// kept raw so each call site can decode into its own shape.
type rpcResponse struct {
	Jsonrpc string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

// callKWParams is the params object of a /web/dataset/call_kw request.
type callKWParams struct {
	Model  string         `json:"model"`
	Method string         `json:"method"`
	Args   []any          `json:"args"`
	Kwargs map[string]any `json:"kwargs"`
}

// authParams is the params object of a /web/session/authenticate request.
type authParams struct {
	DB       string `json:"db"`
	Login    string `json:"login"`
	Password string `json:"password"`
}

// optInt is an int64 that tolerates the ERP's habit of sending false
// instead of null for missing numbers (a rejected login answers uid: false).
type optInt int64

// UnmarshalJSON implements json.Unmarshaler.
func (v *optInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("false")) || bytes.Equal(data, []byte("null")) {
		*v = 0
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	*v = optInt(n)
	return nil
}

// AuthResult is the session descriptor returned by a successful
// authenticate call. Only the fields the dashboard consumes are decoded.
type AuthResult struct {
	UID                optInt `json:"uid"`
	Name               string `json:"name"`
	Username           string `json:"username"`
	DB                 string `json:"db"`
	ServerVersion      string `json:"server_version"`
	PartnerDisplayName string `json:"partner_display_name"`
	CompanyID          optInt `json:"company_id"`
	PartnerID          optInt `json:"partner_id"`
	IsAdmin            bool   `json:"is_admin"`
	IsSystem           bool   `json:"is_system"`
}

// UIDValue returns the numeric user id.
func (a *AuthResult) UIDValue() int64 { return int64(a.UID) }

// CompanyIDValue returns the numeric company id, 0 when absent.
func (a *AuthResult) CompanyIDValue() int64 { return int64(a.CompanyID) }

// PartnerIDValue returns the numeric partner id, 0 when absent.
func (a *AuthResult) PartnerIDValue() int64 { return int64(a.PartnerID) }

// Session is an authenticated ERP session as tracked by the manager.
type Session struct {
	UID      int64
	Login    string
	Name     string
	Database string
}
