package model

// SettingAdminCredentials is the well-known settings key holding the singular
// admin credential record.
const SettingAdminCredentials = "admin_credentials"

// Setting is one row of the key-value settings store. Values are JSON text.
type Setting struct {
	Name  string `db:"setting_name"`
	Value string `db:"setting_value"`
}

// AdminCredentials is the JSON payload stored under SettingAdminCredentials.
// The password is always stored as a bcrypt hash, on both the login and the
// change-password paths.
type AdminCredentials struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}
