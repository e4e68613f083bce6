// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table        string
	ID           string
	Email        string
	Groups       string
	Joined       string
	Confirmed    string
	LastLogin    string
	PrevLogin    string
	PasswordHash string
	CreatedAt    string
	UpdatedAt    string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:        "users.account",
	ID:           "id",
	Email:        "email",
	Groups:       "groups",
	Joined:       "joined",
	Confirmed:    "confirmed",
	LastLogin:    "lastlogin",
	PrevLogin:    "prevlogin",
	PasswordHash: "passwordhash",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Email, t.Groups, t.Joined, t.Confirmed, t.LastLogin,
		t.PrevLogin, t.PasswordHash, t.CreatedAt, t.UpdatedAt,
	}
}
