package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusForAction(t *testing.T) {
	tests := []struct {
		action string
		want   string
		ok     bool
	}{
		{"CREATE", "Created", true},
		{"harvesting", "Harvested", true},
		{" Shipping ", "In transit", true},
		{"warehouse_out", "Dispatched", true},
		{"inspection", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			got, ok := StatusForAction(tt.action)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveStatus(t *testing.T) {
	txs := []TransactionDB{
		{Action: ActionCreate},
		{Action: "harvesting"},
		{Action: "quality check"},
	}
	assert.Equal(t, "Harvested", DeriveStatus(txs))
	assert.Equal(t, "", DeriveStatus(nil))
}

func TestRole_Valid(t *testing.T) {
	for _, r := range Roles {
		assert.True(t, r.Valid(), r)
	}
	assert.False(t, Role("miller").Valid())
}

func TestUserDB_PublicOmitsPassword(t *testing.T) {
	u := UserDB{ID: 1, Username: "alice", Email: "a@x.com", Password: "$2a$hash", Role: RoleFarmer, FullName: "Alice"}
	assert.Equal(t, PublicUser{ID: 1, Username: "alice", Email: "a@x.com", Role: RoleFarmer, FullName: "Alice"}, u.Public())
}
