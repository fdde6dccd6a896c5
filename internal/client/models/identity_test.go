package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityRecord_Valid(t *testing.T) {
	tests := []struct {
		name string
		r    *IdentityRecord
		want bool
	}{
		{"nil", nil, false},
		{"complete", &IdentityRecord{PublicID: "p", Login: "ana", Roles: []string{RoleAdmin}}, true},
		{"no public id", &IdentityRecord{Login: "ana", Roles: []string{RoleAdmin}}, false},
		{"no login", &IdentityRecord{PublicID: "p", Roles: []string{RoleAdmin}}, false},
		{"nil roles", &IdentityRecord{PublicID: "p", Login: "ana"}, false},
		{"empty roles", &IdentityRecord{PublicID: "p", Login: "ana", Roles: []string{}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Valid())
		})
	}
}

func TestIdentityRecord_CloneIsDeep(t *testing.T) {
	email := "ana@example.com"
	orig := &IdentityRecord{PublicID: "p", Login: "ana", Email: &email, Roles: []string{RoleAdmin}}

	c := orig.Clone()
	require.Equal(t, orig, c)

	c.Roles[0] = RoleCustomer
	*c.Email = "other@example.com"

	assert.Equal(t, RoleAdmin, orig.Roles[0])
	assert.Equal(t, "ana@example.com", *orig.Email)
	assert.Nil(t, (*IdentityRecord)(nil).Clone())
}

func TestNewSessionEnvelope_CopiesUser(t *testing.T) {
	u := &IdentityRecord{PublicID: "p", Login: "ana", Roles: []string{RoleAdmin}}

	env := NewSessionEnvelope(u, 1700000000000)
	u.Roles[0] = RoleCustomer

	assert.Equal(t, CurrentSessionVersion, env.Version)
	assert.Equal(t, int64(1700000000000), env.Timestamp)
	assert.Equal(t, []string{RoleAdmin}, env.User.Roles)
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("PF")
	assert.True(t, ok)
	assert.Equal(t, KindPF, k)

	k, ok = ParseKind("pj")
	assert.True(t, ok)
	assert.Equal(t, KindPJ, k)

	_, ok = ParseKind("px")
	assert.False(t, ok)
}

func TestCustomer_Views(t *testing.T) {
	yes := true
	pj := ClientePJ{PublicID: "1", RazaoSocial: "ACME LTDA", NomeFantasia: "Acme", Ativo: &yes}
	assert.Equal(t, "ACME LTDA", pj.DisplayName())
	assert.True(t, pj.Active())
	assert.False(t, pj.Blocked())

	pf := ClientePF{PublicID: "2", NomeCompleto: "Ana Souza", Bloqueado: &yes}
	assert.Equal(t, "Ana Souza", pf.DisplayName())
	assert.False(t, pf.Active())
	assert.True(t, pf.Blocked())
}

func TestPageRequest_WithDefaults(t *testing.T) {
	got := PageRequest{Page: -1}.WithDefaults()
	assert.Equal(t, PageRequest{Page: 0, Size: 20, Sort: "id", Direction: "ASC"}, got)

	got = PageRequest{Page: 3, Size: 50, Sort: "nome", Direction: "DESC"}.WithDefaults()
	assert.Equal(t, PageRequest{Page: 3, Size: 50, Sort: "nome", Direction: "DESC"}, got)
}
