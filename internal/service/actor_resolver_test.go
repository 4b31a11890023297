package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sharedspaces/internal/db"
)

func TestResolveByIDPrefersResponsiblePerson(t *testing.T) {
	actors := new(MockActorStore)
	actors.On("GetResponsibleByID", int64(20)).Return(
		&db.ResponsiblePerson{ID: 20, FirstName: "Resa", LastName: "Person", Email: "rp@example.com"}, nil)

	resolver := NewActorResolver(actors)
	actor, err := resolver.ResolveByID(20)

	assert.NoError(t, err)
	assert.Equal(t, RoleResponsible, actor.Role)
	assert.Equal(t, "Resa Person", actor.FullName)
	actors.AssertNotCalled(t, "GetUserByID", int64(20))
}

func TestResolveByIDFallsBackToUser(t *testing.T) {
	actors := new(MockActorStore)
	actors.On("GetResponsibleByID", int64(10)).Return(nil, nil)
	actors.On("GetUserByID", int64(10)).Return(
		&db.User{ID: 10, FirstName: "Una", LastName: "One", Email: "u1@example.com"}, nil)

	resolver := NewActorResolver(actors)
	actor, err := resolver.ResolveByID(10)

	assert.NoError(t, err)
	assert.Equal(t, RoleUser, actor.Role)
	assert.Equal(t, "Una One", actor.FullName)
}

func TestResolveByIDUnknown(t *testing.T) {
	actors := new(MockActorStore)
	actors.On("GetResponsibleByID", int64(99)).Return(nil, nil)
	actors.On("GetUserByID", int64(99)).Return(nil, nil)

	resolver := NewActorResolver(actors)
	actor, err := resolver.ResolveByID(99)

	assert.NoError(t, err)
	assert.Nil(t, actor)
}

func TestResolveCancellerPrefersResponsiblePerson(t *testing.T) {
	actors := new(MockActorStore)
	actors.On("GetResponsibleByEmail", "both@example.com").Return(
		&db.ResponsiblePerson{ID: 20, FirstName: "Resa", LastName: "Person", Email: "both@example.com"}, nil)

	resolver := NewActorResolver(actors)
	actor, err := resolver.ResolveCancellerByEmail("both@example.com")

	assert.NoError(t, err)
	assert.Equal(t, RoleResponsible, actor.Role)
	actors.AssertNotCalled(t, "GetAdminByEmail", "both@example.com")
	actors.AssertNotCalled(t, "GetUserByEmail", "both@example.com")
}

func TestResolveCancellerAdminIsNamedGenerically(t *testing.T) {
	actors := new(MockActorStore)
	actors.On("GetResponsibleByEmail", "admin@example.com").Return(nil, nil)
	actors.On("GetAdminByEmail", "admin@example.com").Return(
		&db.Admin{ID: 1, Email: "admin@example.com"}, nil)

	resolver := NewActorResolver(actors)
	actor, err := resolver.ResolveCancellerByEmail("admin@example.com")

	assert.NoError(t, err)
	assert.Equal(t, RoleAdmin, actor.Role)
	assert.Equal(t, "Admin", actor.FullName)
}

func TestResolveCancellerFallsBackToUser(t *testing.T) {
	actors := new(MockActorStore)
	actors.On("GetResponsibleByEmail", "u1@example.com").Return(nil, nil)
	actors.On("GetAdminByEmail", "u1@example.com").Return(nil, nil)
	actors.On("GetUserByEmail", "u1@example.com").Return(
		&db.User{ID: 10, FirstName: "Una", LastName: "One", Email: "u1@example.com"}, nil)

	resolver := NewActorResolver(actors)
	actor, err := resolver.ResolveCancellerByEmail("u1@example.com")

	assert.NoError(t, err)
	assert.Equal(t, RoleUser, actor.Role)
	assert.Equal(t, "Una One", actor.FullName)
}
