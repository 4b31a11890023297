package service

// ActorRole tags which table an id or email resolved against.
type ActorRole string

const (
	RoleUser        ActorRole = "user"
	RoleResponsible ActorRole = "responsible_person"
	RoleAdmin       ActorRole = "admin"
)

// Actor is the resolved identity of a participant, whatever role it holds.
type Actor struct {
	Role     ActorRole
	ID       int64
	Email    string
	FullName string
	Phone    string
}

// ActorResolver encapsulates the role precedence rules. Responsible-person
// accounts are layered over the same numeric id space as regular users, so an
// id is always checked against responsible_persons before users; projections
// depend on this exact order.
type ActorResolver struct {
	actors ActorStore
}

func NewActorResolver(actors ActorStore) *ActorResolver {
	return &ActorResolver{actors: actors}
}

// ResolveByID resolves a reservation's "reserved by" or "responsible person"
// id, preferring ResponsiblePerson over User. Returns (nil, nil) when the id
// matches neither.
func (r *ActorResolver) ResolveByID(id int64) (*Actor, error) {
	person, err := r.actors.GetResponsibleByID(id)
	if err != nil {
		return nil, err
	}
	if person != nil {
		return &Actor{
			Role:     RoleResponsible,
			ID:       person.ID,
			Email:    person.Email,
			FullName: person.FullName(),
		}, nil
	}

	user, err := r.actors.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return &Actor{
			Role:     RoleUser,
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName(),
			Phone:    user.Phone,
		}, nil
	}

	return nil, nil
}

// ResolveCancellerByEmail names the actor behind a cancellation request.
// Precedence: ResponsiblePerson, then Admin (displayed generically as
// "Admin"), then User. First match wins.
func (r *ActorResolver) ResolveCancellerByEmail(email string) (*Actor, error) {
	person, err := r.actors.GetResponsibleByEmail(email)
	if err != nil {
		return nil, err
	}
	if person != nil {
		return &Actor{
			Role:     RoleResponsible,
			ID:       person.ID,
			Email:    person.Email,
			FullName: person.FullName(),
		}, nil
	}

	admin, err := r.actors.GetAdminByEmail(email)
	if err != nil {
		return nil, err
	}
	if admin != nil {
		return &Actor{
			Role:     RoleAdmin,
			ID:       admin.ID,
			Email:    admin.Email,
			FullName: "Admin",
		}, nil
	}

	user, err := r.actors.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return &Actor{
			Role:     RoleUser,
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName(),
			Phone:    user.Phone,
		}, nil
	}

	return nil, nil
}
