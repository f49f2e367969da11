package entities

// Role identifies who is acting on the platform.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleCondominio Role = "condominio"
	RoleEmpresa    Role = "empresa"
)

const systemActorID = "system"

// Actor is the identity attached to every core operation.
//
// It is supplied by the HTTP layer (JWT claims) and passed explicitly into the
// use cases; nothing in the core reads it from ambient state.
type Actor struct {
	Role Role   `json:"role"`
	ID   string `json:"id"`
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

func (a Actor) IsCondominio(id string) bool {
	return a.Role == RoleCondominio && a.ID != "" && a.ID == id
}

func (a Actor) IsEmpresa(id string) bool {
	return a.Role == RoleEmpresa && a.ID != "" && a.ID == id
}

// SystemActor is used by asynchronous flows (payment webhooks) that act on
// behalf of the platform itself.
func SystemActor() Actor {
	return Actor{Role: RoleAdmin, ID: systemActorID}
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCondominio, RoleEmpresa:
		return true
	}
	return false
}
