package models

// Identity is the verified subject of an access token. It is either an
// AdminIdentity or a BuyerIdentity; switch on the concrete type.
type Identity interface {
	SubjectID() string
	Role() Role
	isIdentity()
}

// AdminIdentity identifies an authenticated administrator
type AdminIdentity struct {
	ID string
}

func (a AdminIdentity) SubjectID() string { return a.ID }
func (a AdminIdentity) Role() Role        { return RoleAdmin }
func (AdminIdentity) isIdentity()         {}

// BuyerIdentity identifies an authenticated buyer and the team it bids for
type BuyerIdentity struct {
	ID       string
	TeamName string
}

func (b BuyerIdentity) SubjectID() string { return b.ID }
func (b BuyerIdentity) Role() Role        { return RoleBuyer }
func (BuyerIdentity) isIdentity()         {}
