package shared

import "fmt"

// OwnerKind identifies who a meal or shopping item belongs to.
type OwnerKind string

const (
	OwnerGroup      OwnerKind = "group"
	OwnerIndividual OwnerKind = "individual"
)

// Owner is either a Group or an Individual.
type Owner struct {
	Kind OwnerKind
	ID   string
}

// GroupOwner returns the Owner for a group ID.
func GroupOwner(id string) Owner {
	return Owner{Kind: OwnerGroup, ID: id}
}

// IndividualOwner returns the Owner for an individual ID.
func IndividualOwner(id string) Owner {
	return Owner{Kind: OwnerIndividual, ID: id}
}

func (o Owner) String() string {
	return fmt.Sprintf("%s:%s", o.Kind, o.ID)
}
