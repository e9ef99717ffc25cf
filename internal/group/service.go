package group

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"weeks-worth/internal/database"
	"weeks-worth/internal/group/group_db"
	"weeks-worth/internal/planner"
	"weeks-worth/internal/shared"
	"weeks-worth/internal/shopping"
)

// Service manages groups and their membership. Every method takes the ID of
// the individual acting.
type Service struct {
	db       *database.DB
	queries  *group_db.Queries
	meals    *planner.MealRepository
	shopping *shopping.Repository
	logger   *zap.Logger
}

// NewService creates a new group Service.
func NewService(d *database.DB, logger *zap.Logger) *Service {
	return &Service{
		db:       d,
		queries:  group_db.New(d.SQL),
		meals:    planner.NewMealRepository(d.SQL),
		shopping: shopping.NewRepository(d.SQL),
		logger:   logger,
	}
}

// txRepos bundles the repositories bound to one transaction.
type txRepos struct {
	q        *group_db.Queries
	meals    *planner.MealRepository
	shopping *shopping.Repository
}

func (s *Service) inTx(ctx context.Context, fn func(r txRepos) error) error {
	return s.db.InTx(ctx, func(tx *sql.Tx) error {
		return fn(txRepos{
			q:        s.queries.WithTx(tx),
			meals:    s.meals.WithTx(tx),
			shopping: s.shopping.WithTx(tx),
		})
	})
}

// Create makes a new group with the actor as its first member.
func (s *Service) Create(ctx context.Context, actorID, name string) (*Group, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	var g *Group
	err := s.inTx(ctx, func(r txRepos) error {
		if err := r.q.InsertGroup(ctx, group_db.InsertGroupParams{ID: id, Name: name}); err != nil {
			if database.IsUniqueViolation(err) {
				return ErrGroupNameTaken
			}
			return fmt.Errorf("failed to insert group: %w", err)
		}
		if err := r.q.AddMember(ctx, group_db.AddMemberParams{GroupID: id, IndividualID: actorID}); err != nil {
			return fmt.Errorf("failed to add group member: %w", err)
		}
		var err error
		g, err = load(ctx, r, group_db.MealGroup{ID: id, Name: name})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("created group", zap.String("group_id", id), zap.String("name", name))
	return g, nil
}

// Get returns a group the actor belongs to.
func (s *Service) Get(ctx context.Context, actorID string, lookup Lookup) (*Group, error) {
	if err := lookup.Validate(); err != nil {
		return nil, err
	}
	r := s.repos()
	row, err := find(ctx, r.q, lookup)
	if err != nil {
		return nil, err
	}
	if err := requireMember(ctx, r.q, row.ID, actorID); err != nil {
		return nil, err
	}
	return load(ctx, r, row)
}

// MyGroups returns every group the actor belongs to.
func (s *Service) MyGroups(ctx context.Context, actorID string) ([]Group, error) {
	r := s.repos()
	rows, err := r.q.ListGroupsForMember(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups for member: %w", err)
	}

	groups := make([]Group, 0, len(rows))
	for _, row := range rows {
		g, err := load(ctx, r, row)
		if err != nil {
			return nil, err
		}
		groups = append(groups, *g)
	}
	return groups, nil
}

// List returns the name and ID of every group.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.queries.ListGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	summaries := make([]Summary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, Summary{ID: row.ID, Name: row.Name})
	}
	return summaries, nil
}

// Update renames a group and replaces its lists. All changes are applied
// together or not at all.
func (s *Service) Update(ctx context.Context, actorID, groupID string, in UpdateInput) (*Group, error) {
	if in.Name != "" {
		if err := validateName(in.Name); err != nil {
			return nil, err
		}
	}

	var g *Group
	err := s.inTx(ctx, func(r txRepos) error {
		row, err := find(ctx, r.q, Lookup{ID: groupID})
		if err != nil {
			return err
		}
		if err := requireMember(ctx, r.q, row.ID, actorID); err != nil {
			return err
		}

		if in.Name != "" && in.Name != row.Name {
			if err := r.q.RenameGroup(ctx, group_db.RenameGroupParams{Name: in.Name, ID: row.ID}); err != nil {
				if database.IsUniqueViolation(err) {
					return ErrGroupNameTaken
				}
				return fmt.Errorf("failed to rename group: %w", err)
			}
			row.Name = in.Name
		}

		owner := shared.GroupOwner(row.ID)
		if in.ShoppingList != nil {
			if _, err := r.shopping.Replace(ctx, owner, in.ShoppingList); err != nil {
				return err
			}
		}
		if in.Meals != nil {
			if _, err := r.meals.Replace(ctx, owner, in.Meals); err != nil {
				return err
			}
		}

		g, err = load(ctx, r, row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Delete removes a group the actor belongs to, with its meals, shopping
// list, members and pending requests.
func (s *Service) Delete(ctx context.Context, actorID, groupID string) (*Summary, error) {
	var deleted *Summary
	err := s.inTx(ctx, func(r txRepos) error {
		row, err := find(ctx, r.q, Lookup{ID: groupID})
		if err != nil {
			return err
		}
		if err := requireMember(ctx, r.q, row.ID, actorID); err != nil {
			return err
		}
		if err := remove(ctx, r, row.ID); err != nil {
			return err
		}
		deleted = &Summary{ID: row.ID, Name: row.Name}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("deleted group", zap.String("group_id", deleted.ID))
	return deleted, nil
}

// RequestAccess files a request from the actor to join the group.
func (s *Service) RequestAccess(ctx context.Context, actorID, groupID string) (*Summary, error) {
	var summary *Summary
	err := s.inTx(ctx, func(r txRepos) error {
		row, err := find(ctx, r.q, Lookup{ID: groupID})
		if err != nil {
			return err
		}
		member, err := isMember(ctx, r.q, row.ID, actorID)
		if err != nil {
			return err
		}
		if member {
			return ErrAlreadyMember
		}
		if err := r.q.InsertRequest(ctx, group_db.InsertRequestParams{GroupID: row.ID, IndividualID: actorID}); err != nil {
			if database.IsUniqueViolation(err) {
				return ErrAlreadyRequested
			}
			return fmt.Errorf("failed to insert join request: %w", err)
		}
		summary = &Summary{ID: row.ID, Name: row.Name}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// CancelRequest withdraws the actor's pending request.
func (s *Service) CancelRequest(ctx context.Context, actorID, groupID string) (*Summary, error) {
	var summary *Summary
	err := s.inTx(ctx, func(r txRepos) error {
		row, err := find(ctx, r.q, Lookup{ID: groupID})
		if err != nil {
			return err
		}
		n, err := r.q.DeleteRequest(ctx, group_db.DeleteRequestParams{GroupID: row.ID, IndividualID: actorID})
		if err != nil {
			return fmt.Errorf("failed to delete join request: %w", err)
		}
		if n == 0 {
			return ErrNoRequest
		}
		summary = &Summary{ID: row.ID, Name: row.Name}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// Invite adds another individual to a group the actor belongs to. A pending
// request from the invitee is settled by the invitation.
func (s *Service) Invite(ctx context.Context, actorID, inviteeID, groupID string) (*Group, error) {
	var g *Group
	err := s.inTx(ctx, func(r txRepos) error {
		row, err := find(ctx, r.q, Lookup{ID: groupID})
		if err != nil {
			return err
		}
		if err := requireMember(ctx, r.q, row.ID, actorID); err != nil {
			return err
		}

		exists, err := r.q.IndividualExists(ctx, inviteeID)
		if err != nil {
			return fmt.Errorf("failed to look up individual: %w", err)
		}
		if exists == 0 {
			return ErrInviteeNotFound
		}
		member, err := isMember(ctx, r.q, row.ID, inviteeID)
		if err != nil {
			return err
		}
		if member {
			return ErrAlreadyMember
		}

		if _, err := r.q.DeleteRequest(ctx, group_db.DeleteRequestParams{GroupID: row.ID, IndividualID: inviteeID}); err != nil {
			return fmt.Errorf("failed to delete join request: %w", err)
		}
		if err := r.q.AddMember(ctx, group_db.AddMemberParams{GroupID: row.ID, IndividualID: inviteeID}); err != nil {
			return fmt.Errorf("failed to add group member: %w", err)
		}

		g, err = load(ctx, r, row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Leave removes the actor from a group. When the last member leaves the
// group is deleted and Leave reports true.
func (s *Service) Leave(ctx context.Context, actorID string, lookup Lookup) (bool, error) {
	if err := lookup.Validate(); err != nil {
		return false, err
	}

	var (
		deleted bool
		groupID string
	)
	err := s.inTx(ctx, func(r txRepos) error {
		row, err := find(ctx, r.q, lookup)
		if err != nil {
			return err
		}
		if err := requireMember(ctx, r.q, row.ID, actorID); err != nil {
			return err
		}
		if err := r.q.RemoveMember(ctx, group_db.RemoveMemberParams{GroupID: row.ID, IndividualID: actorID}); err != nil {
			return fmt.Errorf("failed to remove group member: %w", err)
		}

		left, err := r.q.CountMembers(ctx, row.ID)
		if err != nil {
			return fmt.Errorf("failed to count group members: %w", err)
		}
		if left == 0 {
			deleted, groupID = true, row.ID
			return remove(ctx, r, row.ID)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	if deleted {
		s.logger.Info("last member left, group deleted", zap.String("group_id", groupID))
	}
	return deleted, nil
}

func (s *Service) repos() txRepos {
	return txRepos{q: s.queries, meals: s.meals, shopping: s.shopping}
}

func find(ctx context.Context, q *group_db.Queries, lookup Lookup) (group_db.MealGroup, error) {
	var (
		row group_db.MealGroup
		err error
	)
	if lookup.ID != "" {
		row, err = q.GetGroupByID(ctx, lookup.ID)
	} else {
		row, err = q.GetGroupByName(ctx, lookup.Name)
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return group_db.MealGroup{}, ErrGroupNotFound
		}
		return group_db.MealGroup{}, fmt.Errorf("failed to get group: %w", err)
	}
	return row, nil
}

func isMember(ctx context.Context, q *group_db.Queries, groupID, individualID string) (bool, error) {
	n, err := q.IsMember(ctx, group_db.IsMemberParams{GroupID: groupID, IndividualID: individualID})
	if err != nil {
		return false, fmt.Errorf("failed to check group membership: %w", err)
	}
	return n != 0, nil
}

func requireMember(ctx context.Context, q *group_db.Queries, groupID, individualID string) error {
	member, err := isMember(ctx, q, groupID, individualID)
	if err != nil {
		return err
	}
	if !member {
		return ErrNotMember
	}
	return nil
}

// remove deletes the group's owned rows; members and requests cascade.
func remove(ctx context.Context, r txRepos, groupID string) error {
	owner := shared.GroupOwner(groupID)
	if err := r.meals.DeleteAll(ctx, owner); err != nil {
		return err
	}
	if err := r.shopping.DeleteAll(ctx, owner); err != nil {
		return err
	}
	if err := r.q.DeleteGroup(ctx, groupID); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	return nil
}

func load(ctx context.Context, r txRepos, row group_db.MealGroup) (*Group, error) {
	members, err := r.q.ListMembers(ctx, row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members of group %s: %w", row.ID, err)
	}
	requests, err := r.q.ListRequests(ctx, row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests of group %s: %w", row.ID, err)
	}

	owner := shared.GroupOwner(row.ID)
	meals, err := r.meals.List(ctx, owner)
	if err != nil {
		return nil, err
	}
	items, err := r.shopping.List(ctx, owner)
	if err != nil {
		return nil, err
	}

	g := &Group{
		ID:           row.ID,
		Name:         row.Name,
		Members:      make([]Member, 0, len(members)),
		Requests:     make([]Member, 0, len(requests)),
		Meals:        meals,
		ShoppingList: items,
	}
	for _, m := range members {
		g.Members = append(g.Members, Member{ID: m.ID, Username: m.Username, Email: m.Email})
	}
	for _, m := range requests {
		g.Requests = append(g.Requests, Member{ID: m.ID, Username: m.Username, Email: m.Email})
	}
	return g, nil
}
