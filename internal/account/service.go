package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"weeks-worth/internal/account/account_db"
	"weeks-worth/internal/auth"
	"weeks-worth/internal/database"
	"weeks-worth/internal/planner"
	"weeks-worth/internal/shared"
	"weeks-worth/internal/shopping"
)

// Service manages users, their individual profiles and logins.
type Service struct {
	db       *database.DB
	queries  *account_db.Queries
	meals    *planner.MealRepository
	shopping *shopping.Repository
	issuer   *auth.Issuer
	logger   *zap.Logger
}

// NewService creates a new account Service.
func NewService(d *database.DB, issuer *auth.Issuer, logger *zap.Logger) *Service {
	return &Service{
		db:       d,
		queries:  account_db.New(d.SQL),
		meals:    planner.NewMealRepository(d.SQL),
		shopping: shopping.NewRepository(d.SQL),
		issuer:   issuer,
		logger:   logger,
	}
}

// Register creates a user and its individual profile together.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*Individual, error) {
	return s.createUser(ctx, in, false)
}

// CreateSuperuser is Register for an account that may see every individual.
func (s *Service) CreateSuperuser(ctx context.Context, in RegisterInput) (*Individual, error) {
	return s.createUser(ctx, in, true)
}

func (s *Service) createUser(ctx context.Context, in RegisterInput, superuser bool) (*Individual, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	ind := &Individual{
		ID:        uuid.NewString(),
		UserID:    uuid.NewString(),
		Username:  in.Username,
		Email:     in.Email,
		Superuser: superuser,
	}
	err = s.db.InTx(ctx, func(tx *sql.Tx) error {
		q := s.queries.WithTx(tx)
		err := q.InsertUser(ctx, account_db.InsertUserParams{
			ID:           ind.UserID,
			Username:     ind.Username,
			Email:        ind.Email,
			PasswordHash: hash,
			IsSuperuser:  boolToInt(superuser),
		})
		if err != nil {
			if database.IsUniqueViolation(err) {
				return ErrUsernameTaken
			}
			return fmt.Errorf("failed to insert user: %w", err)
		}
		err = q.InsertIndividual(ctx, account_db.InsertIndividualParams{ID: ind.ID, UserID: ind.UserID})
		if err != nil {
			return fmt.Errorf("failed to insert individual: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("registered user", zap.String("username", ind.Username), zap.Bool("superuser", superuser))
	return ind, nil
}

// Login checks the credentials and returns a signed access token.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.queries.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", auth.ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to get user by username: %w", err)
	}
	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		s.logger.Warn("failed login", zap.String("username", username))
		return "", err
	}
	return s.issuer.Issue(user.ID, user.Username, user.IsSuperuser != 0)
}

// IndividualForUser resolves the profile of an authenticated user.
func (s *Service) IndividualForUser(ctx context.Context, userID string) (*Individual, error) {
	row, err := s.queries.GetIndividualByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrIndividualNotFound
		}
		return nil, fmt.Errorf("failed to get individual by user ID: %w", err)
	}
	return &Individual{
		ID:        row.ID,
		UserID:    row.UserID,
		Username:  row.Username,
		Email:     row.Email,
		Superuser: row.IsSuperuser != 0,
	}, nil
}

// Me returns the caller's full profile.
func (s *Service) Me(ctx context.Context, caller *Individual) (*Profile, error) {
	return s.loadProfile(ctx, s.queries, s.meals, s.shopping, *caller)
}

// UpdateIndividual replaces the caller's meals and/or shopping list in one
// transaction. Either both changes are stored or neither is.
func (s *Service) UpdateIndividual(ctx context.Context, caller *Individual, in UpdateInput) (*Profile, error) {
	owner := shared.IndividualOwner(caller.ID)

	var profile *Profile
	err := s.db.InTx(ctx, func(tx *sql.Tx) error {
		meals := s.meals.WithTx(tx)
		items := s.shopping.WithTx(tx)

		if in.ShoppingList != nil {
			if _, err := items.Replace(ctx, owner, in.ShoppingList); err != nil {
				return err
			}
		}
		if in.Meals != nil {
			if _, err := meals.Replace(ctx, owner, in.Meals); err != nil {
				return err
			}
		}

		var err error
		profile, err = s.loadProfile(ctx, s.queries.WithTx(tx), meals, items, *caller)
		return err
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// GetIndividual returns another individual's profile. Superusers only.
func (s *Service) GetIndividual(ctx context.Context, caller *Individual, lookup Lookup) (*Profile, error) {
	if !caller.Superuser {
		return nil, ErrSuperuserOnly
	}
	if err := lookup.Validate(); err != nil {
		return nil, err
	}

	var (
		ind Individual
		err error
	)
	if lookup.ID != "" {
		var row account_db.GetIndividualByIDRow
		row, err = s.queries.GetIndividualByID(ctx, lookup.ID)
		ind = Individual{ID: row.ID, UserID: row.UserID, Username: row.Username, Email: row.Email, Superuser: row.IsSuperuser != 0}
	} else {
		var row account_db.GetIndividualByEmailRow
		row, err = s.queries.GetIndividualByEmail(ctx, lookup.Email)
		ind = Individual{ID: row.ID, UserID: row.UserID, Username: row.Username, Email: row.Email, Superuser: row.IsSuperuser != 0}
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrIndividualNotFound
		}
		return nil, fmt.Errorf("failed to get individual: %w", err)
	}
	return s.loadProfile(ctx, s.queries, s.meals, s.shopping, ind)
}

// AllIndividuals lists every profile ordered by username. Superusers only.
func (s *Service) AllIndividuals(ctx context.Context, caller *Individual) ([]Profile, error) {
	if !caller.Superuser {
		return nil, ErrSuperuserOnly
	}

	rows, err := s.queries.ListIndividuals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list individuals: %w", err)
	}

	profiles := make([]Profile, 0, len(rows))
	for _, row := range rows {
		ind := Individual{ID: row.ID, UserID: row.UserID, Username: row.Username, Email: row.Email, Superuser: row.IsSuperuser != 0}
		p, err := s.loadProfile(ctx, s.queries, s.meals, s.shopping, ind)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, nil
}

func (s *Service) loadProfile(
	ctx context.Context,
	q *account_db.Queries,
	meals *planner.MealRepository,
	items *shopping.Repository,
	ind Individual,
) (*Profile, error) {
	groups, err := q.ListGroupsForIndividual(ctx, ind.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups for individual %s: %w", ind.ID, err)
	}
	requests, err := q.ListRequestedGroupsForIndividual(ctx, ind.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group requests for individual %s: %w", ind.ID, err)
	}

	owner := shared.IndividualOwner(ind.ID)
	mealList, err := meals.List(ctx, owner)
	if err != nil {
		return nil, err
	}
	shoppingList, err := items.List(ctx, owner)
	if err != nil {
		return nil, err
	}

	return &Profile{
		Individual:   ind,
		Groups:       groupRefs(groups),
		Requests:     groupRefs(requests),
		Meals:        mealList,
		ShoppingList: shoppingList,
	}, nil
}

func groupRefs(rows []account_db.MealGroup) []GroupRef {
	refs := make([]GroupRef, 0, len(rows))
	for _, g := range rows {
		refs = append(refs, GroupRef{ID: g.ID, Name: g.Name})
	}
	return refs
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
