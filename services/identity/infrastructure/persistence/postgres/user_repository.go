package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/logitrack/logitrack/pkg/apperr"
	"github.com/logitrack/logitrack/pkg/database"
	"github.com/logitrack/logitrack/pkg/events"
	identitydomain "github.com/logitrack/logitrack/services/identity/domain"
	domainevents "github.com/logitrack/logitrack/services/identity/domain/events"
	"github.com/logitrack/logitrack/services/identity/domain/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// UserRepository implements repositories.UserRepository against PostgreSQL.
type UserRepository struct {
	db  *database.Database
	bus events.TxPublisher
	now func() time.Time
}

// NewUserRepository returns a UserRepository. bus may be nil.
func NewUserRepository(db *database.Database, bus events.TxPublisher) *UserRepository {
	return &UserRepository{db: db, bus: bus, now: time.Now}
}

// Create inserts user and publishes UserRegisteredEvent in one transaction.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		query, args, err := psql.
			Insert("users").
			Columns("id", "email", "normalized_email", "password_hash", "created_at").
			Values(user.ID, user.Email.String(), user.Email.Normalized(), user.PasswordHash, user.CreatedAt).
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			if database.IsUniqueViolation(err) {
				return identitydomain.ErrEmailTaken
			}
			return apperr.Persistence("insert user", err)
		}

		return r.publish(ctx, tx, domainevents.UserRegisteredEvent{
			UserID:     user.ID.String(),
			Email:      user.Email.String(),
			OccurredAt: r.now().UTC(),
		})
	})
}

// FindByEmail loads the user and its roles, sorted by name.
func (r *UserRepository) FindByEmail(ctx context.Context, normalizedEmail string) (*models.User, error) {
	query, args, err := psql.
		Select("id", "email", "password_hash", "created_at").
		From("users").
		Where(sq.Eq{"normalized_email": normalizedEmail}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find query: %w", err)
	}

	var (
		u     models.User
		email string
	)
	err = r.db.DB().QueryRowContext(ctx, query, args...).Scan(&u.ID, &email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, identitydomain.ErrUserNotFound
	}
	if err != nil {
		return nil, apperr.Persistence("find user", err)
	}
	u.Email = models.Email(email)
	u.CreatedAt = u.CreatedAt.UTC()

	u.Roles, err = r.rolesOf(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) rolesOf(ctx context.Context, userID uuid.UUID) ([]string, error) {
	query, args, err := psql.
		Select("role_name").
		From("user_roles").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("role_name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build roles query: %w", err)
	}
	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.Persistence("query user roles", err)
	}
	defer rows.Close() //nolint:errcheck

	roles := make([]string, 0)
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, apperr.Persistence("scan user role", err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("iterate user roles", err)
	}
	return roles, nil
}

// EnsureRoles inserts names, skipping those already present.
func (r *UserRepository) EnsureRoles(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}
	ins := psql.Insert("roles").Columns("name")
	for _, n := range names {
		ins = ins.Values(n)
	}
	query, args, err := ins.Suffix("ON CONFLICT (name) DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("build roles insert: %w", err)
	}
	if _, err := r.db.DB().ExecContext(ctx, query, args...); err != nil {
		return apperr.Persistence("insert roles", err)
	}
	return nil
}

// AssignRole adds the grant and publishes RoleAssignedEvent when it is new.
func (r *UserRepository) AssignRole(ctx context.Context, normalizedEmail, role, assignedBy string) (bool, error) {
	var added bool
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		query, args, err := psql.
			Select("id").
			From("users").
			Where(sq.Eq{"normalized_email": normalizedEmail}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build user lookup: %w", err)
		}
		var userID uuid.UUID
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&userID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			return apperr.Persistence("find user", err)
		}

		query, args, err = psql.
			Insert("user_roles").
			Columns("user_id", "role_name").
			Values(userID, role).
			Suffix("ON CONFLICT DO NOTHING").
			ToSql()
		if err != nil {
			return fmt.Errorf("build grant insert: %w", err)
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return apperr.Persistence("grant role", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return apperr.Persistence("grant role", err)
		}
		if n == 0 {
			return nil
		}
		added = true

		return r.publish(ctx, tx, domainevents.RoleAssignedEvent{
			UserID:     userID.String(),
			Role:       role,
			AssignedBy: assignedBy,
			OccurredAt: r.now().UTC(),
		})
	})
	if err != nil {
		return false, err
	}
	return added, nil
}

func (r *UserRepository) publish(ctx context.Context, tx *sql.Tx, ev events.Event) error {
	if r.bus == nil {
		return nil
	}
	if err := r.bus.PublishTx(ctx, tx, ev); err != nil {
		return fmt.Errorf("publish %s: %w", ev.EventTopic(), err)
	}
	return nil
}
