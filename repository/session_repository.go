// file: repository/session_repository.go

package repository

import (
	"database/sql"
	"go-shop-api/logger"
	"go-shop-api/model"

	"github.com/sirupsen/logrus"
)

// ISessionRepository defines the contract for session database operations.
// Sessions are the revocation anchor for otherwise stateless tokens:
// both token columns are unique, so a collision fails the insert instead
// of silently overwriting another session.
type ISessionRepository interface {
	Create(session *model.Session) error
	GetByAccessToken(accessToken string) (*model.Session, error)
	GetByRefreshToken(refreshToken string) (*model.Session, error)
	UpdateAccessToken(sessionID int, oldAccessToken, newAccessToken string) error
	Delete(sessionID int) error
	DeleteByUserID(userID int) error
}

// SessionRepository implements ISessionRepository on Postgres.
type SessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

// Create inserts a new session record into the database.
func (r *SessionRepository) Create(session *model.Session) error {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":    session.UserID,
		"expires_at": session.ExpiresAt,
	})
	log.Info("Executing query to create a new session")

	query := `INSERT INTO sessions (user_id, access_token, refresh_token, created_at, expires_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.DB.QueryRow(query,
		session.UserID, session.AccessToken, session.RefreshToken,
		session.CreatedAt, session.ExpiresAt,
	).Scan(&session.ID)
	if err != nil {
		log.WithError(err).Error("Failed to execute create session query")
		return translateUniqueViolation(err)
	}
	return nil
}

// GetByAccessToken retrieves a session by its access token.
// Returns sql.ErrNoRows if no matching session exists.
func (r *SessionRepository) GetByAccessToken(accessToken string) (*model.Session, error) {
	return r.getByToken("access_token", accessToken)
}

// GetByRefreshToken retrieves a session by its refresh token.
// Returns sql.ErrNoRows if no matching session exists.
func (r *SessionRepository) GetByRefreshToken(refreshToken string) (*model.Session, error) {
	return r.getByToken("refresh_token", refreshToken)
}

func (r *SessionRepository) getByToken(column, token string) (*model.Session, error) {
	session := &model.Session{}
	query := `SELECT id, user_id, access_token, refresh_token, created_at, expires_at
	          FROM sessions WHERE ` + column + ` = $1`
	err := r.DB.QueryRow(query, token).Scan(
		&session.ID, &session.UserID, &session.AccessToken,
		&session.RefreshToken, &session.CreatedAt, &session.ExpiresAt,
	)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).WithField("column", column).
				Error("Failed to execute get session by token query")
		}
		return nil, err
	}
	return session, nil
}

// UpdateAccessToken swaps the access token of a session. The update is
// a compare-and-swap keyed on the old token value, so of two concurrent
// refresh calls on the same session only one can commit; the loser
// observes sql.ErrNoRows.
func (r *SessionRepository) UpdateAccessToken(sessionID int, oldAccessToken, newAccessToken string) error {
	log := logger.Log.WithField("session_id", sessionID)
	log.Info("Executing query to replace the session access token")

	query := `UPDATE sessions SET access_token = $1 WHERE id = $2 AND access_token = $3`
	result, err := r.DB.Exec(query, newAccessToken, sessionID, oldAccessToken)
	if err != nil {
		log.WithError(err).Error("Failed to execute update access token query")
		return translateUniqueViolation(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a single session. Used for single-device logout.
func (r *SessionRepository) Delete(sessionID int) error {
	log := logger.Log.WithField("session_id", sessionID)
	log.Info("Executing query to delete a session")

	query := `DELETE FROM sessions WHERE id = $1`
	result, err := r.DB.Exec(query, sessionID)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete session query")
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteByUserID deletes all sessions for a specific user.
// This is used for logging out from all devices at once.
func (r *SessionRepository) DeleteByUserID(userID int) error {
	log := logger.Log.WithField("user_id", userID)
	log.Info("Executing query to delete all sessions for a user")

	query := `DELETE FROM sessions WHERE user_id = $1`
	_, err := r.DB.Exec(query, userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete sessions query")
		return err
	}
	return nil
}
