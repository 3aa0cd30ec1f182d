package repository

import (
    "context"      // context carries deadlines to DB operations
    "database/sql" // sql provides generic database operations
    "errors"

    "github.com/iliyamo/sanadimo/internal/model"
)

// MessageRepo stores validated contact form submissions.
type MessageRepo struct {
    db *sql.DB
}

// NewMessageRepo constructs a MessageRepo with the provided DB handle.
func NewMessageRepo(db *sql.DB) *MessageRepo {
    return &MessageRepo{db: db}
}

const messageColumns = `id, submission_id, message_type, name, phone, email, message,
    DATE_FORMAT(res_date, '%Y-%m-%d'), res_time, guests, created_at`

// Create inserts m and fills in its ID.  A row with the same SubmissionID
// is left untouched so a redelivered queue message is stored once; in that
// case m.ID is set to the existing row.
func (r *MessageRepo) Create(ctx context.Context, m *model.ContactMessage) error {
    const q = `INSERT IGNORE INTO contact_messages
        (submission_id, message_type, name, phone, email, message, res_date, res_time, guests, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q,
        m.SubmissionID, m.MessageType, m.Name, m.Phone, m.Email, m.Message,
        nullString(m.Date), nullString(m.Time), nullInt(m.Guests), m.CreatedAt)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return r.db.QueryRowContext(ctx,
            "SELECT id FROM contact_messages WHERE submission_id = ?", m.SubmissionID).Scan(&m.ID)
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    m.ID = uint64(id)
    return nil
}

// GetByID fetches one message.  It returns ErrNotFound if no row matches.
func (r *MessageRepo) GetByID(ctx context.Context, id uint64) (*model.ContactMessage, error) {
    q := "SELECT " + messageColumns + " FROM contact_messages WHERE id = ?"
    m, err := scanMessage(r.db.QueryRowContext(ctx, q, id))
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrNotFound
    }
    return m, err
}

// List returns messages newest first.  An empty msgType lists every type.
// limit <= 0 means 50.
func (r *MessageRepo) List(ctx context.Context, msgType string, limit, offset int) ([]*model.ContactMessage, error) {
    if limit <= 0 {
        limit = 50
    }
    if offset < 0 {
        offset = 0
    }
    q := "SELECT " + messageColumns + " FROM contact_messages"
    args := []any{}
    if msgType != "" {
        q += " WHERE message_type = ?"
        args = append(args, msgType)
    }
    q += " ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?"
    args = append(args, limit, offset)

    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    out := []*model.ContactMessage{}
    for rows.Next() {
        m, err := scanMessage(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, m)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

// Delete removes one message.  It returns ErrNotFound when nothing was
// deleted.
func (r *MessageRepo) Delete(ctx context.Context, id uint64) error {
    res, err := r.db.ExecContext(ctx, "DELETE FROM contact_messages WHERE id = ?", id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrNotFound
    }
    return nil
}

type rowScanner interface {
    Scan(dest ...any) error
}

func scanMessage(s rowScanner) (*model.ContactMessage, error) {
    var (
        m      model.ContactMessage
        date   sql.NullString
        tm     sql.NullString
        guests sql.NullInt64
    )
    if err := s.Scan(&m.ID, &m.SubmissionID, &m.MessageType, &m.Name, &m.Phone, &m.Email,
        &m.Message, &date, &tm, &guests, &m.CreatedAt); err != nil {
        return nil, err
    }
    if date.Valid {
        m.Date = &date.String
    }
    if tm.Valid {
        m.Time = &tm.String
    }
    if guests.Valid {
        g := int(guests.Int64)
        m.Guests = &g
    }
    return &m, nil
}

func nullString(s *string) sql.NullString {
    if s == nil || *s == "" {
        return sql.NullString{}
    }
    return sql.NullString{String: *s, Valid: true}
}

func nullInt(n *int) sql.NullInt64 {
    if n == nil {
        return sql.NullInt64{}
    }
    return sql.NullInt64{Int64: int64(*n), Valid: true}
}
